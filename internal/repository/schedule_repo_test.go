package repository

import (
	"context"
	"testing"

	"hospital-booking/internal/database/dbtest"
	"hospital-booking/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListShiftLoads(t *testing.T) {
	c := newClinic(t)
	ctx := context.Background()
	repo := NewScheduleRepo(c.db)
	nextDay := workDay.AddDate(0, 0, 1)
	dbtest.Shift(t, c.db, c.morning.ID, dbtest.Room(t, c.db, c.specialty.ID).ID, nextDay, "07:30", "11:30")

	for i := 0; i < 3; i++ {
		_, err := c.reserve(t, nil)
		require.NoError(t, err)
	}
	cancelled, err := c.reserve(t, &c.morning.ID)
	require.NoError(t, err)
	require.NoError(t, NewAppointmentRepo(c.db).TransitionStatus(ctx, cancelled.ID,
		[]string{models.StatusPending}, models.StatusCancelled, nil))

	t.Run("counts and ordering", func(t *testing.T) {
		loads, err := repo.ListShiftLoads(ctx, c.specialty.ID, 0, workDay, nextDay)
		require.NoError(t, err)
		require.Len(t, loads, 3)

		assert.Equal(t, c.morning.ID, loads[0].DoctorID)
		assert.Equal(t, "08:00", loads[0].StartTime)
		assert.Equal(t, 2, loads[0].Booked)

		assert.Equal(t, c.afternoon.ID, loads[1].DoctorID)
		assert.Equal(t, "13:00", loads[1].StartTime)
		assert.Equal(t, 1, loads[1].Booked)

		assert.Equal(t, c.morning.ID, loads[2].DoctorID)
		assert.Equal(t, "07:30", loads[2].StartTime)
		assert.Equal(t, 0, loads[2].Booked)
		assert.True(t, models.Day(loads[2].WorkDate).Equal(nextDay))
	})

	t.Run("range bounds", func(t *testing.T) {
		loads, err := repo.ListShiftLoads(ctx, c.specialty.ID, 0, workDay, workDay)
		require.NoError(t, err)
		assert.Len(t, loads, 2)
	})

	t.Run("one doctor", func(t *testing.T) {
		loads, err := repo.ListShiftLoads(ctx, c.specialty.ID, c.afternoon.ID, workDay, nextDay)
		require.NoError(t, err)
		require.Len(t, loads, 1)
		assert.Equal(t, c.afternoon.ID, loads[0].DoctorID)
	})

	t.Run("inactive doctor dropped", func(t *testing.T) {
		dbtest.Deactivate(t, c.db, c.afternoon)
		loads, err := repo.ListShiftLoads(ctx, c.specialty.ID, 0, workDay, nextDay)
		require.NoError(t, err)
		require.Len(t, loads, 2)
		for _, l := range loads {
			assert.Equal(t, c.morning.ID, l.DoctorID)
		}
	})

	t.Run("other specialty", func(t *testing.T) {
		loads, err := repo.ListShiftLoads(ctx, dbtest.Specialty(t, c.db).ID, 0, workDay, nextDay)
		require.NoError(t, err)
		assert.Empty(t, loads)
	})
}

func TestHasOverlap(t *testing.T) {
	c := newClinic(t)
	ctx := context.Background()
	repo := NewScheduleRepo(c.db)
	freeRoom := dbtest.Room(t, c.db, c.specialty.ID)
	newcomer := dbtest.Doctor(t, c.db, c.specialty.ID)

	var am models.Schedule
	require.NoError(t, c.db.Where("doctor_id = ?", c.morning.ID).First(&am).Error)

	tests := []struct {
		name       string
		doctorID   uint
		roomID     uint
		start, end string
		exclude    uint
		want       bool
	}{
		{"same doctor", c.morning.ID, freeRoom.ID, "11:00", "13:00", 0, true},
		{"same room", newcomer.ID, am.RoomID, "09:00", "10:00", 0, true},
		{"touching edges", c.morning.ID, freeRoom.ID, "12:00", "13:00", 0, false},
		{"free doctor and room", newcomer.ID, freeRoom.ID, "08:00", "12:00", 0, false},
		{"editing itself", c.morning.ID, am.RoomID, "08:00", "11:00", am.ID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasOverlap(ctx, tt.doctorID, tt.roomID, workDay, tt.start, tt.end, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
