package service

import (
	"context"
	"testing"
	"time"

	"hospital-booking/internal/database/dbtest"
	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestParseShift(t *testing.T) {
	date, start, end, err := parseShift(ScheduleInput{WorkDate: "2026-10-20", StartTime: "08:00", EndTime: "11:30"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.Local), date)
	assert.Equal(t, "08:00", start.String())
	assert.Equal(t, "11:30", end.String())

	cases := map[string]ScheduleInput{
		"bad date":       {WorkDate: "20/10/2026", StartTime: "08:00", EndTime: "11:00"},
		"bad start":      {WorkDate: "2026-10-20", StartTime: "8am", EndTime: "11:00"},
		"bad end":        {WorkDate: "2026-10-20", StartTime: "08:00", EndTime: ""},
		"end before":     {WorkDate: "2026-10-20", StartTime: "13:00", EndTime: "08:00"},
		"empty interval": {WorkDate: "2026-10-20", StartTime: "08:00", EndTime: "08:00"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := parseShift(in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func newAdminService(t *testing.T) (*AdminService, *gorm.DB) {
	db := dbtest.Open(t)
	svc := NewAdminService(
		repository.NewDashboardRepo(db),
		repository.NewAppointmentRepo(db),
		repository.NewDoctorRepo(db),
		repository.NewSpecialtyRepo(db),
		repository.NewScheduleRepo(db),
		repository.NewRoomRepo(db),
		repository.NewUserRepo(db),
		repository.NewAuditRepo(db),
	)
	svc.now = func() time.Time { return fixedNow }
	return svc, db
}

func TestCreateScheduleOverlap(t *testing.T) {
	ctx := context.Background()
	svc, db := newAdminService(t)
	sp := dbtest.Specialty(t, db)
	doc := dbtest.Doctor(t, db, sp.ID)
	other := dbtest.Doctor(t, db, sp.ID)
	room := dbtest.Room(t, db, sp.ID)
	spare := dbtest.Room(t, db, sp.ID)

	_, err := svc.CreateSchedule(ctx, ScheduleInput{DoctorID: doc.ID, RoomID: room.ID, WorkDate: "2026-10-25", StartTime: "08:00", EndTime: "12:00"}, adminID)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   ScheduleInput
		want error
	}{
		{"same doctor other room", ScheduleInput{DoctorID: doc.ID, RoomID: spare.ID, WorkDate: "2026-10-25", StartTime: "11:00", EndTime: "14:00"}, ErrScheduleOverlap},
		{"same room other doctor", ScheduleInput{DoctorID: other.ID, RoomID: room.ID, WorkDate: "2026-10-25", StartTime: "09:00", EndTime: "10:00"}, ErrScheduleOverlap},
		{"back to back", ScheduleInput{DoctorID: doc.ID, RoomID: room.ID, WorkDate: "2026-10-25", StartTime: "12:00", EndTime: "16:00"}, nil},
		{"next day", ScheduleInput{DoctorID: other.ID, RoomID: room.ID, WorkDate: "2026-10-26", StartTime: "08:00", EndTime: "12:00"}, nil},
		{"in the past", ScheduleInput{DoctorID: other.ID, RoomID: spare.ID, WorkDate: "2026-10-17", StartTime: "08:00", EndTime: "12:00"}, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSchedule(ctx, tt.in, adminID)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScheduleWithBookings(t *testing.T) {
	ctx := context.Background()
	svc, db := newAdminService(t)
	sp := dbtest.Specialty(t, db)
	doc := dbtest.Doctor(t, db, sp.ID)
	room := dbtest.Room(t, db, sp.ID)
	spare := dbtest.Room(t, db, sp.ID)
	appointments := repository.NewAppointmentRepo(db)

	base := ScheduleInput{DoctorID: doc.ID, RoomID: room.ID, WorkDate: "2026-10-25", StartTime: "08:00", EndTime: "12:00"}
	shift, err := svc.CreateSchedule(ctx, base, adminID)
	require.NoError(t, err)

	appt, err := appointments.ReserveSlot(ctx, repository.ReserveSlotRequest{
		PatientID: dbtest.Patient(t, db).ID, SpecialtyID: sp.ID, Date: shift.WorkDate,
	})
	require.NoError(t, err)
	require.Equal(t, shift.ID, appt.ScheduleID)

	moved := base
	moved.RoomID = spare.ID
	later := base
	later.StartTime = "09:00"
	shorter := base
	shorter.EndTime = "11:00"
	for name, in := range map[string]ScheduleInput{"room": moved, "start": later, "end": shorter} {
		t.Run("change "+name+" refused", func(t *testing.T) {
			_, err := svc.UpdateSchedule(ctx, shift.ID, in, adminID)
			assert.ErrorIs(t, err, ErrDependencyExists)
		})
	}

	_, err = svc.UpdateSchedule(ctx, shift.ID, base, adminID)
	assert.NoError(t, err, "resubmitting the same shift is allowed")

	assert.ErrorIs(t, svc.DeleteSchedule(ctx, shift.ID, adminID), ErrDependencyExists)

	require.NoError(t, appointments.TransitionStatus(ctx, appt.ID,
		[]string{models.StatusPending}, models.StatusCancelled, nil))

	updated, err := svc.UpdateSchedule(ctx, shift.ID, moved, adminID)
	require.NoError(t, err)
	assert.Equal(t, spare.ID, updated.RoomID)

	require.NoError(t, svc.DeleteSchedule(ctx, shift.ID, adminID))
	_, err = repository.NewScheduleRepo(db).GetScheduleByID(ctx, shift.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestShiftChanged(t *testing.T) {
	day := time.Date(2026, 10, 25, 0, 0, 0, 0, time.Local)
	old := &models.Schedule{DoctorID: 1, RoomID: 2, WorkDate: day, StartTime: "08:00", EndTime: "12:00"}

	same := *old
	assert.False(t, shiftChanged(old, &same))

	for name, mutate := range map[string]func(s *models.Schedule){
		"doctor": func(s *models.Schedule) { s.DoctorID = 3 },
		"room":   func(s *models.Schedule) { s.RoomID = 3 },
		"date":   func(s *models.Schedule) { s.WorkDate = day.AddDate(0, 0, 1) },
		"start":  func(s *models.Schedule) { s.StartTime = "08:30" },
		"end":    func(s *models.Schedule) { s.EndTime = "11:30" },
	} {
		upd := *old
		mutate(&upd)
		assert.True(t, shiftChanged(old, &upd), name)
	}
}
