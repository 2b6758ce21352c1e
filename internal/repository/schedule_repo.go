package repository

import (
	"context"
	"time"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ScheduleFilter narrows schedule listings. Zero fields are ignored.
type ScheduleFilter struct {
	DoctorID uint
	RoomID   uint
	From     time.Time
	To       time.Time
}

func (r *ScheduleRepository) ListSchedules(ctx context.Context, f ScheduleFilter) ([]models.Schedule, error) {
	var schedules []models.Schedule
	q := r.db.WithContext(ctx).
		Preload("Doctor.User").
		Preload("Room").
		Order("work_date ASC, start_time ASC")
	if f.DoctorID != 0 {
		q = q.Where("doctor_id = ?", f.DoctorID)
	}
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if !f.From.IsZero() {
		q = q.Where("work_date >= ?", models.Day(f.From))
	}
	if !f.To.IsZero() {
		q = q.Where("work_date <= ?", models.Day(f.To))
	}
	err := q.Find(&schedules).Error
	return schedules, err
}

func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Room").
		First(&schedule, id).Error
	if err != nil {
		return nil, translate("schedule", err)
	}
	return &schedule, nil
}

func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Model(schedule).
		Select("doctor_id", "room_id", "work_date", "start_time", "end_time").
		Updates(schedule).Error
}

func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Schedule{}, id).Error
}

// HasOverlap reports whether the doctor or the room already has a shift on
// date that intersects [start, end). Times are zero-padded "HH:MM" strings
// so they compare correctly as text. excludeID skips the schedule being
// edited.
func (r *ScheduleRepository) HasOverlap(ctx context.Context, doctorID, roomID uint, date time.Time, start, end string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Schedule{}).
		Where("work_date = ?", models.Day(date)).
		Where("(doctor_id = ? OR room_id = ?)", doctorID, roomID).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountActiveAppointments counts non-cancelled appointments on a schedule.
func (r *ScheduleRepository) CountActiveAppointments(ctx context.Context, scheduleID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("schedule_id = ? AND status <> ?", scheduleID, models.StatusCancelled).
		Count(&count).Error
	return count, err
}

// ShiftLoad is one schedule together with the doctor's booked count that
// day.
type ShiftLoad struct {
	WorkDate  time.Time
	DoctorID  uint
	StartTime string
	EndTime   string
	Booked    int
}

// ListShiftLoads returns every shift in [from, to] of an active doctor of
// the specialty in an active room. doctorID restricts the search to one
// doctor when non-zero.
func (r *ScheduleRepository) ListShiftLoads(ctx context.Context, specialtyID, doctorID uint, from, to time.Time) ([]ShiftLoad, error) {
	query := `
SELECT s.work_date, s.doctor_id, s.start_time, s.end_time,
       (SELECT COUNT(*) FROM appointments a
         WHERE a.doctor_id = s.doctor_id
           AND a.appointment_date = s.work_date
           AND a.status <> ?) AS booked
FROM schedules s
JOIN doctors d ON d.id = s.doctor_id
JOIN rooms r ON r.id = s.room_id AND r.is_active = ?
WHERE d.specialty_id = ? AND d.is_active = ? AND s.work_date BETWEEN ? AND ?`
	args := []interface{}{models.StatusCancelled, true, specialtyID, true, models.Day(from), models.Day(to)}
	if doctorID != 0 {
		query += " AND s.doctor_id = ?"
		args = append(args, doctorID)
	}
	query += " ORDER BY s.work_date ASC, s.start_time ASC"

	var rows []ShiftLoad
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
