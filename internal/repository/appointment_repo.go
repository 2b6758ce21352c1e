package repository

import (
	"context"
	"fmt"
	"time"

	"hospital-booking/internal/models"
	"hospital-booking/internal/scheduling"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// ReserveSlotRequest carries everything needed to place a new appointment.
// DoctorID pins the booking to one doctor; nil lets the least-loaded doctor
// of the specialty take it.
type ReserveSlotRequest struct {
	PatientID   uint
	SpecialtyID uint
	ServiceID   *uint
	DoctorID    *uint
	Date        time.Time
	Reason      string
	Amount      int64
	Slot        time.Duration
}

type candidateRow struct {
	ScheduleID uint
	DoctorID   uint
	RoomID     uint
	StartTime  string
	EndTime    string
	Booked     int
}

const candidateQuery = `
SELECT s.id AS schedule_id, s.doctor_id, s.room_id, s.start_time, s.end_time,
       (SELECT COUNT(*) FROM appointments a
         WHERE a.doctor_id = s.doctor_id
           AND a.appointment_date = s.work_date
           AND a.status <> ?) AS booked
FROM schedules s
JOIN doctors d ON d.id = s.doctor_id
JOIN rooms r ON r.id = s.room_id AND r.is_active = ?
WHERE d.specialty_id = ? AND d.is_active = ? AND s.work_date = ?`

// ReserveSlot picks a doctor, a queue number and an estimated time and
// inserts the appointment, all in one transaction. The (specialty, date)
// counter row is locked first so concurrent reservations for the same
// queue run one after another and never share a number. The same lock
// covers the one-active-booking-per-patient check, which fails with
// ErrDuplicateAppointment.
func (r *AppointmentRepository) ReserveSlot(ctx context.Context, req ReserveSlotRequest) (*models.Appointment, error) {
	day := models.Day(req.Date)
	slot := req.Slot
	if slot <= 0 {
		slot = scheduling.DefaultSlot
	}

	var appt *models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		counter := models.QueueCounter{SpecialtyID: req.SpecialtyID, WorkDate: day}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&counter).Error; err != nil {
			return fmt.Errorf("failed to init queue counter: %w", err)
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("specialty_id = ? AND work_date = ?", req.SpecialtyID, day).
			First(&counter).Error; err != nil {
			return fmt.Errorf("failed to lock queue counter: %w", err)
		}

		dup, err := hasActiveBooking(tx, req.PatientID, req.SpecialtyID, day)
		if err != nil {
			return fmt.Errorf("failed to check existing appointments: %w", err)
		}
		if dup {
			return ErrDuplicateAppointment
		}

		cands, err := loadCandidates(tx, req.SpecialtyID, req.DoctorID, day)
		if err != nil {
			return err
		}

		var maxQueue int
		if err := tx.Model(&models.Appointment{}).
			Select("COALESCE(MAX(queue_number), 0)").
			Where("specialty_id = ? AND appointment_date = ?", req.SpecialtyID, day).
			Scan(&maxQueue).Error; err != nil {
			return fmt.Errorf("failed to read queue: %w", err)
		}
		if counter.LastNumber > maxQueue {
			maxQueue = counter.LastNumber
		}

		assigned, err := scheduling.Assign(day, cands, maxQueue, slot)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.QueueCounter{}).
			Where("specialty_id = ? AND work_date = ?", req.SpecialtyID, day).
			Update("last_number", assigned.QueueNumber).Error; err != nil {
			return fmt.Errorf("failed to advance queue counter: %w", err)
		}

		appt = &models.Appointment{
			PatientID:       req.PatientID,
			SpecialtyID:     req.SpecialtyID,
			ServiceID:       req.ServiceID,
			DoctorID:        assigned.DoctorID,
			RoomID:          assigned.RoomID,
			ScheduleID:      assigned.ScheduleID,
			AppointmentDate: day,
			QueueNumber:     assigned.QueueNumber,
			EstimatedTime:   assigned.EstimatedTime,
			Reason:          req.Reason,
			Status:          models.StatusPending,
			PaymentStatus:   models.PaymentUnpaid,
			Amount:          req.Amount,
		}
		if err := tx.Create(appt).Error; err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

func loadCandidates(tx *gorm.DB, specialtyID uint, doctorID *uint, day time.Time) ([]scheduling.Candidate, error) {
	query := candidateQuery
	args := []interface{}{models.StatusCancelled, true, specialtyID, true, day}
	if doctorID != nil {
		query += " AND s.doctor_id = ?"
		args = append(args, *doctorID)
	}

	var rows []candidateRow
	if err := tx.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	cands := make([]scheduling.Candidate, 0, len(rows))
	for _, row := range rows {
		start, err := scheduling.ParseClock(row.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := scheduling.ParseClock(row.EndTime)
		if err != nil {
			return nil, err
		}
		cands = append(cands, scheduling.Candidate{
			DoctorID:   row.DoctorID,
			ScheduleID: row.ScheduleID,
			RoomID:     row.RoomID,
			ShiftStart: start,
			ShiftEnd:   end,
			Load:       row.Booked,
		})
	}
	return cands, nil
}

func (r *AppointmentRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Specialty").
		Preload("Service").
		Preload("Room")
}

func (r *AppointmentRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.preloaded(ctx).First(&appt, id).Error; err != nil {
		return nil, translate("appointment", err)
	}
	return &appt, nil
}

// AppointmentFilter narrows listings. Zero fields are ignored.
type AppointmentFilter struct {
	PatientID   uint
	DoctorID    uint
	SpecialtyID uint
	Status      string
	Date        time.Time
	Limit       int
}

func (r *AppointmentRepository) ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := r.preloaded(ctx)
	if f.PatientID != 0 {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.DoctorID != 0 {
		q = q.Where("doctor_id = ?", f.DoctorID)
	}
	if f.SpecialtyID != 0 {
		q = q.Where("specialty_id = ?", f.SpecialtyID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.Date.IsZero() {
		q = q.Where("appointment_date = ?", models.Day(f.Date)).Order("queue_number ASC")
	} else {
		q = q.Order("appointment_date DESC, queue_number ASC")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	err := q.Find(&appts).Error
	return appts, err
}

// hasActiveBooking reports whether the patient already holds a
// non-cancelled appointment in the specialty on day.
func hasActiveBooking(tx *gorm.DB, patientID, specialtyID uint, day time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.Appointment{}).
		Where("patient_id = ? AND specialty_id = ? AND appointment_date = ?", patientID, specialtyID, day).
		Where("status <> ?", models.StatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TransitionStatus moves an appointment to status `to` only while it is in
// one of the `from` statuses. extra carries additional columns to set in the
// same statement. ErrStaleStatus is returned when nothing matched.
func (r *AppointmentRepository) TransitionStatus(ctx context.Context, id uint, from []string, to string, extra map[string]interface{}) error {
	updates := map[string]interface{}{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	res := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

// ListStale returns appointments still in one of statuses that were last
// touched before the cutoff.
func (r *AppointmentRepository) ListStale(ctx context.Context, statuses []string, before time.Time, limit int) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := r.db.WithContext(ctx).
		Preload("Patient").
		Where("status IN ? AND updated_at < ?", statuses, before).
		Order("updated_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&appts).Error
	return appts, err
}
