package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"
	"hospital-booking/internal/scheduling"
)

type AdminService struct {
	dashboardRepo   *repository.DashboardRepository
	appointmentRepo *repository.AppointmentRepository
	doctorRepo      *repository.DoctorRepository
	specialtyRepo   *repository.SpecialtyRepository
	scheduleRepo    *repository.ScheduleRepository
	roomRepo        *repository.RoomRepository
	userRepo        *repository.UserRepository
	auditRepo       *repository.AuditRepository
	now             func() time.Time
}

func NewAdminService(
	dashboardRepo *repository.DashboardRepository,
	appointmentRepo *repository.AppointmentRepository,
	doctorRepo *repository.DoctorRepository,
	specialtyRepo *repository.SpecialtyRepository,
	scheduleRepo *repository.ScheduleRepository,
	roomRepo *repository.RoomRepository,
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
) *AdminService {
	return &AdminService{
		dashboardRepo:   dashboardRepo,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		specialtyRepo:   specialtyRepo,
		scheduleRepo:    scheduleRepo,
		roomRepo:        roomRepo,
		userRepo:        userRepo,
		auditRepo:       auditRepo,
		now:             time.Now,
	}
}

type Dashboard struct {
	From        time.Time                   `json:"from"`
	To          time.Time                   `json:"to"`
	Totals      map[string]int64            `json:"totals"`
	ByStatus    []repository.StatusCount    `json:"by_status"`
	BySpecialty []repository.SpecialtyCount `json:"by_specialty"`
	Daily       []repository.DateCount      `json:"daily"`
	Revenue     int64                       `json:"revenue"`
	Refunds     int64                       `json:"refunds_pending"`
	TodayQueue  int                         `json:"today_appointments"`
}

// Dashboard aggregates bookings dated in [from, to]. Zero bounds default to
// the last 30 days.
func (s *AdminService) Dashboard(ctx context.Context, from, to time.Time) (*Dashboard, error) {
	today := models.Day(s.now())
	if to.IsZero() {
		to = today
	}
	if from.IsZero() || from.After(to) {
		from = models.Day(to).AddDate(0, 0, -29)
	}
	from, to = models.Day(from), models.Day(to)

	d := &Dashboard{From: from, To: to}
	var err error
	if d.Totals, err = s.dashboardRepo.Totals(ctx); err != nil {
		return nil, fmt.Errorf("failed to count totals: %w", err)
	}
	if d.ByStatus, err = s.dashboardRepo.StatusCounts(ctx, from, to); err != nil {
		return nil, fmt.Errorf("failed to count statuses: %w", err)
	}
	if d.BySpecialty, err = s.dashboardRepo.SpecialtyCounts(ctx, from, to); err != nil {
		return nil, fmt.Errorf("failed to count specialties: %w", err)
	}
	if d.Daily, err = s.dashboardRepo.CountByDate(ctx, from, to); err != nil {
		return nil, fmt.Errorf("failed to count by date: %w", err)
	}
	if d.Revenue, err = s.dashboardRepo.PaidRevenue(ctx, from, to.AddDate(0, 0, 1)); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if d.Refunds, err = s.dashboardRepo.RefundsPending(ctx); err != nil {
		return nil, fmt.Errorf("failed to count refunds: %w", err)
	}
	todays, err := s.appointmentRepo.ListAppointments(ctx, repository.AppointmentFilter{Date: today})
	if err != nil {
		return nil, fmt.Errorf("failed to list today's appointments: %w", err)
	}
	for _, a := range todays {
		if a.Status != models.StatusCancelled {
			d.TodayQueue++
		}
	}
	return d, nil
}

func (s *AdminService) ListAppointments(ctx context.Context, f repository.AppointmentFilter) ([]models.Appointment, error) {
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = 200
	}
	return s.appointmentRepo.ListAppointments(ctx, f)
}

func (s *AdminService) ListAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.auditRepo.ListAuditLogs(ctx, limit)
}

type CreateDoctorRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"full_name" binding:"required"`
	Phone       string `json:"phone"`
	SpecialtyID uint   `json:"specialty_id" binding:"required"`
	Title       string `json:"title"`
	Bio         string `json:"bio"`
}

// CreateDoctor opens a login for a doctor together with their profile.
func (s *AdminService) CreateDoctor(ctx context.Context, req CreateDoctorRequest, adminID uint) (*models.Doctor, error) {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if _, err := s.specialtyRepo.GetSpecialtyByID(ctx, req.SpecialtyID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleDoctor,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        req.Phone,
		IsActive:     true,
	}
	doctor := &models.Doctor{
		SpecialtyID: req.SpecialtyID,
		Title:       req.Title,
		Bio:         req.Bio,
		IsActive:    true,
	}
	if err := s.doctorRepo.CreateDoctorAccount(ctx, user, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	doctor.User = *user

	_ = s.auditRepo.CreateAuditLog(ctx, &adminID, "doctor_create", "doctor", doctor.ID,
		fmt.Sprintf("Created doctor %s in specialty %d", email, req.SpecialtyID))
	return doctor, nil
}

type UpdateDoctorRequest struct {
	SpecialtyID *uint   `json:"specialty_id"`
	Title       *string `json:"title"`
	Bio         *string `json:"bio"`
	IsActive    *bool   `json:"is_active"`
}

func (s *AdminService) UpdateDoctor(ctx context.Context, id uint, req UpdateDoctorRequest, adminID uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetDoctorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SpecialtyID != nil && *req.SpecialtyID != doctor.SpecialtyID {
		if _, err := s.specialtyRepo.GetSpecialtyByID(ctx, *req.SpecialtyID); err != nil {
			return nil, err
		}
		doctor.SpecialtyID = *req.SpecialtyID
	}
	if req.Title != nil {
		doctor.Title = *req.Title
	}
	if req.Bio != nil {
		doctor.Bio = *req.Bio
	}
	if req.IsActive != nil {
		doctor.IsActive = *req.IsActive
	}
	if err := s.doctorRepo.UpdateDoctor(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &adminID, "doctor_update", "doctor", doctor.ID, "")
	return s.doctorRepo.GetDoctorByID(ctx, id)
}

// DeactivateDoctor disables the doctor and their login. Existing bookings
// are left to the admin to reassign or cancel.
func (s *AdminService) DeactivateDoctor(ctx context.Context, id, adminID uint) error {
	if err := s.doctorRepo.DeactivateDoctor(ctx, id); err != nil {
		return err
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &adminID, "doctor_deactivate", "doctor", id, "")
	return nil
}

type ScheduleInput struct {
	DoctorID  uint   `json:"doctor_id" binding:"required"`
	RoomID    uint   `json:"room_id" binding:"required"`
	WorkDate  string `json:"work_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// parseShift validates the date and clock fields of a schedule and returns
// them normalized.
func parseShift(in ScheduleInput) (time.Time, scheduling.Clock, scheduling.Clock, error) {
	date, err := time.ParseInLocation("2006-01-02", in.WorkDate, time.Local)
	if err != nil {
		return time.Time{}, scheduling.Clock{}, scheduling.Clock{}, invalid("work_date must be YYYY-MM-DD")
	}
	start, err := scheduling.ParseClock(in.StartTime)
	if err != nil {
		return time.Time{}, scheduling.Clock{}, scheduling.Clock{}, invalid("start_time must be HH:MM")
	}
	end, err := scheduling.ParseClock(in.EndTime)
	if err != nil {
		return time.Time{}, scheduling.Clock{}, scheduling.Clock{}, invalid("end_time must be HH:MM")
	}
	if end.Minutes() <= start.Minutes() {
		return time.Time{}, scheduling.Clock{}, scheduling.Clock{}, invalid("end_time must be after start_time")
	}
	return date, start, end, nil
}

func (s *AdminService) buildSchedule(ctx context.Context, id uint, in ScheduleInput) (*models.Schedule, error) {
	date, start, end, err := parseShift(in)
	if err != nil {
		return nil, err
	}
	doctor, err := s.doctorRepo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.IsActive {
		return nil, invalid("doctor is inactive")
	}
	room, err := s.roomRepo.GetRoomByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	if room.SpecialtyID != doctor.SpecialtyID {
		return nil, invalid("room belongs to a different specialty than the doctor")
	}

	overlap, err := s.scheduleRepo.HasOverlap(ctx, doctor.ID, room.ID, date, start.String(), end.String(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to check overlaps: %w", err)
	}
	if overlap {
		return nil, ErrScheduleOverlap
	}
	return &models.Schedule{
		ID:        id,
		DoctorID:  doctor.ID,
		RoomID:    room.ID,
		WorkDate:  models.Day(date),
		StartTime: start.String(),
		EndTime:   end.String(),
	}, nil
}

func (s *AdminService) ListSchedules(ctx context.Context, f repository.ScheduleFilter) ([]models.Schedule, error) {
	return s.scheduleRepo.ListSchedules(ctx, f)
}

func (s *AdminService) CreateSchedule(ctx context.Context, in ScheduleInput, adminID uint) (*models.Schedule, error) {
	schedule, err := s.buildSchedule(ctx, 0, in)
	if err != nil {
		return nil, err
	}
	if schedule.WorkDate.Before(models.Day(s.now())) {
		return nil, invalid("work_date is in the past")
	}
	if err := s.scheduleRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &adminID, "schedule_create", "schedule", schedule.ID,
		fmt.Sprintf("Doctor %d in room %d on %s %s-%s", schedule.DoctorID, schedule.RoomID,
			schedule.WorkDate.Format("2006-01-02"), schedule.StartTime, schedule.EndTime))
	return schedule, nil
}

// UpdateSchedule edits a shift. Booked appointments carry the doctor, room
// and estimated time of their shift, so a shift with active bookings is
// frozen.
func (s *AdminService) UpdateSchedule(ctx context.Context, id uint, in ScheduleInput, adminID uint) (*models.Schedule, error) {
	existing, err := s.scheduleRepo.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	schedule, err := s.buildSchedule(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if shiftChanged(existing, schedule) {
		n, err := s.scheduleRepo.CountActiveAppointments(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check appointments: %w", err)
		}
		if n > 0 {
			return nil, fmt.Errorf("%w: %d active appointments", ErrDependencyExists, n)
		}
	}
	if err := s.scheduleRepo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &adminID, "schedule_update", "schedule", id, "")
	return schedule, nil
}

func shiftChanged(old, upd *models.Schedule) bool {
	return old.DoctorID != upd.DoctorID ||
		old.RoomID != upd.RoomID ||
		!models.Day(old.WorkDate).Equal(upd.WorkDate) ||
		old.StartTime != upd.StartTime ||
		old.EndTime != upd.EndTime
}

func (s *AdminService) DeleteSchedule(ctx context.Context, id, adminID uint) error {
	if _, err := s.scheduleRepo.GetScheduleByID(ctx, id); err != nil {
		return err
	}
	n, err := s.scheduleRepo.CountActiveAppointments(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check appointments: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: %d active appointments", ErrDependencyExists, n)
	}
	if err := s.scheduleRepo.DeleteSchedule(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &adminID, "schedule_delete", "schedule", id, "")
	return nil
}
