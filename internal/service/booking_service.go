package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-booking/internal/config"
	"hospital-booking/internal/mail"
	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"
	"hospital-booking/internal/scheduling"

	log "github.com/sirupsen/logrus"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// BookingRequest is a patient's request for an appointment. DoctorID is
// optional; without it the least-loaded doctor of the specialty is chosen.
type BookingRequest struct {
	UserID      uint
	SpecialtyID uint
	ServiceID   *uint
	DoctorID    *uint
	Date        time.Time
	Reason      string
}

type BookingService struct {
	appointments AppointmentStore
	patients     PatientStore
	specialties  SpecialtyReader
	services     ServiceReader
	shifts       ShiftLoadReader
	clinical     ClinicalStore
	codes        VerificationCodes
	mailer       Mailer
	notifier     Notifier
	audit        AuditLogger
	cfg          config.BookingConfig
	now          func() time.Time
}

func NewBookingService(
	appointments AppointmentStore,
	patients PatientStore,
	specialties SpecialtyReader,
	services ServiceReader,
	shifts ShiftLoadReader,
	clinical ClinicalStore,
	codes VerificationCodes,
	mailer Mailer,
	notifier Notifier,
	audit AuditLogger,
	cfg config.BookingConfig,
) *BookingService {
	if cfg.SlotDuration <= 0 {
		cfg.SlotDuration = scheduling.DefaultSlot
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = 30
	}
	return &BookingService{
		appointments: appointments,
		patients:     patients,
		specialties:  specialties,
		services:     services,
		shifts:       shifts,
		clinical:     clinical,
		codes:        codes,
		mailer:       mailer,
		notifier:     notifier,
		audit:        audit,
		cfg:          cfg,
		now:          time.Now,
	}
}

// bookingState is threaded through the booking steps.
type bookingState struct {
	req       BookingRequest
	day       time.Time
	patient   *models.Patient
	specialty *models.Specialty
	service   *models.Service
	appt      *models.Appointment
}

type bookingStep func(ctx context.Context, st *bookingState) error

// Book runs the booking pipeline and returns the reserved appointment in
// status pending. A verification code is emailed to the patient.
func (s *BookingService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	st := &bookingState{req: req}
	steps := []bookingStep{
		s.validateDate,
		s.validateSpecialty,
		s.validateService,
		s.validatePatient,
		s.reserve,
		s.afterReserve,
	}
	for _, step := range steps {
		if err := step(ctx, st); err != nil {
			return nil, err
		}
	}
	return st.appt, nil
}

func (s *BookingService) today() time.Time {
	return models.Day(s.now())
}

func (s *BookingService) validateDate(_ context.Context, st *bookingState) error {
	if st.req.Date.IsZero() {
		return invalid("date is required")
	}
	st.day = models.Day(st.req.Date)
	today := s.today()
	if st.day.Before(today) {
		return invalid("date %s is in the past", st.day.Format("2006-01-02"))
	}
	if st.day.After(today.AddDate(0, 0, s.cfg.HorizonDays)) {
		return invalid("date must be within %d days", s.cfg.HorizonDays)
	}
	return nil
}

func (s *BookingService) validateSpecialty(ctx context.Context, st *bookingState) error {
	specialty, err := s.specialties.GetSpecialtyByID(ctx, st.req.SpecialtyID)
	if err != nil {
		return err
	}
	if !specialty.IsActive {
		return invalid("specialty %s is not accepting bookings", specialty.Name)
	}
	st.specialty = specialty
	return nil
}

func (s *BookingService) validateService(ctx context.Context, st *bookingState) error {
	if st.req.ServiceID == nil {
		return nil
	}
	svc, err := s.services.GetServiceByID(ctx, *st.req.ServiceID)
	if err != nil {
		return err
	}
	if svc.SpecialtyID != st.specialty.ID {
		return invalid("service does not belong to the selected specialty")
	}
	if !svc.IsActive {
		return invalid("service %s is not available", svc.Name)
	}
	st.service = svc
	return nil
}

func (s *BookingService) validatePatient(ctx context.Context, st *bookingState) error {
	patient, err := s.patients.FindPatientByUserID(ctx, st.req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	st.patient = patient
	return nil
}

func (s *BookingService) reserve(ctx context.Context, st *bookingState) error {
	var amount int64
	if st.service != nil {
		amount = st.service.Price
	}
	appt, err := s.appointments.ReserveSlot(ctx, repository.ReserveSlotRequest{
		PatientID:   st.patient.ID,
		SpecialtyID: st.specialty.ID,
		ServiceID:   st.req.ServiceID,
		DoctorID:    st.req.DoctorID,
		Date:        st.day,
		Reason:      st.req.Reason,
		Amount:      amount,
		Slot:        s.cfg.SlotDuration,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateAppointment):
			return ErrDuplicateBooking
		case errors.Is(err, scheduling.ErrNoDoctorAvailable):
			return err
		}
		return fmt.Errorf("failed to reserve slot: %w", err)
	}
	st.appt = appt
	return nil
}

func (s *BookingService) afterReserve(ctx context.Context, st *bookingState) error {
	appt := st.appt
	log.WithFields(log.Fields{
		"appointment_id": appt.ID,
		"specialty_id":   appt.SpecialtyID,
		"doctor_id":      appt.DoctorID,
		"queue_number":   appt.QueueNumber,
	}).Info("Appointment reserved")

	s.sendVerification(ctx, appt, st.patient.User.Email)

	s.notifier.Notify(ctx, st.patient.UserID, models.NotifyBooking,
		"Appointment reserved",
		fmt.Sprintf("%s on %s, queue number %d, estimated at %s. Check your email for the verification code.",
			st.specialty.Name, appt.AppointmentDate.Format("02/01/2006"), appt.QueueNumber, appt.EstimatedTime.Format("15:04")),
		appointmentLink(appt.ID))

	_ = s.audit.CreateAuditLog(ctx, &st.req.UserID, "appointment_booked", "appointment", appt.ID,
		fmt.Sprintf("Queue %d for specialty %d on %s", appt.QueueNumber, appt.SpecialtyID, appt.AppointmentDate.Format("2006-01-02")))
	return nil
}

// sendVerification issues a code and emails it. Failures are logged; the
// patient can ask for another code.
func (s *BookingService) sendVerification(ctx context.Context, appt *models.Appointment, email string) {
	code, err := s.codes.Issue(ctx, appt.ID)
	if err != nil {
		log.WithField("appointment_id", appt.ID).WithError(err).Warn("Failed to issue verification code")
		return
	}
	err = s.mailer.Send(ctx, mail.Message{
		To:      email,
		Subject: fmt.Sprintf("Verify your appointment #%d", appt.ID),
		Body: fmt.Sprintf("Your verification code is %s. It expires in %s.\n\nDate: %s\nQueue number: %d\nEstimated time: %s\n",
			code, s.cfg.VerificationTTL, appt.AppointmentDate.Format("02/01/2006"), appt.QueueNumber, appt.EstimatedTime.Format("15:04")),
	})
	if err != nil {
		log.WithField("appointment_id", appt.ID).WithError(err).Warn("Failed to send verification email")
	}
}

func appointmentLink(id uint) string {
	return fmt.Sprintf("/appointments/%d", id)
}

// AvailableDates lists the dates in [from, from+days) on which at least one
// doctor of the specialty still has room in their shift.
func (s *BookingService) AvailableDates(ctx context.Context, specialtyID, doctorID uint, from time.Time, days int) ([]time.Time, error) {
	today := s.today()
	start := models.Day(from)
	if from.IsZero() || start.Before(today) {
		start = today
	}
	if days <= 0 || days > s.cfg.HorizonDays {
		days = s.cfg.HorizonDays
	}
	end := start.AddDate(0, 0, days-1)
	if limit := today.AddDate(0, 0, s.cfg.HorizonDays); end.After(limit) {
		end = limit
	}
	if end.Before(start) {
		return []time.Time{}, nil
	}

	loads, err := s.shifts.ListShiftLoads(ctx, specialtyID, doctorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	dates := []time.Time{}
	seen := map[string]bool{}
	for _, l := range loads {
		key := l.WorkDate.Format("2006-01-02")
		if seen[key] {
			continue
		}
		startClock, err := scheduling.ParseClock(l.StartTime)
		if err != nil {
			continue
		}
		endClock, err := scheduling.ParseClock(l.EndTime)
		if err != nil {
			continue
		}
		if l.Booked < scheduling.Capacity(startClock, endClock, s.cfg.SlotDuration) {
			seen[key] = true
			dates = append(dates, models.Day(l.WorkDate))
		}
	}
	return dates, nil
}

// ownAppointment loads an appointment and checks it belongs to the patient
// behind userID.
func (s *BookingService) ownAppointment(ctx context.Context, userID, appointmentID uint) (*models.Appointment, error) {
	appt, err := s.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Patient.UserID != userID {
		return nil, ErrForbidden
	}
	return appt, nil
}

// VerifyEmail checks the emailed code. Paid bookings move on to
// waiting_payment, free ones are confirmed right away.
func (s *BookingService) VerifyEmail(ctx context.Context, userID, appointmentID uint, code string) (*models.Appointment, error) {
	appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending {
		return nil, ErrInvalidTransition
	}
	if err := s.codes.Check(ctx, appt.ID, code); err != nil {
		return nil, err
	}

	next := models.StatusWaitingPayment
	if appt.Amount == 0 {
		next = models.StatusConfirmed
	}
	now := s.now()
	if err := s.appointments.TransitionStatus(ctx, appt.ID, []string{models.StatusPending}, next,
		map[string]interface{}{"verified_at": now}); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to verify appointment: %w", err)
	}
	appt.Status = next
	appt.VerifiedAt = &now

	msg := "Your appointment is confirmed."
	if next == models.StatusWaitingPayment {
		msg = "Email verified. Please complete the payment to confirm your appointment."
	}
	s.notifier.Notify(ctx, userID, models.NotifyVerification, "Appointment verified", msg, appointmentLink(appt.ID))
	_ = s.audit.CreateAuditLog(ctx, &userID, "appointment_verified", "appointment", appt.ID, "Status "+next)
	return appt, nil
}

// ResendVerification issues a new code for a pending appointment.
func (s *BookingService) ResendVerification(ctx context.Context, userID, appointmentID uint) error {
	appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return err
	}
	if appt.Status != models.StatusPending {
		return ErrInvalidTransition
	}
	s.sendVerification(ctx, appt, appt.Patient.User.Email)
	return nil
}

// Cancel cancels an appointment. Patients may only cancel their own.
func (s *BookingService) Cancel(ctx context.Context, actor Actor, appointmentID uint, reason string) (*models.Appointment, error) {
	var (
		appt *models.Appointment
		err  error
	)
	if actor.IsAdmin() {
		appt, err = s.appointments.GetAppointmentByID(ctx, appointmentID)
	} else {
		appt, err = s.ownAppointment(ctx, actor.UserID, appointmentID)
	}
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(appt.Status, models.StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	from := []string{models.StatusPending, models.StatusWaitingPayment, models.StatusConfirmed}
	now := s.now()
	if err := s.appointments.TransitionStatus(ctx, appt.ID, from, models.StatusCancelled, map[string]interface{}{
		"cancelled_at":  now,
		"cancel_reason": reason,
	}); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}
	appt.Status = models.StatusCancelled
	appt.CancelledAt = &now
	appt.CancelReason = reason

	if err := s.codes.Revoke(ctx, appt.ID); err != nil {
		log.WithField("appointment_id", appt.ID).WithError(err).Warn("Failed to revoke verification code")
	}
	s.notifier.Notify(ctx, appt.Patient.UserID, models.NotifyCancellation, "Appointment cancelled",
		fmt.Sprintf("Appointment #%d on %s was cancelled.", appt.ID, appt.AppointmentDate.Format("02/01/2006")),
		appointmentLink(appt.ID))
	_ = s.audit.CreateAuditLog(ctx, &actor.UserID, "appointment_cancelled", "appointment", appt.ID, reason)
	return appt, nil
}

// ListForPatient returns the caller's appointments, newest date first.
func (s *BookingService) ListForPatient(ctx context.Context, userID uint, status string) ([]models.Appointment, error) {
	patient, err := s.patients.FindPatientByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return s.appointments.ListAppointments(ctx, repository.AppointmentFilter{PatientID: patient.ID, Status: status})
}

func (s *BookingService) GetForPatient(ctx context.Context, userID, appointmentID uint) (*models.Appointment, error) {
	return s.ownAppointment(ctx, userID, appointmentID)
}

// RecordForPatient returns the examination, prescriptions and test results
// of one of the caller's appointments.
func (s *BookingService) RecordForPatient(ctx context.Context, userID, appointmentID uint) (*ClinicalRecord, error) {
	appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	return loadRecord(ctx, s.clinical, appt)
}
