package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"

	log "github.com/sirupsen/logrus"
)

type DoctorService struct {
	doctors      DoctorFinder
	schedules    ScheduleLister
	appointments AppointmentStore
	clinical     ClinicalStore
	files        FileStore
	notifier     Notifier
	audit        AuditLogger
	now          func() time.Time
}

func NewDoctorService(
	doctors DoctorFinder,
	schedules ScheduleLister,
	appointments AppointmentStore,
	clinical ClinicalStore,
	files FileStore,
	notifier Notifier,
	audit AuditLogger,
) *DoctorService {
	return &DoctorService{
		doctors:      doctors,
		schedules:    schedules,
		appointments: appointments,
		clinical:     clinical,
		files:        files,
		notifier:     notifier,
		audit:        audit,
		now:          time.Now,
	}
}

func (s *DoctorService) doctorFor(ctx context.Context, userID uint) (*models.Doctor, error) {
	doctor, err := s.doctors.GetDoctorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if !doctor.IsActive {
		return nil, ErrForbidden
	}
	return doctor, nil
}

// ownAppointment loads an appointment assigned to the doctor behind userID.
func (s *DoctorService) ownAppointment(ctx context.Context, userID, appointmentID uint) (*models.Doctor, *models.Appointment, error) {
	doctor, err := s.doctorFor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	appt, err := s.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, nil, err
	}
	if appt.DoctorID != doctor.ID {
		return nil, nil, ErrForbidden
	}
	return doctor, appt, nil
}

// MySchedules lists the doctor's shifts in [from, to].
func (s *DoctorService) MySchedules(ctx context.Context, userID uint, from, to time.Time) ([]models.Schedule, error) {
	doctor, err := s.doctorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if from.IsZero() {
		from = models.Day(s.now())
	}
	if to.IsZero() || to.Before(from) {
		to = from.AddDate(0, 0, 7)
	}
	return s.schedules.ListSchedules(ctx, repository.ScheduleFilter{DoctorID: doctor.ID, From: from, To: to})
}

// QueueForDate returns the doctor's appointments on date in queue order.
func (s *DoctorService) QueueForDate(ctx context.Context, userID uint, date time.Time) ([]models.Appointment, error) {
	doctor, err := s.doctorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.now()
	}
	return s.appointments.ListAppointments(ctx, repository.AppointmentFilter{DoctorID: doctor.ID, Date: date})
}

// ClinicalRecord is everything recorded during one appointment.
type ClinicalRecord struct {
	Appointment   *models.Appointment   `json:"appointment"`
	Examination   *models.Examination   `json:"examination,omitempty"`
	Prescriptions []models.Prescription `json:"prescriptions"`
	Tests         []models.TestRequest  `json:"tests"`
}

// Record returns the clinical record of one of the doctor's appointments.
func (s *DoctorService) Record(ctx context.Context, userID, appointmentID uint) (*ClinicalRecord, error) {
	_, appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	return loadRecord(ctx, s.clinical, appt)
}

func loadRecord(ctx context.Context, clinical ClinicalStore, appt *models.Appointment) (*ClinicalRecord, error) {
	rec := &ClinicalRecord{Appointment: appt}
	exam, err := clinical.GetExamination(ctx, appt.ID)
	switch {
	case err == nil:
		rec.Examination = exam
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}
	if rec.Prescriptions, err = clinical.ListPrescriptions(ctx, appt.ID); err != nil {
		return nil, err
	}
	if rec.Tests, err = clinical.ListTestRequests(ctx, appt.ID); err != nil {
		return nil, err
	}
	return rec, nil
}

type ExaminationInput struct {
	Symptoms  string `json:"symptoms"`
	Diagnosis string `json:"diagnosis" binding:"required"`
	Notes     string `json:"notes"`
}

// StartExamination records or updates the findings of a confirmed
// appointment.
func (s *DoctorService) StartExamination(ctx context.Context, userID, appointmentID uint, in ExaminationInput) (*models.Examination, error) {
	doctor, appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusConfirmed {
		return nil, ErrInvalidTransition
	}
	if strings.TrimSpace(in.Diagnosis) == "" {
		return nil, invalid("diagnosis is required")
	}

	exam := &models.Examination{
		AppointmentID: appt.ID,
		DoctorID:      doctor.ID,
		Symptoms:      in.Symptoms,
		Diagnosis:     in.Diagnosis,
		Notes:         in.Notes,
	}
	if err := s.clinical.UpsertExamination(ctx, exam); err != nil {
		return nil, fmt.Errorf("failed to save examination: %w", err)
	}
	_ = s.audit.CreateAuditLog(ctx, &userID, "examination_recorded", "appointment", appt.ID, "")
	return exam, nil
}

type PrescriptionItemInput struct {
	MedicationID uint   `json:"medication_id" binding:"required"`
	Dosage       string `json:"dosage"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions"`
}

// AddPrescription prescribes medications for a confirmed appointment.
func (s *DoctorService) AddPrescription(ctx context.Context, userID, appointmentID uint, items []PrescriptionItemInput, notes string) (*models.Prescription, error) {
	doctor, appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusConfirmed {
		return nil, ErrInvalidTransition
	}
	if len(items) == 0 {
		return nil, invalid("prescription needs at least one item")
	}

	ids := make([]uint, 0, len(items))
	p := &models.Prescription{AppointmentID: appt.ID, DoctorID: doctor.ID, Notes: notes}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, invalid("quantity must be positive")
		}
		ids = append(ids, it.MedicationID)
		p.Items = append(p.Items, models.PrescriptionItem{
			MedicationID: it.MedicationID,
			Dosage:       it.Dosage,
			Quantity:     it.Quantity,
			Instructions: it.Instructions,
		})
	}
	ok, err := s.clinical.MedicationsExist(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check medications: %w", err)
	}
	if !ok {
		return nil, invalid("unknown or inactive medication")
	}

	if err := s.clinical.CreatePrescription(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}
	_ = s.audit.CreateAuditLog(ctx, &userID, "prescription_created", "prescription", p.ID,
		fmt.Sprintf("%d items for appointment %d", len(p.Items), appt.ID))
	return p, nil
}

// RequestTest orders a lab or imaging test.
func (s *DoctorService) RequestTest(ctx context.Context, userID, appointmentID uint, testName, notes string) (*models.TestRequest, error) {
	doctor, appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusConfirmed {
		return nil, ErrInvalidTransition
	}
	if strings.TrimSpace(testName) == "" {
		return nil, invalid("test name is required")
	}

	t := &models.TestRequest{
		AppointmentID: appt.ID,
		DoctorID:      doctor.ID,
		TestName:      testName,
		Notes:         notes,
		Status:        models.TestRequested,
	}
	if err := s.clinical.CreateTestRequest(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create test request: %w", err)
	}
	_ = s.audit.CreateAuditLog(ctx, &userID, "test_requested", "test_request", t.ID, testName)
	return t, nil
}

// UploadedFile is a result file streamed from the request.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadTestResult stores the result file and completes the request.
func (s *DoctorService) UploadTestResult(ctx context.Context, userID, testID uint, file UploadedFile) (*models.TestRequest, error) {
	t, err := s.clinical.GetTestRequest(ctx, testID)
	if err != nil {
		return nil, err
	}
	_, appt, err := s.ownAppointment(ctx, userID, t.AppointmentID)
	if err != nil {
		return nil, err
	}
	if t.Status != models.TestRequested {
		return nil, ErrInvalidTransition
	}

	key, url, err := s.files.Upload(ctx, fmt.Sprintf("appointment-%d", appt.ID), file.Name, file.ContentType, file.Body, file.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store test result: %w", err)
	}
	if err := s.clinical.CompleteTestRequest(ctx, t.ID, key, url); err != nil {
		if derr := s.files.Delete(ctx, key); derr != nil {
			log.WithField("key", key).WithError(derr).Warn("Failed to remove orphaned test result")
		}
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to complete test request: %w", err)
	}
	now := s.now()
	t.Status = models.TestCompleted
	t.ResultKey = key
	t.ResultURL = url
	t.CompletedAt = &now

	s.notifier.Notify(ctx, appt.Patient.UserID, models.NotifyTestResult, "Test result available",
		fmt.Sprintf("The result of %s is ready.", t.TestName), appointmentLink(appt.ID))
	_ = s.audit.CreateAuditLog(ctx, &userID, "test_result_uploaded", "test_request", t.ID, key)
	return t, nil
}

// CompleteAppointment closes a confirmed appointment once it has an
// examination on record.
func (s *DoctorService) CompleteAppointment(ctx context.Context, userID, appointmentID uint) (*models.Appointment, error) {
	_, appt, err := s.ownAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(appt.Status, models.StatusCompleted) {
		return nil, ErrInvalidTransition
	}
	if _, err := s.clinical.GetExamination(ctx, appt.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExaminationRequired
		}
		return nil, err
	}

	now := s.now()
	if err := s.appointments.TransitionStatus(ctx, appt.ID, []string{models.StatusConfirmed}, models.StatusCompleted,
		map[string]interface{}{"completed_at": now}); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to complete appointment: %w", err)
	}
	appt.Status = models.StatusCompleted
	appt.CompletedAt = &now

	s.notifier.Notify(ctx, appt.Patient.UserID, models.NotifyCompletion, "Visit completed",
		fmt.Sprintf("Appointment #%d is complete. Your prescriptions and results are in your record.", appt.ID),
		appointmentLink(appt.ID))
	_ = s.audit.CreateAuditLog(ctx, &userID, "appointment_completed", "appointment", appt.ID, "")
	return appt, nil
}

// SearchMedications powers the prescription autocomplete.
func (s *DoctorService) SearchMedications(ctx context.Context, term string, limit int) ([]models.Medication, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.clinical.SearchMedications(ctx, strings.TrimSpace(term), limit)
}
