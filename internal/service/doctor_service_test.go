package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"
	"hospital-booking/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type doctorMocks struct {
	doctors      *mocks.MockDoctorFinder
	schedules    *mocks.MockScheduleLister
	appointments *mocks.MockAppointmentStore
	clinical     *mocks.MockClinicalStore
	files        *mocks.MockFileStore
	notifier     *mocks.MockNotifier
	audit        *mocks.MockAuditLogger
}

func newDoctorService(t *testing.T) (*DoctorService, doctorMocks) {
	ctrl := gomock.NewController(t)
	m := doctorMocks{
		doctors:      mocks.NewMockDoctorFinder(ctrl),
		schedules:    mocks.NewMockScheduleLister(ctrl),
		appointments: mocks.NewMockAppointmentStore(ctrl),
		clinical:     mocks.NewMockClinicalStore(ctrl),
		files:        mocks.NewMockFileStore(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
		audit:        mocks.NewMockAuditLogger(ctrl),
	}
	svc := NewDoctorService(m.doctors, m.schedules, m.appointments, m.clinical, m.files, m.notifier, m.audit)
	svc.now = func() time.Time { return fixedNow }
	m.audit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()
	return svc, m
}

// expectOwn wires doctor 5 (user 50) and appointment 10 with the given status.
func (m doctorMocks) expectOwn(ctx context.Context, status string) *models.Appointment {
	appt := &models.Appointment{ID: 10, DoctorID: 5, Status: status, Patient: models.Patient{UserID: 42}}
	m.doctors.EXPECT().GetDoctorByUserID(ctx, uint(50)).Return(&models.Doctor{ID: 5, UserID: 50, IsActive: true}, nil)
	m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).Return(appt, nil)
	return appt
}

func TestDoctorOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("another doctor's appointment", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.doctors.EXPECT().GetDoctorByUserID(ctx, uint(50)).Return(&models.Doctor{ID: 5, IsActive: true}, nil)
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).Return(&models.Appointment{ID: 10, DoctorID: 6}, nil)
		_, err := svc.Record(ctx, 50, 10)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("not a doctor", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.doctors.EXPECT().GetDoctorByUserID(ctx, uint(42)).Return(nil, repository.ErrNotFound)
		_, err := svc.QueueForDate(ctx, 42, fixedNow)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("deactivated doctor", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.doctors.EXPECT().GetDoctorByUserID(ctx, uint(50)).Return(&models.Doctor{ID: 5, IsActive: false}, nil)
		_, err := svc.MySchedules(ctx, 50, time.Time{}, time.Time{})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestMySchedulesDefaultsToNextWeek(t *testing.T) {
	svc, m := newDoctorService(t)
	ctx := context.Background()
	today := models.Day(fixedNow)

	m.doctors.EXPECT().GetDoctorByUserID(ctx, uint(50)).Return(&models.Doctor{ID: 5, IsActive: true}, nil)
	m.schedules.EXPECT().ListSchedules(ctx, repository.ScheduleFilter{DoctorID: 5, From: today, To: today.AddDate(0, 0, 7)}).
		Return([]models.Schedule{{ID: 1}}, nil)

	got, err := svc.MySchedules(ctx, 50, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStartExamination(t *testing.T) {
	ctx := context.Background()

	t.Run("requires confirmed appointment", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusWaitingPayment)
		_, err := svc.StartExamination(ctx, 50, 10, ExaminationInput{Diagnosis: "flu"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("requires diagnosis", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		_, err := svc.StartExamination(ctx, 50, 10, ExaminationInput{Diagnosis: "  "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("records findings", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		m.clinical.EXPECT().UpsertExamination(ctx, &models.Examination{
			AppointmentID: 10,
			DoctorID:      5,
			Symptoms:      "fever",
			Diagnosis:     "flu",
		}).Return(nil)

		exam, err := svc.StartExamination(ctx, 50, 10, ExaminationInput{Symptoms: "fever", Diagnosis: "flu"})
		require.NoError(t, err)
		assert.Equal(t, "flu", exam.Diagnosis)
	})
}

func TestAddPrescription(t *testing.T) {
	ctx := context.Background()
	items := []PrescriptionItemInput{
		{MedicationID: 1, Dosage: "500mg", Quantity: 10, Instructions: "twice a day"},
		{MedicationID: 2, Dosage: "5ml", Quantity: 1},
	}

	t.Run("empty", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		_, err := svc.AddPrescription(ctx, 50, 10, nil, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		_, err := svc.AddPrescription(ctx, 50, 10, []PrescriptionItemInput{{MedicationID: 1}}, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown medication", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		m.clinical.EXPECT().MedicationsExist(ctx, []uint{1, 2}).Return(false, nil)
		_, err := svc.AddPrescription(ctx, 50, 10, items, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("created", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		m.clinical.EXPECT().MedicationsExist(ctx, []uint{1, 2}).Return(true, nil)
		m.clinical.EXPECT().CreatePrescription(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Prescription) error {
			p.ID = 3
			return nil
		})

		p, err := svc.AddPrescription(ctx, 50, 10, items, "after meals")
		require.NoError(t, err)
		assert.Equal(t, uint(3), p.ID)
		assert.Equal(t, uint(5), p.DoctorID)
		require.Len(t, p.Items, 2)
		assert.Equal(t, "twice a day", p.Items[0].Instructions)
	})
}

func TestRequestTest(t *testing.T) {
	svc, m := newDoctorService(t)
	ctx := context.Background()
	m.expectOwn(ctx, models.StatusConfirmed)
	m.clinical.EXPECT().CreateTestRequest(ctx, gomock.Any()).Return(nil)

	tr, err := svc.RequestTest(ctx, 50, 10, "Blood count", "")
	require.NoError(t, err)
	assert.Equal(t, models.TestRequested, tr.Status)
}

func TestUploadTestResult(t *testing.T) {
	ctx := context.Background()
	file := UploadedFile{Name: "cbc.pdf", ContentType: "application/pdf", Size: 4, Body: strings.NewReader("data")}

	t.Run("stores file and notifies patient", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.clinical.EXPECT().GetTestRequest(ctx, uint(7)).
			Return(&models.TestRequest{ID: 7, AppointmentID: 10, TestName: "CBC", Status: models.TestRequested}, nil)
		m.expectOwn(ctx, models.StatusConfirmed)
		m.files.EXPECT().Upload(ctx, "appointment-10", "cbc.pdf", "application/pdf", file.Body, int64(4)).
			Return("appointment-10/k.pdf", "http://files/k.pdf", nil)
		m.clinical.EXPECT().CompleteTestRequest(ctx, uint(7), "appointment-10/k.pdf", "http://files/k.pdf").Return(nil)
		m.notifier.EXPECT().Notify(ctx, uint(42), models.NotifyTestResult, gomock.Any(), gomock.Any(), "/appointments/10")

		tr, err := svc.UploadTestResult(ctx, 50, 7, file)
		require.NoError(t, err)
		assert.Equal(t, models.TestCompleted, tr.Status)
		assert.Equal(t, "http://files/k.pdf", tr.ResultURL)
		require.NotNil(t, tr.CompletedAt)
	})

	t.Run("removes file when completion fails", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.clinical.EXPECT().GetTestRequest(ctx, uint(7)).
			Return(&models.TestRequest{ID: 7, AppointmentID: 10, Status: models.TestRequested}, nil)
		m.expectOwn(ctx, models.StatusConfirmed)
		m.files.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("k", "u", nil)
		m.clinical.EXPECT().CompleteTestRequest(ctx, uint(7), "k", "u").Return(repository.ErrStaleStatus)
		m.files.EXPECT().Delete(ctx, "k").Return(nil)

		_, err := svc.UploadTestResult(ctx, 50, 7, file)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("already completed", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.clinical.EXPECT().GetTestRequest(ctx, uint(7)).
			Return(&models.TestRequest{ID: 7, AppointmentID: 10, Status: models.TestCompleted}, nil)
		m.expectOwn(ctx, models.StatusConfirmed)

		_, err := svc.UploadTestResult(ctx, 50, 7, file)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestCompleteAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("requires examination", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		m.clinical.EXPECT().GetExamination(ctx, uint(10)).Return(nil, repository.ErrNotFound)
		_, err := svc.CompleteAppointment(ctx, 50, 10)
		assert.ErrorIs(t, err, ErrExaminationRequired)
	})

	t.Run("cannot complete unpaid booking", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusWaitingPayment)
		_, err := svc.CompleteAppointment(ctx, 50, 10)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("completes", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		m.clinical.EXPECT().GetExamination(ctx, uint(10)).Return(&models.Examination{ID: 1}, nil)
		m.appointments.EXPECT().TransitionStatus(ctx, uint(10), []string{models.StatusConfirmed}, models.StatusCompleted,
			map[string]interface{}{"completed_at": fixedNow}).Return(nil)
		m.notifier.EXPECT().Notify(ctx, uint(42), models.NotifyCompletion, gomock.Any(), gomock.Any(), gomock.Any())

		appt, err := svc.CompleteAppointment(ctx, 50, 10)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, appt.Status)
	})

	t.Run("lost race", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		m.clinical.EXPECT().GetExamination(ctx, uint(10)).Return(&models.Examination{ID: 1}, nil)
		m.appointments.EXPECT().TransitionStatus(ctx, uint(10), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.ErrStaleStatus)

		_, err := svc.CompleteAppointment(ctx, 50, 10)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("database error", func(t *testing.T) {
		svc, m := newDoctorService(t)
		m.expectOwn(ctx, models.StatusConfirmed)
		m.clinical.EXPECT().GetExamination(ctx, uint(10)).Return(nil, errors.New("timeout"))
		_, err := svc.CompleteAppointment(ctx, 50, 10)
		assert.EqualError(t, err, "timeout")
	})
}

func TestSearchMedicationsClampsLimit(t *testing.T) {
	svc, m := newDoctorService(t)
	ctx := context.Background()
	m.clinical.EXPECT().SearchMedications(ctx, "para", 20).Return(nil, nil)
	_, err := svc.SearchMedications(ctx, " para ", 500)
	require.NoError(t, err)
}
