package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hospital-booking/internal/cache"
	"hospital-booking/internal/config"
	"hospital-booking/internal/mail"
	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"
	"hospital-booking/internal/scheduling"
	"hospital-booking/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	appointments *mocks.MockAppointmentStore
	patients     *mocks.MockPatientStore
	specialties  *mocks.MockSpecialtyReader
	services     *mocks.MockServiceReader
	shifts       *mocks.MockShiftLoadReader
	clinical     *mocks.MockClinicalStore
	codes        *mocks.MockVerificationCodes
	mailer       *mocks.MockMailer
	notifier     *mocks.MockNotifier
	audit        *mocks.MockAuditLogger
}

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		appointments: mocks.NewMockAppointmentStore(ctrl),
		patients:     mocks.NewMockPatientStore(ctrl),
		specialties:  mocks.NewMockSpecialtyReader(ctrl),
		services:     mocks.NewMockServiceReader(ctrl),
		shifts:       mocks.NewMockShiftLoadReader(ctrl),
		clinical:     mocks.NewMockClinicalStore(ctrl),
		codes:        mocks.NewMockVerificationCodes(ctrl),
		mailer:       mocks.NewMockMailer(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
		audit:        mocks.NewMockAuditLogger(ctrl),
	}
	svc := NewBookingService(m.appointments, m.patients, m.specialties, m.services, m.shifts, m.clinical,
		m.codes, m.mailer, m.notifier, m.audit, config.BookingConfig{
			SlotDuration:    20 * time.Minute,
			HorizonDays:     30,
			VerificationTTL: 15 * time.Minute,
		})
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func uintPtr(v uint) *uint { return &v }

func TestBookHappyPath(t *testing.T) {
	svc, m := newBookingService(t)
	ctx := context.Background()
	day := models.Day(fixedNow.AddDate(0, 0, 2))

	m.specialties.EXPECT().GetSpecialtyByID(ctx, uint(3)).
		Return(&models.Specialty{ID: 3, Name: "Cardiology", IsActive: true}, nil)
	m.services.EXPECT().GetServiceByID(ctx, uint(8)).
		Return(&models.Service{ID: 8, SpecialtyID: 3, Name: "ECG", Price: 150000, IsActive: true}, nil)
	m.patients.EXPECT().FindPatientByUserID(ctx, uint(42)).
		Return(&models.Patient{ID: 7, UserID: 42, User: models.User{ID: 42, Email: "p@example.com"}}, nil)
	m.appointments.EXPECT().ReserveSlot(ctx, repository.ReserveSlotRequest{
		PatientID:   7,
		SpecialtyID: 3,
		ServiceID:   uintPtr(8),
		Date:        day,
		Reason:      "chest pain",
		Amount:      150000,
		Slot:        20 * time.Minute,
	}).Return(&models.Appointment{
		ID:              100,
		PatientID:       7,
		SpecialtyID:     3,
		DoctorID:        5,
		AppointmentDate: day,
		QueueNumber:     4,
		EstimatedTime:   day.Add(9 * time.Hour),
		Status:          models.StatusPending,
		Amount:          150000,
	}, nil)
	m.codes.EXPECT().Issue(ctx, uint(100)).Return("123456", nil)
	m.mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg mail.Message) error {
		assert.Equal(t, "p@example.com", msg.To)
		assert.Contains(t, msg.Body, "123456")
		return nil
	})
	m.notifier.EXPECT().Notify(ctx, uint(42), models.NotifyBooking, gomock.Any(), gomock.Any(), "/appointments/100")
	m.audit.EXPECT().CreateAuditLog(ctx, gomock.Any(), "appointment_booked", "appointment", uint(100), gomock.Any()).Return(nil)

	appt, err := svc.Book(ctx, BookingRequest{
		UserID:      42,
		SpecialtyID: 3,
		ServiceID:   uintPtr(8),
		Date:        day.Add(15 * time.Hour),
		Reason:      "chest pain",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, appt.QueueNumber)
	assert.Equal(t, models.StatusPending, appt.Status)
}

func TestBookEmailFailureDoesNotFailBooking(t *testing.T) {
	svc, m := newBookingService(t)
	ctx := context.Background()
	day := models.Day(fixedNow)

	m.specialties.EXPECT().GetSpecialtyByID(ctx, uint(3)).Return(&models.Specialty{ID: 3, IsActive: true}, nil)
	m.patients.EXPECT().FindPatientByUserID(ctx, uint(42)).Return(&models.Patient{ID: 7, UserID: 42}, nil)
	m.appointments.EXPECT().ReserveSlot(ctx, gomock.Any()).Return(&models.Appointment{ID: 1, AppointmentDate: day}, nil)
	m.codes.EXPECT().Issue(ctx, uint(1)).Return("000111", nil)
	m.mailer.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp down"))
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	m.audit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	appt, err := svc.Book(ctx, BookingRequest{UserID: 42, SpecialtyID: 3, Date: day})
	require.NoError(t, err)
	assert.Equal(t, uint(1), appt.ID)
}

func TestBookValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("past date", func(t *testing.T) {
		svc, _ := newBookingService(t)
		_, err := svc.Book(ctx, BookingRequest{UserID: 1, SpecialtyID: 1, Date: fixedNow.AddDate(0, 0, -1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("beyond horizon", func(t *testing.T) {
		svc, _ := newBookingService(t)
		_, err := svc.Book(ctx, BookingRequest{UserID: 1, SpecialtyID: 1, Date: fixedNow.AddDate(0, 0, 31)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("inactive specialty", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.specialties.EXPECT().GetSpecialtyByID(ctx, uint(1)).Return(&models.Specialty{ID: 1, IsActive: false}, nil)
		_, err := svc.Book(ctx, BookingRequest{UserID: 1, SpecialtyID: 1, Date: fixedNow})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown specialty", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.specialties.EXPECT().GetSpecialtyByID(ctx, uint(9)).Return(nil, errors.New("specialty "+repository.ErrNotFound.Error()))
		_, err := svc.Book(ctx, BookingRequest{UserID: 1, SpecialtyID: 9, Date: fixedNow})
		assert.Error(t, err)
	})

	t.Run("service of another specialty", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.specialties.EXPECT().GetSpecialtyByID(ctx, uint(1)).Return(&models.Specialty{ID: 1, IsActive: true}, nil)
		m.services.EXPECT().GetServiceByID(ctx, uint(2)).Return(&models.Service{ID: 2, SpecialtyID: 5, IsActive: true}, nil)
		_, err := svc.Book(ctx, BookingRequest{UserID: 1, SpecialtyID: 1, ServiceID: uintPtr(2), Date: fixedNow})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("caller without patient profile", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.specialties.EXPECT().GetSpecialtyByID(ctx, uint(1)).Return(&models.Specialty{ID: 1, IsActive: true}, nil)
		m.patients.EXPECT().FindPatientByUserID(ctx, uint(1)).Return(nil, repository.ErrNotFound)
		_, err := svc.Book(ctx, BookingRequest{UserID: 1, SpecialtyID: 1, Date: fixedNow})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.specialties.EXPECT().GetSpecialtyByID(ctx, uint(1)).Return(&models.Specialty{ID: 1, IsActive: true}, nil)
		m.patients.EXPECT().FindPatientByUserID(ctx, uint(1)).Return(&models.Patient{ID: 4, UserID: 1}, nil)
		m.appointments.EXPECT().ReserveSlot(ctx, gomock.Any()).Return(nil, fmt.Errorf("reserve: %w", repository.ErrDuplicateAppointment))
		_, err := svc.Book(ctx, BookingRequest{UserID: 1, SpecialtyID: 1, Date: fixedNow})
		assert.ErrorIs(t, err, ErrDuplicateBooking)
	})

	t.Run("no doctor available", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.specialties.EXPECT().GetSpecialtyByID(ctx, uint(1)).Return(&models.Specialty{ID: 1, IsActive: true}, nil)
		m.patients.EXPECT().FindPatientByUserID(ctx, uint(1)).Return(&models.Patient{ID: 4, UserID: 1}, nil)
		m.appointments.EXPECT().ReserveSlot(ctx, gomock.Any()).Return(nil, scheduling.ErrNoDoctorAvailable)
		_, err := svc.Book(ctx, BookingRequest{UserID: 1, SpecialtyID: 1, Date: fixedNow})
		assert.ErrorIs(t, err, ErrNoDoctorAvailable)
	})
}

func TestAvailableDates(t *testing.T) {
	svc, m := newBookingService(t)
	ctx := context.Background()
	today := models.Day(fixedNow)

	m.shifts.EXPECT().ListShiftLoads(ctx, uint(3), uint(0), today, today.AddDate(0, 0, 6)).Return([]repository.ShiftLoad{
		// full: one hour fits 3 slots
		{WorkDate: today, DoctorID: 1, StartTime: "08:00", EndTime: "09:00", Booked: 3},
		{WorkDate: today.AddDate(0, 0, 1), DoctorID: 1, StartTime: "08:00", EndTime: "09:00", Booked: 3},
		{WorkDate: today.AddDate(0, 0, 1), DoctorID: 2, StartTime: "13:00", EndTime: "17:00", Booked: 5},
		{WorkDate: today.AddDate(0, 0, 1), DoctorID: 3, StartTime: "13:00", EndTime: "17:00", Booked: 0},
		{WorkDate: today.AddDate(0, 0, 4), DoctorID: 1, StartTime: "08:00", EndTime: "12:00", Booked: 0},
	}, nil)

	dates, err := svc.AvailableDates(ctx, 3, 0, today.AddDate(0, 0, -3), 7)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{today.AddDate(0, 0, 1), today.AddDate(0, 0, 4)}, dates)
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()
	pending := func(amount int64) *models.Appointment {
		return &models.Appointment{ID: 10, Status: models.StatusPending, Amount: amount, Patient: models.Patient{UserID: 42}}
	}

	t.Run("paid booking waits for payment", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).Return(pending(150000), nil)
		m.codes.EXPECT().Check(ctx, uint(10), "123456").Return(nil)
		m.appointments.EXPECT().TransitionStatus(ctx, uint(10), []string{models.StatusPending}, models.StatusWaitingPayment, gomock.Any()).Return(nil)
		m.notifier.EXPECT().Notify(ctx, uint(42), models.NotifyVerification, gomock.Any(), gomock.Any(), gomock.Any())
		m.audit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		appt, err := svc.VerifyEmail(ctx, 42, 10, "123456")
		require.NoError(t, err)
		assert.Equal(t, models.StatusWaitingPayment, appt.Status)
		assert.NotNil(t, appt.VerifiedAt)
	})

	t.Run("free booking is confirmed", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).Return(pending(0), nil)
		m.codes.EXPECT().Check(ctx, uint(10), "123456").Return(nil)
		m.appointments.EXPECT().TransitionStatus(ctx, uint(10), []string{models.StatusPending}, models.StatusConfirmed, gomock.Any()).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		m.audit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		appt, err := svc.VerifyEmail(ctx, 42, 10, "123456")
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, appt.Status)
	})

	t.Run("wrong code", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).Return(pending(0), nil)
		m.codes.EXPECT().Check(ctx, uint(10), "999999").Return(cache.ErrCodeMismatch)

		_, err := svc.VerifyEmail(ctx, 42, 10, "999999")
		assert.ErrorIs(t, err, cache.ErrCodeMismatch)
	})

	t.Run("someone else's appointment", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).Return(pending(0), nil)
		_, err := svc.VerifyEmail(ctx, 99, 10, "123456")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("already verified", func(t *testing.T) {
		svc, m := newBookingService(t)
		appt := pending(0)
		appt.Status = models.StatusConfirmed
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).Return(appt, nil)
		_, err := svc.VerifyEmail(ctx, 42, 10, "123456")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("lost race", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).Return(pending(0), nil)
		m.codes.EXPECT().Check(ctx, uint(10), "123456").Return(nil)
		m.appointments.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrStaleStatus)
		_, err := svc.VerifyEmail(ctx, 42, 10, "123456")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("patient cancels own booking", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).
			Return(&models.Appointment{ID: 10, Status: models.StatusWaitingPayment, Patient: models.Patient{UserID: 42}}, nil)
		m.appointments.EXPECT().TransitionStatus(ctx, uint(10),
			[]string{models.StatusPending, models.StatusWaitingPayment, models.StatusConfirmed},
			models.StatusCancelled, gomock.Any()).Return(nil)
		m.codes.EXPECT().Revoke(ctx, uint(10)).Return(nil)
		m.notifier.EXPECT().Notify(ctx, uint(42), models.NotifyCancellation, gomock.Any(), gomock.Any(), gomock.Any())
		m.audit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any(), "appointment_cancelled", gomock.Any(), uint(10), "changed plans").Return(nil)

		appt, err := svc.Cancel(ctx, Actor{UserID: 42, Role: models.RolePatient}, 10, "changed plans")
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, appt.Status)
		assert.Equal(t, "changed plans", appt.CancelReason)
	})

	t.Run("patient cannot cancel another patient's booking", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).
			Return(&models.Appointment{ID: 10, Status: models.StatusPending, Patient: models.Patient{UserID: 42}}, nil)
		_, err := svc.Cancel(ctx, Actor{UserID: 7, Role: models.RolePatient}, 10, "")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin cancels any booking", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).
			Return(&models.Appointment{ID: 10, Status: models.StatusConfirmed, Patient: models.Patient{UserID: 42}}, nil)
		m.appointments.EXPECT().TransitionStatus(gomock.Any(), uint(10), gomock.Any(), models.StatusCancelled, gomock.Any()).Return(nil)
		m.codes.EXPECT().Revoke(gomock.Any(), uint(10)).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), uint(42), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		m.audit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Cancel(ctx, Actor{UserID: 1, Role: models.RoleAdmin}, 10, "doctor sick")
		require.NoError(t, err)
	})

	t.Run("final states stay final", func(t *testing.T) {
		for _, status := range []string{models.StatusCompleted, models.StatusCancelled} {
			svc, m := newBookingService(t)
			m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).
				Return(&models.Appointment{ID: 10, Status: status, Patient: models.Patient{UserID: 42}}, nil)
			_, err := svc.Cancel(ctx, Actor{UserID: 42, Role: models.RolePatient}, 10, "")
			assert.ErrorIs(t, err, ErrInvalidTransition, status)
		}
	})
}

func TestRecordForPatient(t *testing.T) {
	svc, m := newBookingService(t)
	ctx := context.Background()
	appt := &models.Appointment{ID: 10, Status: models.StatusCompleted, Patient: models.Patient{UserID: 42}}

	m.appointments.EXPECT().GetAppointmentByID(ctx, uint(10)).Return(appt, nil)
	m.clinical.EXPECT().GetExamination(ctx, uint(10)).Return(nil, repository.ErrNotFound)
	m.clinical.EXPECT().ListPrescriptions(ctx, uint(10)).Return([]models.Prescription{{ID: 1}}, nil)
	m.clinical.EXPECT().ListTestRequests(ctx, uint(10)).Return(nil, nil)

	rec, err := svc.RecordForPatient(ctx, 42, 10)
	require.NoError(t, err)
	assert.Nil(t, rec.Examination)
	assert.Len(t, rec.Prescriptions, 1)
}
