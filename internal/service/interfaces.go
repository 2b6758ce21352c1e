package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"
	"net/url"
	"time"

	"hospital-booking/internal/mail"
	"hospital-booking/internal/models"
	"hospital-booking/internal/payment/vnpay"
	"hospital-booking/internal/repository"
)

type AppointmentStore interface {
	ReserveSlot(ctx context.Context, req repository.ReserveSlotRequest) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointments(ctx context.Context, f repository.AppointmentFilter) ([]models.Appointment, error)
	TransitionStatus(ctx context.Context, id uint, from []string, to string, extra map[string]interface{}) error
	ListStale(ctx context.Context, statuses []string, before time.Time, limit int) ([]models.Appointment, error)
}

type PatientStore interface {
	FindPatientByID(ctx context.Context, id uint) (*models.Patient, error)
	FindPatientByUserID(ctx context.Context, userID uint) (*models.Patient, error)
}

type SpecialtyReader interface {
	GetSpecialtyByID(ctx context.Context, id uint) (*models.Specialty, error)
}

type ServiceReader interface {
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
}

type ShiftLoadReader interface {
	ListShiftLoads(ctx context.Context, specialtyID uint, doctorID uint, from time.Time, to time.Time) ([]repository.ShiftLoad, error)
}

type VerificationCodes interface {
	Issue(ctx context.Context, appointmentID uint) (string, error)
	Check(ctx context.Context, appointmentID uint, code string) error
	Revoke(ctx context.Context, appointmentID uint) error
}

type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Notifier interface {
	Notify(ctx context.Context, userID uint, kind string, title string, message string, link string)
}

type AuditLogger interface {
	CreateAuditLog(ctx context.Context, userID *uint, action string, entityType string, entityID uint, details string) error
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, userID uint, id uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}

type PaymentStore interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	FindPaymentByTxnRef(ctx context.Context, txnRef string) (*models.Payment, error)
	ListPaymentsByAppointment(ctx context.Context, appointmentID uint) ([]models.Payment, error)
	MarkPaid(ctx context.Context, paymentID uint, res repository.PaymentResult) error
	MarkFailed(ctx context.Context, paymentID uint, responseCode string) error
}

type PaymentGateway interface {
	BuildPaymentURL(req vnpay.PaymentRequest) (string, error)
	Verify(query url.Values) (vnpay.Result, error)
}

type DoctorFinder interface {
	GetDoctorByUserID(ctx context.Context, userID uint) (*models.Doctor, error)
}

type ScheduleLister interface {
	ListSchedules(ctx context.Context, f repository.ScheduleFilter) ([]models.Schedule, error)
}

type ClinicalStore interface {
	UpsertExamination(ctx context.Context, exam *models.Examination) error
	GetExamination(ctx context.Context, appointmentID uint) (*models.Examination, error)
	CreatePrescription(ctx context.Context, p *models.Prescription) error
	ListPrescriptions(ctx context.Context, appointmentID uint) ([]models.Prescription, error)
	CreateTestRequest(ctx context.Context, t *models.TestRequest) error
	GetTestRequest(ctx context.Context, id uint) (*models.TestRequest, error)
	ListTestRequests(ctx context.Context, appointmentID uint) ([]models.TestRequest, error)
	CompleteTestRequest(ctx context.Context, id uint, key string, resultURL string) error
	SearchMedications(ctx context.Context, term string, limit int) ([]models.Medication, error)
	MedicationsExist(ctx context.Context, ids []uint) (bool, error)
}

type FileStore interface {
	Upload(ctx context.Context, prefix string, filename string, contentType string, r io.Reader, size int64) (string, string, error)
	Delete(ctx context.Context, key string) error
}
