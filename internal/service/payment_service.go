package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"hospital-booking/internal/mail"
	"hospital-booking/internal/models"
	"hospital-booking/internal/payment/vnpay"
	"hospital-booking/internal/receipt"
	"hospital-booking/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type PaymentService struct {
	appointments AppointmentStore
	payments     PaymentStore
	gateway      PaymentGateway
	mailer       Mailer
	notifier     Notifier
	audit        AuditLogger
	now          func() time.Time
}

func NewPaymentService(
	appointments AppointmentStore,
	payments PaymentStore,
	gateway PaymentGateway,
	mailer Mailer,
	notifier Notifier,
	audit AuditLogger,
) *PaymentService {
	return &PaymentService{
		appointments: appointments,
		payments:     payments,
		gateway:      gateway,
		mailer:       mailer,
		notifier:     notifier,
		audit:        audit,
		now:          time.Now,
	}
}

type PaymentLink struct {
	PaymentURL string `json:"payment_url"`
	TxnRef     string `json:"txn_ref"`
	Amount     int64  `json:"amount"`
}

// CreatePayment opens a gateway transaction for a verified appointment and
// returns the checkout URL.
func (s *PaymentService) CreatePayment(ctx context.Context, userID, appointmentID uint, clientIP string) (*PaymentLink, error) {
	appt, err := s.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Patient.UserID != userID {
		return nil, ErrForbidden
	}
	if appt.Status != models.StatusWaitingPayment || appt.PaymentStatus == models.PaymentPaid {
		return nil, ErrInvalidTransition
	}
	if appt.Amount <= 0 {
		return nil, invalid("appointment has nothing to pay")
	}

	payment := &models.Payment{
		AppointmentID: appt.ID,
		TxnRef:        strings.ReplaceAll(uuid.New().String(), "-", ""),
		Provider:      "vnpay",
		Amount:        appt.Amount,
		Status:        models.PaymentStatusPending,
	}
	if err := s.payments.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	payURL, err := s.gateway.BuildPaymentURL(vnpay.PaymentRequest{
		TxnRef:    payment.TxnRef,
		Amount:    payment.Amount,
		OrderInfo: fmt.Sprintf("Thanh toan lich kham %d", appt.ID),
		IPAddr:    clientIP,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build payment url: %w", err)
	}

	_ = s.audit.CreateAuditLog(ctx, &userID, "payment_created", "payment", payment.ID,
		fmt.Sprintf("Txn %s for appointment %d", payment.TxnRef, appt.ID))

	return &PaymentLink{PaymentURL: payURL, TxnRef: payment.TxnRef, Amount: payment.Amount}, nil
}

// PaymentOutcome is what the return page shows.
type PaymentOutcome struct {
	AppointmentID uint   `json:"appointment_id"`
	TxnRef        string `json:"txn_ref"`
	Success       bool   `json:"success"`
	Message       string `json:"message"`
}

// IPNResponse is the body VNPay expects from the IPN endpoint.
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

var ipnMessages = map[string]string{
	vnpay.RspConfirmed:        "Confirm Success",
	vnpay.RspOrderNotFound:    "Order not found",
	vnpay.RspAlreadyConfirmed: "Order already confirmed",
	vnpay.RspInvalidAmount:    "Invalid amount",
	vnpay.RspInvalidChecksum:  "Invalid Checksum",
	vnpay.RspUnknownError:     "Unknown error",
}

// HandleIPN processes the server-to-server callback.
func (s *PaymentService) HandleIPN(ctx context.Context, query url.Values) IPNResponse {
	res, err := s.gateway.Verify(query)
	if err != nil {
		log.WithError(err).Warn("Rejected VNPay IPN")
		return ipnResponse(vnpay.RspInvalidChecksum)
	}
	_, code := s.settle(ctx, res)
	return ipnResponse(code)
}

func ipnResponse(code string) IPNResponse {
	return IPNResponse{RspCode: code, Message: ipnMessages[code]}
}

// HandleReturn processes the customer's redirect back from VNPay. It
// settles the payment the same way the IPN does, so whichever arrives first
// wins and the other is a no-op.
func (s *PaymentService) HandleReturn(ctx context.Context, query url.Values) (*PaymentOutcome, error) {
	res, err := s.gateway.Verify(query)
	if err != nil {
		return nil, invalid("payment signature rejected")
	}
	payment, code := s.settle(ctx, res)
	out := &PaymentOutcome{TxnRef: res.TxnRef}
	if payment != nil {
		out.AppointmentID = payment.AppointmentID
	}

	switch {
	case code == vnpay.RspOrderNotFound:
		return nil, fmt.Errorf("payment %w", repository.ErrNotFound)
	case code == vnpay.RspInvalidAmount:
		return nil, invalid("payment amount does not match")
	case code == vnpay.RspUnknownError:
		return nil, errors.New("failed to record payment")
	case payment.RefundPending:
		out.Message = "Your booking expired before the payment arrived. A refund is pending."
	case payment.Status == models.PaymentStatusPaid:
		out.Success = true
		out.Message = "Payment successful, your appointment is confirmed"
	default:
		out.Message = "Payment was not completed"
	}
	return out, nil
}

// settle applies a verified gateway result and returns the IPN code that
// describes what happened.
func (s *PaymentService) settle(ctx context.Context, res vnpay.Result) (*models.Payment, string) {
	logger := log.WithFields(log.Fields{"txn_ref": res.TxnRef, "response_code": res.ResponseCode})

	payment, err := s.payments.FindPaymentByTxnRef(ctx, res.TxnRef)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, vnpay.RspOrderNotFound
		}
		logger.WithError(err).Error("Failed to load payment")
		return nil, vnpay.RspUnknownError
	}
	if payment.Amount != res.Amount {
		logger.WithField("expected", payment.Amount).Warn("Payment amount mismatch")
		return payment, vnpay.RspInvalidAmount
	}
	if payment.Status != models.PaymentStatusPending {
		return payment, vnpay.RspAlreadyConfirmed
	}

	if !res.Success() {
		if err := s.payments.MarkFailed(ctx, payment.ID, res.ResponseCode); err != nil && !errors.Is(err, repository.ErrStaleStatus) {
			logger.WithError(err).Error("Failed to mark payment failed")
			return payment, vnpay.RspUnknownError
		}
		payment.Status = models.PaymentStatusFailed
		logger.Info("Payment declined")
		return payment, vnpay.RspConfirmed
	}

	paidAt := res.PayDate
	if paidAt.IsZero() {
		paidAt = s.now()
	}
	err = s.payments.MarkPaid(ctx, payment.ID, repository.PaymentResult{
		BankCode:      res.BankCode,
		TransactionNo: res.TransactionNo,
		ResponseCode:  res.ResponseCode,
		PaidAt:        paidAt,
	})
	if errors.Is(err, repository.ErrNotPayable) {
		payment.Status = models.PaymentStatusPaid
		payment.PaidAt = &paidAt
		payment.RefundPending = true
		logger.WithField("appointment_id", payment.AppointmentID).Warn("Payment captured for a cancelled appointment, refund pending")
		s.afterRefundPending(ctx, payment)
		return payment, vnpay.RspConfirmed
	}
	if errors.Is(err, repository.ErrStaleStatus) {
		// a concurrent callback got there first
		if current, ferr := s.payments.FindPaymentByTxnRef(ctx, res.TxnRef); ferr == nil {
			payment = current
		}
		return payment, vnpay.RspAlreadyConfirmed
	}
	if err != nil {
		logger.WithError(err).Error("Failed to mark payment paid")
		return payment, vnpay.RspUnknownError
	}
	payment.Status = models.PaymentStatusPaid
	payment.PaidAt = &paidAt
	logger.Info("Payment settled")

	s.afterPaid(ctx, payment)
	return payment, vnpay.RspConfirmed
}

func (s *PaymentService) afterPaid(ctx context.Context, payment *models.Payment) {
	appt, err := s.appointments.GetAppointmentByID(ctx, payment.AppointmentID)
	if err != nil {
		log.WithField("appointment_id", payment.AppointmentID).WithError(err).Warn("Failed to reload paid appointment")
		return
	}
	userID := appt.Patient.UserID
	s.notifier.Notify(ctx, userID, models.NotifyPayment, "Payment received",
		fmt.Sprintf("Payment of %s received. Appointment #%d is confirmed.", receipt.FormatVND(payment.Amount), appt.ID),
		appointmentLink(appt.ID))
	_ = s.audit.CreateAuditLog(ctx, &userID, "payment_paid", "payment", payment.ID,
		fmt.Sprintf("Txn %s settled for appointment %d", payment.TxnRef, appt.ID))

	pdf, err := receipt.Render(receiptData(appt, payment))
	if err != nil {
		log.WithField("appointment_id", appt.ID).WithError(err).Warn("Failed to render receipt")
		return
	}
	err = s.mailer.Send(ctx, mail.Message{
		To:          appt.Patient.User.Email,
		Subject:     fmt.Sprintf("Payment confirmation for appointment #%d", appt.ID),
		Body:        "Thank you for your payment. Your receipt is attached.",
		Attachments: []mail.Attachment{{Name: fmt.Sprintf("receipt-%d.pdf", appt.ID), Data: pdf}},
	})
	if err != nil {
		log.WithField("appointment_id", appt.ID).WithError(err).Warn("Failed to email receipt")
	}
}

func (s *PaymentService) afterRefundPending(ctx context.Context, payment *models.Payment) {
	userID := payment.Appointment.Patient.UserID
	if userID != 0 {
		s.notifier.Notify(ctx, userID, models.NotifyPayment, "Refund pending",
			fmt.Sprintf("Appointment #%d had expired when your payment of %s arrived. The amount will be refunded.",
				payment.AppointmentID, receipt.FormatVND(payment.Amount)),
			appointmentLink(payment.AppointmentID))
	}
	var actor *uint
	if userID != 0 {
		actor = &userID
	}
	_ = s.audit.CreateAuditLog(ctx, actor, "payment_refund_pending", "payment", payment.ID,
		fmt.Sprintf("Txn %s captured after appointment %d left the payable states", payment.TxnRef, payment.AppointmentID))
}

// Receipt renders the PDF receipt of a paid appointment.
func (s *PaymentService) Receipt(ctx context.Context, actor Actor, appointmentID uint) ([]byte, error) {
	appt, err := s.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && appt.Patient.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if appt.PaymentStatus != models.PaymentPaid {
		return nil, ErrNotPaid
	}

	payments, err := s.payments.ListPaymentsByAppointment(ctx, appt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	for i := range payments {
		if payments[i].Status == models.PaymentStatusPaid {
			return receipt.Render(receiptData(appt, &payments[i]))
		}
	}
	return nil, ErrNotPaid
}

func receiptData(appt *models.Appointment, payment *models.Payment) receipt.Data {
	d := receipt.Data{
		AppointmentID: appt.ID,
		TxnRef:        payment.TxnRef,
		TransactionNo: payment.TransactionNo,
		PatientName:   appt.Patient.User.FullName,
		PatientEmail:  appt.Patient.User.Email,
		Specialty:     appt.Specialty.Name,
		DoctorName:    appt.Doctor.User.FullName,
		Room:          appt.Room.RoomCode,
		Date:          appt.AppointmentDate,
		QueueNumber:   appt.QueueNumber,
		EstimatedTime: appt.EstimatedTime,
		Amount:        payment.Amount,
	}
	if appt.Service != nil {
		d.Service = appt.Service.Name
	}
	if payment.PaidAt != nil {
		d.PaidAt = *payment.PaidAt
	}
	return d
}
