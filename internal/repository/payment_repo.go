package repository

import (
	"context"
	"time"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepository) FindPaymentByTxnRef(ctx context.Context, txnRef string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Preload("Appointment.Patient").
		Where("txn_ref = ?", txnRef).
		First(&payment).Error
	if err != nil {
		return nil, translate("payment", err)
	}
	return &payment, nil
}

func (r *PaymentRepository) ListPaymentsByAppointment(ctx context.Context, appointmentID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

// PaymentResult is what the gateway reported for a transaction.
type PaymentResult struct {
	BankCode      string
	TransactionNo string
	ResponseCode  string
	PaidAt        time.Time
}

// MarkPaid settles a pending payment and confirms its appointment in one
// transaction. ErrStaleStatus means the payment was already settled. When
// the appointment has left the payable states (typically cancelled by the
// expiry sweep while the patient was at the gateway) the payment is still
// recorded as paid, flagged refund_pending, and ErrNotPayable is returned.
func (r *PaymentRepository) MarkPaid(ctx context.Context, paymentID uint, res PaymentResult) error {
	notPayable := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return translate("payment", err)
		}

		upd := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", paymentID, models.PaymentStatusPending).
			Updates(map[string]interface{}{
				"status":         models.PaymentStatusPaid,
				"bank_code":      res.BankCode,
				"transaction_no": res.TransactionNo,
				"response_code":  res.ResponseCode,
				"paid_at":        res.PaidAt,
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return ErrStaleStatus
		}

		upd = tx.Model(&models.Appointment{}).
			Where("id = ? AND status IN ?", payment.AppointmentID,
				[]string{models.StatusPending, models.StatusWaitingPayment}).
			Updates(map[string]interface{}{
				"status":         models.StatusConfirmed,
				"payment_status": models.PaymentPaid,
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected > 0 {
			return nil
		}

		notPayable = true
		return tx.Model(&models.Payment{}).
			Where("id = ?", paymentID).
			Update("refund_pending", true).Error
	})
	if err != nil {
		return err
	}
	if notPayable {
		return ErrNotPayable
	}
	return nil
}

// MarkFailed records a declined or cancelled gateway attempt.
func (r *PaymentRepository) MarkFailed(ctx context.Context, paymentID uint, responseCode string) error {
	res := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", paymentID, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":        models.PaymentStatusFailed,
			"response_code": responseCode,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}
