package models

import "time"

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Payment is one attempt to pay for an appointment through the gateway.
type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	AppointmentID uint       `gorm:"not null;index" json:"appointment_id"`
	TxnRef        string     `gorm:"size:64;not null;uniqueIndex" json:"txn_ref"`
	Provider      string     `gorm:"size:20;not null;default:'vnpay'" json:"provider"`
	Amount        int64      `gorm:"not null" json:"amount"`
	Status        string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	BankCode      string     `gorm:"size:20" json:"bank_code,omitempty"`
	TransactionNo string     `gorm:"size:50" json:"transaction_no,omitempty"`
	ResponseCode  string     `gorm:"size:10" json:"response_code,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	RefundPending bool       `gorm:"not null;default:false" json:"refund_pending"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}
