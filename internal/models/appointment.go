package models

import "time"

const (
	StatusPending        = "pending"
	StatusWaitingPayment = "waiting_payment"
	StatusConfirmed      = "confirmed"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Appointment is a booked visit. Queue numbers are unique per specialty and
// date; the unique index backs the row lock taken while reserving a slot.
type Appointment struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	PatientID       uint       `gorm:"not null;index" json:"patient_id"`
	SpecialtyID     uint       `gorm:"not null;uniqueIndex:idx_appointment_queue" json:"specialty_id"`
	ServiceID       *uint      `gorm:"index" json:"service_id,omitempty"`
	DoctorID        uint       `gorm:"not null;index" json:"doctor_id"`
	RoomID          uint       `gorm:"not null" json:"room_id"`
	ScheduleID      uint       `gorm:"not null;index" json:"schedule_id"`
	AppointmentDate time.Time  `gorm:"type:date;not null;uniqueIndex:idx_appointment_queue" json:"appointment_date"`
	QueueNumber     int        `gorm:"not null;uniqueIndex:idx_appointment_queue" json:"queue_number"`
	EstimatedTime   time.Time  `gorm:"not null" json:"estimated_time"`
	Reason          string     `gorm:"type:text" json:"reason,omitempty"`
	Status          string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	PaymentStatus   string     `gorm:"size:20;not null;default:'unpaid'" json:"payment_status"`
	Amount          int64      `gorm:"not null;default:0" json:"amount"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CancelReason    string     `gorm:"size:255" json:"cancel_reason,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Patient   Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    Doctor    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Service   *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Room      Room      `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

var transitions = map[string][]string{
	StatusPending:        {StatusWaitingPayment, StatusConfirmed, StatusCancelled},
	StatusWaitingPayment: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether an appointment may move from one status to
// another. Cancelled and completed are final.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsFinal reports whether no further transition is possible from status.
func IsFinal(status string) bool {
	return len(transitions[status]) == 0
}
