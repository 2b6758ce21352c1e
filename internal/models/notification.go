package models

import "time"

const (
	NotifyBooking      = "booking"
	NotifyVerification = "verification"
	NotifyPayment      = "payment"
	NotifyCancellation = "cancellation"
	NotifyTestResult   = "test_result"
	NotifyCompletion   = "completion"
)

type Notification struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Type      string     `gorm:"size:50;not null" json:"type"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Message   string     `gorm:"type:text" json:"message"`
	Link      string     `gorm:"size:255" json:"link,omitempty"`
	IsRead    bool       `gorm:"default:false;index" json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
