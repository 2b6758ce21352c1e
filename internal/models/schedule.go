package models

import "time"

// Schedule is one working shift of a doctor in a room on a given date.
// StartTime and EndTime are wall-clock "HH:MM" strings.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DoctorID  uint      `gorm:"not null;index:idx_schedule_doctor_date" json:"doctor_id"`
	RoomID    uint      `gorm:"not null;index" json:"room_id"`
	WorkDate  time.Time `gorm:"type:date;not null;index:idx_schedule_doctor_date" json:"work_date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Room   Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// QueueCounter serializes queue number allocation for one specialty on one
// date. Its row is locked for the duration of a slot reservation.
type QueueCounter struct {
	SpecialtyID uint      `gorm:"primaryKey;autoIncrement:false" json:"specialty_id"`
	WorkDate    time.Time `gorm:"primaryKey;type:date" json:"work_date"`
	LastNumber  int       `gorm:"not null;default:0" json:"last_number"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (QueueCounter) TableName() string {
	return "queue_counters"
}

// Day truncates t to midnight of its calendar day in the local zone, the
// form every date column is queried with.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
