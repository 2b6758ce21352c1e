package models

import "time"

// Room represents an examination room belonging to a specialty
type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SpecialtyID uint      `gorm:"not null;index" json:"specialty_id"`
	RoomCode    string    `gorm:"size:50;not null;uniqueIndex" json:"room_code"`
	RoomName    string    `gorm:"size:100;not null" json:"room_name"`
	Floor       int       `gorm:"default:0" json:"floor"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	// Relationships
	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}
