package models

import "time"

// AuditLog records who changed what. Admin catalog changes and appointment
// lifecycle events write one row each.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     *uint     `gorm:"index" json:"user_id"`
	Action     string    `gorm:"size:100;not null;index" json:"action"`
	EntityType string    `gorm:"size:50" json:"entity_type,omitempty"`
	EntityID   uint      `json:"entity_id,omitempty"`
	Details    string    `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `json:"created_at"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// All returns every model managed by migrations, parents first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&RefreshToken{},
		&Specialty{},
		&Service{},
		&Room{},
		&Patient{},
		&Doctor{},
		&Schedule{},
		&QueueCounter{},
		&Appointment{},
		&Payment{},
		&Notification{},
		&Examination{},
		&Medication{},
		&Prescription{},
		&PrescriptionItem{},
		&TestRequest{},
		&AuditLog{},
	}
}
