package models

import "time"

// Specialty represents a medical department (e.g. Cardiology)
type Specialty struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Specialty) TableName() string {
	return "specialties"
}

// Service is a billable examination offered by a specialty. Price is in VND.
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SpecialtyID uint      `gorm:"not null;index" json:"specialty_id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Price       int64     `gorm:"not null;default:0" json:"price"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
