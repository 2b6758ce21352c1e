package models

import "time"

// Examination records the doctor's findings for one appointment.
type Examination struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AppointmentID uint      `gorm:"not null;uniqueIndex" json:"appointment_id"`
	DoctorID      uint      `gorm:"not null;index" json:"doctor_id"`
	Symptoms      string    `gorm:"type:text" json:"symptoms"`
	Diagnosis     string    `gorm:"type:text" json:"diagnosis"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Examination) TableName() string {
	return "examinations"
}

type Medication struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null;uniqueIndex" json:"name"`
	Unit        string    `gorm:"size:30" json:"unit"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Medication) TableName() string {
	return "medications"
}

type Prescription struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	AppointmentID uint               `gorm:"not null;index" json:"appointment_id"`
	DoctorID      uint               `gorm:"not null;index" json:"doctor_id"`
	Notes         string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []PrescriptionItem `gorm:"foreignKey:PrescriptionID" json:"items"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

type PrescriptionItem struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PrescriptionID uint   `gorm:"not null;index" json:"prescription_id"`
	MedicationID   uint   `gorm:"not null;index" json:"medication_id"`
	Dosage         string `gorm:"size:100" json:"dosage"`
	Quantity       int    `gorm:"not null" json:"quantity"`
	Instructions   string `gorm:"type:text" json:"instructions,omitempty"`

	Medication Medication `gorm:"foreignKey:MedicationID" json:"medication,omitempty"`
}

func (PrescriptionItem) TableName() string {
	return "prescription_items"
}

const (
	TestRequested = "requested"
	TestCompleted = "completed"
)

// TestRequest is a lab or imaging test ordered during an examination. The
// result file lives in object storage under ResultKey.
type TestRequest struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	AppointmentID uint       `gorm:"not null;index" json:"appointment_id"`
	DoctorID      uint       `gorm:"not null;index" json:"doctor_id"`
	TestName      string     `gorm:"size:150;not null" json:"test_name"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	Status        string     `gorm:"size:20;not null;default:'requested'" json:"status"`
	ResultKey     string     `gorm:"size:255" json:"-"`
	ResultURL     string     `gorm:"size:512" json:"result_url,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (TestRequest) TableName() string {
	return "test_requests"
}
