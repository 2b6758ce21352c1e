package repository

import (
	"context"
	"time"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClinicalRepository stores examination records, prescriptions and test
// requests.
type ClinicalRepository struct {
	db *gorm.DB
}

func NewClinicalRepo(db *gorm.DB) *ClinicalRepository {
	return &ClinicalRepository{db: db}
}

// UpsertExamination creates the examination of an appointment or overwrites
// its findings.
func (r *ClinicalRepository) UpsertExamination(ctx context.Context, exam *models.Examination) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "appointment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"symptoms", "diagnosis", "notes", "updated_at"}),
	}).Create(exam).Error
}

func (r *ClinicalRepository) GetExamination(ctx context.Context, appointmentID uint) (*models.Examination, error) {
	var exam models.Examination
	err := r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&exam).Error
	if err != nil {
		return nil, translate("examination", err)
	}
	return &exam, nil
}

// CreatePrescription inserts the prescription with its items.
func (r *ClinicalRepository) CreatePrescription(ctx context.Context, p *models.Prescription) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ClinicalRepository) ListPrescriptions(ctx context.Context, appointmentID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.WithContext(ctx).
		Preload("Items.Medication").
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&prescriptions).Error
	return prescriptions, err
}

func (r *ClinicalRepository) CreateTestRequest(ctx context.Context, t *models.TestRequest) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ClinicalRepository) GetTestRequest(ctx context.Context, id uint) (*models.TestRequest, error) {
	var t models.TestRequest
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, translate("test request", err)
	}
	return &t, nil
}

func (r *ClinicalRepository) ListTestRequests(ctx context.Context, appointmentID uint) ([]models.TestRequest, error) {
	var tests []models.TestRequest
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&tests).Error
	return tests, err
}

// CompleteTestRequest attaches the stored result to a requested test.
func (r *ClinicalRepository) CompleteTestRequest(ctx context.Context, id uint, key, url string) error {
	res := r.db.WithContext(ctx).Model(&models.TestRequest{}).
		Where("id = ? AND status = ?", id, models.TestRequested).
		Updates(map[string]interface{}{
			"status":       models.TestCompleted,
			"result_key":   key,
			"result_url":   url,
			"completed_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *ClinicalRepository) SearchMedications(ctx context.Context, term string, limit int) ([]models.Medication, error) {
	var meds []models.Medication
	q := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC")
	if term != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&meds).Error
	return meds, err
}

// MedicationsExist reports whether every id names an active medication.
func (r *ClinicalRepository) MedicationsExist(ctx context.Context, ids []uint) (bool, error) {
	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Medication{}).
		Where("id IN ? AND is_active = ?", ids, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(unique)), nil
}
