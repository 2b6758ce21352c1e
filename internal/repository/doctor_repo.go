package repository

import (
	"context"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// ListDoctors returns doctors, optionally restricted to one specialty.
func (r *DoctorRepository) ListDoctors(ctx context.Context, specialtyID uint, activeOnly bool) ([]models.Doctor, error) {
	var doctors []models.Doctor
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialty").
		Order("id ASC")
	if specialtyID != 0 {
		q = q.Where("specialty_id = ?", specialtyID)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&doctors).Error
	return doctors, err
}

func (r *DoctorRepository) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialty").
		First(&doctor, id).Error
	if err != nil {
		return nil, translate("doctor", err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) GetDoctorByUserID(ctx context.Context, userID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		First(&doctor).Error
	if err != nil {
		return nil, translate("doctor", err)
	}
	return &doctor, nil
}

// CreateDoctorAccount inserts the login user and the doctor profile in one
// transaction.
func (r *DoctorRepository) CreateDoctorAccount(ctx context.Context, user *models.User, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		doctor.UserID = user.ID
		return tx.Create(doctor).Error
	})
}

func (r *DoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Model(doctor).
		Select("specialty_id", "title", "bio", "is_active").
		Updates(doctor).Error
}

// DeactivateDoctor disables both the profile and the login.
func (r *DoctorRepository) DeactivateDoctor(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, id).Error; err != nil {
			return translate("doctor", err)
		}
		if err := tx.Model(&doctor).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", doctor.UserID).Update("is_active", false).Error
	})
}
