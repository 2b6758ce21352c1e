package repository

import (
	"context"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindUserByEmail finds a user by email
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate("user", err)
	}
	return &user, nil
}

// FindUserByID finds a user by primary key
func (r *UserRepository) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate("user", err)
	}
	return &user, nil
}

// UpdateUser saves profile fields of a user
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Model(user).
		Select("full_name", "phone", "is_active").
		Updates(user).Error
}

// CreatePatientAccount inserts a user and its patient profile atomically.
func (r *UserRepository) CreatePatientAccount(ctx context.Context, user *models.User, patient *models.Patient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		patient.UserID = user.ID
		return tx.Create(patient).Error
	})
}

// FindPatientByUserID returns the patient profile of a user
func (r *UserRepository) FindPatientByUserID(ctx context.Context, userID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		First(&patient).Error
	if err != nil {
		return nil, translate("patient", err)
	}
	return &patient, nil
}

// FindPatientByID returns a patient with its user preloaded
func (r *UserRepository) FindPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).Preload("User").First(&patient, id).Error; err != nil {
		return nil, translate("patient", err)
	}
	return &patient, nil
}

// UpdatePatient saves the profile columns of a patient
func (r *UserRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Model(patient).
		Select("date_of_birth", "gender", "address", "insurance_number").
		Updates(patient).Error
}

// CreateRefreshToken creates a new refresh token
func (r *UserRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindRefreshTokenByHash finds a refresh token by its hash
func (r *UserRepository) FindRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = ?", hash, false).
		Preload("User").
		First(&token).Error
	if err != nil {
		return nil, translate("refresh token", err)
	}
	return &token, nil
}

// RevokeRefreshTokenByHash marks a refresh token as revoked by its hash
func (r *UserRepository) RevokeRefreshTokenByHash(ctx context.Context, hash string) error {
	return r.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
}
