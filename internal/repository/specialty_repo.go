package repository

import (
	"context"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
)

type SpecialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepo(db *gorm.DB) *SpecialtyRepository {
	return &SpecialtyRepository{db: db}
}

// SpecialtyDependencies counts the rows that still point at a specialty.
type SpecialtyDependencies struct {
	Doctors      int64 `json:"doctors"`
	Services     int64 `json:"services"`
	Rooms        int64 `json:"rooms"`
	Appointments int64 `json:"appointments"`
}

// Any reports whether at least one dependent row exists.
func (d SpecialtyDependencies) Any() bool {
	return d.Doctors+d.Services+d.Rooms+d.Appointments > 0
}

func (r *SpecialtyRepository) ListSpecialties(ctx context.Context, activeOnly bool) ([]models.Specialty, error) {
	var specialties []models.Specialty
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&specialties).Error
	return specialties, err
}

func (r *SpecialtyRepository) GetSpecialtyByID(ctx context.Context, id uint) (*models.Specialty, error) {
	var specialty models.Specialty
	if err := r.db.WithContext(ctx).First(&specialty, id).Error; err != nil {
		return nil, translate("specialty", err)
	}
	return &specialty, nil
}

func (r *SpecialtyRepository) CreateSpecialty(ctx context.Context, specialty *models.Specialty) error {
	return r.db.WithContext(ctx).Create(specialty).Error
}

func (r *SpecialtyRepository) UpdateSpecialty(ctx context.Context, specialty *models.Specialty) error {
	return r.db.WithContext(ctx).Model(specialty).
		Select("name", "description", "is_active").
		Updates(specialty).Error
}

func (r *SpecialtyRepository) DeleteSpecialty(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Specialty{}, id).Error
}

// CountDependencies reports how many doctors, services, rooms and
// appointments reference the specialty.
func (r *SpecialtyRepository) CountDependencies(ctx context.Context, id uint) (SpecialtyDependencies, error) {
	var deps SpecialtyDependencies
	db := r.db.WithContext(ctx)
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Doctor{}, &deps.Doctors},
		{&models.Service{}, &deps.Services},
		{&models.Room{}, &deps.Rooms},
		{&models.Appointment{}, &deps.Appointments},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Where("specialty_id = ?", id).Count(c.dst).Error; err != nil {
			return deps, err
		}
	}
	return deps, nil
}
