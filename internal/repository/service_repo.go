package repository

import (
	"context"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
)

// ServiceRepository stores the billable services of each specialty.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ListServices(ctx context.Context, specialtyID uint, activeOnly bool) ([]models.Service, error) {
	var services []models.Service
	q := r.db.WithContext(ctx).Order("name ASC")
	if specialtyID != 0 {
		q = q.Where("specialty_id = ?", specialtyID)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&services).Error
	return services, err
}

func (r *ServiceRepository) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, translate("service", err)
	}
	return &svc, nil
}

func (r *ServiceRepository) CreateService(ctx context.Context, svc *models.Service) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *ServiceRepository) UpdateService(ctx context.Context, svc *models.Service) error {
	return r.db.WithContext(ctx).Model(svc).
		Select("specialty_id", "name", "description", "price", "is_active").
		Updates(svc).Error
}

func (r *ServiceRepository) DeleteService(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, id).Error
}

// CountAppointments counts appointments booked for the service.
func (r *ServiceRepository) CountAppointments(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("service_id = ?", id).
		Count(&count).Error
	return count, err
}
