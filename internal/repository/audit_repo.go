package repository

import (
	"context"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(ctx context.Context, userID *uint, action, entityType string, entityID uint, details string) error {
	log := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	return r.db.WithContext(ctx).Create(log).Error
}

// ListAuditLogs returns the most recent entries, newest first.
func (r *AuditRepository) ListAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
