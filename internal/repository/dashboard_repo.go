package repository

import (
	"context"
	"time"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository runs the aggregate queries behind the admin dashboard.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DateCount struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

type SpecialtyCount struct {
	SpecialtyID uint   `json:"specialty_id"`
	Name        string `json:"name"`
	Count       int64  `json:"count"`
}

// StatusCounts groups appointments dated in [from, to] by status.
func (r *DashboardRepository) StatusCounts(ctx context.Context, from, to time.Time) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Where("appointment_date BETWEEN ? AND ?", models.Day(from), models.Day(to)).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// PaidRevenue sums settled payments made in [from, to). Payments waiting
// for a refund are left out.
func (r *DashboardRepository) PaidRevenue(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ? AND refund_pending = ? AND paid_at >= ? AND paid_at < ?", models.PaymentStatusPaid, false, from, to).
		Scan(&total).Error
	return total, err
}

// RefundsPending counts captured payments whose appointment was cancelled
// before the money arrived.
func (r *DashboardRepository) RefundsPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("status = ? AND refund_pending = ?", models.PaymentStatusPaid, true).
		Count(&n).Error
	return n, err
}

// CountByDate returns non-cancelled appointments per day in [from, to].
func (r *DashboardRepository) CountByDate(ctx context.Context, from, to time.Time) ([]DateCount, error) {
	var rows []DateCount
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select("appointment_date AS date, COUNT(*) AS count").
		Where("appointment_date BETWEEN ? AND ? AND status <> ?", models.Day(from), models.Day(to), models.StatusCancelled).
		Group("appointment_date").
		Order("appointment_date ASC").
		Scan(&rows).Error
	return rows, err
}

// SpecialtyCounts ranks specialties by non-cancelled bookings in [from, to].
func (r *DashboardRepository) SpecialtyCounts(ctx context.Context, from, to time.Time) ([]SpecialtyCount, error) {
	var rows []SpecialtyCount
	err := r.db.WithContext(ctx).Table("appointments a").
		Select("s.id AS specialty_id, s.name AS name, COUNT(a.id) AS count").
		Joins("JOIN specialties s ON s.id = a.specialty_id").
		Where("a.appointment_date BETWEEN ? AND ? AND a.status <> ?", models.Day(from), models.Day(to), models.StatusCancelled).
		Group("s.id, s.name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// Totals returns entity counts shown in the dashboard header.
func (r *DashboardRepository) Totals(ctx context.Context) (map[string]int64, error) {
	totals := map[string]int64{}
	db := r.db.WithContext(ctx)
	for name, model := range map[string]interface{}{
		"patients":    &models.Patient{},
		"doctors":     &models.Doctor{},
		"specialties": &models.Specialty{},
		"rooms":       &models.Room{},
	} {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			return nil, err
		}
		totals[name] = n
	}
	return totals, nil
}
