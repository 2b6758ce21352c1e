package repository

import (
	"context"
	"time"

	"hospital-booking/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAllRooms retrieves all active rooms
func (r *RoomRepository) GetAllRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Preload("Specialty").
		Order("specialty_id ASC, room_code ASC").
		Find(&rooms).Error
	return rooms, err
}

// GetRoomByID retrieves an active room by ID
func (r *RoomRepository) GetRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&room).Error
	if err != nil {
		return nil, translate("room", err)
	}
	return &room, nil
}

// GetRoomsBySpecialtyID retrieves all active rooms of a specialty
func (r *RoomRepository) GetRoomsBySpecialtyID(ctx context.Context, specialtyID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).Where("specialty_id = ? AND is_active = ?", specialtyID, true).
		Order("room_code ASC").
		Find(&rooms).Error
	return rooms, err
}

// GetRoomByCode retrieves an active room by its code
func (r *RoomRepository) GetRoomByCode(ctx context.Context, code string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Where("room_code = ? AND is_active = ?", code, true).First(&room).Error
	if err != nil {
		return nil, translate("room", err)
	}
	return &room, nil
}

// CreateRoom creates a new room
func (r *RoomRepository) CreateRoom(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// UpdateRoom updates an existing room
func (r *RoomRepository) UpdateRoom(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Model(room).
		Select("specialty_id", "room_code", "room_name", "floor").
		Updates(room).Error
}

// SoftDeleteRoom soft deletes a room by setting is_active to false
func (r *RoomRepository) SoftDeleteRoom(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// CountUpcomingSchedules counts schedules using the room from a date on.
func (r *RoomRepository) CountUpcomingSchedules(ctx context.Context, roomID uint, from time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Schedule{}).
		Where("room_id = ? AND work_date >= ?", roomID, from).
		Count(&count).Error
	return count, err
}
