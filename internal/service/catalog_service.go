package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"
)

// CatalogService manages specialties, the services they offer and their
// rooms. Reads are public; writes are admin only.
type CatalogService struct {
	specialtyRepo *repository.SpecialtyRepository
	serviceRepo   *repository.ServiceRepository
	roomRepo      *repository.RoomRepository
	doctorRepo    *repository.DoctorRepository
	auditRepo     *repository.AuditRepository
}

func NewCatalogService(
	specialtyRepo *repository.SpecialtyRepository,
	serviceRepo *repository.ServiceRepository,
	roomRepo *repository.RoomRepository,
	doctorRepo *repository.DoctorRepository,
	auditRepo *repository.AuditRepository,
) *CatalogService {
	return &CatalogService{
		specialtyRepo: specialtyRepo,
		serviceRepo:   serviceRepo,
		roomRepo:      roomRepo,
		doctorRepo:    doctorRepo,
		auditRepo:     auditRepo,
	}
}

// ListSpecialties returns specialties; activeOnly hides disabled ones.
func (s *CatalogService) ListSpecialties(ctx context.Context, activeOnly bool) ([]models.Specialty, error) {
	return s.specialtyRepo.ListSpecialties(ctx, activeOnly)
}

func (s *CatalogService) GetSpecialty(ctx context.Context, id uint) (*models.Specialty, error) {
	return s.specialtyRepo.GetSpecialtyByID(ctx, id)
}

func (s *CatalogService) ListServices(ctx context.Context, specialtyID uint, activeOnly bool) ([]models.Service, error) {
	return s.serviceRepo.ListServices(ctx, specialtyID, activeOnly)
}

func (s *CatalogService) ListDoctors(ctx context.Context, specialtyID uint, activeOnly bool) ([]models.Doctor, error) {
	return s.doctorRepo.ListDoctors(ctx, specialtyID, activeOnly)
}

// CreateSpecialty creates a new specialty (admin only)
func (s *CatalogService) CreateSpecialty(ctx context.Context, specialty *models.Specialty, userID uint) error {
	specialty.Name = strings.TrimSpace(specialty.Name)
	if specialty.Name == "" {
		return invalid("name is required")
	}
	if err := s.specialtyRepo.CreateSpecialty(ctx, specialty); err != nil {
		return fmt.Errorf("failed to create specialty: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "specialty_create", "specialty", specialty.ID,
		fmt.Sprintf("Created specialty: %s", specialty.Name))
	return nil
}

// UpdateSpecialty updates an existing specialty (admin only)
func (s *CatalogService) UpdateSpecialty(ctx context.Context, specialty *models.Specialty, userID uint) error {
	if _, err := s.specialtyRepo.GetSpecialtyByID(ctx, specialty.ID); err != nil {
		return err
	}
	specialty.Name = strings.TrimSpace(specialty.Name)
	if specialty.Name == "" {
		return invalid("name is required")
	}
	if err := s.specialtyRepo.UpdateSpecialty(ctx, specialty); err != nil {
		return fmt.Errorf("failed to update specialty: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "specialty_update", "specialty", specialty.ID,
		fmt.Sprintf("Updated specialty: %s", specialty.Name))
	return nil
}

// DeleteSpecialty removes a specialty nothing references any more.
func (s *CatalogService) DeleteSpecialty(ctx context.Context, id, userID uint) error {
	specialty, err := s.specialtyRepo.GetSpecialtyByID(ctx, id)
	if err != nil {
		return err
	}
	deps, err := s.specialtyRepo.CountDependencies(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check dependencies: %w", err)
	}
	if deps.Any() {
		return fmt.Errorf("%w: %d doctors, %d services, %d rooms, %d appointments",
			ErrDependencyExists, deps.Doctors, deps.Services, deps.Rooms, deps.Appointments)
	}
	if err := s.specialtyRepo.DeleteSpecialty(ctx, id); err != nil {
		return fmt.Errorf("failed to delete specialty: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "specialty_delete", "specialty", id,
		fmt.Sprintf("Deleted specialty: %s", specialty.Name))
	return nil
}

func (s *CatalogService) validateService(ctx context.Context, svc *models.Service) error {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return invalid("name is required")
	}
	if svc.Price < 0 {
		return invalid("price cannot be negative")
	}
	if _, err := s.specialtyRepo.GetSpecialtyByID(ctx, svc.SpecialtyID); err != nil {
		return err
	}
	return nil
}

// CreateService creates a new service (admin only)
func (s *CatalogService) CreateService(ctx context.Context, svc *models.Service, userID uint) error {
	if err := s.validateService(ctx, svc); err != nil {
		return err
	}
	if err := s.serviceRepo.CreateService(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "service_create", "service", svc.ID,
		fmt.Sprintf("Created service: %s (price %d)", svc.Name, svc.Price))
	return nil
}

// UpdateService updates an existing service (admin only)
func (s *CatalogService) UpdateService(ctx context.Context, svc *models.Service, userID uint) error {
	if _, err := s.serviceRepo.GetServiceByID(ctx, svc.ID); err != nil {
		return err
	}
	if err := s.validateService(ctx, svc); err != nil {
		return err
	}
	if err := s.serviceRepo.UpdateService(ctx, svc); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "service_update", "service", svc.ID,
		fmt.Sprintf("Updated service: %s (price %d)", svc.Name, svc.Price))
	return nil
}

// DeleteService removes a service no appointment was booked for.
func (s *CatalogService) DeleteService(ctx context.Context, id, userID uint) error {
	svc, err := s.serviceRepo.GetServiceByID(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.serviceRepo.CountAppointments(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check dependencies: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: %d appointments", ErrDependencyExists, n)
	}
	if err := s.serviceRepo.DeleteService(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "service_delete", "service", id,
		fmt.Sprintf("Deleted service: %s", svc.Name))
	return nil
}

// ListRooms returns active rooms, optionally of one specialty.
func (s *CatalogService) ListRooms(ctx context.Context, specialtyID uint) ([]models.Room, error) {
	if specialtyID != 0 {
		return s.roomRepo.GetRoomsBySpecialtyID(ctx, specialtyID)
	}
	return s.roomRepo.GetAllRooms(ctx)
}

func (s *CatalogService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	return s.roomRepo.GetRoomByID(ctx, id)
}

func (s *CatalogService) validateRoom(ctx context.Context, room *models.Room) error {
	room.RoomCode = strings.TrimSpace(room.RoomCode)
	if room.RoomCode == "" || strings.TrimSpace(room.RoomName) == "" {
		return invalid("room_code and room_name are required")
	}
	if _, err := s.specialtyRepo.GetSpecialtyByID(ctx, room.SpecialtyID); err != nil {
		return err
	}
	existing, err := s.roomRepo.GetRoomByCode(ctx, room.RoomCode)
	if err == nil && existing.ID != room.ID {
		return invalid("room code %s is already in use", room.RoomCode)
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

// CreateRoom creates a new room (admin only)
func (s *CatalogService) CreateRoom(ctx context.Context, room *models.Room, userID uint) error {
	if err := s.validateRoom(ctx, room); err != nil {
		return err
	}
	room.IsActive = true
	if err := s.roomRepo.CreateRoom(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "room_create", "room", room.ID,
		fmt.Sprintf("Created room: %s (code: %s, specialty_id: %d)", room.RoomName, room.RoomCode, room.SpecialtyID))
	return nil
}

// UpdateRoom updates an existing room (admin only)
func (s *CatalogService) UpdateRoom(ctx context.Context, room *models.Room, userID uint) error {
	if _, err := s.roomRepo.GetRoomByID(ctx, room.ID); err != nil {
		return err
	}
	if err := s.validateRoom(ctx, room); err != nil {
		return err
	}
	if err := s.roomRepo.UpdateRoom(ctx, room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "room_update", "room", room.ID,
		fmt.Sprintf("Updated room: %s (code: %s)", room.RoomName, room.RoomCode))
	return nil
}

// DeleteRoom soft deletes a room that has no upcoming shifts (admin only)
func (s *CatalogService) DeleteRoom(ctx context.Context, roomID, userID uint) error {
	room, err := s.roomRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	n, err := s.roomRepo.CountUpcomingSchedules(ctx, roomID, models.Day(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to check schedules: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: %d upcoming schedules", ErrDependencyExists, n)
	}
	if err := s.roomRepo.SoftDeleteRoom(ctx, roomID); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "room_delete", "room", roomID,
		fmt.Sprintf("Deleted room: %s (code: %s)", room.RoomName, room.RoomCode))
	return nil
}
