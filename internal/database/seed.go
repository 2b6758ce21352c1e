package database

import (
	"fmt"

	"hospital-booking/internal/models"
	"hospital-booking/pkg/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type seedSpecialty struct {
	name     string
	desc     string
	services []models.Service
	rooms    []models.Room
}

var catalog = []seedSpecialty{
	{
		name: "Cardiology",
		desc: "Heart and blood vessel disorders",
		services: []models.Service{
			{Name: "Cardiology consultation", Price: 200000},
			{Name: "Electrocardiogram (ECG)", Price: 150000},
			{Name: "Echocardiography", Price: 450000},
		},
		rooms: []models.Room{
			{RoomCode: "CAR-101", RoomName: "Cardiology Room 1", Floor: 1},
			{RoomCode: "CAR-102", RoomName: "Cardiology Room 2", Floor: 1},
		},
	},
	{
		name: "Pediatrics",
		desc: "Care for infants, children and adolescents",
		services: []models.Service{
			{Name: "Pediatric consultation", Price: 150000},
			{Name: "Vaccination counselling", Price: 100000},
		},
		rooms: []models.Room{
			{RoomCode: "PED-201", RoomName: "Pediatrics Room 1", Floor: 2},
		},
	},
	{
		name: "Dermatology",
		desc: "Skin, hair and nail conditions",
		services: []models.Service{
			{Name: "Dermatology consultation", Price: 180000},
		},
		rooms: []models.Room{
			{RoomCode: "DER-301", RoomName: "Dermatology Room 1", Floor: 3},
		},
	},
	{
		name: "General Medicine",
		desc: "First visit and general check-up",
		services: []models.Service{
			{Name: "General check-up", Price: 120000},
		},
		rooms: []models.Room{
			{RoomCode: "GEN-001", RoomName: "General Room 1", Floor: 0},
			{RoomCode: "GEN-002", RoomName: "General Room 2", Floor: 0},
		},
	},
}

var medications = []models.Medication{
	{Name: "Paracetamol 500mg", Unit: "tablet"},
	{Name: "Ibuprofen 400mg", Unit: "tablet"},
	{Name: "Amoxicillin 500mg", Unit: "capsule"},
	{Name: "Omeprazole 20mg", Unit: "capsule"},
	{Name: "Cetirizine 10mg", Unit: "tablet"},
	{Name: "Amlodipine 5mg", Unit: "tablet"},
	{Name: "Metformin 500mg", Unit: "tablet"},
	{Name: "Salbutamol inhaler", Unit: "puff"},
	{Name: "Oral rehydration salts", Unit: "sachet"},
	{Name: "Hydrocortisone cream 1%", Unit: "tube"},
}

// Seed inserts the admin account and the reference catalog. Existing rows
// are left untouched, so it can run on every deploy.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedAdmin(tx, adminEmail, adminPassword); err != nil {
			return err
		}
		for _, s := range catalog {
			if err := seedSpecialtyTree(tx, s); err != nil {
				return err
			}
		}
		for _, m := range medications {
			if err := tx.Where(models.Medication{Name: m.Name}).FirstOrCreate(&m).Error; err != nil {
				return fmt.Errorf("seed medication %s: %w", m.Name, err)
			}
		}
		log.WithFields(log.Fields{
			"specialties": len(catalog),
			"medications": len(medications),
		}).Info("Seed data ensured")
		return nil
	})
}

func seedAdmin(tx *gorm.DB, email, password string) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if len(password) < 8 {
		return fmt.Errorf("admin password must be at least 8 characters")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		FullName:     "Administrator",
		IsActive:     true,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.WithField("email", email).Info("Admin account created")
	return nil
}

func seedSpecialtyTree(tx *gorm.DB, s seedSpecialty) error {
	specialty := models.Specialty{Name: s.name}
	if err := tx.Where(models.Specialty{Name: s.name}).
		Attrs(models.Specialty{Description: s.desc, IsActive: true}).
		FirstOrCreate(&specialty).Error; err != nil {
		return fmt.Errorf("seed specialty %s: %w", s.name, err)
	}

	for _, svc := range s.services {
		svc.SpecialtyID = specialty.ID
		svc.IsActive = true
		if err := tx.Where(models.Service{SpecialtyID: specialty.ID, Name: svc.Name}).
			Attrs(svc).FirstOrCreate(&svc).Error; err != nil {
			return fmt.Errorf("seed service %s: %w", svc.Name, err)
		}
	}
	for _, room := range s.rooms {
		room.SpecialtyID = specialty.ID
		room.IsActive = true
		if err := tx.Where(models.Room{RoomCode: room.RoomCode}).
			Attrs(room).FirstOrCreate(&room).Error; err != nil {
			return fmt.Errorf("seed room %s: %w", room.RoomCode, err)
		}
	}
	return nil
}
