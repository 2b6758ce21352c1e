// Package dbtest opens throwaway in-memory databases with the full schema
// and builds the catalog rows most tests start from.
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hospital-booking/internal/database"
	"hospital-booking/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq atomic.Uint64

// Open returns a migrated in-memory SQLite database. It holds a single
// connection, so concurrent transactions queue behind each other the way
// they would behind a row lock.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func next() uint64 { return seq.Add(1) }

func User(t testing.TB, db *gorm.DB, role string) *models.User {
	t.Helper()
	n := next()
	u := &models.User{
		Email:        fmt.Sprintf("%s%d@hospital.test", role, n),
		PasswordHash: "-",
		Role:         role,
		FullName:     fmt.Sprintf("%s %d", role, n),
		IsActive:     true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func Specialty(t testing.TB, db *gorm.DB) *models.Specialty {
	t.Helper()
	s := &models.Specialty{Name: fmt.Sprintf("Specialty %d", next()), IsActive: true}
	require.NoError(t, db.Create(s).Error)
	return s
}

func Service(t testing.TB, db *gorm.DB, specialtyID uint, price int64) *models.Service {
	t.Helper()
	s := &models.Service{SpecialtyID: specialtyID, Name: fmt.Sprintf("Service %d", next()), Price: price, IsActive: true}
	require.NoError(t, db.Create(s).Error)
	return s
}

func Doctor(t testing.TB, db *gorm.DB, specialtyID uint) *models.Doctor {
	t.Helper()
	u := User(t, db, models.RoleDoctor)
	d := &models.Doctor{UserID: u.ID, SpecialtyID: specialtyID, IsActive: true}
	require.NoError(t, db.Create(d).Error)
	d.User = *u
	return d
}

func Room(t testing.TB, db *gorm.DB, specialtyID uint) *models.Room {
	t.Helper()
	n := next()
	r := &models.Room{SpecialtyID: specialtyID, RoomCode: fmt.Sprintf("R%03d", n), RoomName: fmt.Sprintf("Room %d", n), IsActive: true}
	require.NoError(t, db.Create(r).Error)
	return r
}

func Patient(t testing.TB, db *gorm.DB) *models.Patient {
	t.Helper()
	u := User(t, db, models.RolePatient)
	p := &models.Patient{UserID: u.ID}
	require.NoError(t, db.Create(p).Error)
	p.User = *u
	return p
}

// Shift schedules a doctor in a room on day between two "HH:MM" clocks.
func Shift(t testing.TB, db *gorm.DB, doctorID, roomID uint, day time.Time, start, end string) *models.Schedule {
	t.Helper()
	s := &models.Schedule{DoctorID: doctorID, RoomID: roomID, WorkDate: models.Day(day), StartTime: start, EndTime: end}
	require.NoError(t, db.Create(s).Error)
	return s
}

// Deactivate flips is_active off; gorm skips false on create because of
// the column default.
func Deactivate(t testing.TB, db *gorm.DB, model interface{}) {
	t.Helper()
	require.NoError(t, db.Model(model).Update("is_active", false).Error)
}
