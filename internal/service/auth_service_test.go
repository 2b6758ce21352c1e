package service

import (
	"context"
	"testing"
	"time"

	"hospital-booking/internal/database/dbtest"
	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"
	"hospital-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNormalizeEmail(t *testing.T) {
	got, err := NormalizeEmail("  Jane.Doe@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", got)

	for _, bad := range []string{"", "jane", "jane@", "Jane <jane@example.com>"} {
		_, err := NormalizeEmail(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	utils.InitJWT("access-secret", "refresh-secret", time.Minute, time.Hour)
	db := dbtest.Open(t)
	return NewAuthService(repository.NewUserRepo(db), repository.NewDoctorRepo(db), repository.NewAuditRepo(db)), db
}

func registerJane(t *testing.T, svc *AuthService) *LoginResponse {
	t.Helper()
	resp, err := svc.RegisterPatient(context.Background(), RegisterRequest{
		Email:    "Jane.Doe@Example.com",
		Password: "correct horse",
		FullName: " Jane Doe ",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and patient", func(t *testing.T) {
		svc, db := newAuthService(t)
		resp := registerJane(t, svc)

		assert.Equal(t, "jane.doe@example.com", resp.User.Email)
		assert.Equal(t, "Jane Doe", resp.User.FullName)
		assert.Equal(t, models.RolePatient, resp.User.Role)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)

		var patient models.Patient
		require.NoError(t, db.Where("user_id = ?", resp.User.ID).First(&patient).Error)
		claims, err := utils.ValidateAccessToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.UserID)
	})

	t.Run("email taken in any case", func(t *testing.T) {
		svc, _ := newAuthService(t)
		registerJane(t, svc)

		_, err := svc.RegisterPatient(ctx, RegisterRequest{
			Email: "JANE.DOE@example.COM", Password: "another one", FullName: "Impostor",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("bad email", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, err := svc.RegisterPatient(ctx, RegisterRequest{Email: "jane", Password: "correct horse", FullName: "Jane"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, db := newAuthService(t)
	jane := registerJane(t, svc)

	resp, err := svc.Login(ctx, " JANE.DOE@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, jane.User.ID, resp.User.ID)

	_, err = svc.Login(ctx, "jane.doe@example.com", "wrong horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", jane.User.ID).Update("is_active", false).Error)
	_, err = svc.Login(ctx, "jane.doe@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshAndLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("refresh until logout", func(t *testing.T) {
		svc, _ := newAuthService(t)
		jane := registerJane(t, svc)

		access, err := svc.RefreshAccessToken(ctx, jane.RefreshToken)
		require.NoError(t, err)
		claims, err := utils.ValidateAccessToken(access)
		require.NoError(t, err)
		assert.Equal(t, jane.User.ID, claims.UserID)
		assert.Equal(t, models.RolePatient, claims.Role)

		require.NoError(t, svc.Logout(ctx, jane.RefreshToken))
		_, err = svc.RefreshAccessToken(ctx, jane.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, err := svc.RefreshAccessToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("expired token", func(t *testing.T) {
		svc, db := newAuthService(t)
		jane := registerJane(t, svc)

		raw, err := utils.GenerateRefreshToken()
		require.NoError(t, err)
		require.NoError(t, repository.NewUserRepo(db).CreateRefreshToken(ctx, &models.RefreshToken{
			UserID:    jane.User.ID,
			TokenHash: utils.HashRefreshToken(raw),
			ExpiresAt: time.Now().Add(-time.Minute),
		}))

		_, err = svc.RefreshAccessToken(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated user", func(t *testing.T) {
		svc, db := newAuthService(t)
		jane := registerJane(t, svc)
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", jane.User.ID).Update("is_active", false).Error)

		_, err := svc.RefreshAccessToken(ctx, jane.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
