package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"
	"hospital-booking/pkg/utils"
)

type AuthService struct {
	userRepo   *repository.UserRepository
	doctorRepo *repository.DoctorRepository
	auditRepo  *repository.AuditRepository
}

func NewAuthService(userRepo *repository.UserRepository, doctorRepo *repository.DoctorRepository, auditRepo *repository.AuditRepository) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
		auditRepo:  auditRepo,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type RegisterRequest struct {
	Email       string     `json:"email" binding:"required,email"`
	Password    string     `json:"password" binding:"required,min=8"`
	FullName    string     `json:"full_name" binding:"required"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `json:"gender"`
	Address     string     `json:"address"`
}

// NormalizeEmail lowercases and trims an address and checks its syntax.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("invalid email address")
	}
	return email, nil
}

func hashPassword(password string) (string, error) {
	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return "", invalid("password must be at most %d bytes", utils.MaxPasswordBytes)
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &user.ID, "user_login", "user", user.ID, fmt.Sprintf("User %s logged in", user.Email))
	return resp, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Only the hash is stored
	token := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.userRepo.CreateRefreshToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
	}, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	token, err := s.userRepo.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if time.Now().After(token.ExpiresAt) || !token.User.IsActive {
		return "", ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.userRepo.RevokeRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RegisterPatient creates a patient account and logs it in
func (s *AuthService) RegisterPatient(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RolePatient,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        req.Phone,
		IsActive:     true,
	}
	patient := &models.Patient{
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
	}
	if err := s.userRepo.CreatePatientAccount(ctx, user, patient); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &user.ID, "user_registration", "user", user.ID, fmt.Sprintf("Patient %s registered", user.Email))
	return resp, nil
}

// Profile is the caller's account with the profile matching their role.
type Profile struct {
	User    *models.User    `json:"user"`
	Patient *models.Patient `json:"patient,omitempty"`
	Doctor  *models.Doctor  `json:"doctor,omitempty"`
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := &Profile{User: user}
	switch user.Role {
	case models.RolePatient:
		if p.Patient, err = s.userRepo.FindPatientByUserID(ctx, userID); err != nil {
			return nil, err
		}
		p.Patient.User = models.User{}
	case models.RoleDoctor:
		if p.Doctor, err = s.doctorRepo.GetDoctorByUserID(ctx, userID); err != nil {
			return nil, err
		}
		p.Doctor.User = models.User{}
	}
	return p, nil
}

type ProfileUpdate struct {
	FullName        *string    `json:"full_name"`
	Phone           *string    `json:"phone"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	Gender          *string    `json:"gender"`
	Address         *string    `json:"address"`
	InsuranceNumber *string    `json:"insurance_number"`
}

// UpdateProfile applies the non-nil fields of upd.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*Profile, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if upd.FullName != nil {
		if strings.TrimSpace(*upd.FullName) == "" {
			return nil, invalid("full name cannot be empty")
		}
		user.FullName = strings.TrimSpace(*upd.FullName)
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if user.Role == models.RolePatient {
		patient, err := s.userRepo.FindPatientByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if upd.DateOfBirth != nil {
			patient.DateOfBirth = upd.DateOfBirth
		}
		if upd.Gender != nil {
			patient.Gender = *upd.Gender
		}
		if upd.Address != nil {
			patient.Address = *upd.Address
		}
		if upd.InsuranceNumber != nil {
			patient.InsuranceNumber = *upd.InsuranceNumber
		}
		if err := s.userRepo.UpdatePatient(ctx, patient); err != nil {
			return nil, fmt.Errorf("failed to update patient: %w", err)
		}
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &userID, "profile_updated", "user", userID, "")
	return s.GetProfile(ctx, userID)
}
