package handler

import (
	"net/http"
	"time"

	"hospital-booking/internal/service"
	"hospital-booking/pkg/utils"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

type AuthHandler struct {
	authService *service.AuthService
	secure      bool
}

func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		secure:      secureCookies,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, token, int(utils.GetRefreshTokenExpiry()/time.Second), "/", "", h.secure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secure, true)
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// Refresh generates a new access token from refresh token
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		h.clearRefreshCookie(c)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	h.clearRefreshCookie(c)
	utils.MessageResponse(c, "Logged out successfully")
}

// Register creates a patient account and signs it in
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	response, err := h.authService.RegisterPatient(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.CreatedResponse(c, gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	}, "")
}

// Me returns the caller's profile
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.authService.GetProfile(c.Request.Context(), currentUser(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, profile)
}

// UpdateMe edits the caller's profile
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var upd service.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	profile, err := h.authService.UpdateProfile(c.Request.Context(), currentUser(c).UserID, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, profile)
}
