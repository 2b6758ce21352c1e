package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hospital-booking/internal/cache"
	"hospital-booking/internal/repository"
	"hospital-booking/internal/service"
	"hospital-booking/pkg/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDuplicateBooking),
		errors.Is(err, service.ErrDependencyExists),
		errors.Is(err, service.ErrScheduleOverlap),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrNoDoctorAvailable),
		errors.Is(err, repository.ErrStaleStatus):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrNotPaid),
		errors.Is(err, service.ErrExaminationRequired),
		errors.Is(err, cache.ErrCodeExpired),
		errors.Is(err, cache.ErrCodeMismatch):
		return http.StatusBadRequest
	case errors.Is(err, cache.ErrTooManyTries):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the matching status. Unexpected errors are
// logged and hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).WithError(err).Error("Request failed")
		utils.ErrorResponse(c, status, "Internal server error")
		return
	}
	utils.ErrorResponse(c, status, err.Error())
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(v), true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return v, true
}

// queryDate parses an optional YYYY-MM-DD query parameter in local time.
func queryDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name+", expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

// currentUser reads the identity set by AuthMiddleware.
func currentUser(c *gin.Context) service.Actor {
	return service.Actor{UserID: c.GetUint("userID"), Role: c.GetString("role")}
}
