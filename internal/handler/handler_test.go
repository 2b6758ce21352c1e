package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-booking/internal/cache"
	"hospital-booking/internal/models"
	"hospital-booking/internal/payment/vnpay"
	"hospital-booking/internal/repository"
	"hospital-booking/internal/service"
	"hospital-booking/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withUser fakes what AuthMiddleware sets.
func withUser(id uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Set("role", role)
		c.Next()
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("appointment %w", repository.ErrNotFound), http.StatusNotFound},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrDuplicateBooking, http.StatusConflict},
		{service.ErrNoDoctorAvailable, http.StatusConflict},
		{fmt.Errorf("%w: 2 doctors", service.ErrDependencyExists), http.StatusConflict},
		{repository.ErrStaleStatus, http.StatusConflict},
		{fmt.Errorf("%w: bad date", service.ErrInvalidInput), http.StatusBadRequest},
		{cache.ErrCodeMismatch, http.StatusBadRequest},
		{cache.ErrTooManyTries, http.StatusTooManyRequests},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { respondError(c, errors.New("dial tcp 10.0.0.5:3306: refused")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestBookRejectsBadInput(t *testing.T) {
	h := NewAppointmentHandler(nil, nil)
	r := gin.New()
	r.POST("/appointments", withUser(7, models.RolePatient), h.Book)

	for _, body := range []string{
		`{}`,
		`{"specialty_id":1,"appointment_date":"20/10/2026"}`,
		`not json`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestInvalidPathID(t *testing.T) {
	h := NewAppointmentHandler(nil, nil)
	r := gin.New()
	r.GET("/appointments/:id", withUser(7, models.RolePatient), h.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/appointments/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationEndpoints(t *testing.T) {
	store := mocks.NewMockNotificationStore(gomock.NewController(t))
	h := NewNotificationHandler(service.NewNotificationService(store))

	r := gin.New()
	g := r.Group("/notifications", withUser(42, models.RolePatient))
	g.GET("/unread-count", h.UnreadCount)
	g.POST("/:id/read", h.MarkRead)

	store.EXPECT().CountUnread(gomock.Any(), uint(42)).Return(int64(3), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"unread":3}}`, w.Body.String())

	store.EXPECT().MarkRead(gomock.Any(), uint(42), uint(9)).Return(fmt.Errorf("notification %w", repository.ErrNotFound))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications/9/read", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIPNAlwaysAnswers200(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockPaymentGateway(ctrl)
	svc := service.NewPaymentService(mocks.NewMockAppointmentStore(ctrl), mocks.NewMockPaymentStore(ctrl),
		gateway, mocks.NewMockMailer(ctrl), mocks.NewMockNotifier(ctrl), mocks.NewMockAuditLogger(ctrl))
	h := NewPaymentHandler(svc)

	r := gin.New()
	r.GET("/payments/vnpay/ipn", h.IPN)

	gateway.EXPECT().Verify(gomock.Any()).Return(vnpay.Result{}, vnpay.ErrInvalidSignature)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/vnpay/ipn?vnp_TxnRef=x&vnp_SecureHash=bad", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"RspCode":"97","Message":"Invalid Checksum"}`, w.Body.String())
}
