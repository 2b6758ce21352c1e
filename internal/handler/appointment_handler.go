package handler

import (
	"fmt"
	"net/http"
	"time"

	"hospital-booking/internal/service"
	"hospital-booking/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	bookingService *service.BookingService
	paymentService *service.PaymentService
}

func NewAppointmentHandler(bookingService *service.BookingService, paymentService *service.PaymentService) *AppointmentHandler {
	return &AppointmentHandler{
		bookingService: bookingService,
		paymentService: paymentService,
	}
}

type BookAppointmentRequest struct {
	SpecialtyID uint   `json:"specialty_id" binding:"required"`
	ServiceID   *uint  `json:"service_id"`
	DoctorID    *uint  `json:"doctor_id"`
	Date        string `json:"appointment_date" binding:"required"`
	Reason      string `json:"reason" binding:"max=1000"`
}

type VerifyRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// Book reserves the next slot in the requested specialty (patient only)
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "appointment_date must be YYYY-MM-DD")
		return
	}

	appt, err := h.bookingService.Book(c.Request.Context(), service.BookingRequest{
		UserID:      currentUser(c).UserID,
		SpecialtyID: req.SpecialtyID,
		ServiceID:   req.ServiceID,
		DoctorID:    req.DoctorID,
		Date:        date,
		Reason:      req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, appt, "Appointment reserved. Check your email for the verification code.")
}

// AvailableDates lists the dates with open slots in a specialty
func (h *AppointmentHandler) AvailableDates(c *gin.Context) {
	specialtyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	doctorID, ok := queryUint(c, "doctor_id")
	if !ok {
		return
	}
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	days, ok := queryInt(c, "days")
	if !ok {
		return
	}

	dates, err := h.bookingService.AvailableDates(c.Request.Context(), specialtyID, doctorID, from, days)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}
	utils.SuccessResponse(c, gin.H{
		"dates": out,
		"count": len(out),
	})
}

// List returns the caller's appointments, optionally filtered by ?status=
func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.bookingService.ListForPatient(c.Request.Context(), currentUser(c).UserID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"appointments": appts,
		"count":        len(appts),
	})
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	appt, err := h.bookingService.GetForPatient(c.Request.Context(), currentUser(c).UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, appt)
}

// Record returns examination, prescriptions and test results of a visit
func (h *AppointmentHandler) Record(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	rec, err := h.bookingService.RecordForPatient(c.Request.Context(), currentUser(c).UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, rec)
}

func (h *AppointmentHandler) Verify(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "A 6-digit code is required")
		return
	}
	appt, err := h.bookingService.VerifyEmail(c.Request.Context(), currentUser(c).UserID, id, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, appt)
}

func (h *AppointmentHandler) ResendVerification(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.bookingService.ResendVerification(c.Request.Context(), currentUser(c).UserID, id); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Verification code sent")
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}
	appt, err := h.bookingService.Cancel(c.Request.Context(), currentUser(c), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, appt)
}

// CreatePayment starts a VNPay checkout for a verified appointment
func (h *AppointmentHandler) CreatePayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	link, err := h.paymentService.CreatePayment(c.Request.Context(), currentUser(c).UserID, id, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, link)
}

// Receipt downloads the PDF receipt of a paid appointment
func (h *AppointmentHandler) Receipt(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	pdf, err := h.paymentService.Receipt(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
