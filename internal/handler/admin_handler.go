package handler

import (
	"net/http"

	"hospital-booking/internal/repository"
	"hospital-booking/internal/service"
	"hospital-booking/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService   *service.AdminService
	catalogService *service.CatalogService
}

func NewAdminHandler(adminService *service.AdminService, catalogService *service.CatalogService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		catalogService: catalogService,
	}
}

// Dashboard returns booking statistics for ?from=&to=
func (h *AdminHandler) Dashboard(c *gin.Context) {
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	d, err := h.adminService.Dashboard(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, d)
}

// Appointments lists every appointment matching the query filters
func (h *AdminHandler) Appointments(c *gin.Context) {
	var f repository.AppointmentFilter
	var ok bool
	if f.DoctorID, ok = queryUint(c, "doctor_id"); !ok {
		return
	}
	if f.SpecialtyID, ok = queryUint(c, "specialty_id"); !ok {
		return
	}
	if f.Date, ok = queryDate(c, "date"); !ok {
		return
	}
	if f.Limit, ok = queryInt(c, "limit"); !ok {
		return
	}
	f.Status = c.Query("status")

	appts, err := h.adminService.ListAppointments(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"appointments": appts,
		"count":        len(appts),
	})
}

func (h *AdminHandler) AuditLogs(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	logs, err := h.adminService.ListAuditLogs(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"logs":  logs,
		"count": len(logs),
	})
}

// Doctors lists doctors including inactive ones, optionally by specialty
func (h *AdminHandler) Doctors(c *gin.Context) {
	specialtyID, ok := queryUint(c, "specialty_id")
	if !ok {
		return
	}
	doctors, err := h.catalogService.ListDoctors(c.Request.Context(), specialtyID, false)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

func (h *AdminHandler) CreateDoctor(c *gin.Context) {
	var req service.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	doctor, err := h.adminService.CreateDoctor(c.Request.Context(), req, currentUser(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, doctor, "")
}

func (h *AdminHandler) UpdateDoctor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	doctor, err := h.adminService.UpdateDoctor(c.Request.Context(), id, req, currentUser(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, doctor)
}

func (h *AdminHandler) DeactivateDoctor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeactivateDoctor(c.Request.Context(), id, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Doctor deactivated successfully")
}

// Schedules lists shifts filtered by ?doctor_id=&room_id=&from=&to=
func (h *AdminHandler) Schedules(c *gin.Context) {
	var f repository.ScheduleFilter
	var ok bool
	if f.DoctorID, ok = queryUint(c, "doctor_id"); !ok {
		return
	}
	if f.RoomID, ok = queryUint(c, "room_id"); !ok {
		return
	}
	if f.From, ok = queryDate(c, "from"); !ok {
		return
	}
	if f.To, ok = queryDate(c, "to"); !ok {
		return
	}
	schedules, err := h.adminService.ListSchedules(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"schedules": schedules,
		"count":     len(schedules),
	})
}

func (h *AdminHandler) CreateSchedule(c *gin.Context) {
	var in service.ScheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	schedule, err := h.adminService.CreateSchedule(c.Request.Context(), in, currentUser(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, schedule, "")
}

func (h *AdminHandler) UpdateSchedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in service.ScheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	schedule, err := h.adminService.UpdateSchedule(c.Request.Context(), id, in, currentUser(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, schedule)
}

func (h *AdminHandler) DeleteSchedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteSchedule(c.Request.Context(), id, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Schedule deleted successfully")
}
