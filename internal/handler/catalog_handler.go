package handler

import (
	"net/http"

	"hospital-booking/internal/models"
	"hospital-booking/internal/service"
	"hospital-booking/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves specialties, services, doctors and rooms. The list
// endpoints are public; writes are mounted under /admin.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// includeInactive lets admins see disabled records with ?all=true.
func includeInactive(c *gin.Context) bool {
	return c.Query("all") == "true" && currentUser(c).IsAdmin()
}

// GetSpecialties lists specialties
func (h *CatalogHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.catalogService.ListSpecialties(c.Request.Context(), !includeInactive(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"specialties": specialties,
		"count":       len(specialties),
	})
}

// GetSpecialty retrieves a specific specialty by ID
func (h *CatalogHandler) GetSpecialty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	specialty, err := h.catalogService.GetSpecialty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, specialty)
}

// GetSpecialtyServices lists the services of a specialty
func (h *CatalogHandler) GetSpecialtyServices(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	services, err := h.catalogService.ListServices(c.Request.Context(), id, !includeInactive(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// GetSpecialtyDoctors lists the doctors of a specialty
func (h *CatalogHandler) GetSpecialtyDoctors(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	doctors, err := h.catalogService.ListDoctors(c.Request.Context(), id, !includeInactive(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// CreateSpecialty creates a new specialty (admin only)
func (h *CatalogHandler) CreateSpecialty(c *gin.Context) {
	var specialty models.Specialty
	if err := c.ShouldBindJSON(&specialty); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	specialty.ID = 0

	if err := h.catalogService.CreateSpecialty(c.Request.Context(), &specialty, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, specialty, "")
}

// UpdateSpecialty updates an existing specialty (admin only)
func (h *CatalogHandler) UpdateSpecialty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var specialty models.Specialty
	if err := c.ShouldBindJSON(&specialty); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	specialty.ID = id

	if err := h.catalogService.UpdateSpecialty(c.Request.Context(), &specialty, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, specialty)
}

// DeleteSpecialty removes a specialty nothing depends on (admin only)
func (h *CatalogHandler) DeleteSpecialty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteSpecialty(c.Request.Context(), id, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Specialty deleted successfully")
}

// GetServices lists services, optionally of one specialty (admin only)
func (h *CatalogHandler) GetServices(c *gin.Context) {
	specialtyID, ok := queryUint(c, "specialty_id")
	if !ok {
		return
	}
	services, err := h.catalogService.ListServices(c.Request.Context(), specialtyID, false)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// CreateService creates a new service (admin only)
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	svc.ID = 0

	if err := h.catalogService.CreateService(c.Request.Context(), &svc, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, svc, "")
}

// UpdateService updates an existing service (admin only)
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	svc.ID = id

	if err := h.catalogService.UpdateService(c.Request.Context(), &svc, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, svc)
}

// DeleteService removes an unused service (admin only)
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteService(c.Request.Context(), id, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Service deleted successfully")
}

// GetRooms lists rooms, optionally of one specialty (admin only)
func (h *CatalogHandler) GetRooms(c *gin.Context) {
	specialtyID, ok := queryUint(c, "specialty_id")
	if !ok {
		return
	}
	rooms, err := h.catalogService.ListRooms(c.Request.Context(), specialtyID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// GetRoom retrieves a specific room by ID (admin only)
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := h.catalogService.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, room)
}

// CreateRoom creates a new room (admin only)
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if room.SpecialtyID == 0 || room.RoomCode == "" || room.RoomName == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "specialty_id, room_code, and room_name are required")
		return
	}
	room.ID = 0

	if err := h.catalogService.CreateRoom(c.Request.Context(), &room, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, room, "")
}

// UpdateRoom updates an existing room (admin only)
func (h *CatalogHandler) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	room.ID = id

	if err := h.catalogService.UpdateRoom(c.Request.Context(), &room, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, room)
}

// DeleteRoom soft deletes a room (admin only)
func (h *CatalogHandler) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteRoom(c.Request.Context(), id, currentUser(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Room deleted successfully")
}
