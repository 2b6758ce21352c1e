package handler

import (
	"net/http"

	"hospital-booking/internal/service"
	"hospital-booking/pkg/utils"

	"github.com/gin-gonic/gin"
)

// maxResultSize caps uploaded test result files.
const maxResultSize = 20 << 20

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

type PrescriptionRequest struct {
	Items []service.PrescriptionItemInput `json:"items" binding:"required,min=1,dive"`
	Notes string                          `json:"notes"`
}

type TestRequestInput struct {
	TestName string `json:"test_name" binding:"required"`
	Notes    string `json:"notes"`
}

// Schedules lists the doctor's shifts; defaults to the coming week
func (h *DoctorHandler) Schedules(c *gin.Context) {
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	schedules, err := h.doctorService.MySchedules(c.Request.Context(), currentUser(c).UserID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"schedules": schedules,
		"count":     len(schedules),
	})
}

// Queue lists the doctor's appointments of ?date= in queue order
func (h *DoctorHandler) Queue(c *gin.Context) {
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	appts, err := h.doctorService.QueueForDate(c.Request.Context(), currentUser(c).UserID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"appointments": appts,
		"count":        len(appts),
	})
}

func (h *DoctorHandler) Record(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	rec, err := h.doctorService.Record(c.Request.Context(), currentUser(c).UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, rec)
}

func (h *DoctorHandler) Examination(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in service.ExaminationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	exam, err := h.doctorService.StartExamination(c.Request.Context(), currentUser(c).UserID, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, exam)
}

func (h *DoctorHandler) Prescribe(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req PrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	p, err := h.doctorService.AddPrescription(c.Request.Context(), currentUser(c).UserID, id, req.Items, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, p, "")
}

func (h *DoctorHandler) RequestTest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in TestRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	t, err := h.doctorService.RequestTest(c.Request.Context(), currentUser(c).UserID, id, in.TestName, in.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, t, "")
}

// UploadResult accepts the result file of a test request as multipart
// field "file"
func (h *DoctorHandler) UploadResult(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResultSize+1<<20)
	header, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "A result file is required")
		return
	}
	if header.Size > maxResultSize {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "File too large")
		return
	}
	f, err := header.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Unreadable file")
		return
	}
	defer f.Close()

	t, err := h.doctorService.UploadTestResult(c.Request.Context(), currentUser(c).UserID, id, service.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, t)
}

func (h *DoctorHandler) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	appt, err := h.doctorService.CompleteAppointment(c.Request.Context(), currentUser(c).UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, appt)
}

// Medications searches the formulary with ?q=
func (h *DoctorHandler) Medications(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	meds, err := h.doctorService.SearchMedications(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{
		"medications": meds,
		"count":       len(meds),
	})
}
