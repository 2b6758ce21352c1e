package handler

import (
	"net/http"

	"hospital-booking/internal/service"
	"hospital-booking/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler receives the VNPay callbacks. Both endpoints are public;
// authenticity comes from the signature.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Return handles the customer's redirect back from the gateway
func (h *PaymentHandler) Return(c *gin.Context) {
	out, err := h.paymentService.HandleReturn(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, out)
}

// IPN handles the gateway's server-to-server notification. VNPay expects
// HTTP 200 with a RspCode body whatever the outcome.
func (h *PaymentHandler) IPN(c *gin.Context) {
	c.JSON(http.StatusOK, h.paymentService.HandleIPN(c.Request.Context(), c.Request.URL.Query()))
}
