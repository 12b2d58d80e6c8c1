package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/billdesk-api/internal/application/service"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List handles listing payments with statistics
// @Summary List Payments
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param method query string false "Payment method or all"
// @Success 200 {object} response.APIResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	list, err := h.paymentService.ListPayments(c.Request.Context(), &service.ListPaymentsInput{
		Search: c.Query("search"),
		Method: c.Query("method"),
		Params: pageParams(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", list)
}

// Get handles getting a single payment
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// Record handles recording a manual payment against a bill
// @Summary Record Payment
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body request.RecordPaymentRequest true "Payment"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var req request.RecordPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	date, ok := parseDateField(c, "date", req.Date)
	if !ok {
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		BillID: req.BillID,
		Amount: req.Amount,
		Method: req.Method,
		Date:   date,
		Notes:  req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}
