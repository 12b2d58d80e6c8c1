package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/billdesk-api/internal/application/service"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/response"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService    *service.BillService
	paymentService *service.PaymentService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService, paymentService *service.PaymentService) *BillHandler {
	return &BillHandler{billService: billService, paymentService: paymentService}
}

// List handles listing bills
// @Summary List Bills
// @Description Get bills newest first, searchable by bill number or client name
// @Tags bills
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query string false "pending, paid, overdue or all"
// @Success 200 {object} response.APIResponse
// @Router /bills [get]
func (h *BillHandler) List(c *gin.Context) {
	result, err := h.billService.ListBills(c.Request.Context(), &service.ListBillsInput{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Params: pageParams(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles the bill detail view with payments and progress
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.billService.GetBillDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", detail)
}

// Create handles creating a bill
// @Summary Create Bill
// @Tags bills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateBillRequest true "Bill"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if !bindJSON(c, &req) {
		return
	}
	dueDate, ok := parseDateField(c, "due_date", req.DueDate)
	if !ok {
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		ClientID: req.ClientID,
		Items:    toLineItemInputs(req.Items),
		DueDate:  dueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Update handles replacing the items or due date of a bill
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request.UpdateBillRequest
	if !bindJSON(c, &req) {
		return
	}
	dueDate, ok := parseDateField(c, "due_date", req.DueDate)
	if !ok {
		return
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), &service.UpdateBillInput{
		ID:      id,
		Items:   toLineItemInputs(req.Items),
		DueDate: dueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated successfully", bill)
}

// Delete handles deleting a bill
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill deleted successfully", nil)
}

// MarkAsPaid handles marking a bill as paid
func (h *BillHandler) MarkAsPaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bill, err := h.billService.MarkAsPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill marked as paid", bill)
}

// Payments handles listing the payments of a bill
func (h *BillHandler) Payments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListBillPayments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}
