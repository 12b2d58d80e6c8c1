package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/billdesk-api/internal/application/service"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/response"
)

// ServiceHandler handles requests for the service catalog
type ServiceHandler struct {
	catalogService *service.CatalogService
}

// NewServiceHandler creates a new service catalog handler
func NewServiceHandler(catalogService *service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// List handles listing the catalog with statistics
// @Summary List Services
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search term"
// @Param category query string false "Category or all"
// @Param status query string false "active, inactive or all"
// @Success 200 {object} response.APIResponse
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	list, err := h.catalogService.ListServices(c.Request.Context(), &service.ListServicesInput{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Params:   pageParams(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved successfully", list)
}

// Active handles listing active services, optionally of one category
func (h *ServiceHandler) Active(c *gin.Context) {
	var (
		services interface{}
		err      error
	)
	if category := c.Query("category"); category != "" {
		services, err = h.catalogService.ListServicesByCategory(c.Request.Context(), category)
	} else {
		services, err = h.catalogService.ListActiveServices(c.Request.Context())
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved successfully", services)
}

// Get handles getting a single service
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", svc)
}

// Create handles adding a service to the catalog
func (h *ServiceHandler) Create(c *gin.Context) {
	var req request.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), &service.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", svc)
}

// Update handles updating a service
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request.UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), &service.UpdateServiceInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        req.Unit,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", svc)
}

// Toggle handles flipping whether a service is offered
func (h *ServiceHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	svc, err := h.catalogService.ToggleServiceActive(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service availability updated", svc)
}

// Delete handles removing a service
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service deleted successfully", nil)
}
