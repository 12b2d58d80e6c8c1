package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/application/service"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/billdesk-api/internal/presentation/http/middleware"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/sangkips/billdesk-api/pkg/pagination"
)

// GetAccountID extracts the authenticated account ID from the Gin context
func GetAccountID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get(middleware.AccountIDKey)
	if !exists {
		return nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// parseID reads the :id path parameter, answering 400 when it is not a UUID
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads ?page and ?per_page
func pageParams(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil {
		params.PerPage = perPage
	}
	params.Validate()
	return params
}

// bindJSON decodes the request body, answering 400 on malformed input
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func toLineItemInputs(items []request.LineItemRequest) []service.LineItemInput {
	if items == nil {
		return nil
	}
	inputs := make([]service.LineItemInput, len(items))
	for i, item := range items {
		inputs[i] = service.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		}
	}
	return inputs
}

// parseDateField parses an optional date body field, answering 422 when malformed
func parseDateField(c *gin.Context, field string, value *string) (*time.Time, bool) {
	t, err := request.ParseDate(value)
	if err != nil {
		response.Error(c, apperror.NewFieldValidationError(field, err.Error()))
		return nil, false
	}
	return t, true
}
