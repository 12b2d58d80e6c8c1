package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/billdesk-api/internal/application/service"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the business settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateCompany updates the company profile
func (h *SettingsHandler) UpdateCompany(c *gin.Context) {
	var req request.UpdateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.settingsService.UpdateCompany(c.Request.Context(), &service.UpdateCompanyInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Website: req.Website,
		TaxID:   req.TaxID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile updated successfully", company)
}

// UpdatePreferences updates currency and language
func (h *SettingsHandler) UpdatePreferences(c *gin.Context) {
	var req request.UpdatePreferencesRequest
	if !bindJSON(c, &req) {
		return
	}

	prefs, err := h.settingsService.UpdatePreferences(c.Request.Context(), &service.UpdatePreferencesInput{
		Currency: req.Currency,
		Language: req.Language,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preferences updated successfully", prefs)
}

// UpdateEmail changes the login email
func (h *SettingsHandler) UpdateEmail(c *gin.Context) {
	var req request.UpdateEmailRequest
	if !bindJSON(c, &req) {
		return
	}

	settings, err := h.settingsService.UpdateEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Email updated successfully", settings)
}

// ChangePassword changes the administrator password
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	var req request.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.settingsService.ChangePassword(c.Request.Context(), &service.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password changed successfully", nil)
}

// Reset restores the default settings
func (h *SettingsHandler) Reset(c *gin.Context) {
	settings, err := h.settingsService.ResetToDefaults(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings reset to defaults", settings)
}
