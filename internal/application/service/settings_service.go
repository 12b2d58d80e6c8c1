package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/repository"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/sangkips/billdesk-api/pkg/utils"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// MinPasswordLength is the shortest accepted administrator password
const MinPasswordLength = 8

// SettingsService handles the business settings singleton
type SettingsService struct {
	settingsRepo  repository.SettingsRepository
	adminEmail    string
	adminPassword string
	now           func() time.Time

	// guards get-or-create of the singleton
	mu sync.Mutex
}

// NewSettingsService creates a new settings service. The admin credentials
// seed the settings record the first time it is created.
func NewSettingsService(settingsRepo repository.SettingsRepository, adminEmail, adminPassword string) *SettingsService {
	return &SettingsService{
		settingsRepo:  settingsRepo,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		now:           time.Now,
	}
}

// GetSettings retrieves the settings, creating defaults if none exist
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	if settings != nil {
		return settings, nil
	}

	settings = entity.DefaultSettings(s.adminEmail)
	if s.adminPassword != "" {
		hash, err := utils.HashPassword(s.adminPassword)
		if err != nil {
			return nil, err
		}
		settings.Security.PasswordHash = hash
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, storeError(err)
	}
	return settings, nil
}

// UpdateCompanyInput represents the company profile fields to merge
type UpdateCompanyInput struct {
	Name    *string `json:"name" validate:"omitempty,max=255"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Address *string `json:"address"`
	City    *string `json:"city" validate:"omitempty,max=100"`
	State   *string `json:"state" validate:"omitempty,max=100"`
	Country *string `json:"country" validate:"omitempty,max=100"`
	Website *string `json:"website" validate:"omitempty,max=255"`
	TaxID   *string `json:"tax_id" validate:"omitempty,max=100"`
}

// UpdateCompany merges the given fields into the company profile
func (s *SettingsService) UpdateCompany(ctx context.Context, input *UpdateCompanyInput) (*entity.CompanyProfile, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	company := &settings.Company
	setIf(&company.Name, input.Name)
	setIf(&company.Email, input.Email)
	setIf(&company.Phone, input.Phone)
	setIf(&company.Address, input.Address)
	setIf(&company.City, input.City)
	setIf(&company.State, input.State)
	setIf(&company.Country, input.Country)
	setIf(&company.Website, input.Website)
	setIf(&company.TaxID, input.TaxID)

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, storeError(err)
	}
	return company, nil
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// UpdatePreferencesInput represents the preferences to merge
type UpdatePreferencesInput struct {
	Currency *string `json:"currency"`
	Language *string `json:"language"`
}

// UpdatePreferences merges currency and language. The currency must be an
// ISO 4217 code and the language a BCP 47 tag; both are stored canonically.
func (s *SettingsService) UpdatePreferences(ctx context.Context, input *UpdatePreferencesInput) (*entity.Preferences, error) {
	var fieldErrors []apperror.FieldError
	var cur, lang string

	if input.Currency != nil {
		unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(*input.Currency)))
		if err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "currency", Message: "must be an ISO 4217 currency code"})
		} else {
			cur = unit.String()
		}
	}
	if input.Language != nil {
		tag, err := language.Parse(strings.TrimSpace(*input.Language))
		if err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "language", Message: "must be a valid language tag"})
		} else {
			lang = tag.String()
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if cur != "" {
		settings.Preferences.Currency = cur
	}
	if lang != "" {
		settings.Preferences.Language = lang
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, storeError(err)
	}
	return &settings.Preferences, nil
}

// UpdateEmail changes the company email, which is also the login email
func (s *SettingsService) UpdateEmail(ctx context.Context, email string) (*entity.Settings, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperror.NewFieldValidationError("email", "valid email address is required")
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings.Company.Email = email

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, storeError(err)
	}
	return settings, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ChangePassword replaces the administrator password after checking the current one
func (s *SettingsService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if len(input.NewPassword) < MinPasswordLength {
		return apperror.NewFieldValidationError("new_password", "must be at least 8 characters long")
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(input.CurrentPassword, settings.Security.PasswordHash) {
		return apperror.NewFieldValidationError("current_password", "is incorrect")
	}

	hash, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	changedAt := s.now()
	settings.Security.PasswordHash = hash
	settings.Security.PasswordChangedAt = &changedAt

	return storeError(s.settingsRepo.Save(ctx, settings))
}

// ResetToDefaults restores the default company profile and preferences.
// Credentials are kept so the administrator can still log in.
func (s *SettingsService) ResetToDefaults(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	defaults := entity.DefaultSettings(s.adminEmail)
	defaults.ID = settings.ID
	defaults.CreatedAt = settings.CreatedAt
	defaults.Security = settings.Security

	if err := s.settingsRepo.Save(ctx, defaults); err != nil {
		return nil, storeError(err)
	}
	return defaults, nil
}
