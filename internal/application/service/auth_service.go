package service

import (
	"context"
	"strings"

	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/sangkips/billdesk-api/pkg/utils"
)

// AuthService authenticates the administrator of the business
type AuthService struct {
	settingsService *SettingsService
	jwtManager      *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(settingsService *SettingsService, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		settingsService: settingsService,
		jwtManager:      jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Company      *entity.CompanyProfile
	AccessToken  string
	RefreshToken string
}

// Login checks the company email and administrator password and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(strings.TrimSpace(input.Email), settings.Company.Email) {
		return nil, apperror.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(input.Password, settings.Security.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issue(settings)
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	accountID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	settings, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings.ID != accountID {
		return nil, apperror.ErrInvalidToken
	}

	return s.issue(settings)
}

func (s *AuthService) issue(settings *entity.Settings) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(settings.ID, settings.Company.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(settings.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Company:      &settings.Company,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
