package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/sangkips/billdesk-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGetSettingsCreatesDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", first.Company.Email)
	assert.Equal(t, "USD", first.Preferences.Currency)
	assert.True(t, utils.CheckPasswordHash("initial-pass", first.Security.PasswordHash))

	second, err := f.settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpdateCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	company, err := f.settings.UpdateCompany(ctx, &UpdateCompanyInput{Name: strPtr("Studio 9"), City: strPtr("Nairobi")})
	require.NoError(t, err)
	assert.Equal(t, "Studio 9", company.Name)
	assert.Equal(t, "owner@example.com", company.Email)

	_, err = f.settings.UpdateCompany(ctx, &UpdateCompanyInput{Email: strPtr("broken")})
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdatePreferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	prefs, err := f.settings.UpdatePreferences(ctx, &UpdatePreferencesInput{Currency: strPtr(" kes "), Language: strPtr("fr")})
	require.NoError(t, err)
	assert.Equal(t, "KES", prefs.Currency)
	assert.Equal(t, "fr", prefs.Language)

	_, err = f.settings.UpdatePreferences(ctx, &UpdatePreferencesInput{Currency: strPtr("XYZW"), Language: strPtr("not a tag!")})
	require.True(t, apperror.IsValidation(err))
	assert.Len(t, apperror.GetAppError(err).Errors, 2)

	settings, err := f.settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "KES", settings.Preferences.Currency)
}

func TestUpdateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	settings, err := f.settings.UpdateEmail(ctx, " new@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", settings.Company.Email)

	_, err = f.settings.UpdateEmail(ctx, "")
	assert.True(t, apperror.IsValidation(err))
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.settings.ChangePassword(ctx, &ChangePasswordInput{CurrentPassword: "wrong-pass", NewPassword: "another-pass"})
	require.True(t, apperror.IsValidation(err))
	assert.Equal(t, "current_password", apperror.GetAppError(err).Errors[0].Field)

	err = f.settings.ChangePassword(ctx, &ChangePasswordInput{CurrentPassword: "initial-pass", NewPassword: "short"})
	require.True(t, apperror.IsValidation(err))
	assert.Equal(t, "new_password", apperror.GetAppError(err).Errors[0].Field)

	require.NoError(t, f.settings.ChangePassword(ctx, &ChangePasswordInput{CurrentPassword: "initial-pass", NewPassword: "another-pass"}))

	settings, err := f.settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("another-pass", settings.Security.PasswordHash))
	require.NotNil(t, settings.Security.PasswordChangedAt)
	assert.Equal(t, testNow, *settings.Security.PasswordChangedAt)
}

func TestResetToDefaultsKeepsCredentials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.settings.UpdateCompany(ctx, &UpdateCompanyInput{Name: strPtr("Studio 9")})
	require.NoError(t, err)
	require.NoError(t, f.settings.ChangePassword(ctx, &ChangePasswordInput{CurrentPassword: "initial-pass", NewPassword: "another-pass"}))
	before, err := f.settings.GetSettings(ctx)
	require.NoError(t, err)

	reset, err := f.settings.ResetToDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.ID, reset.ID)
	assert.Equal(t, "My Business", reset.Company.Name)
	assert.True(t, utils.CheckPasswordHash("another-pass", reset.Security.PasswordHash))
}

func TestLoginAndRefresh(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	auth := NewAuthService(f.settings, utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour))

	_, err := auth.Login(ctx, &LoginInput{Email: "owner@example.com", Password: "nope-nope"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = auth.Login(ctx, &LoginInput{Email: "someone@example.com", Password: "initial-pass"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	out, err := auth.Login(ctx, &LoginInput{Email: "OWNER@example.com", Password: "initial-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "owner@example.com", out.Company.Email)

	refreshed, err := auth.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = auth.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)

	other := NewAuthService(f.settings, utils.NewJWTManager("other-secret", time.Hour, time.Hour))
	_, err = other.RefreshToken(ctx, out.RefreshToken)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
