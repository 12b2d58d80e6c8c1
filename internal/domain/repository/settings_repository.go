package repository

import (
	"context"

	"github.com/sangkips/billdesk-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the settings singleton
type SettingsRepository interface {
	// Get returns the stored settings, or nil when none were saved yet
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}
