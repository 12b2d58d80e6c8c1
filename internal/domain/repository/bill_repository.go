package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	// GetByID returns the bill with its items, or nil when absent
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetAll(ctx context.Context) ([]entity.Bill, error)
	GetByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Bill, error)
	// Update replaces the stored bill, items included
	Update(ctx context.Context, bill *entity.Bill) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BillStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	// NextSequence returns the next bill number sequence for the given year
	NextSequence(ctx context.Context, year int) (int, error)
}
