package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
)

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetAll(ctx context.Context) ([]entity.Quotation, error)
	GetByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkConverted links the quotation to billID unless it is already linked.
	// It reports false when another bill was linked first.
	MarkConverted(ctx context.Context, id, billID uuid.UUID) (bool, error)
}
