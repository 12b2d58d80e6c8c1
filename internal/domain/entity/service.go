package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service is an offering in the catalog that can be quoted and billed
type Service struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name        string               `gorm:"size:255;not null" json:"name"`
	Description string               `gorm:"type:text" json:"description"`
	Category    enum.ServiceCategory `gorm:"not null;default:5;index" json:"category"`
	Price       decimal.Decimal      `gorm:"type:decimal(15,2);not null;default:0" json:"price"`
	Unit        enum.ServiceUnit     `gorm:"not null;default:0" json:"unit"`
	IsActive    bool                 `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}

func (s *Service) Clone() *Service {
	out := *s
	return &out
}
