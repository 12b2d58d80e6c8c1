package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	domainRepo "github.com/sangkips/billdesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *gorm.DB) domainRepo.QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *quotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *quotationRepository) GetAll(ctx context.Context) ([]entity.Quotation, error) {
	var quotations []entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("created_at DESC").
		Find(&quotations).Error
	return quotations, err
}

func (r *quotationRepository) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Quotation, error) {
	var quotations []entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&quotations).Error
	return quotations, err
}

// Update saves the quotation and replaces its items in one transaction
func (r *quotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", quotation.ID).Delete(&entity.QuotationItem{}).Error; err != nil {
			return err
		}
		for i := range quotation.Items {
			quotation.Items[i].ID = uuid.Nil
			quotation.Items[i].QuotationID = quotation.ID
			quotation.Items[i].Position = i
		}
		if len(quotation.Items) > 0 {
			if err := tx.Create(&quotation.Items).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Items").Save(quotation).Error
	})
}

func (r *quotationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Quotation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *quotationRepository) MarkConverted(ctx context.Context, id, billID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Quotation{}).
		Where("id = ? AND bill_id IS NULL", id).
		Update("bill_id", billID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *quotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", id).Delete(&entity.QuotationItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Quotation{}, "id = ?", id).Error
	})
}
