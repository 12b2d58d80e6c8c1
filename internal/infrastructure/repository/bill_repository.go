package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	domainRepo "github.com/sangkips/billdesk-api/internal/domain/repository"
	"github.com/sangkips/billdesk-api/pkg/utils"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) GetAll(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("created_at ASC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&bills).Error
	return bills, err
}

// Update saves the bill and replaces its items in one transaction
func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", bill.ID).Delete(&entity.BillItem{}).Error; err != nil {
			return err
		}
		for i := range bill.Items {
			bill.Items[i].ID = uuid.Nil
			bill.Items[i].BillID = bill.ID
			bill.Items[i].Position = i
		}
		if len(bill.Items) > 0 {
			if err := tx.Create(&bill.Items).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Items").Save(bill).Error
	})
}

func (r *billRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BillStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Bill{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&entity.BillItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Bill{}, "id = ?", id).Error
	})
}

func (r *billRepository) NextSequence(ctx context.Context, year int) (int, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&entity.Bill{}).
		Where("bill_number LIKE ?", utils.BillNumberPrefix(year)+"%").
		Pluck("bill_number", &numbers).Error
	if err != nil {
		return 0, err
	}
	return utils.NextBillSequence(numbers, year), nil
}
