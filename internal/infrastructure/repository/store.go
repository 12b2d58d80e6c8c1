package repository

import (
	domainRepo "github.com/sangkips/billdesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

// Store is the PostgreSQL-backed Entity Store
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open database connection
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var _ domainRepo.Store = (*Store)(nil)

func (s *Store) Clients() domainRepo.ClientRepository         { return NewClientRepository(s.db) }
func (s *Store) Bills() domainRepo.BillRepository             { return NewBillRepository(s.db) }
func (s *Store) Payments() domainRepo.PaymentRepository       { return NewPaymentRepository(s.db) }
func (s *Store) Quotations() domainRepo.QuotationRepository   { return NewQuotationRepository(s.db) }
func (s *Store) Services() domainRepo.ServiceRepository       { return NewServiceRepository(s.db) }
func (s *Store) Settings() domainRepo.SettingsRepository      { return NewSettingsRepository(s.db) }
func (s *Store) Idempotency() domainRepo.IdempotencyRepository { return NewIdempotencyRepository(s.db) }

// Close releases the underlying connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
