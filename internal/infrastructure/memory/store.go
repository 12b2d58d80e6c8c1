// Package memory is an in-process Entity Store backend. It owns its
// collections explicitly, hands out copies so callers never alias stored
// records, and can simulate the latency of a hosted backend.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sangkips/billdesk-api/internal/domain/entity"
	domainRepo "github.com/sangkips/billdesk-api/internal/domain/repository"
)

// Store holds every collection of the memory backend
type Store struct {
	mu      sync.RWMutex
	latency time.Duration
	now     func() time.Time
	failure error

	clients     []entity.Client
	bills       []entity.Bill
	payments    []entity.Payment
	quotations  []entity.Quotation
	services    []entity.Service
	settings    *entity.Settings
	idempotency map[string]entity.IdempotencyKey
}

// Option configures a Store
type Option func(*Store)

// WithLatency delays every call by d, or until the context is done
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithClock sets the clock used for created and updated timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		idempotency: make(map[string]entity.IdempotencyKey),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ domainRepo.Store = (*Store)(nil)

func (s *Store) Clients() domainRepo.ClientRepository         { return &clientRepository{s: s} }
func (s *Store) Bills() domainRepo.BillRepository             { return &billRepository{s: s} }
func (s *Store) Payments() domainRepo.PaymentRepository       { return &paymentRepository{s: s} }
func (s *Store) Quotations() domainRepo.QuotationRepository   { return &quotationRepository{s: s} }
func (s *Store) Services() domainRepo.ServiceRepository       { return &serviceRepository{s: s} }
func (s *Store) Settings() domainRepo.SettingsRepository      { return &settingsRepository{s: s} }
func (s *Store) Idempotency() domainRepo.IdempotencyRepository { return &idempotencyRepository{s: s} }

// Close is a no-op for the memory backend
func (s *Store) Close() error { return nil }

// SetFailure makes every subsequent call return err until cleared with nil
func (s *Store) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// wait applies the configured latency and reports an injected failure
func (s *Store) wait(ctx context.Context) error {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failure
}

func (s *Store) stamp(created, updated *time.Time) {
	now := s.now()
	if created != nil && created.IsZero() {
		*created = now
	}
	if updated != nil {
		*updated = now
	}
}
