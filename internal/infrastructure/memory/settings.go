package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
)

type settingsRepository struct {
	s *Store
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.settings == nil {
		return nil, nil
	}
	return r.s.settings.Clone(), nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	r.s.stamp(&settings.CreatedAt, &settings.UpdatedAt)
	r.s.settings = settings.Clone()
	return nil
}

type idempotencyRepository struct {
	s *Store
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, accountID uuid.UUID) (*entity.IdempotencyKey, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ikey, ok := r.s.idempotency[key]
	if !ok || ikey.AccountID != accountID {
		return nil, nil
	}
	return &ikey, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}
	r.s.stamp(&ikey.CreatedAt, nil)
	r.s.idempotency[ikey.Key] = *ikey
	return nil
}

func (r *idempotencyRepository) Reserve(ctx context.Context, ikey *entity.IdempotencyKey, now time.Time) (bool, error) {
	if err := r.s.wait(ctx); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if existing, ok := r.s.idempotency[ikey.Key]; ok && !existing.IsExpired(now) {
		return false, nil
	}
	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}
	r.s.stamp(&ikey.CreatedAt, nil)
	r.s.idempotency[ikey.Key] = *ikey
	return true, nil
}

func (r *idempotencyRepository) Complete(ctx context.Context, key string, accountID uuid.UUID, code int, body string) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ikey, ok := r.s.idempotency[key]
	if !ok || ikey.AccountID != accountID {
		return nil
	}
	ikey.ResponseCode = code
	ikey.ResponseBody = body
	r.s.idempotency[key] = ikey
	return nil
}

func (r *idempotencyRepository) Release(ctx context.Context, key string, accountID uuid.UUID) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if ikey, ok := r.s.idempotency[key]; ok && ikey.AccountID == accountID {
		delete(r.s.idempotency, key)
	}
	return nil
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for key, ikey := range r.s.idempotency {
		if ikey.IsExpired(now) {
			delete(r.s.idempotency, key)
		}
	}
	return nil
}
