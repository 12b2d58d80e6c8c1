package repository

// Store groups the repositories of one backend
type Store interface {
	Clients() ClientRepository
	Bills() BillRepository
	Payments() PaymentRepository
	Quotations() QuotationRepository
	Services() ServiceRepository
	Settings() SettingsRepository
	Idempotency() IdempotencyRepository
	Close() error
}
