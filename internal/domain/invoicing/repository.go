package invoicing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRepository is the persistence contract for invoices
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByIDWithRental hydrates the invoice's rental relation so callers
	// can run ownership checks.
	FindByIDWithRental(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByIDForUpdate locks the invoice row for the duration of the
	// surrounding transaction. Reconciliation uses it to serialize concurrent
	// payments against the same invoice.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByRentalIDs returns invoices for the rental set, optionally
	// filtered by status (nil = all).
	FindByRentalIDs(ctx context.Context, rentalIDs []uuid.UUID, status *InvoiceStatus) ([]Invoice, error)
	// ExistsForRentalPeriod reports whether any of the rentals already has an
	// invoice for the (month, year) period.
	ExistsForRentalPeriod(ctx context.Context, rentalIDs []uuid.UUID, month, year int) (bool, error)
	Save(ctx context.Context, invoice *Invoice) error
	// SaveAll persists a batch of invoices. Callers wrap it in a transaction
	// so a failing insert leaves no partial batch behind.
	SaveAll(ctx context.Context, invoices []*Invoice) error
}

// PaymentRepository is the persistence contract for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	// FindByInvoiceID returns the invoice's payments ordered by paid_at
	// descending. The ordering is part of the read contract.
	FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)
	// FindByRentalID returns the rental's payments ordered by paid_at descending.
	FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]Payment, error)
	// SumAmountByInvoiceID totals all payments recorded against the invoice.
	SumAmountByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
	Save(ctx context.Context, payment *Payment) error
}
