package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Invoice errors
var (
	ErrInvoiceNotFound      = shared.NewDomainError("INVOICE_NOT_FOUND", "Invoice not found")
	ErrInvoiceAccessDenied  = shared.NewDomainError("INVOICE_ACCESS_DENIED", "You do not have access to this invoice")
	ErrInvoiceAlreadyExists = shared.NewDomainError("INVOICE_ALREADY_EXISTS", "Invoices for this period have already been generated")
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusUnpaid || s == InvoiceStatusPaid
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice is a per-rental, per-period bill combining the rental's allocated
// share of the property's energy and water costs. An invoice is unique per
// (rental, month, year); that uniqueness is enforced at the store layer and
// re-checked by the allocation engine inside its generation transaction.
type Invoice struct {
	shared.BaseAggregateRoot
	RentalID   uuid.UUID
	Month      int
	Year       int
	WaterCost  decimal.Decimal
	EnergyCost decimal.Decimal
	TotalCost  decimal.Decimal
	Status     InvoiceStatus
	PaidAt     *time.Time
	ReceiptURL string
	InvoiceURL string

	// Rental is hydrated by read paths that need ownership checks; it is not
	// persisted as part of the invoice row.
	Rental *InvoiceRental
}

// InvoiceRental is the slice of tenancy data an invoice read needs for
// authorization: who the invoice ultimately belongs to.
type InvoiceRental struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// NewInvoice creates an UNPAID invoice for a rental's share of a billing
// period. TotalCost is derived from the two cost components; callers supply
// shares that already sum to the property totals.
func NewInvoice(rentalID uuid.UUID, period valueobject.BillingPeriod, energyCost, waterCost valueobject.Money) (*Invoice, error) {
	if rentalID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RENTAL", "Rental ID cannot be empty")
	}
	if energyCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INVOICE_AMOUNT", "Energy cost cannot be negative")
	}
	if waterCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INVOICE_AMOUNT", "Water cost cannot be negative")
	}

	total := energyCost.MustAdd(waterCost)

	inv := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RentalID:          rentalID,
		Month:             period.Month(),
		Year:              period.Year(),
		WaterCost:         waterCost.Amount(),
		EnergyCost:        energyCost.Amount(),
		TotalCost:         total.Amount(),
		Status:            InvoiceStatusUnpaid,
	}

	inv.AddDomainEvent(NewInvoiceCreatedEvent(inv))

	return inv, nil
}

// MarkPaid transitions the invoice to PAID. The transition happens exactly
// once; an invoice never returns to UNPAID. paidAt is the timestamp of the
// payment that completed the balance, not necessarily the latest payment.
func (inv *Invoice) MarkPaid(paidAt time.Time) error {
	if inv.Status == InvoiceStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "Invoice is already paid")
	}
	inv.Status = InvoiceStatusPaid
	inv.PaidAt = &paidAt
	inv.Touch()
	inv.IncrementVersion()
	inv.AddDomainEvent(NewInvoicePaidEvent(inv))
	return nil
}

// IsPaid reports whether the invoice has been fully paid
func (inv *Invoice) IsPaid() bool {
	return inv.Status == InvoiceStatusPaid
}

// BelongsToUser reports whether the hydrated rental belongs to the given
// user. Returns false when the rental relation was not loaded.
func (inv *Invoice) BelongsToUser(userID uuid.UUID) bool {
	return inv.Rental != nil && inv.Rental.UserID == userID
}

// TotalCostMoney returns the invoice total as a Money value
func (inv *Invoice) TotalCostMoney() valueobject.Money {
	return valueobject.NewMoneyPEN(inv.TotalCost)
}

// RemainingBalance returns how much of the invoice the given paid total
// leaves uncovered, floored at zero for overpayments.
func (inv *Invoice) RemainingBalance(amountPaid decimal.Decimal) decimal.Decimal {
	remaining := inv.TotalCost.Sub(amountPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
