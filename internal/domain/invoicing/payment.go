package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ErrPaymentNotFound is returned when a payment cannot be located
var ErrPaymentNotFound = shared.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found")

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodYape         PaymentMethod = "YAPE"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodYape, PaymentMethodCash, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Payment is an append-only record of money received. A payment targets
// exactly one of a rental (rent, independent of invoicing) or an invoice
// (utility charges); the two constructors enforce that exclusivity.
type Payment struct {
	shared.BaseAggregateRoot
	Amount     decimal.Decimal
	PaidAt     time.Time
	Method     PaymentMethod
	RentalID   *uuid.UUID
	InvoiceID  *uuid.UUID
	Reference  string
	ReceiptURL string
}

// NewRentalPayment records a payment applied directly against a rental
func NewRentalPayment(rentalID uuid.UUID, amount valueobject.Money, paidAt time.Time, method PaymentMethod, reference, receiptURL string) (*Payment, error) {
	if rentalID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RENTAL", "Rental ID cannot be empty")
	}
	p, err := newPayment(amount, paidAt, method, reference, receiptURL)
	if err != nil {
		return nil, err
	}
	p.RentalID = &rentalID
	p.AddDomainEvent(NewPaymentRecordedEvent(p))
	return p, nil
}

// NewServicePayment records a payment applied against a specific invoice
func NewServicePayment(invoiceID uuid.UUID, amount valueobject.Money, paidAt time.Time, method PaymentMethod, reference, receiptURL string) (*Payment, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}
	p, err := newPayment(amount, paidAt, method, reference, receiptURL)
	if err != nil {
		return nil, err
	}
	p.InvoiceID = &invoiceID
	p.AddDomainEvent(NewPaymentRecordedEvent(p))
	return p, nil
}

func newPayment(amount valueobject.Money, paidAt time.Time, method PaymentMethod, reference, receiptURL string) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_AMOUNT", "Payment amount must be positive")
	}
	if paidAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date is required")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Amount:            amount.Amount(),
		PaidAt:            paidAt,
		Method:            method,
		Reference:         reference,
		ReceiptURL:        receiptURL,
	}, nil
}

// IsRentalPayment reports whether the payment targets a rental
func (p *Payment) IsRentalPayment() bool {
	return p.RentalID != nil
}

// IsServicePayment reports whether the payment targets an invoice
func (p *Payment) IsServicePayment() bool {
	return p.InvoiceID != nil
}

// AmountMoney returns the payment amount as a Money value
func (p *Payment) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyPEN(p.Amount)
}

// SumAmounts totals a set of payment amounts
func SumAmounts(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
