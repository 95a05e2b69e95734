package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeInvoice = "Invoice"
	AggregateTypePayment = "Payment"
)

// Event type constants
const (
	EventTypeInvoiceCreated  = "InvoiceCreated"
	EventTypeInvoicePaid     = "InvoicePaid"
	EventTypePaymentRecorded = "PaymentRecorded"
)

// InvoiceCreatedEvent is published when the allocation engine creates an invoice
type InvoiceCreatedEvent struct {
	shared.BaseDomainEvent
	InvoiceID uuid.UUID       `json:"invoice_id"`
	RentalID  uuid.UUID       `json:"rental_id"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// NewInvoiceCreatedEvent creates a new InvoiceCreatedEvent
func NewInvoiceCreatedEvent(inv *Invoice) *InvoiceCreatedEvent {
	return &InvoiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceCreated, AggregateTypeInvoice, inv.ID),
		InvoiceID:       inv.ID,
		RentalID:        inv.RentalID,
		Month:           inv.Month,
		Year:            inv.Year,
		TotalCost:       inv.TotalCost,
	}
}

// InvoicePaidEvent is published when reconciliation marks an invoice paid
type InvoicePaidEvent struct {
	shared.BaseDomainEvent
	InvoiceID uuid.UUID  `json:"invoice_id"`
	RentalID  uuid.UUID  `json:"rental_id"`
	PaidAt    *time.Time `json:"paid_at"`
}

// NewInvoicePaidEvent creates a new InvoicePaidEvent
func NewInvoicePaidEvent(inv *Invoice) *InvoicePaidEvent {
	return &InvoicePaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoicePaid, AggregateTypeInvoice, inv.ID),
		InvoiceID:       inv.ID,
		RentalID:        inv.RentalID,
		PaidAt:          inv.PaidAt,
	}
}

// PaymentRecordedEvent is published when a payment is persisted
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PaymentID uuid.UUID       `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	RentalID  *uuid.UUID      `json:"rental_id,omitempty"`
	InvoiceID *uuid.UUID      `json:"invoice_id,omitempty"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(p *Payment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, AggregateTypePayment, p.ID),
		PaymentID:       p.ID,
		Amount:          p.Amount,
		Method:          p.Method,
		RentalID:        p.RentalID,
		InvoiceID:       p.InvoiceID,
	}
}
