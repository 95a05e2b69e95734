package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/invoicing"
	"github.com/shopspring/decimal"
)

// GenerateInvoicesRequest asks the allocation engine to split a property's
// utility costs for one billing period across its active rentals.
type GenerateInvoicesRequest struct {
	PropertyID        uuid.UUID       `json:"property_id" binding:"required"`
	ElectricityBillID uuid.UUID       `json:"electricity_bill_id" binding:"required"`
	Month             int             `json:"month" binding:"required"`
	Year              int             `json:"year" binding:"required"`
	WaterCost         decimal.Decimal `json:"water_cost"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID         uuid.UUID       `json:"id"`
	RentalID   uuid.UUID       `json:"rental_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	WaterCost  decimal.Decimal `json:"water_cost"`
	EnergyCost decimal.Decimal `json:"energy_cost"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Status     string          `json:"status"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	ReceiptURL string          `json:"receipt_url,omitempty"`
	InvoiceURL string          `json:"invoice_url,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// InvoiceDetailResponse is an invoice plus its payment coverage, derived from
// the payment ledger at read time.
type InvoiceDetailResponse struct {
	InvoiceResponse
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

func toInvoiceResponse(inv *invoicing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         inv.ID,
		RentalID:   inv.RentalID,
		Month:      inv.Month,
		Year:       inv.Year,
		WaterCost:  inv.WaterCost,
		EnergyCost: inv.EnergyCost,
		TotalCost:  inv.TotalCost,
		Status:     inv.Status.String(),
		PaidAt:     inv.PaidAt,
		ReceiptURL: inv.ReceiptURL,
		InvoiceURL: inv.InvoiceURL,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

// RecordRentalPaymentRequest records money received against a rental (rent)
type RecordRentalPaymentRequest struct {
	RentalID   uuid.UUID       `json:"rental_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	PaidAt     time.Time       `json:"paid_at" binding:"required"`
	Method     string          `json:"method" binding:"required"`
	Reference  string          `json:"reference"`
	ReceiptURL string          `json:"receipt_url"`
}

// RecordServicePaymentRequest records money received against an invoice
type RecordServicePaymentRequest struct {
	InvoiceID  uuid.UUID       `json:"invoice_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	PaidAt     time.Time       `json:"paid_at" binding:"required"`
	Method     string          `json:"method" binding:"required"`
	Reference  string          `json:"reference"`
	ReceiptURL string          `json:"receipt_url"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID         uuid.UUID       `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     time.Time       `json:"paid_at"`
	Method     string          `json:"method"`
	RentalID   *uuid.UUID      `json:"rental_id,omitempty"`
	InvoiceID  *uuid.UUID      `json:"invoice_id,omitempty"`
	Reference  string          `json:"reference,omitempty"`
	ReceiptURL string          `json:"receipt_url,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ServicePaymentResult is the outcome of recording a service payment: the
// payment itself and the invoice state after reconciliation.
type ServicePaymentResult struct {
	Payment          PaymentResponse `json:"payment"`
	InvoiceStatus    string          `json:"invoice_status"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

func toPaymentResponse(p *invoicing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		Amount:     p.Amount,
		PaidAt:     p.PaidAt,
		Method:     p.Method.String(),
		RentalID:   p.RentalID,
		InvoiceID:  p.InvoiceID,
		Reference:  p.Reference,
		ReceiptURL: p.ReceiptURL,
		CreatedAt:  p.CreatedAt,
	}
}
