package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/invoicing"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for invoices. Uniqueness per rental
// and billing period is enforced by the composite unique index; the
// generation engine relies on it as the last line of defense against
// duplicate runs.
type InvoiceModel struct {
	AggregateModel
	RentalID   uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_invoices_rental_period"`
	Month      int             `gorm:"not null;uniqueIndex:idx_invoices_rental_period"`
	Year       int             `gorm:"not null;uniqueIndex:idx_invoices_rental_period"`
	WaterCost  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EnergyCost decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalCost  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	PaidAt     *time.Time
	ReceiptURL string `gorm:"type:varchar(500)"`
	InvoiceURL string `gorm:"type:varchar(500)"`

	Rental *RentalModel `gorm:"foreignKey:RentalID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice. When the
// rental relation was loaded, the ownership slice is hydrated alongside.
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	inv := &invoicing.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		RentalID:          m.RentalID,
		Month:             m.Month,
		Year:              m.Year,
		WaterCost:         m.WaterCost,
		EnergyCost:        m.EnergyCost,
		TotalCost:         m.TotalCost,
		Status:            invoicing.InvoiceStatus(m.Status),
		PaidAt:            m.PaidAt,
		ReceiptURL:        m.ReceiptURL,
		InvoiceURL:        m.InvoiceURL,
	}
	if m.Rental != nil {
		inv.Rental = &invoicing.InvoiceRental{
			ID:         m.Rental.ID,
			UserID:     m.Rental.UserID,
			PropertyID: m.Rental.PropertyID,
		}
	}
	return inv
}

// FromDomain populates the persistence model from a domain Invoice. The
// rental relation is read-only and never written back.
func (m *InvoiceModel) FromDomain(inv *invoicing.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.RentalID = inv.RentalID
	m.Month = inv.Month
	m.Year = inv.Year
	m.WaterCost = inv.WaterCost
	m.EnergyCost = inv.EnergyCost
	m.TotalCost = inv.TotalCost
	m.Status = inv.Status.String()
	m.PaidAt = inv.PaidAt
	m.ReceiptURL = inv.ReceiptURL
	m.InvoiceURL = inv.InvoiceURL
	m.Rental = nil
}

// PaymentModel is the persistence model for payments. A payment targets
// either a rental (service payment context) or an invoice, never both; the
// domain constructor guarantees exclusivity.
type PaymentModel struct {
	AggregateModel
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAt     time.Time       `gorm:"not null;index"`
	Method     string          `gorm:"type:varchar(20);not null"`
	RentalID   *uuid.UUID      `gorm:"type:uuid;index"`
	InvoiceID  *uuid.UUID      `gorm:"type:uuid;index"`
	Reference  string          `gorm:"type:varchar(200)"`
	ReceiptURL string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *invoicing.Payment {
	return &invoicing.Payment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Amount:            m.Amount,
		PaidAt:            m.PaidAt,
		Method:            invoicing.PaymentMethod(m.Method),
		RentalID:          m.RentalID,
		InvoiceID:         m.InvoiceID,
		Reference:         m.Reference,
		ReceiptURL:        m.ReceiptURL,
	}
}

// FromDomain populates the persistence model from a domain Payment
func (m *PaymentModel) FromDomain(p *invoicing.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Amount = p.Amount
	m.PaidAt = p.PaidAt
	m.Method = string(p.Method)
	m.RentalID = p.RentalID
	m.InvoiceID = p.InvoiceID
	m.Reference = p.Reference
	m.ReceiptURL = p.ReceiptURL
}
