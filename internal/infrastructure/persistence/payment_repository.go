package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/invoicing"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPaymentRepository implements invoicing.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID. Returns (nil, nil) when no row matches.
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Payment, error) {
	var model models.PaymentModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByInvoiceID finds the invoice's payments ordered by paid_at descending
func (r *GormPaymentRepository) FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]invoicing.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := conn(ctx, r.db).
		Where("invoice_id = ?", invoiceID).
		Order("paid_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]invoicing.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// FindByRentalID finds the rental's service payments ordered by paid_at descending
func (r *GormPaymentRepository) FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]invoicing.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := conn(ctx, r.db).
		Where("rental_id = ?", rentalID).
		Order("paid_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]invoicing.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// SumAmountByInvoiceID totals all payments recorded against the invoice
func (r *GormPaymentRepository) SumAmountByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := conn(ctx, r.db).
		Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("invoice_id = ?", invoiceID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *invoicing.Payment) error {
	var model models.PaymentModel
	model.FromDomain(payment)
	return conn(ctx, r.db).Save(&model).Error
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ invoicing.PaymentRepository = (*GormPaymentRepository)(nil)
