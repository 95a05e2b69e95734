package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/invoicing"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements invoicing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID. Returns (nil, nil) when no row matches.
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDWithRental finds an invoice by ID with its rental relation loaded,
// so callers can run ownership checks on the result.
func (r *GormInvoiceRepository) FindByIDWithRental(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := conn(ctx, r.db).
		Preload("Rental").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds an invoice by ID with a row-level lock held for the
// duration of the surrounding transaction. Must be called inside a
// transaction; outside one the lock is released immediately.
func (r *GormInvoiceRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRentalIDs finds invoices for the rental set, optionally filtered by
// status, newest period first.
func (r *GormInvoiceRepository) FindByRentalIDs(ctx context.Context, rentalIDs []uuid.UUID, status *invoicing.InvoiceStatus) ([]invoicing.Invoice, error) {
	if len(rentalIDs) == 0 {
		return []invoicing.Invoice{}, nil
	}

	query := conn(ctx, r.db).
		Where("rental_id IN ?", rentalIDs)
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var invoiceModels []models.InvoiceModel
	if err := query.
		Order("year DESC, month DESC, created_at DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]invoicing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// ExistsForRentalPeriod reports whether any of the rentals already has an
// invoice for the (month, year) period.
func (r *GormInvoiceRepository) ExistsForRentalPeriod(ctx context.Context, rentalIDs []uuid.UUID, month, year int) (bool, error) {
	if len(rentalIDs) == 0 {
		return false, nil
	}

	var count int64
	if err := conn(ctx, r.db).
		Model(&models.InvoiceModel{}).
		Where("rental_id IN ? AND month = ? AND year = ?", rentalIDs, month, year).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *invoicing.Invoice) error {
	var model models.InvoiceModel
	model.FromDomain(invoice)
	return conn(ctx, r.db).Save(&model).Error
}

// SaveAll persists a batch of invoices. Callers wrap it in a transaction; a
// unique index violation on (rental_id, month, year) fails the whole batch.
func (r *GormInvoiceRepository) SaveAll(ctx context.Context, invoices []*invoicing.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	invoiceModels := make([]*models.InvoiceModel, len(invoices))
	for i, inv := range invoices {
		var model models.InvoiceModel
		model.FromDomain(inv)
		invoiceModels[i] = &model
	}
	return conn(ctx, r.db).Save(invoiceModels).Error
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ invoicing.InvoiceRepository = (*GormInvoiceRepository)(nil)
