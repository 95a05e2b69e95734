// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInvoiceMetricsProvider implements InvoiceMetricsProvider using GORM.
// It queries the invoices table directly for aggregated metrics.
type GormInvoiceMetricsProvider struct {
	db *gorm.DB
}

// NewGormInvoiceMetricsProvider creates a new GormInvoiceMetricsProvider.
func NewGormInvoiceMetricsProvider(db *gorm.DB) *GormInvoiceMetricsProvider {
	return &GormInvoiceMetricsProvider{db: db}
}

// GetUnpaidCountByProperty returns the number of unpaid invoices per property.
// Invoices hang off rentals, so the property is resolved through the rental.
func (p *GormInvoiceMetricsProvider) GetUnpaidCountByProperty(ctx context.Context) (map[uuid.UUID]int64, error) {
	type result struct {
		PropertyID  uuid.UUID `gorm:"column:property_id"`
		UnpaidCount int64     `gorm:"column:unpaid_count"`
	}

	var results []result
	err := p.db.WithContext(ctx).
		Table("invoices").
		Select("rentals.property_id, COUNT(invoices.id) as unpaid_count").
		Joins("JOIN rentals ON rentals.id = invoices.rental_id").
		Where("invoices.status = ?", "UNPAID").
		Group("rentals.property_id").
		Find(&results).Error

	if err != nil {
		return nil, err
	}

	m := make(map[uuid.UUID]int64, len(results))
	for _, r := range results {
		m[r.PropertyID] = r.UnpaidCount
	}

	return m, nil
}

// GetUnpaidTotalAmount returns the total outstanding amount across all unpaid invoices.
func (p *GormInvoiceMetricsProvider) GetUnpaidTotalAmount(ctx context.Context) (decimal.Decimal, error) {
	type result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	var r result
	err := p.db.WithContext(ctx).
		Table("invoices").
		Select("COALESCE(SUM(total_cost), 0) as total").
		Where("status = ?", "UNPAID").
		Scan(&r).Error

	if err != nil {
		return decimal.Zero, err
	}

	return r.Total, nil
}
