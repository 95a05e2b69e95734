// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics provides business metrics for the billing system.
// It tracks invoice generation, payment activity, and outstanding balances.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	invoiceGeneratedTotal *Counter
	invoiceAmountTotal    *Counter
	paymentTotal          *Counter
	paymentAmountTotal    *Counter

	// Gauge metrics (point-in-time values)
	unpaidInvoiceCount  *Gauge
	unpaidInvoiceAmount *FloatGauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data provider for periodic collection
	invoiceProvider InvoiceMetricsProvider
}

// InvoiceMetricsProvider provides invoice data for periodic metrics
// collection. The interface keeps the telemetry layer from depending on the
// invoicing domain directly.
type InvoiceMetricsProvider interface {
	// GetUnpaidCountByProperty returns the number of unpaid invoices per property
	GetUnpaidCountByProperty(ctx context.Context) (map[uuid.UUID]int64, error)

	// GetUnpaidTotalAmount returns the total outstanding amount across all unpaid invoices
	GetUnpaidTotalAmount(ctx context.Context) (decimal.Decimal, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 5 minutes
	InvoiceProvider InvoiceMetricsProvider
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:           cfg.Meter,
		logger:          logger,
		stopChan:        make(chan struct{}),
		invoiceProvider: cfg.InvoiceProvider,
	}

	var err error

	bm.invoiceGeneratedTotal, err = NewCounter(
		cfg.Meter,
		"ecohome_invoice_generated_total",
		"Total number of invoices generated",
		"{invoices}",
	)
	if err != nil {
		return nil, err
	}

	bm.invoiceAmountTotal, err = NewCounter(
		cfg.Meter,
		"ecohome_invoice_amount_total",
		"Total invoiced amount in centimos",
		"{centimos}",
	)
	if err != nil {
		return nil, err
	}

	bm.paymentTotal, err = NewCounter(
		cfg.Meter,
		"ecohome_payment_total",
		"Total number of payments recorded",
		"{payments}",
	)
	if err != nil {
		return nil, err
	}

	bm.paymentAmountTotal, err = NewCounter(
		cfg.Meter,
		"ecohome_payment_amount_total",
		"Total paid amount in centimos",
		"{centimos}",
	)
	if err != nil {
		return nil, err
	}

	bm.unpaidInvoiceCount, err = NewGauge(
		cfg.Meter,
		"ecohome_invoice_unpaid_count",
		"Number of unpaid invoices",
		"{invoices}",
	)
	if err != nil {
		return nil, err
	}

	bm.unpaidInvoiceAmount, err = NewFloatGauge(
		cfg.Meter,
		"ecohome_invoice_unpaid_amount",
		"Total outstanding amount across unpaid invoices",
		"PEN",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Invoice Metrics
// =============================================================================

// RecordInvoiceGenerated records a single invoice generation event.
// Amount should be the invoice total in soles; it is converted to centimos.
func (bm *BusinessMetrics) RecordInvoiceGenerated(ctx context.Context, propertyID uuid.UUID, amount decimal.Decimal) {
	bm.invoiceGeneratedTotal.Inc(ctx,
		AttrPropertyID.String(propertyID.String()),
	)

	amountCentimos := amount.Mul(decimal.NewFromInt(100)).IntPart()
	bm.invoiceAmountTotal.Add(ctx, amountCentimos,
		AttrPropertyID.String(propertyID.String()),
	)
}

// RecordInvoiceBatch records a batch of invoices generated in one run.
func (bm *BusinessMetrics) RecordInvoiceBatch(ctx context.Context, propertyID uuid.UUID, count int64, totalAmount decimal.Decimal) {
	bm.invoiceGeneratedTotal.Add(ctx, count,
		AttrPropertyID.String(propertyID.String()),
	)

	amountCentimos := totalAmount.Mul(decimal.NewFromInt(100)).IntPart()
	bm.invoiceAmountTotal.Add(ctx, amountCentimos,
		AttrPropertyID.String(propertyID.String()),
	)
}

// =============================================================================
// Payment Metrics
// =============================================================================

// PaymentKind distinguishes what a payment was applied against for labeling.
type PaymentKind string

const (
	PaymentKindRental  PaymentKind = "rental"
	PaymentKindService PaymentKind = "service"
)

// RecordPayment records a payment event with its method and target kind.
// Amount should be in soles; it is converted to centimos.
func (bm *BusinessMetrics) RecordPayment(ctx context.Context, method string, kind PaymentKind, amount decimal.Decimal) {
	bm.paymentTotal.Inc(ctx,
		AttrPaymentMethod.String(method),
		AttrPaymentKind.String(string(kind)),
	)

	amountCentimos := amount.Mul(decimal.NewFromInt(100)).IntPart()
	bm.paymentAmountTotal.Add(ctx, amountCentimos,
		AttrPaymentMethod.String(method),
		AttrPaymentKind.String(string(kind)),
	)
}

// =============================================================================
// Outstanding Balance Metrics
// =============================================================================

// RecordUnpaidInvoiceCount records the current unpaid invoice count for a property.
func (bm *BusinessMetrics) RecordUnpaidInvoiceCount(ctx context.Context, propertyID uuid.UUID, count int64) {
	bm.unpaidInvoiceCount.Record(ctx, count,
		AttrPropertyID.String(propertyID.String()),
	)
}

// RecordUnpaidInvoiceAmount records the total outstanding amount across all
// unpaid invoices.
func (bm *BusinessMetrics) RecordUnpaidInvoiceAmount(ctx context.Context, amount decimal.Decimal) {
	bm.unpaidInvoiceAmount.Record(ctx, amount.InexactFloat64())
}

// =============================================================================
// Periodic Collection
// =============================================================================

// StartPeriodicCollection starts periodic collection of gauge metrics.
// It refreshes outstanding balance gauges every interval (default: 5 minutes).
// Non-blocking; use Stop() to stop collection.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		go bm.runPeriodicCollection(ctx, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bm.collectOutstandingMetrics(ctx)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectOutstandingMetrics(ctx)
		}
	}
}

// collectOutstandingMetrics refreshes the unpaid invoice gauges.
func (bm *BusinessMetrics) collectOutstandingMetrics(ctx context.Context) {
	if bm.invoiceProvider == nil {
		bm.logger.Debug("No invoice provider configured, skipping outstanding metrics collection")
		return
	}

	unpaidByProperty, err := bm.invoiceProvider.GetUnpaidCountByProperty(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get unpaid invoice counts", zap.Error(err))
	} else {
		for propertyID, count := range unpaidByProperty {
			bm.RecordUnpaidInvoiceCount(ctx, propertyID, count)
		}
	}

	unpaidTotal, err := bm.invoiceProvider.GetUnpaidTotalAmount(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get unpaid invoice total", zap.Error(err))
	} else {
		bm.RecordUnpaidInvoiceAmount(ctx, unpaidTotal)
	}
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
