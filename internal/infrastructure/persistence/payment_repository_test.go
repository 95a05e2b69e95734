package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/invoicing"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPaymentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PaymentModel{})
	require.NoError(t, err)

	return db
}

func newTestServicePayment(t *testing.T, invoiceID uuid.UUID, amount float64, paidAt time.Time) *invoicing.Payment {
	t.Helper()
	p, err := invoicing.NewServicePayment(
		invoiceID,
		valueobject.NewMoneyPENFromFloat(amount),
		paidAt,
		invoicing.PaymentMethodYape,
		"OP-123456",
		"",
	)
	require.NoError(t, err)
	return p
}

func TestGormPaymentRepository_SaveAndFindByID(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	t.Run("saves and loads a payment", func(t *testing.T) {
		invoiceID := uuid.New()
		paidAt := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
		payment := newTestServicePayment(t, invoiceID, 155.50, paidAt)

		require.NoError(t, repo.Save(ctx, payment))

		found, err := repo.FindByID(ctx, payment.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.Amount.Equal(decimal.NewFromFloat(155.50)))
		assert.Equal(t, invoicing.PaymentMethodYape, found.Method)
		require.NotNil(t, found.InvoiceID)
		assert.Equal(t, invoiceID, *found.InvoiceID)
		assert.Nil(t, found.RentalID)
		assert.Equal(t, "OP-123456", found.Reference)
	})

	t.Run("returns nil without error for missing payment", func(t *testing.T) {
		found, err := repo.FindByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestGormPaymentRepository_FindByInvoiceID(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	invoiceID := uuid.New()
	earlier := newTestServicePayment(t, invoiceID, 50.00, time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC))
	later := newTestServicePayment(t, invoiceID, 105.50, time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC))
	foreign := newTestServicePayment(t, uuid.New(), 30.00, time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, earlier))
	require.NoError(t, repo.Save(ctx, later))
	require.NoError(t, repo.Save(ctx, foreign))

	payments, err := repo.FindByInvoiceID(ctx, invoiceID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	// Newest payment first
	assert.Equal(t, later.ID, payments[0].ID)
	assert.Equal(t, earlier.ID, payments[1].ID)
}

func TestGormPaymentRepository_FindByRentalID(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	rentalID := uuid.New()
	first, err := invoicing.NewRentalPayment(
		rentalID,
		valueobject.NewMoneyPENFromFloat(1200.00),
		time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
		invoicing.PaymentMethodBankTransfer,
		"",
		"",
	)
	require.NoError(t, err)
	second, err := invoicing.NewRentalPayment(
		rentalID,
		valueobject.NewMoneyPENFromFloat(1200.00),
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		invoicing.PaymentMethodCash,
		"",
		"",
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	payments, err := repo.FindByRentalID(ctx, rentalID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, second.ID, payments[0].ID)
	assert.Equal(t, first.ID, payments[1].ID)
	for _, p := range payments {
		assert.True(t, p.IsRentalPayment())
	}
}

func TestGormPaymentRepository_SumAmountByInvoiceID(t *testing.T) {
	db := setupPaymentTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	invoiceID := uuid.New()

	t.Run("returns zero when no payments exist", func(t *testing.T) {
		total, err := repo.SumAmountByInvoiceID(ctx, invoiceID)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("totals all payments for the invoice", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestServicePayment(t, invoiceID, 50.00, time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC))))
		require.NoError(t, repo.Save(ctx, newTestServicePayment(t, invoiceID, 105.50, time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC))))
		require.NoError(t, repo.Save(ctx, newTestServicePayment(t, uuid.New(), 999.00, time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC))))

		total, err := repo.SumAmountByInvoiceID(ctx, invoiceID)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromFloat(155.50)))
	})
}
