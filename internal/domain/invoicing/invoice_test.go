package invoicing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, month, year int) valueobject.BillingPeriod {
	t.Helper()
	p, err := valueobject.NewBillingPeriod(month, year)
	require.NoError(t, err)
	return p
}

func TestNewInvoice(t *testing.T) {
	rentalID := uuid.New()
	march := mustPeriod(t, 3, 2025)

	t.Run("creates unpaid invoice with derived total", func(t *testing.T) {
		inv, err := NewInvoice(rentalID, march, valueobject.NewMoneyPENFromFloat(150), valueobject.NewMoneyPENFromFloat(50))
		require.NoError(t, err)
		assert.Equal(t, InvoiceStatusUnpaid, inv.Status)
		assert.Nil(t, inv.PaidAt)
		assert.Equal(t, 3, inv.Month)
		assert.Equal(t, 2025, inv.Year)
		assert.True(t, inv.EnergyCost.Equal(decimal.NewFromInt(150)))
		assert.True(t, inv.WaterCost.Equal(decimal.NewFromInt(50)))
		assert.True(t, inv.TotalCost.Equal(decimal.NewFromInt(200)))
		assert.Len(t, inv.GetDomainEvents(), 1)
	})

	t.Run("allows zero cost components", func(t *testing.T) {
		inv, err := NewInvoice(rentalID, march, valueobject.ZeroPEN(), valueobject.ZeroPEN())
		require.NoError(t, err)
		assert.True(t, inv.TotalCost.IsZero())
	})

	t.Run("rejects nil rental", func(t *testing.T) {
		_, err := NewInvoice(uuid.Nil, march, valueobject.NewMoneyPENFromFloat(150), valueobject.NewMoneyPENFromFloat(50))
		assert.Error(t, err)
	})

	t.Run("rejects negative costs", func(t *testing.T) {
		_, err := NewInvoice(rentalID, march, valueobject.NewMoneyPENFromFloat(-1), valueobject.ZeroPEN())
		assert.Error(t, err)
		_, err = NewInvoice(rentalID, march, valueobject.ZeroPEN(), valueobject.NewMoneyPENFromFloat(-1))
		assert.Error(t, err)
	})
}

func TestInvoiceMarkPaid(t *testing.T) {
	march := mustPeriod(t, 3, 2025)
	inv, err := NewInvoice(uuid.New(), march, valueobject.NewMoneyPENFromFloat(150), valueobject.NewMoneyPENFromFloat(50))
	require.NoError(t, err)

	paidAt := time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC)
	require.NoError(t, inv.MarkPaid(paidAt))
	assert.True(t, inv.IsPaid())
	require.NotNil(t, inv.PaidAt)
	assert.Equal(t, paidAt, *inv.PaidAt)

	t.Run("transition happens exactly once", func(t *testing.T) {
		err := inv.MarkPaid(time.Now())
		assert.Error(t, err)
		assert.Equal(t, paidAt, *inv.PaidAt)
	})
}

func TestInvoiceBelongsToUser(t *testing.T) {
	march := mustPeriod(t, 3, 2025)
	inv, err := NewInvoice(uuid.New(), march, valueobject.NewMoneyPENFromFloat(100), valueobject.ZeroPEN())
	require.NoError(t, err)

	userID := uuid.New()

	t.Run("false when rental is not hydrated", func(t *testing.T) {
		assert.False(t, inv.BelongsToUser(userID))
	})

	inv.Rental = &InvoiceRental{ID: inv.RentalID, UserID: userID, PropertyID: uuid.New()}
	assert.True(t, inv.BelongsToUser(userID))
	assert.False(t, inv.BelongsToUser(uuid.New()))
}

func TestInvoiceRemainingBalance(t *testing.T) {
	march := mustPeriod(t, 3, 2025)
	inv, err := NewInvoice(uuid.New(), march, valueobject.NewMoneyPENFromFloat(60), valueobject.NewMoneyPENFromFloat(40))
	require.NoError(t, err)

	assert.True(t, inv.RemainingBalance(decimal.Zero).Equal(decimal.NewFromInt(100)))
	assert.True(t, inv.RemainingBalance(decimal.NewFromInt(60)).Equal(decimal.NewFromInt(40)))
	assert.True(t, inv.RemainingBalance(decimal.NewFromInt(100)).IsZero())

	t.Run("overpayment floors at zero", func(t *testing.T) {
		assert.True(t, inv.RemainingBalance(decimal.NewFromInt(150)).IsZero())
	})
}
