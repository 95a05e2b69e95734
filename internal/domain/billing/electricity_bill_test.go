package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewElectricityBill(t *testing.T) {
	propertyID := uuid.New()
	cost := valueobject.NewMoneyPENFromFloat(300)

	t.Run("creates bill with valid inputs", func(t *testing.T) {
		bill, err := NewElectricityBill(propertyID, date(2025, 3, 1), date(2025, 3, 31), decimal.NewFromInt(450), cost, "https://files.example/e1.pdf")
		require.NoError(t, err)
		assert.Equal(t, propertyID, bill.PropertyID)
		assert.True(t, bill.TotalCost.Equal(decimal.NewFromInt(300)))
		assert.True(t, bill.BelongsTo(propertyID))
		assert.False(t, bill.BelongsTo(uuid.New()))
	})

	t.Run("rejects zero or negative consumption", func(t *testing.T) {
		_, err := NewElectricityBill(propertyID, date(2025, 3, 1), date(2025, 3, 31), decimal.Zero, cost, "")
		assert.Error(t, err)
		_, err = NewElectricityBill(propertyID, date(2025, 3, 1), date(2025, 3, 31), decimal.NewFromInt(-10), cost, "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive cost", func(t *testing.T) {
		_, err := NewElectricityBill(propertyID, date(2025, 3, 1), date(2025, 3, 31), decimal.NewFromInt(450), valueobject.ZeroPEN(), "")
		assert.Error(t, err)
	})

	t.Run("rejects inverted period", func(t *testing.T) {
		_, err := NewElectricityBill(propertyID, date(2025, 3, 31), date(2025, 3, 1), decimal.NewFromInt(450), cost, "")
		assert.Error(t, err)
		_, err = NewElectricityBill(propertyID, date(2025, 3, 1), date(2025, 3, 1), decimal.NewFromInt(450), cost, "")
		assert.Error(t, err)
	})
}

func TestElectricityBillOverlaps(t *testing.T) {
	propertyID := uuid.New()
	cost := valueobject.NewMoneyPENFromFloat(300)

	march, err := NewElectricityBill(propertyID, date(2025, 3, 1), date(2025, 3, 31), decimal.NewFromInt(450), cost, "")
	require.NoError(t, err)
	april, err := NewElectricityBill(propertyID, date(2025, 4, 1), date(2025, 4, 30), decimal.NewFromInt(400), cost, "")
	require.NoError(t, err)
	straddling, err := NewElectricityBill(propertyID, date(2025, 3, 15), date(2025, 4, 15), decimal.NewFromInt(430), cost, "")
	require.NoError(t, err)

	assert.False(t, march.Overlaps(april))
	assert.True(t, march.Overlaps(straddling))
	assert.True(t, straddling.Overlaps(april))
}

func TestNewWaterBill(t *testing.T) {
	propertyID := uuid.New()
	cost := valueobject.NewMoneyPENFromFloat(100)

	t.Run("creates bill with valid inputs", func(t *testing.T) {
		bill, err := NewWaterBill(propertyID, date(2025, 3, 1), date(2025, 3, 31), decimal.NewFromInt(25), cost, "")
		require.NoError(t, err)
		assert.True(t, bill.TotalCost.Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := NewWaterBill(uuid.Nil, date(2025, 3, 1), date(2025, 3, 31), decimal.NewFromInt(25), cost, "")
		assert.Error(t, err)
		_, err = NewWaterBill(propertyID, date(2025, 3, 1), date(2025, 3, 31), decimal.Zero, cost, "")
		assert.Error(t, err)
		_, err = NewWaterBill(propertyID, date(2025, 3, 31), date(2025, 3, 1), decimal.NewFromInt(25), cost, "")
		assert.Error(t, err)
	})
}

func TestNewConsumption(t *testing.T) {
	rentalID := uuid.New()

	t.Run("records a reading", func(t *testing.T) {
		c, err := NewConsumption(rentalID, decimal.NewFromInt(1200), decimal.NewFromInt(1350), date(2025, 3, 31))
		require.NoError(t, err)
		assert.True(t, c.DeltaKWh().Equal(decimal.NewFromInt(150)))
	})

	t.Run("rejects current below previous", func(t *testing.T) {
		_, err := NewConsumption(rentalID, decimal.NewFromInt(1350), decimal.NewFromInt(1200), date(2025, 3, 31))
		assert.Error(t, err)
	})

	t.Run("rejects negative previous reading", func(t *testing.T) {
		_, err := NewConsumption(rentalID, decimal.NewFromInt(-1), decimal.NewFromInt(100), date(2025, 3, 31))
		assert.Error(t, err)
	})
}
