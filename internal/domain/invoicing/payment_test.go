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

func TestNewRentalPayment(t *testing.T) {
	rentalID := uuid.New()
	paidAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("creates payment targeting the rental only", func(t *testing.T) {
		p, err := NewRentalPayment(rentalID, valueobject.NewMoneyPENFromFloat(800), paidAt, PaymentMethodYape, "APR-RENT", "")
		require.NoError(t, err)
		assert.True(t, p.IsRentalPayment())
		assert.False(t, p.IsServicePayment())
		require.NotNil(t, p.RentalID)
		assert.Equal(t, rentalID, *p.RentalID)
		assert.Nil(t, p.InvoiceID)
		assert.Equal(t, PaymentMethodYape, p.Method)
	})

	t.Run("rejects nil rental", func(t *testing.T) {
		_, err := NewRentalPayment(uuid.Nil, valueobject.NewMoneyPENFromFloat(800), paidAt, PaymentMethodCash, "", "")
		assert.Error(t, err)
	})
}

func TestNewServicePayment(t *testing.T) {
	invoiceID := uuid.New()
	paidAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("creates payment targeting the invoice only", func(t *testing.T) {
		p, err := NewServicePayment(invoiceID, valueobject.NewMoneyPENFromFloat(200), paidAt, PaymentMethodBankTransfer, "", "https://files.example/r1.jpg")
		require.NoError(t, err)
		assert.True(t, p.IsServicePayment())
		assert.False(t, p.IsRentalPayment())
		require.NotNil(t, p.InvoiceID)
		assert.Equal(t, invoiceID, *p.InvoiceID)
		assert.Nil(t, p.RentalID)
	})

	t.Run("rejects nil invoice", func(t *testing.T) {
		_, err := NewServicePayment(uuid.Nil, valueobject.NewMoneyPENFromFloat(200), paidAt, PaymentMethodCash, "", "")
		assert.Error(t, err)
	})
}

func TestPaymentValidation(t *testing.T) {
	invoiceID := uuid.New()
	paidAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := NewServicePayment(invoiceID, valueobject.ZeroPEN(), paidAt, PaymentMethodCash, "", "")
		assert.Error(t, err)
		_, err = NewServicePayment(invoiceID, valueobject.NewMoneyPENFromFloat(-10), paidAt, PaymentMethodCash, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects zero paid date", func(t *testing.T) {
		_, err := NewServicePayment(invoiceID, valueobject.NewMoneyPENFromFloat(10), time.Time{}, PaymentMethodCash, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewServicePayment(invoiceID, valueobject.NewMoneyPENFromFloat(10), paidAt, PaymentMethod("CHEQUE"), "", "")
		assert.Error(t, err)
	})
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, PaymentMethodYape.IsValid())
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodBankTransfer.IsValid())
	assert.False(t, PaymentMethod("").IsValid())
	assert.False(t, PaymentMethod("CARD").IsValid())
}

func TestSumAmounts(t *testing.T) {
	invoiceID := uuid.New()
	paidAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	first, err := NewServicePayment(invoiceID, valueobject.NewMoneyPENFromFloat(60), paidAt, PaymentMethodYape, "", "")
	require.NoError(t, err)
	second, err := NewServicePayment(invoiceID, valueobject.NewMoneyPENFromFloat(40.50), paidAt.Add(24*time.Hour), PaymentMethodCash, "", "")
	require.NoError(t, err)

	total := SumAmounts([]Payment{*first, *second})
	assert.True(t, total.Equal(decimal.NewFromFloat(100.50)))

	assert.True(t, SumAmounts(nil).IsZero())
}
