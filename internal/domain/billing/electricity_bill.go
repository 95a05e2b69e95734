package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Electricity bill errors
var (
	ErrElectricityBillNotFound = shared.NewDomainError("ELECTRICITY_BILL_NOT_FOUND", "Electricity bill not found")
	ErrBillPropertyMismatch    = shared.NewDomainError("ELECTRICITY_BILL_PROPERTY_MISMATCH", "Electricity bill does not belong to the property")
)

// ElectricityBill is an immutable record of a property's electricity charges
// for a supplier billing window. Once created it is never mutated; corrections
// are handled by creating a replacement record.
type ElectricityBill struct {
	shared.BaseAggregateRoot
	PropertyID  uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalKWh    decimal.Decimal
	TotalCost   decimal.Decimal
	FileURL     string
}

// NewElectricityBill creates an electricity bill, enforcing the construction
// invariants: positive consumption, positive cost, start strictly before end.
func NewElectricityBill(
	propertyID uuid.UUID,
	periodStart, periodEnd time.Time,
	totalKWh decimal.Decimal,
	totalCost valueobject.Money,
	fileURL string,
) (*ElectricityBill, error) {
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID cannot be empty")
	}
	if !periodStart.Before(periodEnd) {
		return nil, shared.NewDomainError("INVALID_BILL_PERIOD", "Bill period start must be before period end")
	}
	if totalKWh.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_BILL_QUANTITY", "Total kWh must be positive")
	}
	if !totalCost.IsPositive() {
		return nil, shared.NewDomainError("INVALID_BILL_AMOUNT", "Total cost must be positive")
	}

	return &ElectricityBill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PropertyID:        propertyID,
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		TotalKWh:          totalKWh,
		TotalCost:         totalCost.Amount(),
		FileURL:           fileURL,
	}, nil
}

// BelongsTo reports whether the bill was issued for the given property
func (b *ElectricityBill) BelongsTo(propertyID uuid.UUID) bool {
	return b.PropertyID == propertyID
}

// Overlaps reports whether two bills' periods intersect. Overlapping bills for
// the same property are not currently rejected at creation time; this helper
// exists so callers can detect them.
func (b *ElectricityBill) Overlaps(other *ElectricityBill) bool {
	return b.PeriodStart.Before(other.PeriodEnd) && other.PeriodStart.Before(b.PeriodEnd)
}

// TotalCostMoney returns the total cost as a Money value
func (b *ElectricityBill) TotalCostMoney() valueobject.Money {
	return valueobject.NewMoneyPEN(b.TotalCost)
}
