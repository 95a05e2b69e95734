package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ErrWaterBillNotFound is returned when a water bill cannot be located
var ErrWaterBillNotFound = shared.NewDomainError("WATER_BILL_NOT_FOUND", "Water bill not found")

// WaterBill is an immutable record of a property's water charges for a
// supplier billing window.
type WaterBill struct {
	shared.BaseAggregateRoot
	PropertyID       uuid.UUID
	PeriodStart      time.Time
	PeriodEnd        time.Time
	TotalConsumption decimal.Decimal
	TotalCost        decimal.Decimal
	FileURL          string
}

// NewWaterBill creates a water bill with the same construction invariants as
// electricity bills: positive consumption, positive cost, start before end.
func NewWaterBill(
	propertyID uuid.UUID,
	periodStart, periodEnd time.Time,
	totalConsumption decimal.Decimal,
	totalCost valueobject.Money,
	fileURL string,
) (*WaterBill, error) {
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID cannot be empty")
	}
	if !periodStart.Before(periodEnd) {
		return nil, shared.NewDomainError("INVALID_BILL_PERIOD", "Bill period start must be before period end")
	}
	if totalConsumption.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_BILL_QUANTITY", "Total consumption must be positive")
	}
	if !totalCost.IsPositive() {
		return nil, shared.NewDomainError("INVALID_BILL_AMOUNT", "Total cost must be positive")
	}

	return &WaterBill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PropertyID:        propertyID,
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		TotalConsumption:  totalConsumption,
		TotalCost:         totalCost.Amount(),
		FileURL:           fileURL,
	}, nil
}

// BelongsTo reports whether the bill was issued for the given property
func (b *WaterBill) BelongsTo(propertyID uuid.UUID) bool {
	return b.PropertyID == propertyID
}

// Overlaps reports whether two bills' periods intersect
func (b *WaterBill) Overlaps(other *WaterBill) bool {
	return b.PeriodStart.Before(other.PeriodEnd) && other.PeriodStart.Before(b.PeriodEnd)
}

// TotalCostMoney returns the total cost as a Money value
func (b *WaterBill) TotalCostMoney() valueobject.Money {
	return valueobject.NewMoneyPEN(b.TotalCost)
}
