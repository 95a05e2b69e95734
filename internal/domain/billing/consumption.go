package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Consumption is a per-rental electricity meter reading taken at the start
// and end of a billing window. Readings are informational: the allocation
// engine splits bill amounts evenly across active rentals and does not
// prorate by individual meter deltas.
type Consumption struct {
	shared.BaseAggregateRoot
	RentalID    uuid.UUID
	PreviousKWh decimal.Decimal
	CurrentKWh  decimal.Decimal
	ReadAt      time.Time
}

// NewConsumption records a meter reading for a rental
func NewConsumption(rentalID uuid.UUID, previousKWh, currentKWh decimal.Decimal, readAt time.Time) (*Consumption, error) {
	if rentalID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RENTAL", "Rental ID cannot be empty")
	}
	if previousKWh.IsNegative() {
		return nil, shared.NewDomainError("INVALID_METER_READING", "Previous reading cannot be negative")
	}
	if currentKWh.LessThan(previousKWh) {
		return nil, shared.NewDomainError("INVALID_METER_READING", "Current reading cannot be below the previous reading")
	}
	if readAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_METER_READING", "Reading date is required")
	}

	return &Consumption{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RentalID:          rentalID,
		PreviousKWh:       previousKWh,
		CurrentKWh:        currentKWh,
		ReadAt:            readAt,
	}, nil
}

// DeltaKWh returns the consumption between the two readings
func (c *Consumption) DeltaKWh() decimal.Decimal {
	return c.CurrentKWh.Sub(c.PreviousKWh)
}
