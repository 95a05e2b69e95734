package billing

import (
	"context"

	"github.com/google/uuid"
)

// ElectricityBillRepository is the persistence contract for electricity bills
type ElectricityBillRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ElectricityBill, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]ElectricityBill, error)
	FindManyByPropertyIDs(ctx context.Context, propertyIDs []uuid.UUID) ([]ElectricityBill, error)
	Save(ctx context.Context, bill *ElectricityBill) error
}

// WaterBillRepository is the persistence contract for water bills
type WaterBillRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WaterBill, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]WaterBill, error)
	FindManyByPropertyIDs(ctx context.Context, propertyIDs []uuid.UUID) ([]WaterBill, error)
	Save(ctx context.Context, bill *WaterBill) error
}

// ConsumptionRepository is the persistence contract for meter readings
type ConsumptionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Consumption, error)
	FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]Consumption, error)
	Save(ctx context.Context, consumption *Consumption) error
}
