package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// CreateElectricityBillRequest contains data to record an electricity bill
type CreateElectricityBillRequest struct {
	PropertyID  uuid.UUID       `json:"property_id" binding:"required"`
	PeriodStart time.Time       `json:"period_start" binding:"required"`
	PeriodEnd   time.Time       `json:"period_end" binding:"required"`
	TotalKWh    decimal.Decimal `json:"total_kwh" binding:"required"`
	TotalCost   decimal.Decimal `json:"total_cost" binding:"required"`
	FileURL     string          `json:"file_url,omitempty"`
}

// CreateWaterBillRequest contains data to record a water bill
type CreateWaterBillRequest struct {
	PropertyID       uuid.UUID       `json:"property_id" binding:"required"`
	PeriodStart      time.Time       `json:"period_start" binding:"required"`
	PeriodEnd        time.Time       `json:"period_end" binding:"required"`
	TotalConsumption decimal.Decimal `json:"total_consumption" binding:"required"`
	TotalCost        decimal.Decimal `json:"total_cost" binding:"required"`
	FileURL          string          `json:"file_url,omitempty"`
}

// RecordConsumptionRequest contains a per-rental meter reading
type RecordConsumptionRequest struct {
	RentalID    uuid.UUID       `json:"rental_id" binding:"required"`
	PreviousKWh decimal.Decimal `json:"previous_kwh"`
	CurrentKWh  decimal.Decimal `json:"current_kwh" binding:"required"`
	ReadAt      time.Time       `json:"read_at" binding:"required"`
}

// ElectricityBillResponse represents an electricity bill in API responses
type ElectricityBillResponse struct {
	ID          uuid.UUID       `json:"id"`
	PropertyID  uuid.UUID       `json:"property_id"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	TotalKWh    decimal.Decimal `json:"total_kwh"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	FileURL     string          `json:"file_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// WaterBillResponse represents a water bill in API responses
type WaterBillResponse struct {
	ID               uuid.UUID       `json:"id"`
	PropertyID       uuid.UUID       `json:"property_id"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	TotalConsumption decimal.Decimal `json:"total_consumption"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	FileURL          string          `json:"file_url,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ConsumptionResponse represents a meter reading in API responses
type ConsumptionResponse struct {
	ID          uuid.UUID       `json:"id"`
	RentalID    uuid.UUID       `json:"rental_id"`
	PreviousKWh decimal.Decimal `json:"previous_kwh"`
	CurrentKWh  decimal.Decimal `json:"current_kwh"`
	DeltaKWh    decimal.Decimal `json:"delta_kwh"`
	ReadAt      time.Time       `json:"read_at"`
}

func toElectricityBillResponse(b *billing.ElectricityBill) ElectricityBillResponse {
	return ElectricityBillResponse{
		ID:          b.ID,
		PropertyID:  b.PropertyID,
		PeriodStart: b.PeriodStart,
		PeriodEnd:   b.PeriodEnd,
		TotalKWh:    b.TotalKWh,
		TotalCost:   b.TotalCost,
		FileURL:     b.FileURL,
		CreatedAt:   b.CreatedAt,
	}
}

func toWaterBillResponse(b *billing.WaterBill) WaterBillResponse {
	return WaterBillResponse{
		ID:               b.ID,
		PropertyID:       b.PropertyID,
		PeriodStart:      b.PeriodStart,
		PeriodEnd:        b.PeriodEnd,
		TotalConsumption: b.TotalConsumption,
		TotalCost:        b.TotalCost,
		FileURL:          b.FileURL,
		CreatedAt:        b.CreatedAt,
	}
}

func toConsumptionResponse(c *billing.Consumption) ConsumptionResponse {
	return ConsumptionResponse{
		ID:          c.ID,
		RentalID:    c.RentalID,
		PreviousKWh: c.PreviousKWh,
		CurrentKWh:  c.CurrentKWh,
		DeltaKWh:    c.DeltaKWh(),
		ReadAt:      c.ReadAt,
	}
}
