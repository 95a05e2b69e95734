package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/telemetry"
)

// BillService records utility bills and per-rental meter readings. Bills are
// the inputs to invoice generation; readings are informational.
type BillService struct {
	propertyRepo    property.PropertyRepository
	rentalRepo      property.RentalRepository
	electricityRepo billing.ElectricityBillRepository
	waterRepo       billing.WaterBillRepository
	consumptionRepo billing.ConsumptionRepository
}

// NewBillService creates a new BillService
func NewBillService(
	propertyRepo property.PropertyRepository,
	rentalRepo property.RentalRepository,
	electricityRepo billing.ElectricityBillRepository,
	waterRepo billing.WaterBillRepository,
	consumptionRepo billing.ConsumptionRepository,
) *BillService {
	return &BillService{
		propertyRepo:    propertyRepo,
		rentalRepo:      rentalRepo,
		electricityRepo: electricityRepo,
		waterRepo:       waterRepo,
		consumptionRepo: consumptionRepo,
	}
}

// CreateElectricityBill records an electricity bill for a property managed by
// the actor
func (s *BillService) CreateElectricityBill(ctx context.Context, actorID uuid.UUID, req CreateElectricityBillRequest) (*ElectricityBillResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "billing", "create_electricity_bill")
	defer span.End()

	if err := s.checkPropertyAccess(ctx, req.PropertyID, actorID); err != nil {
		return nil, err
	}

	bill, err := billing.NewElectricityBill(
		req.PropertyID,
		req.PeriodStart,
		req.PeriodEnd,
		req.TotalKWh,
		valueobject.NewMoneyPEN(req.TotalCost),
		req.FileURL,
	)
	if err != nil {
		return nil, err
	}

	if err := s.electricityRepo.Save(ctx, bill); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to save electricity bill: %w", err)
	}

	resp := toElectricityBillResponse(bill)
	return &resp, nil
}

// CreateWaterBill records a water bill for a property managed by the actor
func (s *BillService) CreateWaterBill(ctx context.Context, actorID uuid.UUID, req CreateWaterBillRequest) (*WaterBillResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "billing", "create_water_bill")
	defer span.End()

	if err := s.checkPropertyAccess(ctx, req.PropertyID, actorID); err != nil {
		return nil, err
	}

	bill, err := billing.NewWaterBill(
		req.PropertyID,
		req.PeriodStart,
		req.PeriodEnd,
		req.TotalConsumption,
		valueobject.NewMoneyPEN(req.TotalCost),
		req.FileURL,
	)
	if err != nil {
		return nil, err
	}

	if err := s.waterRepo.Save(ctx, bill); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to save water bill: %w", err)
	}

	resp := toWaterBillResponse(bill)
	return &resp, nil
}

// ListElectricityBills returns a managed property's electricity bills
func (s *BillService) ListElectricityBills(ctx context.Context, propertyID, actorID uuid.UUID) ([]ElectricityBillResponse, error) {
	if err := s.checkPropertyAccess(ctx, propertyID, actorID); err != nil {
		return nil, err
	}

	bills, err := s.electricityRepo.FindByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list electricity bills: %w", err)
	}

	responses := make([]ElectricityBillResponse, len(bills))
	for i := range bills {
		responses[i] = toElectricityBillResponse(&bills[i])
	}
	return responses, nil
}

// ListWaterBills returns a managed property's water bills
func (s *BillService) ListWaterBills(ctx context.Context, propertyID, actorID uuid.UUID) ([]WaterBillResponse, error) {
	if err := s.checkPropertyAccess(ctx, propertyID, actorID); err != nil {
		return nil, err
	}

	bills, err := s.waterRepo.FindByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list water bills: %w", err)
	}

	responses := make([]WaterBillResponse, len(bills))
	for i := range bills {
		responses[i] = toWaterBillResponse(&bills[i])
	}
	return responses, nil
}

// RecordConsumption records a meter reading for a rental in a property
// managed by the actor
func (s *BillService) RecordConsumption(ctx context.Context, actorID uuid.UUID, req RecordConsumptionRequest) (*ConsumptionResponse, error) {
	rental, err := s.rentalRepo.FindByID(ctx, req.RentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental: %w", err)
	}
	if rental == nil {
		return nil, property.ErrRentalNotFound
	}

	if err := s.checkPropertyAccess(ctx, rental.PropertyID, actorID); err != nil {
		return nil, err
	}

	reading, err := billing.NewConsumption(req.RentalID, req.PreviousKWh, req.CurrentKWh, req.ReadAt)
	if err != nil {
		return nil, err
	}

	if err := s.consumptionRepo.Save(ctx, reading); err != nil {
		return nil, fmt.Errorf("failed to save consumption: %w", err)
	}

	resp := toConsumptionResponse(reading)
	return &resp, nil
}

// ListConsumptionsByRental returns the readings recorded for a rental
func (s *BillService) ListConsumptionsByRental(ctx context.Context, rentalID, actorID uuid.UUID) ([]ConsumptionResponse, error) {
	rental, err := s.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental: %w", err)
	}
	if rental == nil {
		return nil, property.ErrRentalNotFound
	}

	if err := s.checkPropertyAccess(ctx, rental.PropertyID, actorID); err != nil {
		return nil, err
	}

	readings, err := s.consumptionRepo.FindByRentalID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list consumptions: %w", err)
	}

	responses := make([]ConsumptionResponse, len(readings))
	for i := range readings {
		responses[i] = toConsumptionResponse(&readings[i])
	}
	return responses, nil
}

func (s *BillService) checkPropertyAccess(ctx context.Context, propertyID, actorID uuid.UUID) error {
	prop, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("failed to load property: %w", err)
	}
	if prop == nil {
		return property.ErrPropertyNotFound
	}
	if !prop.IsAdministeredBy(actorID) {
		return property.ErrPropertyAccessDenied
	}
	return nil
}
