package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository is a mock implementation of property.PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByAdministrator(ctx context.Context, administratorID uuid.UUID, filter shared.Filter) ([]property.Property, error) {
	args := m.Called(ctx, administratorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *MockPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepository is a mock implementation of property.RentalRepository
type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Rental), args.Error(1)
}

func (m *MockRentalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]property.Rental, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Rental), args.Error(1)
}

func (m *MockRentalRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]property.Rental, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Rental), args.Error(1)
}

func (m *MockRentalRepository) FindActiveByPropertyPeriod(ctx context.Context, propertyID uuid.UUID, periodStart, periodEnd time.Time) ([]property.Rental, error) {
	args := m.Called(ctx, propertyID, periodStart, periodEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Rental), args.Error(1)
}

func (m *MockRentalRepository) Save(ctx context.Context, rental *property.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockElectricityBillRepository is a mock implementation of billing.ElectricityBillRepository
type MockElectricityBillRepository struct {
	mock.Mock
}

func (m *MockElectricityBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.ElectricityBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.ElectricityBill), args.Error(1)
}

func (m *MockElectricityBillRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]billing.ElectricityBill, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.ElectricityBill), args.Error(1)
}

func (m *MockElectricityBillRepository) FindManyByPropertyIDs(ctx context.Context, propertyIDs []uuid.UUID) ([]billing.ElectricityBill, error) {
	args := m.Called(ctx, propertyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.ElectricityBill), args.Error(1)
}

func (m *MockElectricityBillRepository) Save(ctx context.Context, bill *billing.ElectricityBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

// MockWaterBillRepository is a mock implementation of billing.WaterBillRepository
type MockWaterBillRepository struct {
	mock.Mock
}

func (m *MockWaterBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.WaterBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.WaterBill), args.Error(1)
}

func (m *MockWaterBillRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]billing.WaterBill, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.WaterBill), args.Error(1)
}

func (m *MockWaterBillRepository) FindManyByPropertyIDs(ctx context.Context, propertyIDs []uuid.UUID) ([]billing.WaterBill, error) {
	args := m.Called(ctx, propertyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.WaterBill), args.Error(1)
}

func (m *MockWaterBillRepository) Save(ctx context.Context, bill *billing.WaterBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

// MockConsumptionRepository is a mock implementation of billing.ConsumptionRepository
type MockConsumptionRepository struct {
	mock.Mock
}

func (m *MockConsumptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Consumption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Consumption), args.Error(1)
}

func (m *MockConsumptionRepository) FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]billing.Consumption, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Consumption), args.Error(1)
}

func (m *MockConsumptionRepository) Save(ctx context.Context, consumption *billing.Consumption) error {
	args := m.Called(ctx, consumption)
	return args.Error(0)
}
