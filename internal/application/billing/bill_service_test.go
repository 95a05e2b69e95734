package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	domainbilling "github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	domainproperty "github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billServiceFixture struct {
	service         *BillService
	propertyRepo    *MockPropertyRepository
	rentalRepo      *MockRentalRepository
	electricityRepo *MockElectricityBillRepository
	waterRepo       *MockWaterBillRepository
	consumptionRepo *MockConsumptionRepository
}

func newBillServiceFixture() *billServiceFixture {
	propertyRepo := new(MockPropertyRepository)
	rentalRepo := new(MockRentalRepository)
	electricityRepo := new(MockElectricityBillRepository)
	waterRepo := new(MockWaterBillRepository)
	consumptionRepo := new(MockConsumptionRepository)
	return &billServiceFixture{
		service:         NewBillService(propertyRepo, rentalRepo, electricityRepo, waterRepo, consumptionRepo),
		propertyRepo:    propertyRepo,
		rentalRepo:      rentalRepo,
		electricityRepo: electricityRepo,
		waterRepo:       waterRepo,
		consumptionRepo: consumptionRepo,
	}
}

func testProperty(t *testing.T, adminID uuid.UUID) *domainproperty.Property {
	t.Helper()
	prop, err := domainproperty.NewProperty("Casa Lince", "Av. Arequipa 1234, Lince", adminID)
	require.NoError(t, err)
	return prop
}

func testBillPeriod() (time.Time, time.Time) {
	return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
}

func TestBillService_CreateElectricityBill(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("records a bill for a managed property", func(t *testing.T) {
		f := newBillServiceFixture()
		prop := testProperty(t, adminID)
		start, end := testBillPeriod()

		f.propertyRepo.On("FindByID", ctx, prop.ID).Return(prop, nil)
		f.electricityRepo.On("Save", ctx, mock.AnythingOfType("*billing.ElectricityBill")).Return(nil)

		resp, err := f.service.CreateElectricityBill(ctx, adminID, CreateElectricityBillRequest{
			PropertyID:  prop.ID,
			PeriodStart: start,
			PeriodEnd:   end,
			TotalKWh:    decimal.NewFromInt(450),
			TotalCost:   decimal.NewFromFloat(312.50),
			FileURL:     "https://bills.example.com/enel-2026-01.pdf",
		})

		require.NoError(t, err)
		assert.Equal(t, prop.ID, resp.PropertyID)
		assert.True(t, resp.TotalCost.Equal(decimal.NewFromFloat(312.50)))
		assert.Equal(t, "https://bills.example.com/enel-2026-01.pdf", resp.FileURL)
	})

	t.Run("denies recording for another administrator", func(t *testing.T) {
		f := newBillServiceFixture()
		prop := testProperty(t, adminID)
		start, end := testBillPeriod()

		f.propertyRepo.On("FindByID", ctx, prop.ID).Return(prop, nil)

		_, err := f.service.CreateElectricityBill(ctx, uuid.New(), CreateElectricityBillRequest{
			PropertyID:  prop.ID,
			PeriodStart: start,
			PeriodEnd:   end,
			TotalKWh:    decimal.NewFromInt(450),
			TotalCost:   decimal.NewFromFloat(312.50),
		})

		assert.ErrorIs(t, err, domainproperty.ErrPropertyAccessDenied)
		f.electricityRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a non-positive cost", func(t *testing.T) {
		f := newBillServiceFixture()
		prop := testProperty(t, adminID)
		start, end := testBillPeriod()

		f.propertyRepo.On("FindByID", ctx, prop.ID).Return(prop, nil)

		_, err := f.service.CreateElectricityBill(ctx, adminID, CreateElectricityBillRequest{
			PropertyID:  prop.ID,
			PeriodStart: start,
			PeriodEnd:   end,
			TotalKWh:    decimal.NewFromInt(450),
			TotalCost:   decimal.Zero,
		})

		require.Error(t, err)
		f.electricityRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an inverted period", func(t *testing.T) {
		f := newBillServiceFixture()
		prop := testProperty(t, adminID)
		start, end := testBillPeriod()

		f.propertyRepo.On("FindByID", ctx, prop.ID).Return(prop, nil)

		_, err := f.service.CreateElectricityBill(ctx, adminID, CreateElectricityBillRequest{
			PropertyID:  prop.ID,
			PeriodStart: end,
			PeriodEnd:   start,
			TotalKWh:    decimal.NewFromInt(450),
			TotalCost:   decimal.NewFromFloat(312.50),
		})

		require.Error(t, err)
	})
}

func TestBillService_CreateWaterBill(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("records a water bill", func(t *testing.T) {
		f := newBillServiceFixture()
		prop := testProperty(t, adminID)
		start, end := testBillPeriod()

		f.propertyRepo.On("FindByID", ctx, prop.ID).Return(prop, nil)
		f.waterRepo.On("Save", ctx, mock.AnythingOfType("*billing.WaterBill")).Return(nil)

		resp, err := f.service.CreateWaterBill(ctx, adminID, CreateWaterBillRequest{
			PropertyID:       prop.ID,
			PeriodStart:      start,
			PeriodEnd:        end,
			TotalConsumption: decimal.NewFromInt(28),
			TotalCost:        decimal.NewFromFloat(95.80),
		})

		require.NoError(t, err)
		assert.True(t, resp.TotalConsumption.Equal(decimal.NewFromInt(28)))
		assert.True(t, resp.TotalCost.Equal(decimal.NewFromFloat(95.80)))
	})

	t.Run("returns not found for an unknown property", func(t *testing.T) {
		f := newBillServiceFixture()
		start, end := testBillPeriod()
		id := uuid.New()

		f.propertyRepo.On("FindByID", ctx, id).Return(nil, nil)

		_, err := f.service.CreateWaterBill(ctx, adminID, CreateWaterBillRequest{
			PropertyID:       id,
			PeriodStart:      start,
			PeriodEnd:        end,
			TotalConsumption: decimal.NewFromInt(28),
			TotalCost:        decimal.NewFromFloat(95.80),
		})

		assert.ErrorIs(t, err, domainproperty.ErrPropertyNotFound)
	})
}

func TestBillService_ListElectricityBills(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("lists a managed property's bills", func(t *testing.T) {
		f := newBillServiceFixture()
		prop := testProperty(t, adminID)
		start, end := testBillPeriod()

		bill, err := domainbilling.NewElectricityBill(
			prop.ID, start, end,
			decimal.NewFromInt(450),
			valueobject.NewMoneyPEN(decimal.NewFromFloat(312.50)),
			"",
		)
		require.NoError(t, err)

		f.propertyRepo.On("FindByID", ctx, prop.ID).Return(prop, nil)
		f.electricityRepo.On("FindByPropertyID", ctx, prop.ID).Return([]domainbilling.ElectricityBill{*bill}, nil)

		resp, err := f.service.ListElectricityBills(ctx, prop.ID, adminID)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, bill.ID, resp[0].ID)
	})
}

func TestBillService_RecordConsumption(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("records a meter reading for a managed rental", func(t *testing.T) {
		f := newBillServiceFixture()
		prop := testProperty(t, adminID)
		rental, err := domainproperty.NewRental(uuid.New(), prop.ID, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)

		f.rentalRepo.On("FindByID", ctx, rental.ID).Return(rental, nil)
		f.propertyRepo.On("FindByID", ctx, prop.ID).Return(prop, nil)
		f.consumptionRepo.On("Save", ctx, mock.AnythingOfType("*billing.Consumption")).Return(nil)

		resp, err := f.service.RecordConsumption(ctx, adminID, RecordConsumptionRequest{
			RentalID:    rental.ID,
			PreviousKWh: decimal.NewFromInt(1200),
			CurrentKWh:  decimal.NewFromInt(1350),
			ReadAt:      time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.True(t, resp.DeltaKWh.Equal(decimal.NewFromInt(150)))
	})

	t.Run("rejects a current reading below the previous one", func(t *testing.T) {
		f := newBillServiceFixture()
		prop := testProperty(t, adminID)
		rental, err := domainproperty.NewRental(uuid.New(), prop.ID, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)

		f.rentalRepo.On("FindByID", ctx, rental.ID).Return(rental, nil)
		f.propertyRepo.On("FindByID", ctx, prop.ID).Return(prop, nil)

		_, err = f.service.RecordConsumption(ctx, adminID, RecordConsumptionRequest{
			RentalID:    rental.ID,
			PreviousKWh: decimal.NewFromInt(1350),
			CurrentKWh:  decimal.NewFromInt(1200),
			ReadAt:      time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		})

		require.Error(t, err)
		f.consumptionRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("returns not found for an unknown rental", func(t *testing.T) {
		f := newBillServiceFixture()
		id := uuid.New()
		f.rentalRepo.On("FindByID", ctx, id).Return(nil, nil)

		_, err := f.service.RecordConsumption(ctx, adminID, RecordConsumptionRequest{
			RentalID:   id,
			CurrentKWh: decimal.NewFromInt(100),
			ReadAt:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		})

		assert.ErrorIs(t, err, domainproperty.ErrRentalNotFound)
	})
}
