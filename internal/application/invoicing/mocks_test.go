package invoicing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/invoicing"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// stubTxManager runs the unit of work directly, without a real database.
type stubTxManager struct{}

func (stubTxManager) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

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
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Property, error) {
	args := m.Called(ctx, filter)
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
	return args.Get(0).([]property.Rental), args.Error(1)
}

func (m *MockRentalRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]property.Rental, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]property.Rental), args.Error(1)
}

func (m *MockRentalRepository) FindActiveByPropertyPeriod(ctx context.Context, propertyID uuid.UUID, periodStart, periodEnd time.Time) ([]property.Rental, error) {
	args := m.Called(ctx, propertyID, periodStart, periodEnd)
	return args.Get(0).([]property.Rental), args.Error(1)
}

func (m *MockRentalRepository) Save(ctx context.Context, r *property.Rental) error {
	args := m.Called(ctx, r)
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
	return args.Get(0).([]billing.ElectricityBill), args.Error(1)
}

func (m *MockElectricityBillRepository) FindManyByPropertyIDs(ctx context.Context, propertyIDs []uuid.UUID) ([]billing.ElectricityBill, error) {
	args := m.Called(ctx, propertyIDs)
	return args.Get(0).([]billing.ElectricityBill), args.Error(1)
}

func (m *MockElectricityBillRepository) Save(ctx context.Context, bill *billing.ElectricityBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of invoicing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByIDWithRental(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByRentalIDs(ctx context.Context, rentalIDs []uuid.UUID, status *invoicing.InvoiceStatus) ([]invoicing.Invoice, error) {
	args := m.Called(ctx, rentalIDs, status)
	return args.Get(0).([]invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsForRentalPeriod(ctx context.Context, rentalIDs []uuid.UUID, month, year int) (bool, error) {
	args := m.Called(ctx, rentalIDs, month, year)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *invoicing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveAll(ctx context.Context, invoices []*invoicing.Invoice) error {
	args := m.Called(ctx, invoices)
	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of invoicing.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]invoicing.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]invoicing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]invoicing.Payment, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]invoicing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumAmountByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *invoicing.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
