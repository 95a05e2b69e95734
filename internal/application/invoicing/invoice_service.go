package invoicing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/identity"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/invoicing"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
)

// InvoiceService is the allocation engine: it splits a property's utility
// costs for a billing period into per-rental invoices, and serves the
// invoice read side.
type InvoiceService struct {
	propertyRepo    property.PropertyRepository
	rentalRepo      property.RentalRepository
	electricityRepo billing.ElectricityBillRepository
	invoiceRepo     invoicing.InvoiceRepository
	paymentRepo     invoicing.PaymentRepository
	txManager       shared.TransactionManager
	businessMetrics *telemetry.BusinessMetrics
}

// SetBusinessMetrics sets the business metrics collector
func (s *InvoiceService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	propertyRepo property.PropertyRepository,
	rentalRepo property.RentalRepository,
	electricityRepo billing.ElectricityBillRepository,
	invoiceRepo invoicing.InvoiceRepository,
	paymentRepo invoicing.PaymentRepository,
	txManager shared.TransactionManager,
) *InvoiceService {
	return &InvoiceService{
		propertyRepo:    propertyRepo,
		rentalRepo:      rentalRepo,
		electricityRepo: electricityRepo,
		invoiceRepo:     invoiceRepo,
		paymentRepo:     paymentRepo,
		txManager:       txManager,
	}
}

// GenerateInvoices creates one UNPAID invoice per rental active in the
// billing period, splitting the electricity bill's total and the given water
// cost evenly across them. The whole batch is written in one transaction: a
// period that already has invoices for any affected rental aborts with
// INVOICE_ALREADY_EXISTS and nothing is persisted. Zero active rentals is not
// an error; the result is simply empty.
func (s *InvoiceService) GenerateInvoices(ctx context.Context, actorID uuid.UUID, req GenerateInvoicesRequest) ([]InvoiceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "invoicing", "generate_invoices")
	defer span.End()

	telemetry.SetAttributes(span,
		"property_id", req.PropertyID.String(),
		"electricity_bill_id", req.ElectricityBillID.String(),
		"period", fmt.Sprintf("%04d-%02d", req.Year, req.Month),
	)

	prop, err := s.propertyRepo.FindByID(ctx, req.PropertyID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if prop == nil {
		return nil, property.ErrPropertyNotFound
	}
	if !prop.IsAdministeredBy(actorID) {
		return nil, property.ErrPropertyAccessDenied
	}

	bill, err := s.electricityRepo.FindByID(ctx, req.ElectricityBillID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load electricity bill: %w", err)
	}
	if bill == nil {
		return nil, billing.ErrElectricityBillNotFound
	}
	if !bill.BelongsTo(req.PropertyID) {
		return nil, billing.ErrBillPropertyMismatch
	}

	period, err := valueobject.NewBillingPeriod(req.Month, req.Year)
	if err != nil {
		return nil, err
	}
	if req.WaterCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_WATER_COST", "Water cost cannot be negative")
	}
	if !req.WaterCost.Equal(req.WaterCost.Truncate(2)) {
		return nil, shared.NewDomainError("INVALID_WATER_COST", "Water cost cannot be more precise than centimos")
	}

	rentals, err := s.rentalRepo.FindActiveByPropertyPeriod(ctx, req.PropertyID, period.Start(), period.End())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to resolve rentals: %w", err)
	}
	if len(rentals) == 0 {
		return []InvoiceResponse{}, nil
	}

	n := len(rentals)
	energyShares, err := valueobject.NewMoneyPEN(bill.TotalCost).Split(n)
	if err != nil {
		return nil, err
	}
	waterShares, err := valueobject.NewMoneyPEN(req.WaterCost).Split(n)
	if err != nil {
		return nil, err
	}

	rentalIDs := make([]uuid.UUID, n)
	invoices := make([]*invoicing.Invoice, n)
	for i, rental := range rentals {
		rentalIDs[i] = rental.ID
		inv, err := invoicing.NewInvoice(rental.ID, period, energyShares[i], waterShares[i])
		if err != nil {
			return nil, err
		}
		invoices[i] = inv
	}

	err = s.txManager.Execute(ctx, func(txCtx context.Context) error {
		exists, err := s.invoiceRepo.ExistsForRentalPeriod(txCtx, rentalIDs, period.Month(), period.Year())
		if err != nil {
			return fmt.Errorf("failed to check existing invoices: %w", err)
		}
		if exists {
			return invoicing.ErrInvoiceAlreadyExists
		}
		return s.invoiceRepo.SaveAll(txCtx, invoices)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if s.businessMetrics != nil {
		batchTotal := decimal.Zero
		for _, inv := range invoices {
			batchTotal = batchTotal.Add(inv.TotalCost)
		}
		s.businessMetrics.RecordInvoiceBatch(ctx, req.PropertyID, int64(n), batchTotal)
	}

	responses := make([]InvoiceResponse, n)
	for i, inv := range invoices {
		responses[i] = toInvoiceResponse(inv)
	}
	return responses, nil
}

// GetInvoiceByID returns one invoice with its payment coverage. Tenants can
// only read invoices of their own rentals; administrators can read any.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID, actorID uuid.UUID, role identity.Role) (*InvoiceDetailResponse, error) {
	inv, err := s.invoiceRepo.FindByIDWithRental(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}
	if inv == nil {
		return nil, invoicing.ErrInvoiceNotFound
	}
	if role != identity.RoleAdmin && !inv.BelongsToUser(actorID) {
		return nil, invoicing.ErrInvoiceAccessDenied
	}

	amountPaid, err := s.paymentRepo.SumAmountByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	return &InvoiceDetailResponse{
		InvoiceResponse:  toInvoiceResponse(inv),
		AmountPaid:       amountPaid,
		RemainingBalance: inv.RemainingBalance(amountPaid),
	}, nil
}

// GetUserInvoices lists the invoices of all rentals held by the user,
// optionally filtered by status. A user with no rentals gets an empty list
// without touching the invoice store.
func (s *InvoiceService) GetUserInvoices(ctx context.Context, userID uuid.UUID, status *invoicing.InvoiceStatus) ([]InvoiceResponse, error) {
	if status != nil && !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Status must be PAID or UNPAID")
	}

	rentals, err := s.rentalRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rentals: %w", err)
	}
	if len(rentals) == 0 {
		return []InvoiceResponse{}, nil
	}

	rentalIDs := make([]uuid.UUID, len(rentals))
	for i, rental := range rentals {
		rentalIDs[i] = rental.ID
	}

	invoices, err := s.invoiceRepo.FindByRentalIDs(ctx, rentalIDs, status)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = toInvoiceResponse(&invoices[i])
	}
	return responses, nil
}
