package invoicing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/identity"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/invoicing"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/telemetry"
)

// PaymentService records payments and reconciles invoice status against the
// payment ledger.
type PaymentService struct {
	rentalRepo      property.RentalRepository
	invoiceRepo     invoicing.InvoiceRepository
	paymentRepo     invoicing.PaymentRepository
	txManager       shared.TransactionManager
	businessMetrics *telemetry.BusinessMetrics
}

// SetBusinessMetrics sets the business metrics collector
func (s *PaymentService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	rentalRepo property.RentalRepository,
	invoiceRepo invoicing.InvoiceRepository,
	paymentRepo invoicing.PaymentRepository,
	txManager shared.TransactionManager,
) *PaymentService {
	return &PaymentService{
		rentalRepo:  rentalRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
	}
}

// RecordRentalPayment appends a rent payment against a rental. Rent payments
// live outside invoicing entirely; recording one never touches any invoice.
func (s *PaymentService) RecordRentalPayment(ctx context.Context, req RecordRentalPaymentRequest) (*PaymentResponse, error) {
	rental, err := s.rentalRepo.FindByID(ctx, req.RentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental: %w", err)
	}
	if rental == nil {
		return nil, property.ErrRentalNotFound
	}

	payment, err := invoicing.NewRentalPayment(
		rental.ID,
		valueobject.NewMoneyPEN(req.Amount),
		req.PaidAt,
		invoicing.PaymentMethod(req.Method),
		req.Reference,
		req.ReceiptURL,
	)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	if s.businessMetrics != nil {
		s.businessMetrics.RecordPayment(ctx, req.Method, telemetry.PaymentKindRental, req.Amount)
	}

	resp := toPaymentResponse(payment)
	return &resp, nil
}

// RecordServicePayment appends a payment against an invoice and reconciles
// the invoice inside one transaction: the invoice row is locked, the payment
// inserted, all payments summed, and the invoice marked PAID once the sum
// covers its total. The completing payment's date becomes PaidAt. Concurrent
// payments against the same invoice serialize on the row lock.
func (s *PaymentService) RecordServicePayment(ctx context.Context, req RecordServicePaymentRequest) (*ServicePaymentResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "invoicing", "record_service_payment")
	defer span.End()

	telemetry.SetAttributes(span,
		"invoice_id", req.InvoiceID.String(),
		"amount", req.Amount.String(),
	)

	var result *ServicePaymentResult
	err := s.txManager.Execute(ctx, func(txCtx context.Context) error {
		inv, err := s.invoiceRepo.FindByIDForUpdate(txCtx, req.InvoiceID)
		if err != nil {
			return fmt.Errorf("failed to lock invoice: %w", err)
		}
		if inv == nil {
			return invoicing.ErrInvoiceNotFound
		}

		payment, err := invoicing.NewServicePayment(
			inv.ID,
			valueobject.NewMoneyPEN(req.Amount),
			req.PaidAt,
			invoicing.PaymentMethod(req.Method),
			req.Reference,
			req.ReceiptURL,
		)
		if err != nil {
			return err
		}

		if err := s.paymentRepo.Save(txCtx, payment); err != nil {
			return fmt.Errorf("failed to save payment: %w", err)
		}

		amountPaid, err := s.paymentRepo.SumAmountByInvoiceID(txCtx, inv.ID)
		if err != nil {
			return fmt.Errorf("failed to sum payments: %w", err)
		}

		if !inv.IsPaid() && amountPaid.GreaterThanOrEqual(inv.TotalCost) {
			if err := inv.MarkPaid(payment.PaidAt); err != nil {
				return err
			}
			if err := s.invoiceRepo.Save(txCtx, inv); err != nil {
				return fmt.Errorf("failed to save invoice: %w", err)
			}
		}

		result = &ServicePaymentResult{
			Payment:          toPaymentResponse(payment),
			InvoiceStatus:    inv.Status.String(),
			AmountPaid:       amountPaid,
			RemainingBalance: inv.RemainingBalance(amountPaid),
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if s.businessMetrics != nil {
		s.businessMetrics.RecordPayment(ctx, req.Method, telemetry.PaymentKindService, req.Amount)
	}

	return result, nil
}

// GetPaymentsByInvoice lists an invoice's payments, newest first. Tenants can
// only read payments of their own invoices; administrators can read any.
func (s *PaymentService) GetPaymentsByInvoice(ctx context.Context, invoiceID, actorID uuid.UUID, role identity.Role) ([]PaymentResponse, error) {
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

	payments, err := s.paymentRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	return toPaymentResponses(payments), nil
}

// GetPaymentsByRental lists a rental's rent payments, newest first, with the
// same ownership rules as invoices.
func (s *PaymentService) GetPaymentsByRental(ctx context.Context, rentalID, actorID uuid.UUID, role identity.Role) ([]PaymentResponse, error) {
	rental, err := s.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental: %w", err)
	}
	if rental == nil {
		return nil, property.ErrRentalNotFound
	}
	if role != identity.RoleAdmin && !rental.BelongsTo(actorID) {
		return nil, property.ErrRentalAccessDenied
	}

	payments, err := s.paymentRepo.FindByRentalID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	return toPaymentResponses(payments), nil
}

func toPaymentResponses(payments []invoicing.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = toPaymentResponse(&payments[i])
	}
	return responses
}
