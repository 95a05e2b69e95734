package property

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/identity"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/telemetry"
)

// RentalService handles tenancy management
type RentalService struct {
	propertyRepo property.PropertyRepository
	rentalRepo   property.RentalRepository
	userRepo     identity.UserRepository
}

// NewRentalService creates a new RentalService
func NewRentalService(
	propertyRepo property.PropertyRepository,
	rentalRepo property.RentalRepository,
	userRepo identity.UserRepository,
) *RentalService {
	return &RentalService{
		propertyRepo: propertyRepo,
		rentalRepo:   rentalRepo,
		userRepo:     userRepo,
	}
}

// CreateRental starts a tenancy for a user in a property managed by the actor
func (s *RentalService) CreateRental(ctx context.Context, actorID uuid.UUID, req CreateRentalRequest) (*RentalResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "property", "create_rental")
	defer span.End()

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

	tenant, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if tenant == nil {
		return nil, identity.ErrUserNotFound
	}

	rental, err := property.NewRental(req.UserID, req.PropertyID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Save(ctx, rental); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to save rental: %w", err)
	}

	resp := toRentalResponse(rental, time.Now())
	return &resp, nil
}

// GetRentalByID returns a tenancy. Tenants only see their own rentals;
// administrators see any rental.
func (s *RentalService) GetRentalByID(ctx context.Context, rentalID, actorID uuid.UUID, role identity.Role) (*RentalResponse, error) {
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

	resp := toRentalResponse(rental, time.Now())
	return &resp, nil
}

// ListRentalsByProperty returns every tenancy of a property managed by the actor
func (s *RentalService) ListRentalsByProperty(ctx context.Context, propertyID, actorID uuid.UUID) ([]RentalResponse, error) {
	prop, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if prop == nil {
		return nil, property.ErrPropertyNotFound
	}
	if !prop.IsAdministeredBy(actorID) {
		return nil, property.ErrPropertyAccessDenied
	}

	rentals, err := s.rentalRepo.FindByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return toRentalResponses(rentals, time.Now()), nil
}

// ListRentalsByUser returns the acting tenant's own rentals
func (s *RentalService) ListRentalsByUser(ctx context.Context, userID uuid.UUID) ([]RentalResponse, error) {
	rentals, err := s.rentalRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return toRentalResponses(rentals, time.Now()), nil
}

// TerminateRental closes a tenancy in a property managed by the actor
func (s *RentalService) TerminateRental(ctx context.Context, rentalID, actorID uuid.UUID, req TerminateRentalRequest) (*RentalResponse, error) {
	rental, err := s.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental: %w", err)
	}
	if rental == nil {
		return nil, property.ErrRentalNotFound
	}

	prop, err := s.propertyRepo.FindByID(ctx, rental.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if prop == nil {
		return nil, property.ErrPropertyNotFound
	}
	if !prop.IsAdministeredBy(actorID) {
		return nil, property.ErrPropertyAccessDenied
	}

	if err := rental.Terminate(req.EndDate); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Save(ctx, rental); err != nil {
		return nil, fmt.Errorf("failed to save rental: %w", err)
	}

	resp := toRentalResponse(rental, time.Now())
	return &resp, nil
}
