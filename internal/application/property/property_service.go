package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/identity"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/telemetry"
)

// PropertyService handles property management for administrators
type PropertyService struct {
	propertyRepo property.PropertyRepository
	userRepo     identity.UserRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo property.PropertyRepository, userRepo identity.UserRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// CreateProperty registers a property managed by the acting administrator
func (s *PropertyService) CreateProperty(ctx context.Context, actorID uuid.UUID, req CreatePropertyRequest) (*PropertyResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "property", "create_property")
	defer span.End()

	prop, err := property.NewProperty(req.Name, req.Address, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Save(ctx, prop); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to save property: %w", err)
	}

	resp := toPropertyResponse(prop)
	return &resp, nil
}

// ListProperties returns the properties managed by the acting administrator
func (s *PropertyService) ListProperties(ctx context.Context, actorID uuid.UUID, filter shared.Filter) ([]PropertyResponse, error) {
	properties, err := s.propertyRepo.FindByAdministrator(ctx, actorID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return toPropertyResponses(properties), nil
}

// GetProperty returns a property if the actor manages it
func (s *PropertyService) GetProperty(ctx context.Context, propertyID, actorID uuid.UUID) (*PropertyResponse, error) {
	prop, err := s.loadOwnedProperty(ctx, propertyID, actorID)
	if err != nil {
		return nil, err
	}
	resp := toPropertyResponse(prop)
	return &resp, nil
}

// UpdateProperty updates a property's name and/or address
func (s *PropertyService) UpdateProperty(ctx context.Context, propertyID, actorID uuid.UUID, req UpdatePropertyRequest) (*PropertyResponse, error) {
	prop, err := s.loadOwnedProperty(ctx, propertyID, actorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := prop.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		if err := prop.Relocate(*req.Address); err != nil {
			return nil, err
		}
	}

	if err := s.propertyRepo.Save(ctx, prop); err != nil {
		return nil, fmt.Errorf("failed to save property: %w", err)
	}

	resp := toPropertyResponse(prop)
	return &resp, nil
}

// DeleteProperty soft deletes a property managed by the actor
func (s *PropertyService) DeleteProperty(ctx context.Context, propertyID, actorID uuid.UUID) error {
	if _, err := s.loadOwnedProperty(ctx, propertyID, actorID); err != nil {
		return err
	}

	if err := s.propertyRepo.Delete(ctx, propertyID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}

func (s *PropertyService) loadOwnedProperty(ctx context.Context, propertyID, actorID uuid.UUID) (*property.Property, error) {
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
	return prop, nil
}
