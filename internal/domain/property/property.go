package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
)

// Property not-found / access errors
var (
	ErrPropertyNotFound     = shared.NewDomainError("PROPERTY_NOT_FOUND", "Property not found")
	ErrPropertyAccessDenied = shared.NewDomainError("PROPERTY_ACCESS_DENIED", "You do not manage this property")
)

// Property represents a building or unit managed by an administrator.
// It owns rentals and utility bills through foreign keys, not containment.
type Property struct {
	shared.BaseAggregateRoot
	Name            string
	Address         string
	AdministratorID uuid.UUID
	DeletedAt       *time.Time
}

// NewProperty creates a new property managed by the given administrator
func NewProperty(name, address string, administratorID uuid.UUID) (*Property, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PROPERTY_NAME", "Property name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_PROPERTY_NAME", "Property name cannot exceed 200 characters")
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_PROPERTY_ADDRESS", "Property address cannot be empty")
	}
	if administratorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ADMINISTRATOR", "Administrator ID cannot be empty")
	}

	p := &Property{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           address,
		AdministratorID:   administratorID,
	}

	p.AddDomainEvent(NewPropertyCreatedEvent(p))

	return p, nil
}

// IsAdministeredBy reports whether the given user manages this property
func (p *Property) IsAdministeredBy(userID uuid.UUID) bool {
	return p.AdministratorID == userID
}

// IsDeleted reports whether the property has been soft deleted
func (p *Property) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Rename updates the property name
func (p *Property) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_PROPERTY_NAME", "Property name cannot be empty")
	}
	p.Name = name
	p.Touch()
	p.IncrementVersion()
	return nil
}

// Relocate updates the property address
func (p *Property) Relocate(address string) error {
	if address == "" {
		return shared.NewDomainError("INVALID_PROPERTY_ADDRESS", "Property address cannot be empty")
	}
	p.Address = address
	p.Touch()
	p.IncrementVersion()
	return nil
}
