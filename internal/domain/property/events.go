package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeProperty = "Property"
	AggregateTypeRental   = "Rental"
)

// Event type constants
const (
	EventTypePropertyCreated = "PropertyCreated"
	EventTypeRentalStarted   = "RentalStarted"
	EventTypeRentalEnded     = "RentalEnded"
)

// PropertyCreatedEvent is published when a new property is registered
type PropertyCreatedEvent struct {
	shared.BaseDomainEvent
	PropertyID      uuid.UUID `json:"property_id"`
	Name            string    `json:"name"`
	AdministratorID uuid.UUID `json:"administrator_id"`
}

// NewPropertyCreatedEvent creates a new PropertyCreatedEvent
func NewPropertyCreatedEvent(p *Property) *PropertyCreatedEvent {
	return &PropertyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyCreated, AggregateTypeProperty, p.ID),
		PropertyID:      p.ID,
		Name:            p.Name,
		AdministratorID: p.AdministratorID,
	}
}

// RentalStartedEvent is published when a tenancy begins
type RentalStartedEvent struct {
	shared.BaseDomainEvent
	RentalID   uuid.UUID `json:"rental_id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
}

// NewRentalStartedEvent creates a new RentalStartedEvent
func NewRentalStartedEvent(r *Rental) *RentalStartedEvent {
	return &RentalStartedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRentalStarted, AggregateTypeRental, r.ID),
		RentalID:        r.ID,
		UserID:          r.UserID,
		PropertyID:      r.PropertyID,
		StartDate:       r.StartDate,
	}
}

// RentalEndedEvent is published when a tenancy is terminated
type RentalEndedEvent struct {
	shared.BaseDomainEvent
	RentalID uuid.UUID  `json:"rental_id"`
	EndDate  *time.Time `json:"end_date"`
}

// NewRentalEndedEvent creates a new RentalEndedEvent
func NewRentalEndedEvent(r *Rental) *RentalEndedEvent {
	return &RentalEndedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRentalEnded, AggregateTypeRental, r.ID),
		RentalID:        r.ID,
		EndDate:         r.EndDate,
	}
}
