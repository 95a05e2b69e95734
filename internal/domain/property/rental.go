package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared/valueobject"
)

// Rental not-found / access errors
var (
	ErrRentalNotFound     = shared.NewDomainError("RENTAL_NOT_FOUND", "Rental not found")
	ErrRentalAccessDenied = shared.NewDomainError("RENTAL_ACCESS_DENIED", "You do not have access to this rental")
)

// Rental represents a tenancy: a user occupying a property over a date
// interval. A nil EndDate means the tenancy is ongoing.
type Rental struct {
	shared.BaseAggregateRoot
	UserID     uuid.UUID
	PropertyID uuid.UUID
	StartDate  time.Time
	EndDate    *time.Time
}

// NewRental creates a new tenancy for a user in a property
func NewRental(userID, propertyID uuid.UUID, startDate time.Time, endDate *time.Time) (*Rental, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant user ID cannot be empty")
	}
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID cannot be empty")
	}
	if startDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_RENTAL_DATES", "Rental start date is required")
	}
	if endDate != nil && !endDate.After(startDate) {
		return nil, shared.NewDomainError("INVALID_RENTAL_DATES", "Rental end date must be after start date")
	}

	r := &Rental{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		PropertyID:        propertyID,
		StartDate:         startDate,
		EndDate:           endDate,
	}

	r.AddDomainEvent(NewRentalStartedEvent(r))

	return r, nil
}

// IsActive reports whether the tenancy is in effect at the given instant
func (r *Rental) IsActive(now time.Time) bool {
	if now.Before(r.StartDate) {
		return false
	}
	return r.EndDate == nil || !now.After(*r.EndDate)
}

// OverlapsPeriod reports whether the tenancy interval intersects the billing
// period. Used for invoice generation, where "active" means active at any
// point during the period rather than right now.
func (r *Rental) OverlapsPeriod(period valueobject.BillingPeriod) bool {
	return period.Overlaps(r.StartDate, r.EndDate)
}

// BelongsTo reports whether the tenancy belongs to the given user
func (r *Rental) BelongsTo(userID uuid.UUID) bool {
	return r.UserID == userID
}

// Terminate closes the tenancy at the given date
func (r *Rental) Terminate(endDate time.Time) error {
	if r.EndDate != nil {
		return shared.NewDomainError("INVALID_STATE", "Rental has already ended")
	}
	if !endDate.After(r.StartDate) {
		return shared.NewDomainError("INVALID_RENTAL_DATES", "Rental end date must be after start date")
	}
	r.EndDate = &endDate
	r.Touch()
	r.IncrementVersion()
	r.AddDomainEvent(NewRentalEndedEvent(r))
	return nil
}
