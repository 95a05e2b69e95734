package property

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
)

// PropertyRepository is the persistence contract for properties
type PropertyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)
	FindByAdministrator(ctx context.Context, administratorID uuid.UUID, filter shared.Filter) ([]Property, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Property, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RentalRepository is the persistence contract for rentals
type RentalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Rental, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Rental, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]Rental, error)
	// FindActiveByPropertyPeriod returns rentals of the property whose tenancy
	// interval overlaps [periodStart, periodEnd).
	FindActiveByPropertyPeriod(ctx context.Context, propertyID uuid.UUID, periodStart, periodEnd time.Time) ([]Rental, error)
	Save(ctx context.Context, rental *Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
}
