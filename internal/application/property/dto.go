package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
)

// CreatePropertyRequest contains data to register a property
type CreatePropertyRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Address string `json:"address" binding:"required"`
}

// UpdatePropertyRequest contains data to update a property
type UpdatePropertyRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	AdministratorID uuid.UUID `json:"administrator_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateRentalRequest contains data to start a tenancy
type CreateRentalRequest struct {
	UserID     uuid.UUID  `json:"user_id" binding:"required"`
	PropertyID uuid.UUID  `json:"property_id" binding:"required"`
	StartDate  time.Time  `json:"start_date" binding:"required"`
	EndDate    *time.Time `json:"end_date,omitempty"`
}

// TerminateRentalRequest contains the end date for a tenancy
type TerminateRentalRequest struct {
	EndDate time.Time `json:"end_date" binding:"required"`
}

// RentalResponse represents a tenancy in API responses
type RentalResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	PropertyID uuid.UUID  `json:"property_id"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:              p.ID,
		Name:            p.Name,
		Address:         p.Address,
		AdministratorID: p.AdministratorID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toPropertyResponses(properties []property.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = toPropertyResponse(&properties[i])
	}
	return responses
}

func toRentalResponse(r *property.Rental, now time.Time) RentalResponse {
	return RentalResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		PropertyID: r.PropertyID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Active:     r.IsActive(now),
		CreatedAt:  r.CreatedAt,
	}
}

func toRentalResponses(rentals []property.Rental, now time.Time) []RentalResponse {
	responses := make([]RentalResponse, len(rentals))
	for i := range rentals {
		responses[i] = toRentalResponse(&rentals[i], now)
	}
	return responses
}
