package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
)

// PropertyModel is the persistence model for the Property aggregate.
// Deletion is a soft delete: the row keeps its rentals and billing history.
type PropertyModel struct {
	AggregateModel
	Name            string     `gorm:"type:varchar(200);not null"`
	Address         string     `gorm:"type:varchar(500);not null"`
	AdministratorID uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeletedAt       *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model to a domain Property
func (m *PropertyModel) ToDomain() *property.Property {
	return &property.Property{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Address:           m.Address,
		AdministratorID:   m.AdministratorID,
		DeletedAt:         m.DeletedAt,
	}
}

// FromDomain populates the persistence model from a domain Property
func (m *PropertyModel) FromDomain(p *property.Property) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Address = p.Address
	m.AdministratorID = p.AdministratorID
	m.DeletedAt = p.DeletedAt
}

// RentalModel is the persistence model for the Rental aggregate.
type RentalModel struct {
	AggregateModel
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PropertyID uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartDate  time.Time  `gorm:"not null"`
	EndDate    *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (RentalModel) TableName() string {
	return "rentals"
}

// ToDomain converts the persistence model to a domain Rental
func (m *RentalModel) ToDomain() *property.Rental {
	return &property.Rental{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UserID:            m.UserID,
		PropertyID:        m.PropertyID,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
	}
}

// FromDomain populates the persistence model from a domain Rental
func (m *RentalModel) FromDomain(r *property.Rental) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.UserID = r.UserID
	m.PropertyID = r.PropertyID
	m.StartDate = r.StartDate
	m.EndDate = r.EndDate
}
