package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// ElectricityBillModel is the persistence model for property-level electricity bills.
type ElectricityBillModel struct {
	AggregateModel
	PropertyID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart time.Time       `gorm:"not null"`
	PeriodEnd   time.Time       `gorm:"not null"`
	TotalKWh    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TotalCost   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FileURL     string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ElectricityBillModel) TableName() string {
	return "electricity_bills"
}

// ToDomain converts the persistence model to a domain ElectricityBill
func (m *ElectricityBillModel) ToDomain() *billing.ElectricityBill {
	return &billing.ElectricityBill{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PropertyID:        m.PropertyID,
		PeriodStart:       m.PeriodStart,
		PeriodEnd:         m.PeriodEnd,
		TotalKWh:          m.TotalKWh,
		TotalCost:         m.TotalCost,
		FileURL:           m.FileURL,
	}
}

// FromDomain populates the persistence model from a domain ElectricityBill
func (m *ElectricityBillModel) FromDomain(b *billing.ElectricityBill) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.PropertyID = b.PropertyID
	m.PeriodStart = b.PeriodStart
	m.PeriodEnd = b.PeriodEnd
	m.TotalKWh = b.TotalKWh
	m.TotalCost = b.TotalCost
	m.FileURL = b.FileURL
}

// WaterBillModel is the persistence model for property-level water bills.
type WaterBillModel struct {
	AggregateModel
	PropertyID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart      time.Time       `gorm:"not null"`
	PeriodEnd        time.Time       `gorm:"not null"`
	TotalConsumption decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TotalCost        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FileURL          string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (WaterBillModel) TableName() string {
	return "water_bills"
}

// ToDomain converts the persistence model to a domain WaterBill
func (m *WaterBillModel) ToDomain() *billing.WaterBill {
	return &billing.WaterBill{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PropertyID:        m.PropertyID,
		PeriodStart:       m.PeriodStart,
		PeriodEnd:         m.PeriodEnd,
		TotalConsumption:  m.TotalConsumption,
		TotalCost:         m.TotalCost,
		FileURL:           m.FileURL,
	}
}

// FromDomain populates the persistence model from a domain WaterBill
func (m *WaterBillModel) FromDomain(b *billing.WaterBill) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.PropertyID = b.PropertyID
	m.PeriodStart = b.PeriodStart
	m.PeriodEnd = b.PeriodEnd
	m.TotalConsumption = b.TotalConsumption
	m.TotalCost = b.TotalCost
	m.FileURL = b.FileURL
}

// ConsumptionModel is the persistence model for per-rental meter readings.
type ConsumptionModel struct {
	AggregateModel
	RentalID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PreviousKWh decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CurrentKWh  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	ReadAt      time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ConsumptionModel) TableName() string {
	return "consumptions"
}

// ToDomain converts the persistence model to a domain Consumption
func (m *ConsumptionModel) ToDomain() *billing.Consumption {
	return &billing.Consumption{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		RentalID:          m.RentalID,
		PreviousKWh:       m.PreviousKWh,
		CurrentKWh:        m.CurrentKWh,
		ReadAt:            m.ReadAt,
	}
}

// FromDomain populates the persistence model from a domain Consumption
func (m *ConsumptionModel) FromDomain(c *billing.Consumption) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.RentalID = c.RentalID
	m.PreviousKWh = c.PreviousKWh
	m.CurrentKWh = c.CurrentKWh
	m.ReadAt = c.ReadAt
}
