package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormElectricityBillRepository implements billing.ElectricityBillRepository using GORM
type GormElectricityBillRepository struct {
	db *gorm.DB
}

// NewGormElectricityBillRepository creates a new GormElectricityBillRepository
func NewGormElectricityBillRepository(db *gorm.DB) *GormElectricityBillRepository {
	return &GormElectricityBillRepository{db: db}
}

// FindByID finds an electricity bill by its ID. Returns (nil, nil) when no row matches.
func (r *GormElectricityBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.ElectricityBill, error) {
	var model models.ElectricityBillModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPropertyID finds the property's electricity bills, newest period first
func (r *GormElectricityBillRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]billing.ElectricityBill, error) {
	var billModels []models.ElectricityBillModel
	if err := conn(ctx, r.db).
		Where("property_id = ?", propertyID).
		Order("period_start DESC").
		Find(&billModels).Error; err != nil {
		return nil, err
	}

	bills := make([]billing.ElectricityBill, len(billModels))
	for i, model := range billModels {
		bills[i] = *model.ToDomain()
	}
	return bills, nil
}

// FindManyByPropertyIDs finds electricity bills across a set of properties
func (r *GormElectricityBillRepository) FindManyByPropertyIDs(ctx context.Context, propertyIDs []uuid.UUID) ([]billing.ElectricityBill, error) {
	if len(propertyIDs) == 0 {
		return []billing.ElectricityBill{}, nil
	}

	var billModels []models.ElectricityBillModel
	if err := conn(ctx, r.db).
		Where("property_id IN ?", propertyIDs).
		Order("period_start DESC").
		Find(&billModels).Error; err != nil {
		return nil, err
	}

	bills := make([]billing.ElectricityBill, len(billModels))
	for i, model := range billModels {
		bills[i] = *model.ToDomain()
	}
	return bills, nil
}

// Save creates or updates an electricity bill
func (r *GormElectricityBillRepository) Save(ctx context.Context, bill *billing.ElectricityBill) error {
	var model models.ElectricityBillModel
	model.FromDomain(bill)
	return conn(ctx, r.db).Save(&model).Error
}

// Ensure GormElectricityBillRepository implements ElectricityBillRepository
var _ billing.ElectricityBillRepository = (*GormElectricityBillRepository)(nil)
