package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormWaterBillRepository implements billing.WaterBillRepository using GORM
type GormWaterBillRepository struct {
	db *gorm.DB
}

// NewGormWaterBillRepository creates a new GormWaterBillRepository
func NewGormWaterBillRepository(db *gorm.DB) *GormWaterBillRepository {
	return &GormWaterBillRepository{db: db}
}

// FindByID finds a water bill by its ID. Returns (nil, nil) when no row matches.
func (r *GormWaterBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.WaterBill, error) {
	var model models.WaterBillModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPropertyID finds the property's water bills, newest period first
func (r *GormWaterBillRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]billing.WaterBill, error) {
	var billModels []models.WaterBillModel
	if err := conn(ctx, r.db).
		Where("property_id = ?", propertyID).
		Order("period_start DESC").
		Find(&billModels).Error; err != nil {
		return nil, err
	}

	bills := make([]billing.WaterBill, len(billModels))
	for i, model := range billModels {
		bills[i] = *model.ToDomain()
	}
	return bills, nil
}

// FindManyByPropertyIDs finds water bills across a set of properties
func (r *GormWaterBillRepository) FindManyByPropertyIDs(ctx context.Context, propertyIDs []uuid.UUID) ([]billing.WaterBill, error) {
	if len(propertyIDs) == 0 {
		return []billing.WaterBill{}, nil
	}

	var billModels []models.WaterBillModel
	if err := conn(ctx, r.db).
		Where("property_id IN ?", propertyIDs).
		Order("period_start DESC").
		Find(&billModels).Error; err != nil {
		return nil, err
	}

	bills := make([]billing.WaterBill, len(billModels))
	for i, model := range billModels {
		bills[i] = *model.ToDomain()
	}
	return bills, nil
}

// Save creates or updates a water bill
func (r *GormWaterBillRepository) Save(ctx context.Context, bill *billing.WaterBill) error {
	var model models.WaterBillModel
	model.FromDomain(bill)
	return conn(ctx, r.db).Save(&model).Error
}

// Ensure GormWaterBillRepository implements WaterBillRepository
var _ billing.WaterBillRepository = (*GormWaterBillRepository)(nil)
