package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/billing"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormConsumptionRepository implements billing.ConsumptionRepository using GORM
type GormConsumptionRepository struct {
	db *gorm.DB
}

// NewGormConsumptionRepository creates a new GormConsumptionRepository
func NewGormConsumptionRepository(db *gorm.DB) *GormConsumptionRepository {
	return &GormConsumptionRepository{db: db}
}

// FindByID finds a meter reading by its ID. Returns (nil, nil) when no row matches.
func (r *GormConsumptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Consumption, error) {
	var model models.ConsumptionModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByRentalID finds the rental's meter readings, newest reading first
func (r *GormConsumptionRepository) FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]billing.Consumption, error) {
	var consumptionModels []models.ConsumptionModel
	if err := conn(ctx, r.db).
		Where("rental_id = ?", rentalID).
		Order("read_at DESC").
		Find(&consumptionModels).Error; err != nil {
		return nil, err
	}

	consumptions := make([]billing.Consumption, len(consumptionModels))
	for i, model := range consumptionModels {
		consumptions[i] = *model.ToDomain()
	}
	return consumptions, nil
}

// Save creates or updates a meter reading
func (r *GormConsumptionRepository) Save(ctx context.Context, consumption *billing.Consumption) error {
	var model models.ConsumptionModel
	model.FromDomain(consumption)
	return conn(ctx, r.db).Save(&model).Error
}

// Ensure GormConsumptionRepository implements ConsumptionRepository
var _ billing.ConsumptionRepository = (*GormConsumptionRepository)(nil)
