package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRentalRepository implements property.RentalRepository using GORM
type GormRentalRepository struct {
	db *gorm.DB
}

// NewGormRentalRepository creates a new GormRentalRepository
func NewGormRentalRepository(db *gorm.DB) *GormRentalRepository {
	return &GormRentalRepository{db: db}
}

// FindByID finds a rental by its ID. Returns (nil, nil) when no row matches.
func (r *GormRentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Rental, error) {
	var model models.RentalModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID finds all rentals held by the given user, newest tenancy first
func (r *GormRentalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]property.Rental, error) {
	var rentalModels []models.RentalModel
	if err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&rentalModels).Error; err != nil {
		return nil, err
	}

	rentals := make([]property.Rental, len(rentalModels))
	for i, model := range rentalModels {
		rentals[i] = *model.ToDomain()
	}
	return rentals, nil
}

// FindByPropertyID finds all rentals of the given property, newest tenancy first
func (r *GormRentalRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]property.Rental, error) {
	var rentalModels []models.RentalModel
	if err := conn(ctx, r.db).
		Where("property_id = ?", propertyID).
		Order("start_date DESC").
		Find(&rentalModels).Error; err != nil {
		return nil, err
	}

	rentals := make([]property.Rental, len(rentalModels))
	for i, model := range rentalModels {
		rentals[i] = *model.ToDomain()
	}
	return rentals, nil
}

// FindActiveByPropertyPeriod finds rentals of the property whose tenancy
// interval overlaps [periodStart, periodEnd), using the same boundary rule
// as BillingPeriod.Overlaps: a tenancy ending exactly on the period start
// still overlaps it. Open-ended rentals (end_date IS NULL) count as active
// through any future period.
func (r *GormRentalRepository) FindActiveByPropertyPeriod(ctx context.Context, propertyID uuid.UUID, periodStart, periodEnd time.Time) ([]property.Rental, error) {
	var rentalModels []models.RentalModel
	if err := conn(ctx, r.db).
		Where("property_id = ? AND start_date < ? AND (end_date IS NULL OR end_date >= ?)",
			propertyID, periodEnd, periodStart).
		Order("start_date ASC").
		Find(&rentalModels).Error; err != nil {
		return nil, err
	}

	rentals := make([]property.Rental, len(rentalModels))
	for i, model := range rentalModels {
		rentals[i] = *model.ToDomain()
	}
	return rentals, nil
}

// Save creates or updates a rental
func (r *GormRentalRepository) Save(ctx context.Context, rental *property.Rental) error {
	var model models.RentalModel
	model.FromDomain(rental)
	return conn(ctx, r.db).Save(&model).Error
}

// Delete deletes a rental
func (r *GormRentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&models.RentalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return property.ErrRentalNotFound
	}
	return nil
}

// Ensure GormRentalRepository implements RentalRepository
var _ property.RentalRepository = (*GormRentalRepository)(nil)
