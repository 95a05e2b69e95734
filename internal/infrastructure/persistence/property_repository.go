package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyRepository implements property.PropertyRepository using GORM.
// Deleted properties stay in the table with deleted_at set; every read path
// filters them out.
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID finds a property by its ID. Returns (nil, nil) when no live row matches.
func (r *GormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	var model models.PropertyModel
	if err := conn(ctx, r.db).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAdministrator finds the properties managed by the given administrator
func (r *GormPropertyRepository) FindByAdministrator(ctx context.Context, administratorID uuid.UUID, filter shared.Filter) ([]property.Property, error) {
	var propertyModels []models.PropertyModel
	query := r.applyFilter(
		conn(ctx, r.db).Model(&models.PropertyModel{}).
			Where("administrator_id = ? AND deleted_at IS NULL", administratorID),
		filter,
	)

	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, err
	}

	properties := make([]property.Property, len(propertyModels))
	for i, model := range propertyModels {
		properties[i] = *model.ToDomain()
	}
	return properties, nil
}

// FindAll finds all live properties matching the filter
func (r *GormPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Property, error) {
	var propertyModels []models.PropertyModel
	query := r.applyFilter(
		conn(ctx, r.db).Model(&models.PropertyModel{}).
			Where("deleted_at IS NULL"),
		filter,
	)

	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, err
	}

	properties := make([]property.Property, len(propertyModels))
	for i, model := range propertyModels {
		properties[i] = *model.ToDomain()
	}
	return properties, nil
}

// Count counts live properties matching the filter
func (r *GormPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := conn(ctx, r.db).Model(&models.PropertyModel{}).
		Where("deleted_at IS NULL")
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a property
func (r *GormPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	var model models.PropertyModel
	model.FromDomain(p)
	return conn(ctx, r.db).Save(&model).Error
}

// Delete soft-deletes a property by stamping deleted_at
func (r *GormPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).
		Model(&models.PropertyModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return property.ErrPropertyNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormPropertyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PropertySortFields, "name")
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	query = query.Order(orderBy + " " + orderDir)

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPropertyRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR address ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "administrator_id":
			query = query.Where("administrator_id = ?", value)
		}
	}

	return query
}

// Ensure GormPropertyRepository implements PropertyRepository
var _ property.PropertyRepository = (*GormPropertyRepository)(nil)
