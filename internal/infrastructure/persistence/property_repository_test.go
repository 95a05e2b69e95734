package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/property"
	"github.com/ilidanrock/ecohome-sub001/internal/domain/shared"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPropertyTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.PropertyModel{})
	require.NoError(t, err)

	return db
}

func newTestProperty(t *testing.T, name string, adminID uuid.UUID) *property.Property {
	t.Helper()
	p, err := property.NewProperty(name, "Av. Arequipa 1234, Lima", adminID)
	require.NoError(t, err)
	return p
}

func TestGormPropertyRepository_SaveAndFindByID(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	t.Run("saves and loads a property", func(t *testing.T) {
		p := newTestProperty(t, "Casa San Borja", uuid.New())

		err := repo.Save(ctx, p)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, p.ID, found.ID)
		assert.Equal(t, "Casa San Borja", found.Name)
		assert.Equal(t, p.AdministratorID, found.AdministratorID)
		assert.Nil(t, found.DeletedAt)
	})

	t.Run("returns nil without error for missing property", func(t *testing.T) {
		found, err := repo.FindByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestGormPropertyRepository_Delete(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	t.Run("soft-deletes a property", func(t *testing.T) {
		p := newTestProperty(t, "Casa Surco", uuid.New())
		require.NoError(t, repo.Save(ctx, p))

		err := repo.Delete(ctx, p.ID)
		require.NoError(t, err)

		// Read paths no longer see the row
		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, found)

		// But the row is still in the table with deleted_at set
		var model models.PropertyModel
		require.NoError(t, db.First(&model, "id = ?", p.ID).Error)
		assert.NotNil(t, model.DeletedAt)
	})

	t.Run("returns not found for missing property", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, property.ErrPropertyNotFound)
	})

	t.Run("deleting twice returns not found", func(t *testing.T) {
		p := newTestProperty(t, "Casa Lince", uuid.New())
		require.NoError(t, repo.Save(ctx, p))
		require.NoError(t, repo.Delete(ctx, p.ID))

		err := repo.Delete(ctx, p.ID)
		assert.ErrorIs(t, err, property.ErrPropertyNotFound)
	})
}

func TestGormPropertyRepository_FindByAdministrator(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	adminID := uuid.New()
	otherAdminID := uuid.New()

	propA := newTestProperty(t, "Alfa", adminID)
	propB := newTestProperty(t, "Beta", adminID)
	propOther := newTestProperty(t, "Gamma", otherAdminID)
	require.NoError(t, repo.Save(ctx, propA))
	require.NoError(t, repo.Save(ctx, propB))
	require.NoError(t, repo.Save(ctx, propOther))

	deleted := newTestProperty(t, "Borrada", adminID)
	require.NoError(t, repo.Save(ctx, deleted))
	require.NoError(t, repo.Delete(ctx, deleted.ID))

	t.Run("returns only the administrator's live properties", func(t *testing.T) {
		properties, err := repo.FindByAdministrator(ctx, adminID, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, properties, 2)
		// Default ordering is by name ascending
		assert.Equal(t, "Alfa", properties[0].Name)
		assert.Equal(t, "Beta", properties[1].Name)
	})

	t.Run("honors pagination", func(t *testing.T) {
		properties, err := repo.FindByAdministrator(ctx, adminID, shared.Filter{Page: 2, PageSize: 1})
		require.NoError(t, err)
		require.Len(t, properties, 1)
		assert.Equal(t, "Beta", properties[0].Name)
	})

	t.Run("honors descending order", func(t *testing.T) {
		properties, err := repo.FindByAdministrator(ctx, adminID, shared.Filter{OrderBy: "name", OrderDir: "desc"})
		require.NoError(t, err)
		require.Len(t, properties, 2)
		assert.Equal(t, "Beta", properties[0].Name)
	})

	t.Run("unknown sort field falls back to the default", func(t *testing.T) {
		properties, err := repo.FindByAdministrator(ctx, adminID, shared.Filter{OrderBy: "password_hash"})
		require.NoError(t, err)
		require.Len(t, properties, 2)
		assert.Equal(t, "Alfa", properties[0].Name)
	})
}

func TestGormPropertyRepository_FindAllAndCount(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	adminID := uuid.New()
	for _, name := range []string{"Uno", "Dos", "Tres"} {
		require.NoError(t, repo.Save(ctx, newTestProperty(t, name, adminID)))
	}
	deleted := newTestProperty(t, "Cuatro", adminID)
	require.NoError(t, repo.Save(ctx, deleted))
	require.NoError(t, repo.Delete(ctx, deleted.ID))

	properties, err := repo.FindAll(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Len(t, properties, 3)

	count, err := repo.Count(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.Count(ctx, shared.Filter{Filters: map[string]interface{}{"administrator_id": uuid.New()}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGormPropertyRepository_SaveUpdatesExistingRow(t *testing.T) {
	db := setupPropertyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	p := newTestProperty(t, "Antes", uuid.New())
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, p.Rename("Despues"))
	p.UpdatedAt = time.Now()
	require.NoError(t, repo.Save(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Despues", found.Name)

	var count int64
	require.NoError(t, db.Model(&models.PropertyModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
