package configs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/configs"
	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedDefaultsPopulatesEmptyStore(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, configs.SeedDefaults(db))

	assert.Equal(t, int64(2), count(t, db, &entity.Hotel{}))
	assert.Equal(t, int64(3), count(t, db, &entity.MenuItem{}))
	assert.Equal(t, int64(2), count(t, db, &entity.Coupon{}))
	assert.Equal(t, int64(2), count(t, db, &entity.Banner{}))

	var s entity.Settings
	require.NoError(t, db.First(&s).Error)
	assert.Equal(t, "Foodie We", s.AppName)
	assert.Equal(t, int64(40), s.DeliveryFee)
	assert.Equal(t, int64(5), s.PlatformFee)
	assert.Equal(t, int64(0), s.Surcharge)
	assert.Equal(t, []string{"30-45 mins", "45-60 mins", "ASAP"}, s.DeliveryTimes)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, configs.SeedDefaults(db))
	require.NoError(t, configs.SeedDefaults(db))

	assert.Equal(t, int64(2), count(t, db, &entity.Hotel{}))
	assert.Equal(t, int64(2), count(t, db, &entity.Coupon{}))
}

func TestSeedDefaultsSkipsWrittenCollections(t *testing.T) {
	db := setupDB(t)

	// A collection that has been written keeps its contents; defaults only
	// fill collections that were never touched.
	require.NoError(t, db.Create(&entity.Hotel{Name: "My Own Place"}).Error)
	require.NoError(t, configs.SeedDefaults(db))

	assert.Equal(t, int64(1), count(t, db, &entity.Hotel{}))
	assert.Equal(t, int64(2), count(t, db, &entity.Coupon{}))
}

func TestSettingsRoundTrip(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, configs.SeedDefaults(db))

	var s entity.Settings
	require.NoError(t, db.First(&s).Error)
	s.DeliveryFee = 55
	s.DeliveryTimes = []string{"ASAP"}
	require.NoError(t, db.Save(&s).Error)

	var got entity.Settings
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, int64(55), got.DeliveryFee)
	assert.Equal(t, []string{"ASAP"}, got.DeliveryTimes)
}

func TestSeedAdmin(t *testing.T) {
	db := setupDB(t)
	cfg := &configs.Config{AdminMobile: "8000000000", AdminPassword: "topsecret"}

	require.NoError(t, configs.SeedAdmin(db, cfg))
	require.NoError(t, configs.SeedAdmin(db, cfg)) // second run is a no-op

	var admins []entity.User
	require.NoError(t, db.Where("role = ?", entity.RoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "8000000000", admins[0].Mobile)
	assert.NotEqual(t, "topsecret", admins[0].Password)
}
