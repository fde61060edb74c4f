package config

import (
	"testing"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeederTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func TestSeederCreatesDefaults(t *testing.T) {
	db := newSeederTestDB(t)

	require.NoError(t, NewSeeder(db).Run())

	var admin models.User
	require.NoError(t, db.Where("role = ?", models.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "admin", admin.Username)
	assert.True(t, password.Verify("admin123456", admin.PasswordHash))

	var settings models.OrgSettings
	require.NoError(t, db.First(&settings, 1).Error)
	assert.Equal(t, "SACCO", settings.OrgName)
	assert.Equal(t, "UGX", settings.Currency)
	assert.Equal(t, models.CompoundMonthly, settings.DefaultCompounding)
}

func TestSeederIsIdempotent(t *testing.T) {
	db := newSeederTestDB(t)

	require.NoError(t, NewSeeder(db).Run())
	require.NoError(t, NewSeeder(db).Run())

	var userCount, settingsCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.OrgSettings{}).Count(&settingsCount).Error)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 1, settingsCount)
}

func TestSeederKeepsExistingAdmin(t *testing.T) {
	db := newSeederTestDB(t)

	hash, err := password.Generate("existing-secret")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username:     "accountant",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}).Error)

	require.NoError(t, NewSeeder(db).Run())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
