package repositories

import (
	"context"

	"sacco-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// settingsRowID pins the singleton settings row
const settingsRowID = 1

// settingsRepository implements SettingsRepository
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get reads the singleton settings row
func (r *settingsRepository) Get(ctx context.Context) (*models.OrgSettings, error) {
	var settings models.OrgSettings
	err := r.db.WithContext(ctx).Where("id = ?", settingsRowID).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save writes the singleton settings row
func (r *settingsRepository) Save(ctx context.Context, settings *models.OrgSettings) error {
	settings.ID = settingsRowID
	return r.db.WithContext(ctx).Save(settings).Error
}
