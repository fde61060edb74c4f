package services

import (
	"context"
	"strings"
	"sync"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/adapters/persistence/repositories"
	"sacco-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// SettingsService handles the organization settings singleton. Reads are
// served from an in-process cache; every write invalidates it.
type SettingsService struct {
	settingsRepo repositories.SettingsRepository

	mu     sync.RWMutex
	cached *models.OrgSettings
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the organization settings, from cache when warm
func (s *SettingsService) Get(ctx context.Context) (*models.OrgSettings, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = settings
	s.mu.Unlock()
	return settings, nil
}

// UpdateSettingsInput represents a settings update
type UpdateSettingsInput struct {
	OrgName            string
	Currency           string
	PrimaryColor       string
	DefaultSavingsRate decimal.Decimal
	DefaultCompounding models.Compounding
}

// Update validates and writes the settings row, then invalidates the cache
func (s *SettingsService) Update(ctx context.Context, input *UpdateSettingsInput) (*models.OrgSettings, error) {
	orgName := strings.TrimSpace(input.OrgName)
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))

	if orgName == "" {
		return nil, domain.NewValidationError("org_name", "is required")
	}
	if currency == "" {
		return nil, domain.NewValidationError("currency", "is required")
	}
	if !input.DefaultCompounding.Valid() {
		return nil, domain.NewValidationError("default_compounding", "must be Daily or Monthly")
	}
	if input.DefaultSavingsRate.Sign() < 0 {
		return nil, domain.NewValidationError("default_savings_rate", "cannot be negative")
	}

	settings := &models.OrgSettings{
		OrgName:            orgName,
		Currency:           currency,
		PrimaryColor:       strings.TrimSpace(input.PrimaryColor),
		DefaultSavingsRate: input.DefaultSavingsRate,
		DefaultCompounding: input.DefaultCompounding,
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()

	return settings, nil
}
