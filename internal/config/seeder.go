package config

import (
	"log"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/pkg/password"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		return err
	}
	if err := s.seedOrgSettings(); err != nil {
		return err
	}

	log.Println("Database seeding completed")
	return nil
}

// seedAdminUser ensures at least one administrator exists. The default
// password is for first login only and should be changed immediately.
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Generate(getEnv("ADMIN_INITIAL_PASSWORD", "admin123456"))
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     getEnv("ADMIN_USERNAME", "admin"),
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user created: %s", admin.Username)
	return nil
}

// seedOrgSettings ensures the singleton settings row exists
func (s *Seeder) seedOrgSettings() error {
	var count int64
	if err := s.db.Model(&models.OrgSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := &models.OrgSettings{
		ID:                 1,
		OrgName:            getEnv("ORG_NAME", "SACCO"),
		Currency:           getEnv("ORG_CURRENCY", "UGX"),
		PrimaryColor:       "#2E7D32",
		DefaultSavingsRate: decimal.Zero,
		DefaultCompounding: models.CompoundMonthly,
	}

	if err := s.db.Create(settings).Error; err != nil {
		return err
	}

	log.Printf("Organization settings created: %s (%s)", settings.OrgName, settings.Currency)
	return nil
}
