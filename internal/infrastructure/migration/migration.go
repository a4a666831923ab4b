package migration

import (
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"zarya/internal/shared/constants"
	"zarya/internal/shared/logger"
)

// Manager picks a migration strategy per environment: automigrate for
// development, versioned SQL scripts everywhere else.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy()
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGolangMigrateStrategy(scriptsPath)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Run(db *gorm.DB) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.GetName())
	return m.strategy.Migrate(db, AutoMigrateModels()...)
}

func (m *Manager) StrategyName() string {
	return m.strategy.GetName()
}
