package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/trafficworks/equipment-service/internal/settings/domain"
	"github.com/trafficworks/equipment-service/pkg/logger"
)

// GormSettingsRepository implements SettingsRepository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new settings repository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	if err := db.AutoMigrate(&domain.SystemSettings{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate settings table")
	}
	return &GormSettingsRepository{db: db}
}

// Get returns the singleton settings row, inserting defaults on first access
func (r *GormSettingsRepository) Get(ctx context.Context) (*domain.SystemSettings, error) {
	find := func() (*domain.SystemSettings, error) {
		var settings domain.SystemSettings
		if err := r.db.WithContext(ctx).First(&settings, "id = ?", domain.SettingsID).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	create := func(defaults *domain.SystemSettings) error {
		return r.db.WithContext(ctx).Create(defaults).Error
	}
	return bootstrapSettings(find, create)
}

// bootstrapSettings reads the singleton row, inserting defaults when the
// table is empty. When two callers race the first access, the loser's insert
// hits the primary-key constraint and falls back to re-reading the winner's
// row, so first access is idempotent under concurrency.
func bootstrapSettings(find func() (*domain.SystemSettings, error), create func(*domain.SystemSettings) error) (*domain.SystemSettings, error) {
	settings, err := find()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := domain.DefaultSettings()
	defaults.CreatedAt = time.Now()
	defaults.UpdatedAt = time.Now()

	if err := create(defaults); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent caller won the bootstrap race
			return find()
		}
		if isPermissionDenied(err) {
			return nil, domain.ErrPermissionDenied
		}
		return nil, err
	}

	logger.Logger.Info().Msg("System settings initialized with defaults")
	return defaults, nil
}

// Update persists changes to the existing row; it never creates one
func (r *GormSettingsRepository) Update(ctx context.Context, settings *domain.SystemSettings) error {
	settings.ID = domain.SettingsID
	settings.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Model(&domain.SystemSettings{}).
		Where("id = ?", domain.SettingsID).
		Updates(settings)
	if result.Error != nil {
		if isPermissionDenied(result.Error) {
			return domain.ErrPermissionDenied
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isPermissionDenied recognizes a storage-layer authorization rejection
// (SQLSTATE 42501, insufficient_privilege) by code or message
func isPermissionDenied(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 42501") || strings.Contains(msg, "permission denied")
}
