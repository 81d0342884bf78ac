package settings

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/trafficworks/equipment-service/internal/settings/domain"
	"github.com/trafficworks/equipment-service/internal/settings/repository"
	"github.com/trafficworks/equipment-service/internal/settings/usecase/command"
	"github.com/trafficworks/equipment-service/internal/settings/usecase/query"
)

// ProvideSettingsRepository provides the settings repository
func ProvideSettingsRepository(db *gorm.DB) domain.SettingsRepository {
	return repository.NewGormSettingsRepository(db)
}

// ProvideGetHandler provides the get settings handler
func ProvideGetHandler(repo domain.SettingsRepository) *query.GetSettingsHandler {
	return query.NewGetSettingsHandler(repo)
}

// ProvideUpdateHandler provides the update settings handler
func ProvideUpdateHandler(repo domain.SettingsRepository) *command.UpdateSettingsHandler {
	return command.NewUpdateSettingsHandler(repo)
}

// AllHandlersSet wires the repository and handlers together
var AllHandlersSet = wire.NewSet(
	ProvideSettingsRepository,
	ProvideGetHandler,
	ProvideUpdateHandler,
)
