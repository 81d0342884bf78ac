package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/trafficworks/equipment-service/internal/user/delivery/http"
	"github.com/trafficworks/equipment-service/internal/user/domain"
	"github.com/trafficworks/equipment-service/internal/user/repository"
	"github.com/trafficworks/equipment-service/internal/user/usecase/command"
	"github.com/trafficworks/equipment-service/internal/user/usecase/query"
	"github.com/trafficworks/equipment-service/pkg/logger"
)

// ProvideUserRepository provides the profile repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	repo := repository.NewGormUserRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate profiles table")
	}
	return repo
}

// ProvideCommandHandlers provides all profile command handlers
func ProvideCommandHandlers(repo domain.UserRepository) *http.CommandHandlers {
	return &http.CommandHandlers{
		RegisterHandler:     command.NewRegisterUserHandler(repo),
		LoginHandler:        command.NewLoginUserHandler(repo),
		UpdateHandler:       command.NewUpdateUserHandler(repo),
		DeleteHandler:       command.NewDeleteUserHandler(repo),
		ChangeRoleHandler:   command.NewChangeRoleHandler(repo),
		ToggleActiveHandler: command.NewToggleActiveHandler(repo),
	}
}

// ProvideQueryHandlers provides all profile query handlers
func ProvideQueryHandlers(repo domain.UserRepository) *http.QueryHandlers {
	return &http.QueryHandlers{
		GetUserHandler: query.NewGetUserHandler(repo),
		ListHandler:    query.NewListUsersHandler(repo),
		StatsHandler:   query.NewGetStatsHandler(repo),
	}
}

// AllHandlersSet wires the repository and handler sets together
var AllHandlersSet = wire.NewSet(
	ProvideUserRepository,
	ProvideCommandHandlers,
	ProvideQueryHandlers,
)
