package equipment

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/trafficworks/equipment-service/internal/equipment/delivery/http"
	"github.com/trafficworks/equipment-service/internal/equipment/domain"
	"github.com/trafficworks/equipment-service/internal/equipment/repository"
	"github.com/trafficworks/equipment-service/internal/equipment/usecase/command"
	"github.com/trafficworks/equipment-service/internal/equipment/usecase/query"
	"github.com/trafficworks/equipment-service/pkg/logger"
)

// ProvideEquipmentRepository provides the traced inventory repository
func ProvideEquipmentRepository(db *gorm.DB) domain.EquipmentRepository {
	repo := repository.NewTracedEquipmentRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate inventory tables")
	}
	return repo
}

// ProvideCommandHandlers provides all equipment command handlers
func ProvideCommandHandlers(repo domain.EquipmentRepository) *http.CommandHandlers {
	return &http.CommandHandlers{
		CreateItemHandler:        command.NewCreateItemHandler(repo),
		UpdateItemHandler:        command.NewUpdateItemHandler(repo),
		DeleteItemHandler:        command.NewDeleteItemHandler(repo),
		CheckoutHandler:          command.NewCheckoutEquipmentHandler(repo),
		CheckinHandler:           command.NewCheckinEquipmentHandler(repo),
		DeleteCheckoutHandler:    command.NewDeleteCheckoutHandler(repo),
		CreateCategoryHandler:    command.NewCreateCategoryHandler(repo),
		UpdateCategoryHandler:    command.NewUpdateCategoryHandler(repo),
		DeleteCategoryHandler:    command.NewDeleteCategoryHandler(repo),
		CreateLocationHandler:    command.NewCreateLocationHandler(repo),
		UpdateLocationHandler:    command.NewUpdateLocationHandler(repo),
		DeleteLocationHandler:    command.NewDeleteLocationHandler(repo),
		CreateMaintenanceHandler: command.NewCreateMaintenanceHandler(repo),
		UpdateMaintenanceHandler: command.NewUpdateMaintenanceHandler(repo),
	}
}

// ProvideQueryHandlers provides all equipment query handlers
func ProvideQueryHandlers(repo domain.EquipmentRepository) *http.QueryHandlers {
	return &http.QueryHandlers{
		GetItemHandler:         query.NewGetItemHandler(repo),
		ListItemsHandler:       query.NewListItemsHandler(repo),
		ListCategoriesHandler:  query.NewListCategoriesHandler(repo),
		ListLocationsHandler:   query.NewListLocationsHandler(repo),
		GetCheckoutHandler:     query.NewGetCheckoutHandler(repo),
		ListCheckoutsHandler:   query.NewListCheckoutsHandler(repo),
		ListMaintenanceHandler: query.NewListMaintenanceHandler(repo),
	}
}

// AllHandlersSet wires the repository and handler sets together
var AllHandlersSet = wire.NewSet(
	ProvideEquipmentRepository,
	ProvideCommandHandlers,
	ProvideQueryHandlers,
)
