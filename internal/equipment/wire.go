//go:build wireinject
// +build wireinject

package equipment

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/trafficworks/equipment-service/internal/equipment/delivery/http"
	"github.com/trafficworks/equipment-service/kafka"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, kafkaPublisher *kafka.Publisher, redisClient *redis.Client) (*http.EquipmentHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewEquipmentHandlerWithDI,
	)
	return nil, nil
}
