//go:build wireinject
// +build wireinject

package settings

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/trafficworks/equipment-service/internal/settings/delivery/http"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.SettingsHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewSettingsHandler,
	)
	return nil, nil
}
