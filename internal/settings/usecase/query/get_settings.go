package query

import (
	"context"

	"github.com/trafficworks/equipment-service/internal/settings/domain"
)

// GetSettingsQuery represents the query to read the singleton settings row
type GetSettingsQuery struct{}

// GetSettingsHandler handles settings reads, bootstrapping on first access
type GetSettingsHandler struct {
	repo domain.SettingsRepository
}

// NewGetSettingsHandler creates a new get settings handler
func NewGetSettingsHandler(repo domain.SettingsRepository) *GetSettingsHandler {
	return &GetSettingsHandler{repo: repo}
}

// Handle executes the get settings query
func (h *GetSettingsHandler) Handle(ctx context.Context, _ GetSettingsQuery) (*domain.SystemSettings, error) {
	return h.repo.Get(ctx)
}
