package query

import (
	"context"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// ListLocationsQuery represents the query to list all locations
type ListLocationsQuery struct{}

// ListLocationsHandler handles location listings
type ListLocationsHandler struct {
	repo domain.EquipmentRepository
}

// NewListLocationsHandler creates a new list locations handler
func NewListLocationsHandler(repo domain.EquipmentRepository) *ListLocationsHandler {
	return &ListLocationsHandler{repo: repo}
}

// Handle executes the list locations query
func (h *ListLocationsHandler) Handle(ctx context.Context, _ ListLocationsQuery) ([]domain.Location, error) {
	return h.repo.FindAllLocations(ctx)
}
