package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// ListMaintenanceQuery represents the query to list maintenance records for an item
type ListMaintenanceQuery struct {
	EquipmentID string
	Limit       int
	Offset      int
}

// ListMaintenanceHandler handles maintenance listings
type ListMaintenanceHandler struct {
	repo domain.EquipmentRepository
}

// NewListMaintenanceHandler creates a new list maintenance handler
func NewListMaintenanceHandler(repo domain.EquipmentRepository) *ListMaintenanceHandler {
	return &ListMaintenanceHandler{repo: repo}
}

// Handle executes the list maintenance query
func (h *ListMaintenanceHandler) Handle(ctx context.Context, q ListMaintenanceQuery) ([]domain.EquipmentMaintenance, error) {
	if _, err := uuid.Parse(q.EquipmentID); err != nil {
		return nil, fmt.Errorf("invalid equipment id")
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	return h.repo.FindMaintenance(ctx, q.EquipmentID, limit, offset)
}
