package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// GetItemQuery represents the query to get a single equipment item
type GetItemQuery struct {
	ID string
}

// GetItemHandler handles single-item lookups
type GetItemHandler struct {
	repo domain.EquipmentRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.EquipmentRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(ctx context.Context, q GetItemQuery) (*domain.EquipmentItem, error) {
	if _, err := uuid.Parse(q.ID); err != nil {
		return nil, fmt.Errorf("invalid equipment id")
	}
	return h.repo.FindItemByID(ctx, q.ID)
}
