package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// ListItemsQuery represents the query to list equipment items
type ListItemsQuery struct {
	CategoryID string
	LocationID string
	Condition  string
	Search     string
	Limit      int
	Offset     int
}

// ListItemsHandler handles item listings
type ListItemsHandler struct {
	repo domain.EquipmentRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.EquipmentRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(ctx context.Context, q ListItemsQuery) ([]domain.EquipmentItem, error) {
	filter := domain.ItemFilter{
		Search: q.Search,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if q.CategoryID != "" {
		if _, err := uuid.Parse(q.CategoryID); err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		filter.CategoryID = q.CategoryID
	}
	if q.LocationID != "" {
		if _, err := uuid.Parse(q.LocationID); err != nil {
			return nil, fmt.Errorf("invalid location id")
		}
		filter.LocationID = q.LocationID
	}
	if q.Condition != "" {
		cond := domain.Condition(q.Condition)
		if !cond.IsValid() {
			return nil, fmt.Errorf("invalid condition filter")
		}
		filter.Condition = cond
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return h.repo.FindAllItems(ctx, filter)
}
