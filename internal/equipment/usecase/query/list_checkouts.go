package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// ListCheckoutsQuery represents the query to list checkout records
type ListCheckoutsQuery struct {
	EquipmentID  string
	CheckedOutBy string
	Status       string // "", "open" or "closed"
	Limit        int
	Offset       int
}

// ListCheckoutsHandler handles checkout listings
type ListCheckoutsHandler struct {
	repo domain.EquipmentRepository
}

// NewListCheckoutsHandler creates a new list checkouts handler
func NewListCheckoutsHandler(repo domain.EquipmentRepository) *ListCheckoutsHandler {
	return &ListCheckoutsHandler{repo: repo}
}

// Handle executes the list checkouts query
func (h *ListCheckoutsHandler) Handle(ctx context.Context, q ListCheckoutsQuery) ([]domain.EquipmentCheckout, error) {
	filter := domain.CheckoutFilter{
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if q.EquipmentID != "" {
		if _, err := uuid.Parse(q.EquipmentID); err != nil {
			return nil, fmt.Errorf("invalid equipment id")
		}
		filter.EquipmentID = q.EquipmentID
	}
	if q.CheckedOutBy != "" {
		if _, err := uuid.Parse(q.CheckedOutBy); err != nil {
			return nil, fmt.Errorf("invalid user id")
		}
		filter.CheckedOutBy = q.CheckedOutBy
	}
	switch q.Status {
	case "":
	case "open":
		filter.OnlyOpen = true
	case "closed":
		filter.OnlyClosed = true
	default:
		return nil, fmt.Errorf("invalid status filter")
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

	return h.repo.FindCheckouts(ctx, filter)
}
