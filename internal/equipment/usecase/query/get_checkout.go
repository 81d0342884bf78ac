package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// GetCheckoutQuery represents the query to get a single checkout record
type GetCheckoutQuery struct {
	ID string
}

// GetCheckoutHandler handles single-checkout lookups
type GetCheckoutHandler struct {
	repo domain.EquipmentRepository
}

// NewGetCheckoutHandler creates a new get checkout handler
func NewGetCheckoutHandler(repo domain.EquipmentRepository) *GetCheckoutHandler {
	return &GetCheckoutHandler{repo: repo}
}

// Handle executes the get checkout query
func (h *GetCheckoutHandler) Handle(ctx context.Context, q GetCheckoutQuery) (*domain.EquipmentCheckout, error) {
	if _, err := uuid.Parse(q.ID); err != nil {
		return nil, fmt.Errorf("invalid checkout id")
	}
	return h.repo.FindCheckoutByID(ctx, q.ID)
}
