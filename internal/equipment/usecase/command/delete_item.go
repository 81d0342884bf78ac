package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// DeleteItemCommand represents the command to delete an equipment item
type DeleteItemCommand struct {
	ID string
}

// DeleteItemHandler handles equipment item deletion
type DeleteItemHandler struct {
	repo domain.EquipmentRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.EquipmentRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if _, err := uuid.Parse(cmd.ID); err != nil {
		return fmt.Errorf("invalid equipment id")
	}

	open, err := h.repo.FindCheckouts(ctx, domain.CheckoutFilter{
		EquipmentID: cmd.ID,
		OnlyOpen:    true,
		Limit:       1,
	})
	if err != nil {
		return fmt.Errorf("failed to check open checkouts: %w", err)
	}
	if len(open) > 0 {
		return fmt.Errorf("equipment has open checkouts and cannot be deleted")
	}

	return h.repo.DeleteItem(ctx, cmd.ID)
}
