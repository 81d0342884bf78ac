package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// DeleteLocationCommand represents the command to delete a location
type DeleteLocationCommand struct {
	ID string
}

// DeleteLocationHandler handles location deletion
type DeleteLocationHandler struct {
	repo domain.EquipmentRepository
}

// NewDeleteLocationHandler creates a new delete location handler
func NewDeleteLocationHandler(repo domain.EquipmentRepository) *DeleteLocationHandler {
	return &DeleteLocationHandler{repo: repo}
}

// Handle executes the delete location command
func (h *DeleteLocationHandler) Handle(ctx context.Context, cmd DeleteLocationCommand) error {
	if _, err := uuid.Parse(cmd.ID); err != nil {
		return fmt.Errorf("invalid location id")
	}

	items, err := h.repo.FindAllItems(ctx, domain.ItemFilter{LocationID: cmd.ID, Limit: 1})
	if err != nil {
		return fmt.Errorf("failed to check location items: %w", err)
	}
	if len(items) > 0 {
		return fmt.Errorf("location still has equipment items and cannot be deleted")
	}

	return h.repo.DeleteLocation(ctx, cmd.ID)
}
