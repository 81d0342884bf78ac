package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// DeleteCategoryCommand represents the command to delete an equipment category
type DeleteCategoryCommand struct {
	ID string
}

// DeleteCategoryHandler handles category deletion
type DeleteCategoryHandler struct {
	repo domain.EquipmentRepository
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(repo domain.EquipmentRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if _, err := uuid.Parse(cmd.ID); err != nil {
		return fmt.Errorf("invalid category id")
	}

	items, err := h.repo.FindAllItems(ctx, domain.ItemFilter{CategoryID: cmd.ID, Limit: 1})
	if err != nil {
		return fmt.Errorf("failed to check category items: %w", err)
	}
	if len(items) > 0 {
		return fmt.Errorf("category still has equipment items and cannot be deleted")
	}

	return h.repo.DeleteCategory(ctx, cmd.ID)
}
