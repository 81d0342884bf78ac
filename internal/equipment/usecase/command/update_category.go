package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// UpdateCategoryCommand represents the command to update an equipment category
type UpdateCategoryCommand struct {
	ID          string
	Name        *string
	Description *string
}

// UpdateCategoryHandler handles category updates
type UpdateCategoryHandler struct {
	repo domain.EquipmentRepository
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.EquipmentRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.EquipmentCategory, error) {
	if _, err := uuid.Parse(cmd.ID); err != nil {
		return nil, fmt.Errorf("invalid category id")
	}

	category, err := h.repo.FindCategoryByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		category.Name = *cmd.Name
	}
	if cmd.Description != nil {
		category.Description = *cmd.Description
	}
	category.UpdatedAt = time.Now()

	if err := h.repo.UpdateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}
