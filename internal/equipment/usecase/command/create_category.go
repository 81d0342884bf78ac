package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// CreateCategoryCommand represents the command to create an equipment category
type CreateCategoryCommand struct {
	Name        string
	Description string
}

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	repo domain.EquipmentRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.EquipmentRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.EquipmentCategory, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	category := &domain.EquipmentCategory{
		ID:          uuid.NewString(),
		Name:        cmd.Name,
		Description: cmd.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
