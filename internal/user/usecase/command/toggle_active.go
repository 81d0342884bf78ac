package command

import (
	"context"
	"fmt"
	"time"

	"github.com/trafficworks/equipment-service/internal/user/domain"
)

// ToggleActiveCommand represents the command to activate or deactivate a profile
type ToggleActiveCommand struct {
	UserID   string
	IsActive bool
}

// ToggleActiveHandler handles profile activation toggling
type ToggleActiveHandler struct {
	repo domain.UserRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.UserRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the toggle active command
func (h *ToggleActiveHandler) Handle(ctx context.Context, cmd ToggleActiveCommand) (*domain.User, error) {
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	user, err := h.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	user.IsActive = cmd.IsActive
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
