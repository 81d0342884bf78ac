package command

import (
	"context"
	"fmt"
	"time"

	"github.com/trafficworks/equipment-service/internal/user/domain"
)

// ChangeRoleCommand represents the command to change a profile's role
type ChangeRoleCommand struct {
	UserID string
	Role   domain.Role
}

// ChangeRoleHandler handles role changes
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(ctx context.Context, cmd ChangeRoleCommand) (*domain.User, error) {
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if !cmd.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", cmd.Role)
	}

	user, err := h.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	user.Role = cmd.Role
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	return user, nil
}
