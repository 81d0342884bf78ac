package command

import (
	"context"
	"fmt"

	"github.com/trafficworks/equipment-service/internal/user/domain"
)

// DeleteUserCommand represents the command to delete a profile
type DeleteUserCommand struct {
	ID string
}

// DeleteUserHandler handles profile deletion
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle executes the delete user command
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("user id is required")
	}

	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		return fmt.Errorf("user not found")
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
