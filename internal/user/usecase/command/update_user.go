package command

import (
	"context"
	"fmt"
	"time"

	"github.com/trafficworks/equipment-service/internal/user/domain"
	"github.com/trafficworks/equipment-service/pkg/auth"
)

// UpdateUserCommand represents the command to update a profile.
// Empty fields are left unchanged.
type UpdateUserCommand struct {
	ID       string
	Email    string
	FullName string
	Phone    string
	Password string
}

// UpdateUserHandler handles profile updates
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	user, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if cmd.Email != "" && cmd.Email != user.Email {
		if existing, _ := h.repo.FindByEmail(ctx, cmd.Email); existing != nil {
			return nil, fmt.Errorf("email already exists")
		}
		user.Email = cmd.Email
	}
	if cmd.FullName != "" {
		user.FullName = cmd.FullName
	}
	if cmd.Phone != "" {
		user.Phone = cmd.Phone
	}
	if cmd.Password != "" {
		if len(cmd.Password) < 8 {
			return nil, fmt.Errorf("password must be at least 8 characters")
		}
		hashed, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
