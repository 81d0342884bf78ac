package query

import (
	"context"
	"fmt"

	"github.com/trafficworks/equipment-service/internal/user/domain"
)

// GetUserQuery represents the query to get a profile
type GetUserQuery struct {
	ID string
}

// GetUserHandler handles get user queries
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(ctx context.Context, q GetUserQuery) (*domain.User, error) {
	if q.ID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	user, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return user, nil
}
