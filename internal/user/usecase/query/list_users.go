package query

import (
	"context"
	"fmt"

	"github.com/trafficworks/equipment-service/internal/user/domain"
)

// ListUsersQuery represents the query to list profiles
type ListUsersQuery struct {
	Limit  int
	Offset int
	Role   domain.Role // Optional filter
}

// ListUsersHandler handles list users queries
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ctx context.Context, q ListUsersQuery) ([]domain.User, error) {
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	if q.Role != "" {
		if !q.Role.IsValid() {
			return nil, fmt.Errorf("invalid role: %s", q.Role)
		}
		users, err := h.repo.FindByRole(ctx, q.Role, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return users, nil
	}

	users, err := h.repo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
