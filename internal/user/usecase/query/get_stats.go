package query

import (
	"context"
	"fmt"

	"github.com/trafficworks/equipment-service/internal/user/domain"
)

// GetStatsQuery represents the query for profile statistics
type GetStatsQuery struct{}

// UserStats summarizes the profile population by role
type UserStats struct {
	Total  int64                 `json:"total"`
	ByRole map[domain.Role]int64 `json:"by_role"`
}

// GetStatsHandler handles profile statistics queries
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(ctx context.Context, q GetStatsQuery) (*UserStats, error) {
	total, err := h.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	stats := &UserStats{
		Total:  total,
		ByRole: make(map[domain.Role]int64, len(domain.AllRoles)),
	}
	for _, role := range domain.AllRoles {
		n, err := h.repo.CountByRole(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("failed to count role %s: %w", role, err)
		}
		stats.ByRole[role] = n
	}

	return stats, nil
}
