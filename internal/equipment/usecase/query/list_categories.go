package query

import (
	"context"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// ListCategoriesQuery represents the query to list all equipment categories
type ListCategoriesQuery struct{}

// ListCategoriesHandler handles category listings
type ListCategoriesHandler struct {
	repo domain.EquipmentRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.EquipmentRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, _ ListCategoriesQuery) ([]domain.EquipmentCategory, error) {
	return h.repo.FindAllCategories(ctx)
}
