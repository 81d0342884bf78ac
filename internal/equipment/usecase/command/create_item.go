package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// CreateItemCommand represents the command to create an equipment item
type CreateItemCommand struct {
	CategoryID   string
	Name         string
	Description  string
	Quantity     int
	Condition    domain.Condition
	LocationID   string
	Cost         float64
	SerialNumber string
	Notes        string
}

// CreateItemHandler handles equipment item creation
type CreateItemHandler struct {
	repo domain.EquipmentRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.EquipmentRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command. A new item starts with its entire
// quantity available.
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*domain.EquipmentItem, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if _, err := uuid.Parse(cmd.CategoryID); err != nil {
		return nil, fmt.Errorf("invalid category id")
	}
	if _, err := h.repo.FindCategoryByID(ctx, cmd.CategoryID); err != nil {
		return nil, fmt.Errorf("category not found")
	}

	condition := cmd.Condition
	if condition == "" {
		condition = domain.ConditionGood
	}
	if !condition.IsValid() {
		return nil, fmt.Errorf("invalid condition: %s", condition)
	}

	var locationID *string
	if cmd.LocationID != "" {
		if _, err := uuid.Parse(cmd.LocationID); err != nil {
			return nil, fmt.Errorf("invalid location id")
		}
		if _, err := h.repo.FindLocationByID(ctx, cmd.LocationID); err != nil {
			return nil, fmt.Errorf("location not found")
		}
		locationID = &cmd.LocationID
	}

	item := &domain.EquipmentItem{
		ID:                uuid.NewString(),
		CategoryID:        cmd.CategoryID,
		Name:              cmd.Name,
		Description:       cmd.Description,
		QuantityTotal:     cmd.Quantity,
		QuantityAvailable: cmd.Quantity,
		Condition:         condition,
		LocationID:        locationID,
		Cost:              cmd.Cost,
		SerialNumber:      cmd.SerialNumber,
		Notes:             cmd.Notes,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := h.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create equipment item: %w", err)
	}

	return item, nil
}
