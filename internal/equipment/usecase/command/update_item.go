package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// UpdateItemCommand represents the command to update an equipment item.
// Nil pointers leave the corresponding field unchanged.
type UpdateItemCommand struct {
	ID           string
	Name         *string
	Description  *string
	Quantity     *int
	Condition    *domain.Condition
	LocationID   *string
	Cost         *float64
	SerialNumber *string
	Notes        *string
}

// UpdateItemHandler handles equipment item updates
type UpdateItemHandler struct {
	repo domain.EquipmentRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.EquipmentRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command. A total-quantity edit re-derives
// the available count while preserving how many units are checked out, so it
// runs through the repository's locked total-update path rather than a plain
// save.
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*domain.EquipmentItem, error) {
	if _, err := uuid.Parse(cmd.ID); err != nil {
		return nil, fmt.Errorf("invalid equipment id")
	}

	item, err := h.repo.FindItemByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Quantity != nil {
		if *cmd.Quantity < 0 {
			return nil, fmt.Errorf("quantity cannot be negative")
		}
		item, err = h.repo.UpdateItemTotal(ctx, cmd.ID, *cmd.Quantity)
		if err != nil {
			return nil, err
		}
	}

	changed := false
	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		item.Name = *cmd.Name
		changed = true
	}
	if cmd.Description != nil {
		item.Description = *cmd.Description
		changed = true
	}
	if cmd.Condition != nil {
		if !cmd.Condition.IsValid() {
			return nil, fmt.Errorf("invalid condition: %s", *cmd.Condition)
		}
		item.Condition = *cmd.Condition
		changed = true
	}
	if cmd.LocationID != nil {
		if *cmd.LocationID == "" {
			item.LocationID = nil
		} else {
			if _, err := uuid.Parse(*cmd.LocationID); err != nil {
				return nil, fmt.Errorf("invalid location id")
			}
			if _, err := h.repo.FindLocationByID(ctx, *cmd.LocationID); err != nil {
				return nil, fmt.Errorf("location not found")
			}
			item.LocationID = cmd.LocationID
		}
		changed = true
	}
	if cmd.Cost != nil {
		item.Cost = *cmd.Cost
		changed = true
	}
	if cmd.SerialNumber != nil {
		item.SerialNumber = *cmd.SerialNumber
		changed = true
	}
	if cmd.Notes != nil {
		item.Notes = *cmd.Notes
		changed = true
	}

	if changed {
		item.UpdatedAt = time.Now()
		if err := h.repo.UpdateItem(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to update equipment item: %w", err)
		}
	}

	return item, nil
}
