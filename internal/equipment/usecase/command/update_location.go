package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// UpdateLocationCommand represents the command to update a location
type UpdateLocationCommand struct {
	ID      string
	Name    *string
	Address *string
	Notes   *string
}

// UpdateLocationHandler handles location updates
type UpdateLocationHandler struct {
	repo domain.EquipmentRepository
}

// NewUpdateLocationHandler creates a new update location handler
func NewUpdateLocationHandler(repo domain.EquipmentRepository) *UpdateLocationHandler {
	return &UpdateLocationHandler{repo: repo}
}

// Handle executes the update location command
func (h *UpdateLocationHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) (*domain.Location, error) {
	if _, err := uuid.Parse(cmd.ID); err != nil {
		return nil, fmt.Errorf("invalid location id")
	}

	location, err := h.repo.FindLocationByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		location.Name = *cmd.Name
	}
	if cmd.Address != nil {
		location.Address = *cmd.Address
	}
	if cmd.Notes != nil {
		location.Notes = *cmd.Notes
	}
	location.UpdatedAt = time.Now()

	if err := h.repo.UpdateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return location, nil
}
