package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// CreateLocationCommand represents the command to create a location
type CreateLocationCommand struct {
	Name    string
	Address string
	Notes   string
}

// CreateLocationHandler handles location creation
type CreateLocationHandler struct {
	repo domain.EquipmentRepository
}

// NewCreateLocationHandler creates a new create location handler
func NewCreateLocationHandler(repo domain.EquipmentRepository) *CreateLocationHandler {
	return &CreateLocationHandler{repo: repo}
}

// Handle executes the create location command
func (h *CreateLocationHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (*domain.Location, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	location := &domain.Location{
		ID:        uuid.NewString(),
		Name:      cmd.Name,
		Address:   cmd.Address,
		Notes:     cmd.Notes,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return location, nil
}
