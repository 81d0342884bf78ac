package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// CreateMaintenanceCommand represents the command to open a maintenance record
type CreateMaintenanceCommand struct {
	EquipmentID string
	ReportedBy  string
	Description string
	Cost        float64
	Notes       string
}

// CreateMaintenanceHandler handles maintenance record creation
type CreateMaintenanceHandler struct {
	repo domain.EquipmentRepository
}

// NewCreateMaintenanceHandler creates a new create maintenance handler
func NewCreateMaintenanceHandler(repo domain.EquipmentRepository) *CreateMaintenanceHandler {
	return &CreateMaintenanceHandler{repo: repo}
}

// Handle executes the create maintenance command
func (h *CreateMaintenanceHandler) Handle(ctx context.Context, cmd CreateMaintenanceCommand) (*domain.EquipmentMaintenance, error) {
	if _, err := uuid.Parse(cmd.EquipmentID); err != nil {
		return nil, fmt.Errorf("invalid equipment id")
	}
	if _, err := uuid.Parse(cmd.ReportedBy); err != nil {
		return nil, fmt.Errorf("invalid reporting user id")
	}
	if cmd.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if cmd.Cost < 0 {
		return nil, fmt.Errorf("cost cannot be negative")
	}

	if _, err := h.repo.FindItemByID(ctx, cmd.EquipmentID); err != nil {
		return nil, fmt.Errorf("equipment item not found")
	}

	record := &domain.EquipmentMaintenance{
		ID:          uuid.NewString(),
		EquipmentID: cmd.EquipmentID,
		ReportedBy:  cmd.ReportedBy,
		Description: cmd.Description,
		Status:      domain.MaintenanceScheduled,
		Cost:        cmd.Cost,
		Notes:       cmd.Notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.CreateMaintenance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create maintenance record: %w", err)
	}

	return record, nil
}
