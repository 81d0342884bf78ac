package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// UpdateMaintenanceCommand represents the command to update a maintenance record.
// Setting Status to completed stamps CompletedAt; a completed record stays
// completed.
type UpdateMaintenanceCommand struct {
	ID          string
	Description *string
	Status      *domain.MaintenanceStatus
	Cost        *float64
	Notes       *string
}

// UpdateMaintenanceHandler handles maintenance record updates
type UpdateMaintenanceHandler struct {
	repo domain.EquipmentRepository
}

// NewUpdateMaintenanceHandler creates a new update maintenance handler
func NewUpdateMaintenanceHandler(repo domain.EquipmentRepository) *UpdateMaintenanceHandler {
	return &UpdateMaintenanceHandler{repo: repo}
}

// Handle executes the update maintenance command
func (h *UpdateMaintenanceHandler) Handle(ctx context.Context, cmd UpdateMaintenanceCommand) (*domain.EquipmentMaintenance, error) {
	if _, err := uuid.Parse(cmd.ID); err != nil {
		return nil, fmt.Errorf("invalid maintenance record id")
	}

	record, err := h.repo.FindMaintenanceByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Description != nil {
		if *cmd.Description == "" {
			return nil, fmt.Errorf("description cannot be empty")
		}
		record.Description = *cmd.Description
	}
	if cmd.Status != nil {
		switch *cmd.Status {
		case domain.MaintenanceScheduled, domain.MaintenanceInProgress, domain.MaintenanceCompleted:
		default:
			return nil, fmt.Errorf("invalid maintenance status")
		}
		if record.Status == domain.MaintenanceCompleted && *cmd.Status != domain.MaintenanceCompleted {
			return nil, fmt.Errorf("completed maintenance cannot be reopened")
		}
		record.Status = *cmd.Status
		if record.Status == domain.MaintenanceCompleted && record.CompletedAt == nil {
			now := time.Now()
			record.CompletedAt = &now
		}
	}
	if cmd.Cost != nil {
		if *cmd.Cost < 0 {
			return nil, fmt.Errorf("cost cannot be negative")
		}
		record.Cost = *cmd.Cost
	}
	if cmd.Notes != nil {
		record.Notes = *cmd.Notes
	}
	record.UpdatedAt = time.Now()

	if err := h.repo.UpdateMaintenance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update maintenance record: %w", err)
	}

	return record, nil
}
