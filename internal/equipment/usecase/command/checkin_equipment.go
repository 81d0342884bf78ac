package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// CheckinEquipmentCommand represents the command to check equipment back in
type CheckinEquipmentCommand struct {
	CheckoutID string
	Notes      string
	UserID     string
}

// CheckinEquipmentHandler handles equipment check-in
type CheckinEquipmentHandler struct {
	repo domain.EquipmentRepository
}

// NewCheckinEquipmentHandler creates a new check-in handler
func NewCheckinEquipmentHandler(repo domain.EquipmentRepository) *CheckinEquipmentHandler {
	return &CheckinEquipmentHandler{repo: repo}
}

// Handle executes the check-in command. A checkout closes exactly once; a
// second attempt fails with ErrAlreadyCheckedIn and does not touch
// availability again.
func (h *CheckinEquipmentHandler) Handle(ctx context.Context, cmd CheckinEquipmentCommand) (*domain.EquipmentCheckout, error) {
	if _, err := uuid.Parse(cmd.CheckoutID); err != nil {
		return nil, fmt.Errorf("invalid checkout id")
	}
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	return h.repo.CheckIn(ctx, cmd.CheckoutID, cmd.UserID, cmd.Notes)
}
