package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// DeleteCheckoutCommand represents the administrative command to remove a
// checkout record. Deletion is a bookkeeping correction: it does NOT revert
// the equipment's availability (that is what check-in is for).
type DeleteCheckoutCommand struct {
	ID string
}

// DeleteCheckoutHandler handles checkout record deletion
type DeleteCheckoutHandler struct {
	repo domain.EquipmentRepository
}

// NewDeleteCheckoutHandler creates a new delete checkout handler
func NewDeleteCheckoutHandler(repo domain.EquipmentRepository) *DeleteCheckoutHandler {
	return &DeleteCheckoutHandler{repo: repo}
}

// Handle executes the delete checkout command
func (h *DeleteCheckoutHandler) Handle(ctx context.Context, cmd DeleteCheckoutCommand) error {
	if _, err := uuid.Parse(cmd.ID); err != nil {
		return fmt.Errorf("invalid checkout id")
	}

	return h.repo.DeleteCheckout(ctx, cmd.ID)
}
