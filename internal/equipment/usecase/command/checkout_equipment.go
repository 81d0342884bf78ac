package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// CheckoutEquipmentCommand represents the command to check equipment out.
// ExpectedReturnDate, when present, must be formatted YYYY-MM-DD.
type CheckoutEquipmentCommand struct {
	EquipmentID           string
	Quantity              int
	ExpectedReturnDate    string
	DestinationLocationID string
	Notes                 string
	UserID                string
}

// CheckoutEquipmentHandler handles equipment checkout
type CheckoutEquipmentHandler struct {
	repo domain.EquipmentRepository
}

// NewCheckoutEquipmentHandler creates a new checkout handler
func NewCheckoutEquipmentHandler(repo domain.EquipmentRepository) *CheckoutEquipmentHandler {
	return &CheckoutEquipmentHandler{repo: repo}
}

// Handle executes the checkout command. The open checkout row and the
// availability decrement land in one repository transaction; a request for
// more units than are available fails with ErrInsufficientStock and changes
// nothing.
func (h *CheckoutEquipmentHandler) Handle(ctx context.Context, cmd CheckoutEquipmentCommand) (*domain.EquipmentCheckout, error) {
	if _, err := uuid.Parse(cmd.EquipmentID); err != nil {
		return nil, fmt.Errorf("invalid equipment id")
	}
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if cmd.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	var expectedReturn *time.Time
	if cmd.ExpectedReturnDate != "" {
		d, err := time.Parse("2006-01-02", cmd.ExpectedReturnDate)
		if err != nil {
			return nil, fmt.Errorf("expected return date must be YYYY-MM-DD")
		}
		expectedReturn = &d
	}

	var destination *string
	if cmd.DestinationLocationID != "" {
		if _, err := uuid.Parse(cmd.DestinationLocationID); err != nil {
			return nil, fmt.Errorf("invalid destination location id")
		}
		if _, err := h.repo.FindLocationByID(ctx, cmd.DestinationLocationID); err != nil {
			return nil, fmt.Errorf("destination location not found")
		}
		destination = &cmd.DestinationLocationID
	}

	checkout := &domain.EquipmentCheckout{
		ID:                    uuid.NewString(),
		EquipmentID:           cmd.EquipmentID,
		CheckedOutBy:          cmd.UserID,
		CheckedOutAt:          time.Now().UTC(),
		Quantity:              cmd.Quantity,
		ExpectedReturnDate:    expectedReturn,
		DestinationLocationID: destination,
		Notes:                 cmd.Notes,
	}

	if err := h.repo.Checkout(ctx, checkout); err != nil {
		return nil, err
	}

	return checkout, nil
}
