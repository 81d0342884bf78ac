package command

import (
	"context"
	"fmt"

	"github.com/trafficworks/equipment-service/internal/settings/domain"
)

// UpdateSettingsCommand represents a partial settings update. Nil fields
// are left unchanged. The row must already exist; update never bootstraps.
type UpdateSettingsCommand struct {
	OrganizationName    *string
	OrganizationAddress *string
	OrganizationPhone   *string
	OrganizationEmail   *string
	Timezone            *string
	DateFormat          *string
	Currency            *string
	LogoURL             *string
	PrimaryColor        *string
}

// UpdateSettingsHandler handles settings updates
type UpdateSettingsHandler struct {
	repo domain.SettingsRepository
}

// NewUpdateSettingsHandler creates a new update settings handler
func NewUpdateSettingsHandler(repo domain.SettingsRepository) *UpdateSettingsHandler {
	return &UpdateSettingsHandler{repo: repo}
}

// Handle executes the update settings command
func (h *UpdateSettingsHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) (*domain.SystemSettings, error) {
	settings := &domain.SystemSettings{}

	if cmd.OrganizationName != nil {
		if *cmd.OrganizationName == "" {
			return nil, fmt.Errorf("organization name cannot be empty")
		}
		settings.OrganizationName = *cmd.OrganizationName
	}
	if cmd.OrganizationAddress != nil {
		settings.OrganizationAddress = *cmd.OrganizationAddress
	}
	if cmd.OrganizationPhone != nil {
		settings.OrganizationPhone = *cmd.OrganizationPhone
	}
	if cmd.OrganizationEmail != nil {
		settings.OrganizationEmail = *cmd.OrganizationEmail
	}
	if cmd.Timezone != nil {
		settings.Timezone = *cmd.Timezone
	}
	if cmd.DateFormat != nil {
		settings.DateFormat = *cmd.DateFormat
	}
	if cmd.Currency != nil {
		settings.Currency = *cmd.Currency
	}
	if cmd.LogoURL != nil {
		settings.LogoURL = *cmd.LogoURL
	}
	if cmd.PrimaryColor != nil {
		settings.PrimaryColor = *cmd.PrimaryColor
	}

	if err := h.repo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return h.repo.Get(ctx)
}
