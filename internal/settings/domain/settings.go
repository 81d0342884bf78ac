package domain

import (
	"context"
	"errors"
	"time"
)

// SettingsID is the fixed id of the singleton settings row. Every caller
// reads and writes the same row.
const SettingsID = "00000000-0000-0000-0000-000000000001"

// SystemSettings is the singleton organization configuration row. It is
// created lazily with defaults on first read and never duplicated, even
// when concurrent callers race the first access.
type SystemSettings struct {
	ID                  string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrganizationName    string    `json:"organization_name" gorm:"not null"`
	OrganizationAddress string    `json:"organization_address,omitempty"`
	OrganizationPhone   string    `json:"organization_phone,omitempty"`
	OrganizationEmail   string    `json:"organization_email,omitempty"`
	Timezone            string    `json:"timezone" gorm:"not null;default:'UTC'"`
	DateFormat          string    `json:"date_format" gorm:"not null;default:'2006-01-02'"`
	Currency            string    `json:"currency" gorm:"not null;default:'USD'"`
	LogoURL             string    `json:"logo_url,omitempty"`
	PrimaryColor        string    `json:"primary_color,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (SystemSettings) TableName() string {
	return "system_settings"
}

// DefaultSettings returns the row inserted on first access
func DefaultSettings() *SystemSettings {
	return &SystemSettings{
		ID:               SettingsID,
		OrganizationName: "Traffic Works",
		Timezone:         "UTC",
		DateFormat:       "2006-01-02",
		Currency:         "USD",
		PrimaryColor:     "#f97316",
	}
}

// Sentinel errors for the settings store
var (
	// ErrNotFound is returned by Update when the row has not been
	// bootstrapped yet; update never creates the row implicitly.
	ErrNotFound = errors.New("settings not found")

	// ErrPermissionDenied is returned when the storage layer rejects the
	// bootstrap insert for authorization reasons, so callers can tell
	// "not allowed to initialize" from a transient failure.
	ErrPermissionDenied = errors.New("permission denied")
)

// SettingsRepository defines the contract for settings data access
type SettingsRepository interface {
	// Get returns the singleton row, creating it with defaults when absent.
	Get(ctx context.Context) (*SystemSettings, error)
	// Update persists changes to the existing row.
	Update(ctx context.Context, settings *SystemSettings) error
}
