package command

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficworks/equipment-service/internal/settings/domain"
)

// fakeSettingsRepository mirrors the storage semantics: Get bootstraps the
// singleton row once, Update merges non-empty fields into an existing row
// and never creates one.
type fakeSettingsRepository struct {
	mu  sync.Mutex
	row *domain.SystemSettings
}

func (f *fakeSettingsRepository) Get(_ context.Context) (*domain.SystemSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.row == nil {
		f.row = domain.DefaultSettings()
	}
	cp := *f.row
	return &cp, nil
}

func (f *fakeSettingsRepository) Update(_ context.Context, settings *domain.SystemSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.row == nil {
		return domain.ErrNotFound
	}
	if settings.OrganizationName != "" {
		f.row.OrganizationName = settings.OrganizationName
	}
	if settings.OrganizationAddress != "" {
		f.row.OrganizationAddress = settings.OrganizationAddress
	}
	if settings.Timezone != "" {
		f.row.Timezone = settings.Timezone
	}
	if settings.Currency != "" {
		f.row.Currency = settings.Currency
	}
	if settings.PrimaryColor != "" {
		f.row.PrimaryColor = settings.PrimaryColor
	}
	return nil
}

func TestUpdateSettingsRequiresExistingRow(t *testing.T) {
	repo := &fakeSettingsRepository{}
	handler := NewUpdateSettingsHandler(repo)

	name := "Northside Traffic Control"
	_, err := handler.Handle(context.Background(), UpdateSettingsCommand{OrganizationName: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSettingsPartialFields(t *testing.T) {
	repo := &fakeSettingsRepository{}
	handler := NewUpdateSettingsHandler(repo)
	ctx := context.Background()

	// Bootstrap the row
	initial, err := repo.Get(ctx)
	require.NoError(t, err)

	tz := "Australia/Sydney"
	updated, err := handler.Handle(ctx, UpdateSettingsCommand{Timezone: &tz})
	require.NoError(t, err)

	assert.Equal(t, "Australia/Sydney", updated.Timezone)
	assert.Equal(t, initial.OrganizationName, updated.OrganizationName)
	assert.Equal(t, initial.Currency, updated.Currency)
}

func TestUpdateSettingsRejectsEmptyOrganizationName(t *testing.T) {
	repo := &fakeSettingsRepository{}
	handler := NewUpdateSettingsHandler(repo)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	require.NoError(t, err)

	empty := ""
	_, err = handler.Handle(ctx, UpdateSettingsCommand{OrganizationName: &empty})
	assert.Error(t, err)
}
