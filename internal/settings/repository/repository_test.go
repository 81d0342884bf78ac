package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/trafficworks/equipment-service/internal/settings/domain"
)

func TestIsPermissionDenied(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "sqlstate insufficient privilege",
			err:  errors.New("ERROR: permission denied for table system_settings (SQLSTATE 42501)"),
			want: true,
		},
		{
			name: "plain permission message",
			err:  errors.New("permission denied"),
			want: true,
		},
		{
			name: "unique violation",
			err:  errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"),
			want: false,
		},
		{
			name: "connection failure",
			err:  errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPermissionDenied(tt.err))
		})
	}
}

func TestBootstrapSettingsFirstAccess(t *testing.T) {
	var created *domain.SystemSettings
	find := func() (*domain.SystemSettings, error) {
		if created != nil {
			return created, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	create := func(defaults *domain.SystemSettings) error {
		created = defaults
		return nil
	}

	settings, err := bootstrapSettings(find, create)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.SettingsID, settings.ID)
	assert.Equal(t, "Traffic Works", settings.OrganizationName)
}

func TestBootstrapSettingsLosesInsertRace(t *testing.T) {
	winner := domain.DefaultSettings()
	winner.OrganizationName = "Winner Org"

	reads := 0
	find := func() (*domain.SystemSettings, error) {
		reads++
		// The winner's insert lands between our empty read and our insert
		if reads == 1 {
			return nil, gorm.ErrRecordNotFound
		}
		return winner, nil
	}
	create := func(*domain.SystemSettings) error {
		return gorm.ErrDuplicatedKey
	}

	settings, err := bootstrapSettings(find, create)
	require.NoError(t, err)
	assert.Equal(t, 2, reads)
	assert.Equal(t, "Winner Org", settings.OrganizationName)
}

func TestBootstrapSettingsPermissionDenied(t *testing.T) {
	find := func() (*domain.SystemSettings, error) {
		return nil, gorm.ErrRecordNotFound
	}
	create := func(*domain.SystemSettings) error {
		return errors.New("ERROR: permission denied for table system_settings (SQLSTATE 42501)")
	}

	_, err := bootstrapSettings(find, create)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
