package command

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

func TestCreateMaintenanceStartsScheduled(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 3, 3)
	handler := NewCreateMaintenanceHandler(repo)

	record, err := handler.Handle(context.Background(), CreateMaintenanceCommand{
		EquipmentID: item.ID,
		ReportedBy:  uuid.NewString(),
		Description: "Bent frame on arrow board",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceScheduled, record.Status)
	assert.Nil(t, record.CompletedAt)
}

func TestUpdateMaintenanceCompletionIsTerminal(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 3, 3)
	createHandler := NewCreateMaintenanceHandler(repo)
	updateHandler := NewUpdateMaintenanceHandler(repo)
	ctx := context.Background()

	record, err := createHandler.Handle(ctx, CreateMaintenanceCommand{
		EquipmentID: item.ID,
		ReportedBy:  uuid.NewString(),
		Description: "Bent frame on arrow board",
	})
	require.NoError(t, err)

	completed := domain.MaintenanceCompleted
	record, err = updateHandler.Handle(ctx, UpdateMaintenanceCommand{ID: record.ID, Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, record.CompletedAt)
	firstCompletion := *record.CompletedAt

	// Completed records cannot be reopened
	scheduled := domain.MaintenanceScheduled
	_, err = updateHandler.Handle(ctx, UpdateMaintenanceCommand{ID: record.ID, Status: &scheduled})
	assert.Error(t, err)

	// Re-completing does not move the completion timestamp
	record, err = updateHandler.Handle(ctx, UpdateMaintenanceCommand{ID: record.ID, Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, firstCompletion, *record.CompletedAt)
}
