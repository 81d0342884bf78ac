package command

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

func seedItem(repo *fakeEquipmentRepository, total, available int) *domain.EquipmentItem {
	item := &domain.EquipmentItem{
		ID:                uuid.NewString(),
		CategoryID:        uuid.NewString(),
		Name:              "Traffic cone",
		QuantityTotal:     total,
		QuantityAvailable: available,
		Condition:         domain.ConditionGood,
	}
	repo.items[item.ID] = item
	return item
}

func availableOf(t *testing.T, repo *fakeEquipmentRepository, id string) int {
	t.Helper()
	item, err := repo.FindItemByID(context.Background(), id)
	require.NoError(t, err)
	return item.QuantityAvailable
}

func TestCheckoutRoundTrip(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 10, 10)
	checkoutHandler := NewCheckoutEquipmentHandler(repo)
	checkinHandler := NewCheckinEquipmentHandler(repo)
	userID := uuid.NewString()
	ctx := context.Background()

	first, err := checkoutHandler.Handle(ctx, CheckoutEquipmentCommand{
		EquipmentID: item.ID,
		Quantity:    3,
		UserID:      userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, availableOf(t, repo, item.ID))
	assert.True(t, first.IsOpen())

	_, err = checkoutHandler.Handle(ctx, CheckoutEquipmentCommand{
		EquipmentID: item.ID,
		Quantity:    4,
		UserID:      userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, availableOf(t, repo, item.ID))

	closed, err := checkinHandler.Handle(ctx, CheckinEquipmentCommand{
		CheckoutID: first.ID,
		UserID:     userID,
	})
	require.NoError(t, err)
	assert.False(t, closed.IsOpen())
	assert.Equal(t, 6, availableOf(t, repo, item.ID))

	_, err = checkoutHandler.Handle(ctx, CheckoutEquipmentCommand{
		EquipmentID: item.ID,
		Quantity:    7,
		UserID:      userID,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 6, availableOf(t, repo, item.ID))

	_, err = checkoutHandler.Handle(ctx, CheckoutEquipmentCommand{
		EquipmentID: item.ID,
		Quantity:    6,
		UserID:      userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, availableOf(t, repo, item.ID))
}

func TestCheckoutOverdrawLeavesStateUnchanged(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 5, 2)
	handler := NewCheckoutEquipmentHandler(repo)

	_, err := handler.Handle(context.Background(), CheckoutEquipmentCommand{
		EquipmentID: item.ID,
		Quantity:    3,
		UserID:      uuid.NewString(),
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, availableOf(t, repo, item.ID))
	checkouts, _ := repo.FindCheckouts(context.Background(), domain.CheckoutFilter{EquipmentID: item.ID})
	assert.Empty(t, checkouts)
}

func TestCheckoutValidation(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 5, 5)
	handler := NewCheckoutEquipmentHandler(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	_, err := handler.Handle(ctx, CheckoutEquipmentCommand{EquipmentID: "not-a-uuid", Quantity: 1, UserID: userID})
	assert.Error(t, err)

	_, err = handler.Handle(ctx, CheckoutEquipmentCommand{EquipmentID: item.ID, Quantity: 0, UserID: userID})
	assert.Error(t, err)

	_, err = handler.Handle(ctx, CheckoutEquipmentCommand{EquipmentID: item.ID, Quantity: 1, UserID: ""})
	assert.Error(t, err)

	_, err = handler.Handle(ctx, CheckoutEquipmentCommand{
		EquipmentID:        item.ID,
		Quantity:           1,
		UserID:             userID,
		ExpectedReturnDate: "31/12/2026",
	})
	assert.Error(t, err)

	// Nothing above should have touched availability
	assert.Equal(t, 5, availableOf(t, repo, item.ID))
}

func TestCheckoutParsesExpectedReturnDate(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 5, 5)
	handler := NewCheckoutEquipmentHandler(repo)

	checkout, err := handler.Handle(context.Background(), CheckoutEquipmentCommand{
		EquipmentID:        item.ID,
		Quantity:           2,
		UserID:             uuid.NewString(),
		ExpectedReturnDate: "2026-09-15",
	})

	require.NoError(t, err)
	require.NotNil(t, checkout.ExpectedReturnDate)
	assert.Equal(t, "2026-09-15", checkout.ExpectedReturnDate.Format("2006-01-02"))
}

func TestCheckinTwiceFails(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 10, 10)
	checkoutHandler := NewCheckoutEquipmentHandler(repo)
	checkinHandler := NewCheckinEquipmentHandler(repo)
	userID := uuid.NewString()
	ctx := context.Background()

	checkout, err := checkoutHandler.Handle(ctx, CheckoutEquipmentCommand{
		EquipmentID: item.ID,
		Quantity:    4,
		UserID:      userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, availableOf(t, repo, item.ID))

	_, err = checkinHandler.Handle(ctx, CheckinEquipmentCommand{CheckoutID: checkout.ID, UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, 10, availableOf(t, repo, item.ID))

	_, err = checkinHandler.Handle(ctx, CheckinEquipmentCommand{CheckoutID: checkout.ID, UserID: userID})
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	assert.Equal(t, 10, availableOf(t, repo, item.ID))
}

func TestUpdateItemTotalPreservesCheckedOutCount(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 10, 4) // 6 checked out
	handler := NewUpdateItemHandler(repo)
	ctx := context.Background()

	eight := 8
	updated, err := handler.Handle(ctx, UpdateItemCommand{ID: item.ID, Quantity: &eight})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.QuantityTotal)
	assert.Equal(t, 2, updated.QuantityAvailable)

	five := 5
	updated, err = handler.Handle(ctx, UpdateItemCommand{ID: item.ID, Quantity: &five})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.QuantityTotal)
	assert.Equal(t, 0, updated.QuantityAvailable)
}

func TestDeleteItemRefusedWhileCheckedOut(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 5, 5)
	checkoutHandler := NewCheckoutEquipmentHandler(repo)
	deleteHandler := NewDeleteItemHandler(repo)
	ctx := context.Background()

	_, err := checkoutHandler.Handle(ctx, CheckoutEquipmentCommand{
		EquipmentID: item.ID,
		Quantity:    1,
		UserID:      uuid.NewString(),
	})
	require.NoError(t, err)

	err = deleteHandler.Handle(ctx, DeleteItemCommand{ID: item.ID})
	assert.Error(t, err)

	_, err = repo.FindItemByID(ctx, item.ID)
	assert.NoError(t, err)
}

func TestCreateItemStartsFullyAvailable(t *testing.T) {
	repo := newFakeEquipmentRepository()
	category := &domain.EquipmentCategory{ID: uuid.NewString(), Name: "Signs"}
	require.NoError(t, repo.CreateCategory(context.Background(), category))
	handler := NewCreateItemHandler(repo)

	item, err := handler.Handle(context.Background(), CreateItemCommand{
		CategoryID: category.ID,
		Name:       "Stop/slow paddle",
		Quantity:   12,
	})

	require.NoError(t, err)
	assert.Equal(t, 12, item.QuantityTotal)
	assert.Equal(t, 12, item.QuantityAvailable)
	assert.Equal(t, domain.ConditionGood, item.Condition)
}

func TestMetadataEditPreservesAvailability(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 10, 10)
	checkoutHandler := NewCheckoutEquipmentHandler(repo)
	updateHandler := NewUpdateItemHandler(repo)
	ctx := context.Background()

	// Stale snapshot taken before the checkout commits
	stale, err := repo.FindItemByID(ctx, item.ID)
	require.NoError(t, err)

	_, err = checkoutHandler.Handle(ctx, CheckoutEquipmentCommand{
		EquipmentID: item.ID,
		Quantity:    3,
		UserID:      uuid.NewString(),
	})
	require.NoError(t, err)
	require.Equal(t, 7, availableOf(t, repo, item.ID))

	// Writing the stale struct back must not resurrect the old counter
	stale.Name = "Traffic cone (reflective)"
	require.NoError(t, repo.UpdateItem(ctx, stale))
	assert.Equal(t, 7, availableOf(t, repo, item.ID))

	updated, err := repo.FindItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Traffic cone (reflective)", updated.Name)
	assert.Equal(t, 10, updated.QuantityTotal)

	// The command path goes through the same repository contract
	name := "Traffic cone (class 2)"
	edited, err := updateHandler.Handle(ctx, UpdateItemCommand{ID: item.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, edited.Name)
	assert.Equal(t, 7, availableOf(t, repo, item.ID))
}

func TestCheckinAppendsNotes(t *testing.T) {
	repo := newFakeEquipmentRepository()
	item := seedItem(repo, 5, 5)
	checkoutHandler := NewCheckoutEquipmentHandler(repo)
	checkinHandler := NewCheckinEquipmentHandler(repo)
	ctx := context.Background()

	open, err := checkoutHandler.Handle(ctx, CheckoutEquipmentCommand{
		EquipmentID: item.ID,
		Quantity:    1,
		UserID:      uuid.NewString(),
		Notes:       "issued for night works",
	})
	require.NoError(t, err)

	closed, err := checkinHandler.Handle(ctx, CheckinEquipmentCommand{
		CheckoutID: open.ID,
		UserID:     uuid.NewString(),
		Notes:      "returned damaged",
	})
	require.NoError(t, err)
	assert.Equal(t, "issued for night works\nreturned damaged", closed.Notes)
}
