package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListItemsRejectsBadFilters(t *testing.T) {
	handler := NewListItemsHandler(nil)
	ctx := context.Background()

	_, err := handler.Handle(ctx, ListItemsQuery{CategoryID: "not-a-uuid"})
	assert.Error(t, err)

	_, err = handler.Handle(ctx, ListItemsQuery{LocationID: "not-a-uuid"})
	assert.Error(t, err)

	_, err = handler.Handle(ctx, ListItemsQuery{Condition: "pristine"})
	assert.Error(t, err)
}

func TestListCheckoutsRejectsBadStatus(t *testing.T) {
	handler := NewListCheckoutsHandler(nil)

	_, err := handler.Handle(context.Background(), ListCheckoutsQuery{Status: "pending"})
	assert.Error(t, err)
}

func TestGetItemRejectsBadID(t *testing.T) {
	handler := NewGetItemHandler(nil)

	_, err := handler.Handle(context.Background(), GetItemQuery{ID: "42"})
	assert.Error(t, err)
}
