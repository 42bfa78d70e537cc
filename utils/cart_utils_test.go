package utils

import (
	"testing"

	"github.com/hariprabhu571/npc-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestMergeGlobalCart(t *testing.T) {
	global := []models.GlobalCartItem{
		{ServiceID: 1, ServiceName: "Residential", ServiceTypeID: 5, RoomSize: "1BHK", UnitPrice: 800, Quantity: 1},
	}
	items := []models.CartItem{
		{ServiceID: 1, ServiceTypeID: 5, ServiceTypeName: "Cockroach Control", RoomSize: "1BHK", UnitPrice: 800, Quantity: 2},
		{ServiceID: 1, ServiceTypeID: 5, ServiceTypeName: "Cockroach Control", RoomSize: "2BHK", UnitPrice: 1200, Quantity: 1},
	}

	merged := MergeGlobalCart(global, items, "Residential", "img.png")

	assert.Len(t, merged, 2)
	// Matching (type, room size) sums quantities
	assert.Equal(t, 3, merged[0].Quantity)
	// New pairing appended with the service annotation
	assert.Equal(t, "2BHK", merged[1].RoomSize)
	assert.Equal(t, 1, merged[1].Quantity)
	assert.Equal(t, "Residential", merged[1].ServiceName)
	assert.Equal(t, "img.png", merged[1].ServiceImage)

	// Input slices stay untouched
	assert.Equal(t, 1, global[0].Quantity)
}

func TestMergeGlobalCartIntoEmpty(t *testing.T) {
	items := []models.CartItem{
		{ServiceID: 2, ServiceTypeID: 9, RoomSize: "3BHK", UnitPrice: 2500, Quantity: 1},
	}

	merged := MergeGlobalCart(nil, items, "Commercial", "")

	assert.Len(t, merged, 1)
	assert.Equal(t, "Commercial", merged[0].ServiceName)
	assert.Equal(t, uint(9), merged[0].ServiceTypeID)
}

func TestSetGlobalCartQuantity(t *testing.T) {
	global := []models.GlobalCartItem{
		{ServiceTypeID: 5, RoomSize: "1BHK", Quantity: 2},
		{ServiceTypeID: 5, RoomSize: "2BHK", Quantity: 1},
	}

	updated := SetGlobalCartQuantity(global, 5, "1BHK", 4)
	assert.Len(t, updated, 2)
	assert.Equal(t, 4, updated[0].Quantity)
	assert.Equal(t, 1, updated[1].Quantity)

	// Zero or negative removes the entry
	removed := SetGlobalCartQuantity(global, 5, "1BHK", 0)
	assert.Len(t, removed, 1)
	assert.Equal(t, "2BHK", removed[0].RoomSize)

	// Unknown key is a no-op
	untouched := SetGlobalCartQuantity(global, 99, "1BHK", 7)
	assert.Equal(t, global, untouched)
}

func TestRemoveGlobalCartItem(t *testing.T) {
	global := []models.GlobalCartItem{
		{ServiceTypeID: 5, RoomSize: "1BHK", Quantity: 2},
		{ServiceTypeID: 7, RoomSize: "1BHK", Quantity: 1},
	}

	updated := RemoveGlobalCartItem(global, 5, "1BHK")
	assert.Len(t, updated, 1)
	assert.Equal(t, uint(7), updated[0].ServiceTypeID)

	// Removing an absent key leaves the cart as is
	same := RemoveGlobalCartItem(global, 5, "4BHK")
	assert.Equal(t, global, same)
}

func TestGlobalCartSubtotal(t *testing.T) {
	global := []models.GlobalCartItem{
		{UnitPrice: 800, Quantity: 2},
		{UnitPrice: 1200, Quantity: 1},
	}
	assert.Equal(t, 2800.0, GlobalCartSubtotal(global))
	assert.Equal(t, 0.0, GlobalCartSubtotal(nil))
}
