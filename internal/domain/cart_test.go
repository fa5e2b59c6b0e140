package domain

import (
	"testing"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64) Product {
	return Product{ID: id, Name: "Product " + id, Price: decimal.NewFromInt(price), Category: "Bag"}
}

func TestCart_AddItemMergesLines(t *testing.T) {
	var cart Cart
	p := product("1", 15500)

	cart.AddItem(p)
	cart.AddItem(p)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 2, cart.Count())
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(31000)))
}

func TestCart_TotalsAcrossLines(t *testing.T) {
	var cart Cart
	cart.AddItem(product("1", 15500))
	cart.AddItem(product("3", 2800))
	cart.AddItem(product("3", 2800))

	assert.Equal(t, 3, cart.Count())
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(21100)))
}

func TestCart_UpdateQuantity(t *testing.T) {
	type TestCase struct {
		Name          string
		Start         int
		Delta         int
		ExpectedLines int
		ExpectedQty   int
	}

	testCases := []TestCase{
		{Name: "Increment", Start: 1, Delta: 2, ExpectedLines: 1, ExpectedQty: 3},
		{Name: "Decrement", Start: 3, Delta: -1, ExpectedLines: 1, ExpectedQty: 2},
		{Name: "Decrement below one removes the line", Start: 1, Delta: -1, ExpectedLines: 0},
		{Name: "Large negative delta removes the line", Start: 2, Delta: -10, ExpectedLines: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			cart := Cart{Items: []CartItem{{Product: product("1", 100), Quantity: tc.Start}}}

			require.NoError(t, cart.UpdateQuantity("1", tc.Delta))
			require.Len(t, cart.Items, tc.ExpectedLines)
			if tc.ExpectedLines > 0 {
				assert.Equal(t, tc.ExpectedQty, cart.Items[0].Quantity)
			}
		})
	}
}

func TestCart_UpdateQuantityUnknownLine(t *testing.T) {
	var cart Cart

	assert.ErrorIs(t, cart.UpdateQuantity("missing", 1), errs.ErrCartItemNotFound)
}

func TestCart_RemoveIsIdempotent(t *testing.T) {
	var cart Cart
	cart.AddItem(product("1", 100))

	cart.Remove("1")
	cart.Remove("1")

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}

func TestCart_CloneDoesNotShareItems(t *testing.T) {
	var cart Cart
	cart.AddItem(product("1", 100))

	clone := cart.Clone()
	clone.Items[0].Quantity = 9

	assert.Equal(t, 1, cart.Items[0].Quantity)
}
