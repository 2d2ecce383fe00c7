package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-storefront/models"
)

func tierForTest(id string, price float64) models.TicketType {
	return models.TicketType{
		ID:       models.TicketTypeID(id),
		EventID:  "event-1",
		Name:     "Regular",
		Price:    price,
		Quantity: 100,
		Type:     models.TicketTierRegular,
	}
}

func TestCart_EmptyCartIsZero(t *testing.T) {
	cart := NewCart()

	assert.True(t, cart.Subtotal().IsZero())
	assert.True(t, cart.Fees().IsZero())
	assert.True(t, cart.Total().IsZero())
	assert.Empty(t, cart.Items())
}

func TestCart_Arithmetic(t *testing.T) {
	cart := NewCart()
	cart.AddItem(tierForTest("tt-1", 50.00), 2)

	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(100)), "subtotal = %s", cart.Subtotal())
	assert.True(t, cart.Fees().Equal(decimal.NewFromInt(10)), "fees = %s", cart.Fees())
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(110)), "total = %s", cart.Total())
}

func TestCart_FeeIsAlwaysTenPercent(t *testing.T) {
	cart := NewCart()
	cart.AddItem(tierForTest("tt-1", 19.99), 3)
	cart.AddItem(tierForTest("tt-2", 75.50), 1)
	cart.AddItem(tierForTest("tt-3", 0), 4)

	subtotal := cart.Subtotal()
	assert.True(t, cart.Fees().Equal(subtotal.Mul(decimal.NewFromFloat(0.10))))
	assert.True(t, cart.Total().Equal(subtotal.Mul(decimal.NewFromFloat(1.10))))
}

func TestCart_DoublingQuantitiesDoublesTotal(t *testing.T) {
	single := NewCart()
	double := NewCart()
	prices := []float64{12.50, 80, 33.33}
	for i, p := range prices {
		tier := tierForTest(string(rune('a'+i)), p)
		single.AddItem(tier, i+1)
		double.AddItem(tier, (i+1)*2)
	}

	assert.True(t, double.Total().Equal(single.Total().Mul(decimal.NewFromInt(2))))
}

func TestCart_AddItemMergesByTicketType(t *testing.T) {
	cart := NewCart()
	tier := tierForTest("tt-1", 25)

	cart.AddItem(tier, 1)
	cart.AddItem(tier, 2)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(tierForTest("tt-1", 25), 1)
	cart.AddItem(tierForTest("tt-2", 40), 1)

	cart.RemoveItem("tt-1")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.TicketTypeID("tt-2"), items[0].TicketTypeID)

	// Removing an absent key is a no-op.
	cart.RemoveItem("tt-99")
	assert.Len(t, cart.Items(), 1)
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(tierForTest("tt-1", 25), 1)

	cart.UpdateQuantity("tt-1", 5)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	// Zero or negative behaves as removal.
	cart.UpdateQuantity("tt-1", 0)
	assert.Empty(t, cart.Items())

	cart.AddItem(tierForTest("tt-2", 10), 2)
	cart.UpdateQuantity("tt-2", -3)
	assert.Empty(t, cart.Items())
}

func TestCart_SnapshotPricing(t *testing.T) {
	cart := NewCart()
	tier := tierForTest("tt-1", 30)
	cart.AddItem(tier, 1)

	// Repricing the tier after it entered the cart changes nothing.
	tier.Price = 60

	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(30)))
}
