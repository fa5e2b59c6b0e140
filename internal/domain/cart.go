package domain

import (
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/shopspring/decimal"
)

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt int64      `json:"updated_at"`
}

// AddItem merges into the existing line for the product or appends a new line of one.
func (c *Cart) AddItem(p Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity applies delta to a line. A line that drops below one is removed.
func (c *Cart) UpdateQuantity(productID string, delta int) error {
	for i := range c.Items {
		if c.Items[i].Product.ID != productID {
			continue
		}

		next := c.Items[i].Quantity + delta
		if next < 1 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}

		c.Items[i].Quantity = next
		return nil
	}

	return errs.ErrCartItemNotFound
}

func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

func (c Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Clone() Cart {
	out := c
	out.Items = append([]CartItem(nil), c.Items...)

	return out
}
