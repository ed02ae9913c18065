package domain

import "github.com/shopspring/decimal"

type CartEntry struct {
	ProductID int64
	Quantity  int
}

// Cart is the per-session list of desired products. It is a value:
// mutating operations return a new Cart, the session layer persists
// it between requests.
type Cart struct {
	Entries []CartEntry
}

// Add merges the quantity into an existing entry for productID,
// or appends a new entry. Stock is deliberately not checked here,
// checkout validates it.
func (c Cart) Add(productID int64, quantity int) Cart {
	entries := make([]CartEntry, len(c.Entries))
	copy(entries, c.Entries)
	for i := range entries {
		if entries[i].ProductID == productID {
			entries[i].Quantity += quantity
			return Cart{entries}
		}
	}
	return Cart{append(entries, CartEntry{productID, quantity})}
}

// Remove drops the entry for productID. Removing an absent product
// is a no-op, not an error.
func (c Cart) Remove(productID int64) Cart {
	var entries []CartEntry
	for _, e := range c.Entries {
		if e.ProductID != productID {
			entries = append(entries, e)
		}
	}
	return Cart{entries}
}

func (c Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}

type (
	CartItem struct {
		ProductID int64
		Name      string
		Price     decimal.Decimal
		Quantity  int
		Subtotal  decimal.Decimal
	}

	CartView struct {
		Items []CartItem
		Total decimal.Decimal
	}
)
