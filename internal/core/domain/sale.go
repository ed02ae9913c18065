package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	Sale struct {
		ID        int64
		CreatedAt time.Time
		Total     decimal.Decimal
		Items     []SaleLineItem
	}

	SaleLineItem struct {
		ID        int64
		SaleID    int64
		ProductID int64
		Quantity  int
		Subtotal  decimal.Decimal
	}
)

// DailySales is one aggregated point of the sales report:
// the sum of all line-item subtotals for one calendar day.
type DailySales struct {
	Day   time.Time
	Total decimal.Decimal
}

// SalesChart is the reporting result: either rendered PNG bytes
// or an empty marker when no sales exist yet.
type SalesChart struct {
	PNG   []byte
	Empty bool
}
