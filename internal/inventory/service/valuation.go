package service

import (
	"github.com/abgdnv/inventory/internal/inventory/category"
	"github.com/abgdnv/inventory/internal/inventory/store"
	"github.com/shopspring/decimal"
)

// Valuation is the stock held, in total and per category.
type Valuation struct {
	Items      int
	Quantity   int
	Value      decimal.Decimal
	ByCategory []CategoryValuation
}

// CategoryValuation is the stock held in one category.
type CategoryValuation struct {
	Category category.Category
	Items    int
	Quantity int
	Value    decimal.Decimal
}

// valuate sums price times quantity per item. Categories without items are omitted.
func valuate(items []store.Item) Valuation {
	perCategory := make([]CategoryValuation, category.Count)
	for i, c := range category.All() {
		perCategory[i] = CategoryValuation{Category: c, Value: decimal.Zero}
	}

	total := Valuation{Value: decimal.Zero}
	for _, item := range items {
		value := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total.Items++
		total.Quantity += item.Quantity
		total.Value = total.Value.Add(value)

		if !item.Category.IsValid() {
			continue
		}
		cv := &perCategory[item.Category]
		cv.Items++
		cv.Quantity += item.Quantity
		cv.Value = cv.Value.Add(value)
	}

	total.Value = total.Value.Round(2)
	for _, cv := range perCategory {
		if cv.Items == 0 {
			continue
		}
		cv.Value = cv.Value.Round(2)
		total.ByCategory = append(total.ByCategory, cv)
	}
	return total
}
