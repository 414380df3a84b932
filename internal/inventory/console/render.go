package console

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/abgdnv/inventory/internal/inventory/category"
	"github.com/abgdnv/inventory/internal/inventory/service"
)

func (s *Session) printCategories() {
	s.println("Types: ")
	for _, c := range category.All() {
		s.printf("%d. %s\n", int(c), c)
	}
	s.println()
}

// printTable writes items as aligned columns under a header row.
func (s *Session) printTable(items []service.ItemDto) {
	tw := tabwriter.NewWriter(s.out, 0, 0, 4, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Type\tBarcode\tName\tBest Before\tPrice\tQuantity")
	for _, item := range items {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			item.CategoryName(), item.Barcode, item.Name, item.BestBeforeDate, formatPrice(item.Price), item.Quantity)
	}
	_ = tw.Flush()
}

func (s *Session) printValuation(v service.Valuation) {
	s.printf("Items: %d    Units: %d    Stock value: %s\n", v.Items, v.Quantity, v.Value.StringFixed(2))
	for _, cv := range v.ByCategory {
		s.printf("  %s: %d items, %d units, %s\n", cv.Category, cv.Items, cv.Quantity, cv.Value.StringFixed(2))
	}
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
