// Package query builds the search predicates understood by the inventory store.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abgdnv/inventory/internal/inventory/errors"
	"github.com/abgdnv/inventory/internal/inventory/store"
)

// Mode selects which search an operator runs.
type Mode int

const (
	ModeBarcode Mode = iota + 1
	ModeName
	ModeExpression
)

// Field returns the label of the value searched by the mode.
func (m Mode) Field() string {
	switch m {
	case ModeBarcode:
		return "Barcode"
	case ModeName:
		return "Name"
	case ModeExpression:
		return "Expression"
	default:
		return ""
	}
}

func (m Mode) String() string {
	if f := m.Field(); f != "" {
		return strings.ToLower(f)
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a menu selection into a Mode.
func ParseMode(choice string) (Mode, error) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", choice, errors.ErrUnknownSearchMode)
	}
	m := Mode(n)
	if m.Field() == "" {
		return 0, fmt.Errorf("%d: %w", n, errors.ErrUnknownSearchMode)
	}
	return m, nil
}

// ByBarcode matches items whose barcode equals barcode exactly.
func ByBarcode(barcode string) store.Predicate {
	return func(item store.Item) bool {
		return item.Barcode == barcode
	}
}

// ByName matches items whose name equals name exactly.
func ByName(name string) store.Predicate {
	return func(item store.Item) bool {
		return item.Name == name
	}
}

// For builds the predicate for mode and the operator's search term.
func For(mode Mode, term string) (store.Predicate, error) {
	switch mode {
	case ModeBarcode:
		return ByBarcode(term), nil
	case ModeName:
		return ByName(term), nil
	case ModeExpression:
		return Expression(term)
	default:
		return nil, fmt.Errorf("%s: %w", mode, errors.ErrUnknownSearchMode)
	}
}
