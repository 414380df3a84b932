package query

import (
	"fmt"
	"strings"
	"sync"

	"github.com/abgdnv/inventory/internal/inventory/errors"
	"github.com/abgdnv/inventory/internal/inventory/store"
	"github.com/google/cel-go/cel"
)

// Variables available to search expressions.
const (
	varName       = "name"
	varBarcode    = "barcode"
	varBestBefore = "best_before"
	varPrice      = "price"
	varQuantity   = "quantity"
	varCategory   = "category"
	varCategoryID = "category_id"
)

var itemEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(varName, cel.StringType),
		cel.Variable(varBarcode, cel.StringType),
		cel.Variable(varBestBefore, cel.StringType),
		cel.Variable(varPrice, cel.DoubleType),
		cel.Variable(varQuantity, cel.IntType),
		cel.Variable(varCategory, cel.StringType),
		cel.Variable(varCategoryID, cel.IntType),
		cel.CrossTypeNumericComparisons(true),
	)
})

// Expression compiles a boolean CEL expression over item fields, for example
//
//	quantity < 10 && category == "Fruit"
//
// Items for which evaluation fails do not match.
func Expression(src string) (store.Predicate, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty expression", errors.ErrInvalidExpression)
	}
	env, err := itemEnv()
	if err != nil {
		return nil, fmt.Errorf("build expression environment: %w", err)
	}
	ast, iss := env.Compile(src)
	if iss.Err() != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidExpression, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: result is %s, want bool", errors.ErrInvalidExpression, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidExpression, err)
	}

	return func(item store.Item) bool {
		out, _, err := prg.Eval(activation(item))
		if err != nil {
			return false
		}
		matched, ok := out.Value().(bool)
		return ok && matched
	}, nil
}

func activation(item store.Item) map[string]any {
	return map[string]any{
		varName:       item.Name,
		varBarcode:    item.Barcode,
		varBestBefore: item.BestBeforeDate,
		varPrice:      item.Price,
		varQuantity:   int64(item.Quantity),
		varCategory:   item.Category.String(),
		varCategoryID: int64(item.Category),
	}
}
