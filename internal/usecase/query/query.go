// Package query evaluates JSONPath expressions against slider snapshots.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/multirange/internal/domain"
)

// Document converts v into the generic map/slice tree jsonpath walks.
func Document(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Eval runs expr against the snapshot. An expression that matches nothing
// is a KindNotFound error.
func Eval(snap domain.Snapshot, expr string) (any, error) {
	const op = "query.eval"

	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidConfig),
		}
	}

	doc, err := Document(snap)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("jsonpath %q: %v: %w", expr, err, domain.ErrInvalidConfig),
		}
	}

	if isEmptyValue(val) {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("jsonpath %q: no value found: %w", expr, domain.ErrNotFound),
		}
	}
	return val, nil
}

// Format renders a query result: scalars plainly, everything else as JSON.
func Format(v any) (string, error) {
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return Format(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
