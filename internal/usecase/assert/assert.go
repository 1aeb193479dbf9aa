// Package assert checks JSONPath expectations against a slider snapshot.
package assert

import (
	"fmt"
	"strconv"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/usecase/query"
)

// Evaluate runs every expectation against snap, in order.
func Evaluate(expects []domain.Expectation, snap domain.Snapshot) []domain.ExpectationResult {
	if len(expects) == 0 {
		return nil
	}

	var out []domain.ExpectationResult

	doc, err := query.Document(snap)
	if err != nil {
		for _, e := range expects {
			out = append(out, checks(e, nil, fmt.Errorf("snapshot is not valid JSON: %v", err))...)
		}
		return out
	}

	for _, e := range expects {
		val, getErr := jsonpath.Get(e.Path, doc)
		out = append(out, checks(e, val, getErr)...)
	}
	return out
}

// Failed counts the results that did not pass.
func Failed(results []domain.ExpectationResult) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}

func checks(e domain.Expectation, val any, getErr error) []domain.ExpectationResult {
	var out []domain.ExpectationResult
	if e.Exists {
		out = append(out, checkExists(e.Path, val, getErr))
	}
	if e.Eq != nil {
		out = append(out, checkEq(e.Path, val, getErr, *e.Eq))
	}
	if e.Gt != nil {
		out = append(out, checkCompare("gt", e.Path, val, getErr, *e.Gt))
	}
	if e.Lt != nil {
		out = append(out, checkCompare("lt", e.Path, val, getErr, *e.Lt))
	}
	if e.Count != nil {
		out = append(out, checkCount(e.Path, val, getErr, *e.Count))
	}
	return out
}

func pass(name, msg string) domain.ExpectationResult {
	return domain.ExpectationResult{Name: name, Passed: true, Message: msg}
}

func fail(name, msg string) domain.ExpectationResult {
	return domain.ExpectationResult{Name: name, Passed: false, Message: msg}
}

func checkExists(expr string, val any, getErr error) domain.ExpectationResult {
	const name = "jsonpath.exists"
	if getErr != nil {
		return fail(name, fmt.Sprintf("invalid jsonpath %q: %v", expr, getErr))
	}
	if isEmpty(val) {
		return fail(name, fmt.Sprintf("jsonpath %q: expected value to exist, got empty", expr))
	}
	return pass(name, fmt.Sprintf("jsonpath %q exists", expr))
}

func checkEq(expr string, val any, getErr error, expected string) domain.ExpectationResult {
	const name = "jsonpath.eq"
	if getErr != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, getErr))
	}
	s, err := toString(unwrapSingle(val))
	if err != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, err))
	}
	if s != expected {
		return fail(name, fmt.Sprintf("jsonpath %q: expected %q, got %q", expr, expected, s))
	}
	return pass(name, fmt.Sprintf("jsonpath %q eq %q", expr, expected))
}

func checkCompare(op, expr string, val any, getErr error, threshold float64) domain.ExpectationResult {
	name := "jsonpath." + op
	if getErr != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, getErr))
	}
	f, err := toFloat64(unwrapSingle(val))
	if err != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, err))
	}

	sym, ok := ">", f > threshold
	if op == "lt" {
		sym, ok = "<", f < threshold
	}
	if !ok {
		return fail(name, fmt.Sprintf("jsonpath %q: expected %s %v, got %v", expr, sym, threshold, f))
	}
	return pass(name, fmt.Sprintf("jsonpath %q: %v %s %v", expr, f, sym, threshold))
}

func checkCount(expr string, val any, getErr error, want int) domain.ExpectationResult {
	const name = "jsonpath.count"
	if getErr != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, getErr))
	}
	n := 1
	switch t := val.(type) {
	case []any:
		n = len(t)
	case nil:
		n = 0
	}
	if n != want {
		return fail(name, fmt.Sprintf("jsonpath %q: expected %d value(s), got %d", expr, want, n))
	}
	return pass(name, fmt.Sprintf("jsonpath %q has %d value(s)", expr, n))
}

// unwrapSingle turns the one-element slice a filter returns into its value.
func unwrapSingle(val any) any {
	if arr, ok := val.([]any); ok && len(arr) == 1 {
		return arr[0]
	}
	return val
}

func toString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		return fmt.Sprint(v), nil
	}
}

func toFloat64(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", val)
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
