// Package filter evaluates match expressions against Product API records.
//
// Records are the opaque key-value mappings the server returns, so
// expressions address fields by their raw names: `model == "MBP-16"`,
// `number(price) > 100`, `contains(name, "laptop")`. Undefined variables are
// allowed at compile time since record shape varies by endpoint and server
// version; a field absent from a record evaluates as nil.
package filter

import (
	"maps"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled match expression.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Record fields resolve at runtime
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single record.
func (f *Filter) Match(record map[string]any) (bool, error) {
	env := helperFunctions()
	maps.Copy(env, record)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Err:        err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() during compilation
	return result.(bool), nil
}

// Apply returns the records matching the filter, preserving order.
func (f *Filter) Apply(records []map[string]any) ([]map[string]any, error) {
	matched := make([]map[string]any, 0, len(records))
	for _, record := range records {
		ok, err := f.Match(record)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// helperFunctions builds the helpers available inside expressions. Record
// fields are merged over this map, so a record key with the same name
// shadows the helper.
func helperFunctions() map[string]any {
	env := make(map[string]any, 8)

	// String helpers, all case-insensitive
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper

	// OpenCart emits numeric fields as JSON strings ("99.9000"); number()
	// coerces either representation for comparisons.
	env["number"] = toNumber

	return env
}

func toNumber(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case string:
		n, _ := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return n
	default:
		return 0
	}
}
