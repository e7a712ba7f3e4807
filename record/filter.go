package record

import "strings"

// Filter is a structured predicate layered on top of the raw-fragment
// contract: it renders to exactly one SQL fragment with positional
// placeholders plus the parameters that fragment owns. Filters compose via
// And, Or, and Not.
type Filter interface {
	// Fragment renders the filter's SQL text and bound parameters.
	Fragment() (string, []any)
}

// --- Comparison filters ---

// ComparisonFilter compares a column to a value using a SQL operator.
type ComparisonFilter struct {
	Column string
	Op     string
	Value  any
}

// Fragment renders the comparison with one bound parameter.
func (f *ComparisonFilter) Fragment() (string, []any) {
	return f.Column + " " + f.Op + " ?", []any{f.Value}
}

// Eq creates an equality filter: column = value.
func Eq(column string, value any) Filter {
	return &ComparisonFilter{Column: column, Op: "=", Value: value}
}

// Neq creates a not-equal filter: column <> value.
func Neq(column string, value any) Filter {
	return &ComparisonFilter{Column: column, Op: "<>", Value: value}
}

// Gt creates a greater-than filter: column > value.
func Gt(column string, value any) Filter {
	return &ComparisonFilter{Column: column, Op: ">", Value: value}
}

// Gte creates a greater-or-equal filter: column >= value.
func Gte(column string, value any) Filter {
	return &ComparisonFilter{Column: column, Op: ">=", Value: value}
}

// Lt creates a less-than filter: column < value.
func Lt(column string, value any) Filter {
	return &ComparisonFilter{Column: column, Op: "<", Value: value}
}

// Lte creates a less-or-equal filter: column <= value.
func Lte(column string, value any) Filter {
	return &ComparisonFilter{Column: column, Op: "<=", Value: value}
}

// Like creates a pattern-match filter: column LIKE pattern.
func Like(column string, pattern string) Filter {
	return &ComparisonFilter{Column: column, Op: "LIKE", Value: pattern}
}

// --- Set membership ---

// InFilter checks whether a column value is in a set of values.
type InFilter struct {
	Column string
	Values []any
}

// Fragment renders one placeholder per value. An empty set renders a
// contradiction, so it matches nothing.
func (f *InFilter) Fragment() (string, []any) {
	if len(f.Values) == 0 {
		return "1 = 0", nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(f.Values)), ", ")
	return f.Column + " IN (" + placeholders + ")", f.Values
}

// In creates a set membership filter.
func In(column string, values ...any) Filter {
	return &InFilter{Column: column, Values: values}
}

// --- Range ---

// RangeFilter checks whether a column value lies between two bounds inclusive.
type RangeFilter struct {
	Column string
	Min    any
	Max    any
}

// Fragment renders column BETWEEN ? AND ?.
func (f *RangeFilter) Fragment() (string, []any) {
	return f.Column + " BETWEEN ? AND ?", []any{f.Min, f.Max}
}

// Between creates an inclusive range filter.
func Between(column string, min, max any) Filter {
	return &RangeFilter{Column: column, Min: min, Max: max}
}

// --- Nullness ---

// NullFilter checks a column for NULL or NOT NULL.
type NullFilter struct {
	Column  string
	Negated bool
}

// Fragment renders the IS NULL test; it owns no parameters.
func (f *NullFilter) Fragment() (string, []any) {
	if f.Negated {
		return f.Column + " IS NOT NULL", nil
	}
	return f.Column + " IS NULL", nil
}

// IsNull creates a filter matching NULL values.
func IsNull(column string) Filter {
	return &NullFilter{Column: column}
}

// NotNullCol creates a filter matching non-NULL values.
func NotNullCol(column string) Filter {
	return &NullFilter{Column: column, Negated: true}
}

// --- Boolean combinators ---

// AndFilter combines filters with AND (conjunction).
type AndFilter struct {
	Filters []Filter
}

// Fragment renders the conjunction parenthesized, parameters in filter order.
func (f *AndFilter) Fragment() (string, []any) {
	return combine(f.Filters, " AND ")
}

// And combines filters with logical AND.
func And(filters ...Filter) Filter {
	// Flatten nested ANDs
	var flat []Filter
	for _, f := range filters {
		if a, ok := f.(*AndFilter); ok {
			flat = append(flat, a.Filters...)
		} else {
			flat = append(flat, f)
		}
	}
	return &AndFilter{Filters: flat}
}

// OrFilter combines alternatives with OR (disjunction).
type OrFilter struct {
	Filters []Filter
}

// Fragment renders the disjunction parenthesized, parameters in filter order.
func (f *OrFilter) Fragment() (string, []any) {
	return combine(f.Filters, " OR ")
}

// Or combines filters with logical OR.
func Or(filters ...Filter) Filter {
	return &OrFilter{Filters: filters}
}

// NotFilter negates a filter expression.
type NotFilter struct {
	Inner Filter
}

// Fragment renders NOT around the parenthesized inner fragment.
func (f *NotFilter) Fragment() (string, []any) {
	expr, params := f.Inner.Fragment()
	return "NOT (" + expr + ")", params
}

// Not negates a filter.
func Not(filter Filter) Filter {
	return &NotFilter{Inner: filter}
}

func combine(filters []Filter, sep string) (string, []any) {
	if len(filters) == 0 {
		return "1 = 1", nil
	}
	exprs := make([]string, len(filters))
	var params []any
	for i, f := range filters {
		expr, ps := f.Fragment()
		exprs[i] = expr
		params = append(params, ps...)
	}
	if len(filters) == 1 {
		return exprs[0], params
	}
	return "(" + strings.Join(exprs, sep) + ")", params
}
