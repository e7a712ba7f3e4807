// Package record provides a fluent query builder for record types.
package record

import (
	"context"
	"fmt"
	"strings"
)

// predicate is one raw SQL fragment together with the parameters it owns.
// Each clause carrying parameters keeps its own list; render concatenates
// them in clause order, so no cross-clause parameter slicing ever happens.
type predicate struct {
	expr   string
	params []any
}

// Query accumulates clauses for one statement against a record type and
// renders them in a fixed order regardless of call order:
//
//	SELECT … FROM t [JOIN …]* [WHERE …] [GROUP BY …] [HAVING …]
//	[ORDER BY …] [LIMIT n] [OFFSET n]
//
// Condition, join, and ordering fragments are trusted caller input and pass
// through unparsed; every literal value travels as a positional bound
// parameter, never interpolated into the SQL text. A Query is transient:
// build one, execute it, discard it.
type Query struct {
	sess       *Session
	typ        *RecordType
	projection []string
	predicates []predicate
	joins      []string
	groupBy    string
	having     *predicate
	orderBy    string
	limit      int
	offset     int
}

func newQuery(sess *Session, t *RecordType) *Query {
	return &Query{sess: sess, typ: t, limit: -1, offset: -1}
}

// Select sets the projection. Without arguments the projection resets to *.
func (q *Query) Select(columns ...string) *Query {
	q.projection = columns
	return q
}

// Where appends one predicate fragment with its positional parameters.
// Multiple calls combine with AND in call order; a fragment may contain its
// own OR and parenthesization.
func (q *Query) Where(condition string, params ...any) *Query {
	q.predicates = append(q.predicates, predicate{expr: condition, params: params})
	return q
}

// Filter appends structured predicates. Each filter renders to one fragment
// plus its parameters, so Filter and Where compose freely.
func (q *Query) Filter(filters ...Filter) *Query {
	for _, f := range filters {
		expr, params := f.Fragment()
		q.predicates = append(q.predicates, predicate{expr: expr, params: params})
	}
	return q
}

// Join appends an INNER JOIN clause. Join order is preserved.
func (q *Query) Join(table, on string) *Query {
	return q.join("INNER", table, on)
}

// LeftJoin appends a LEFT JOIN clause.
func (q *Query) LeftJoin(table, on string) *Query {
	return q.join("LEFT", table, on)
}

// RightJoin appends a RIGHT JOIN clause.
func (q *Query) RightJoin(table, on string) *Query {
	return q.join("RIGHT", table, on)
}

func (q *Query) join(kind, table, on string) *Query {
	q.joins = append(q.joins, kind+" JOIN "+table+" ON "+on)
	return q
}

// GroupBy sets the grouping expression. Last call wins.
func (q *Query) GroupBy(expr string) *Query {
	q.groupBy = expr
	return q
}

// Having sets the having condition and the parameters it owns. Last call wins.
func (q *Query) Having(condition string, params ...any) *Query {
	q.having = &predicate{expr: condition, params: params}
	return q
}

// OrderBy sets the ordering expression as a raw fragment. Last call wins.
func (q *Query) OrderBy(expr string) *Query {
	q.orderBy = expr
	return q
}

// OrderAsc sets an ascending order on one column. Last call wins.
func (q *Query) OrderAsc(column string) *Query {
	q.orderBy = column + " ASC"
	return q
}

// OrderDesc sets a descending order on one column. Last call wins.
func (q *Query) OrderDesc(column string) *Query {
	q.orderBy = column + " DESC"
	return q
}

// Limit restricts the number of returned rows. Last call wins.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Offset skips the first n rows. Last call wins.
func (q *Query) Offset(n int) *Query {
	q.offset = n
	return q
}

// build renders the accumulated clauses into one parameterized statement.
func (q *Query) build() (string, []any) {
	proj := "*"
	if len(q.projection) > 0 {
		proj = strings.Join(q.projection, ", ")
	}

	var b strings.Builder
	b.WriteString("SELECT " + proj + " FROM " + q.typ.table)

	for _, j := range q.joins {
		b.WriteString(" " + j)
	}

	var args []any
	if len(q.predicates) > 0 {
		exprs := make([]string, len(q.predicates))
		for i, p := range q.predicates {
			exprs[i] = p.expr
			args = append(args, p.params...)
		}
		b.WriteString(" WHERE " + strings.Join(exprs, " AND "))
	}
	if q.groupBy != "" {
		b.WriteString(" GROUP BY " + q.groupBy)
	}
	if q.having != nil {
		b.WriteString(" HAVING " + q.having.expr)
		args = append(args, q.having.params...)
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY " + q.orderBy)
	}
	if q.limit >= 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.limit)
	}
	if q.offset >= 0 {
		fmt.Fprintf(&b, " OFFSET %d", q.offset)
	}

	return b.String(), args
}

// buildCount renders SELECT COUNT(*) from the predicate fragments alone.
func (q *Query) buildCount() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT COUNT(*) FROM " + q.typ.table)

	var args []any
	if len(q.predicates) > 0 {
		exprs := make([]string, len(q.predicates))
		for i, p := range q.predicates {
			exprs[i] = p.expr
			args = append(args, p.params...)
		}
		b.WriteString(" WHERE " + strings.Join(exprs, " AND "))
	}
	return b.String(), args
}

// All executes the query and materializes every returned row into a record,
// preserving storage-engine row order. Without an explicit ordering that
// order is engine-defined and not stable.
func (q *Query) All(ctx context.Context) ([]*Record, error) {
	stmt, args := q.build()
	rows, err := q.sess.query(ctx, q.typ.table, stmt, args)
	if err != nil {
		return nil, err
	}
	return scanRows(q.typ, rows)
}

// First forces LIMIT 1, overwriting any previously set limit, and returns the
// single result or nil when the result set is empty.
func (q *Query) First(ctx context.Context) (*Record, error) {
	q.limit = 1
	results, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// Count renders SELECT COUNT(*) re-using only the predicate fragments and
// their parameters; projection, joins, grouping, ordering, limit, and offset
// configured on the same builder are ignored.
func (q *Query) Count(ctx context.Context) (int64, error) {
	stmt, args := q.buildCount()
	rows, err := q.sess.query(ctx, q.typ.table, stmt, args)
	if err != nil {
		return 0, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return 0, rows.Err()
	}
	var n int64
	if err := rows.Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", q.typ.table, err)
	}
	return n, rows.Err()
}

// Exists reports whether at least one row matches the predicates.
func (q *Query) Exists(ctx context.Context) (bool, error) {
	n, err := q.Count(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
