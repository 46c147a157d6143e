// Package query builds the SQL fragments for exercise log reads: the filter
// (owner plus optional inclusive date bounds) and the result shape (fixed
// ascending date order, optional row cap).
package query

import (
	"strings"
	"time"
)

// LogFilter narrows which exercise rows match. From and To are inclusive
// bounds; either or both may be nil for an open-ended or unfiltered read.
type LogFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
}

// WhereClause renders the filter as a SQL WHERE body and its arguments.
func (f LogFilter) WhereClause() (string, []any) {
	var b strings.Builder
	b.WriteString("user_id = ?")
	args := []any{f.UserID}
	if f.From != nil {
		b.WriteString(" AND date >= ?")
		args = append(args, f.From.UTC())
	}
	if f.To != nil {
		b.WriteString(" AND date <= ?")
		args = append(args, f.To.UTC())
	}
	return b.String(), args
}

// LogOptions shapes the returned rows independently of the filter. A nil
// Limit returns every match; the sort order is always date ascending.
type LogOptions struct {
	Limit *int
}

// LimitClause renders the optional LIMIT fragment and its arguments.
func (o LogOptions) LimitClause() (string, []any) {
	if o.Limit == nil {
		return "", nil
	}
	return " LIMIT ?", []any{*o.Limit}
}
