// Package sqlb builds the dynamic parts of parameterized Postgres queries:
// the SET clause of a partial update and the WHERE clause of a filtered
// search. Values never enter the SQL text; they are returned alongside it
// and bound through $n placeholders.
package sqlb

import (
	"fmt"
	"strings"

	"github.com/deppfellow/jobly/internal/errs"
	"github.com/jackc/pgx/v5"
)

// Assignment is one field of a partial update.
type Assignment struct {
	Field string
	Value any
}

// PartialUpdate is the SET clause of an UPDATE statement plus its bound
// values, in placeholder order.
type PartialUpdate struct {
	SetCols string
	Values  []any
}

// NextPlaceholder returns the placeholder for an argument appended after
// Values, e.g. for the WHERE key of the UPDATE.
func (p *PartialUpdate) NextPlaceholder() string {
	return fmt.Sprintf("$%d", len(p.Values)+1)
}

// ForPartialUpdate builds `"col1"=$1, "col2"=$2, ...` from data.
//
// columns maps API field names to storage column names; fields missing from
// it are used verbatim. Column names are quoted as identifiers. An empty
// data list is a BadRequest.
func ForPartialUpdate(data []Assignment, columns map[string]string) (*PartialUpdate, error) {
	if len(data) == 0 {
		return nil, errs.NewBadRequestError("No data", true, nil, nil, nil)
	}

	cols := make([]string, 0, len(data))
	values := make([]any, 0, len(data))

	for i, a := range data {
		column, ok := columns[a.Field]
		if !ok {
			column = a.Field
		}
		cols = append(cols, fmt.Sprintf("%s=$%d", pgx.Identifier{column}.Sanitize(), i+1))
		values = append(values, a.Value)
	}

	return &PartialUpdate{
		SetCols: strings.Join(cols, ", "),
		Values:  values,
	}, nil
}

// Filter accumulates conjunctive WHERE predicates and their bound values.
//
// The zero value is ready to use.
type Filter struct {
	predicates []string
	args       []any
}

// Add appends a predicate with one bound value. format must contain a
// single %s verb, which is replaced by the next $n placeholder:
//
//	f.Add("salary >= %s", 50000)
func (f *Filter) Add(format string, value any) {
	f.args = append(f.args, value)
	f.predicates = append(f.predicates, fmt.Sprintf(format, fmt.Sprintf("$%d", len(f.args))))
}

// AddLiteral appends a predicate that binds no value, e.g. "equity > 0".
func (f *Filter) AddLiteral(predicate string) {
	f.predicates = append(f.predicates, predicate)
}

// Where returns " WHERE p1 AND p2 ..." or "" when no predicate was added.
func (f *Filter) Where() string {
	if len(f.predicates) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.predicates, " AND ")
}

// Args returns the bound values in placeholder order.
func (f *Filter) Args() []any {
	return f.args
}

// Len reports the number of predicates.
func (f *Filter) Len() int {
	return len(f.predicates)
}

// Contains wraps s for a case-insensitive substring ILIKE match, escaping
// the LIKE wildcards inside s.
func Contains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
