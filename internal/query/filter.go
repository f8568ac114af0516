package query

import (
	"strings"

	"gorm.io/gorm"
)

// Filter accumulates optional predicate fragments and applies them to a
// GORM relation as a single conjunction. A filter with no fragments
// leaves the relation unrestricted, so callers never special-case the
// "no filters given" path.
type Filter struct {
	conds []condition
}

type condition struct {
	expr string
	args []interface{}
}

// NewFilter returns an empty (unconditional) filter.
func NewFilter() *Filter {
	return &Filter{}
}

// Search adds a case-insensitive substring match of input against any of
// the given columns (OR across columns). A blank input adds nothing.
// Wildcard characters in the input are escaped so a user-supplied % or _
// always matches literally.
func (f *Filter) Search(input string, columns ...string) *Filter {
	input = strings.TrimSpace(input)
	if input == "" || len(columns) == 0 {
		return f
	}
	pattern := "%" + strings.ToLower(EscapeLike(input)) + "%"
	exprs := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		exprs = append(exprs, "LOWER("+col+") LIKE ?")
		args = append(args, pattern)
	}
	f.conds = append(f.conds, condition{
		expr: "(" + strings.Join(exprs, " OR ") + ")",
		args: args,
	})
	return f
}

// Equal adds an exact-match predicate. A blank string input adds nothing,
// matching the optional-parameter semantics of Search.
func (f *Filter) Equal(column string, value string) *Filter {
	value = strings.TrimSpace(value)
	if value == "" {
		return f
	}
	f.conds = append(f.conds, condition{expr: column + " = ?", args: []interface{}{value}})
	return f
}

// EqualID adds an exact match on a numeric key. Zero means "not provided".
func (f *Filter) EqualID(column string, id uint) *Filter {
	if id == 0 {
		return f
	}
	f.conds = append(f.conds, condition{expr: column + " = ?", args: []interface{}{id}})
	return f
}

// Empty reports whether no predicate fragments were accumulated.
func (f *Filter) Empty() bool {
	return len(f.conds) == 0
}

// Apply chains every accumulated fragment onto db with AND semantics.
func (f *Filter) Apply(db *gorm.DB) *gorm.DB {
	for _, c := range f.conds {
		db = db.Where(c.expr, c.args...)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralizes LIKE wildcards in user input so search terms are
// treated as literal substrings.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
