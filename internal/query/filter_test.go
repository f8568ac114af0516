package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, f *Filter) (string, []interface{}) {
	t.Helper()
	var rows []map[string]interface{}
	stmt := f.Apply(dryRunDB(t).Table("users")).Find(&rows).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestFilterEmptyIsUnconditional(t *testing.T) {
	f := NewFilter().Search("", "name", "email").Equal("role", "").EqualID("class_id", 0)
	assert.True(t, f.Empty())

	sql, vars := buildSQL(t, f)
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, vars)
}

func TestFilterSearchMatchesAnyColumn(t *testing.T) {
	sql, vars := buildSQL(t, NewFilter().Search("Ada", "name", "email"))

	assert.Contains(t, sql, "LOWER(name) LIKE ? OR LOWER(email) LIKE ?")
	require.Len(t, vars, 2)
	assert.Equal(t, "%ada%", vars[0])
	assert.Equal(t, "%ada%", vars[1])
}

func TestFilterConjunction(t *testing.T) {
	f := NewFilter().
		Search("ada", "name", "email").
		Equal("role", "teacher")
	sql, vars := buildSQL(t, f)

	assert.Contains(t, sql, "AND")
	assert.Contains(t, sql, "role = ?")
	require.Len(t, vars, 3)
	assert.Equal(t, "teacher", vars[2])
}

func TestFilterEqualID(t *testing.T) {
	sql, vars := buildSQL(t, NewFilter().EqualID("department_id", 7))

	assert.Contains(t, sql, "department_id = ?")
	require.Len(t, vars, 1)
	assert.Equal(t, uint(7), vars[0])
}

func TestFilterSearchEscapesWildcards(t *testing.T) {
	_, vars := buildSQL(t, NewFilter().Search("50%_done", "name"))

	require.Len(t, vars, 1)
	assert.Equal(t, `%50\%\_done%`, vars[0])
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{"%_", `\%\_`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLike(tt.in), "input %q", tt.in)
	}
}

func TestFilterSearchLowercasesInput(t *testing.T) {
	_, vars := buildSQL(t, NewFilter().Search("  MiXeD  ", "name"))

	require.Len(t, vars, 1)
	assert.Equal(t, "%mixed%", vars[0])
	assert.False(t, strings.ContainsAny(vars[0].(string), "MXD"))
}
