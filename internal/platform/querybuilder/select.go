package querybuilder

import (
	"fmt"
	"strings"
)

type SelectBuilder struct {
	columns   []string
	table     string
	where     []Condition
	orderBy   []string
	forUpdate bool
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, terms...)
	return b
}

// ForUpdate locks the selected rows until the surrounding transaction ends.
func (b *SelectBuilder) ForUpdate() *SelectBuilder {
	b.forUpdate = true
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 || b.table == "" {
		return "", nil, fmt.Errorf("select needs columns and a table")
	}

	var s statement
	s.write("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	s.where(b.where)
	if len(b.orderBy) > 0 {
		s.write(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.forUpdate {
		s.write(" FOR UPDATE")
	}
	return s.result()
}
