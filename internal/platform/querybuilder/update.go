package querybuilder

import (
	"fmt"
	"strings"
)

type assignment struct {
	column string
	value  any
}

type UpdateBuilder struct {
	table     string
	sets      []assignment
	where     []Condition
	returning []string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// Returning makes the statement yield the updated row. When the WHERE clause
// matches nothing the query returns no rows.
func (b *UpdateBuilder) Returning(columns ...string) *UpdateBuilder {
	b.returning = append(b.returning, columns...)
	return b
}

// ToSQL refuses to render an update without conditions.
func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if b.table == "" || len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update needs a table and at least one assignment")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("update of %s has no where clause", b.table)
	}

	var s statement
	s.write("UPDATE ", b.table, " SET ")
	for i, a := range b.sets {
		if i > 0 {
			s.write(", ")
		}
		s.write(a.column, " = ")
		s.bind(a.value)
	}
	s.where(b.where)
	if len(b.returning) > 0 {
		s.write(" RETURNING ", strings.Join(b.returning, ", "))
	}
	return s.result()
}
