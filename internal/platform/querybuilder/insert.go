package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

type InsertBuilder struct {
	table      string
	columns    []string
	values     []any
	onConflict string
	err        error
}

// Insert builds a single-row INSERT from the db-tagged exported fields of
// model, in field order.
func Insert(table string, model any) *InsertBuilder {
	columns, values, err := fieldsOf(model)
	return &InsertBuilder{table: table, columns: columns, values: values, err: err}
}

// OnConflictDoNothing skips rows that collide with an existing one. With no
// target any unique constraint counts.
func (b *InsertBuilder) OnConflictDoNothing(target ...string) *InsertBuilder {
	b.onConflict = " ON CONFLICT DO NOTHING"
	if len(target) > 0 {
		b.onConflict = " ON CONFLICT (" + strings.Join(target, ", ") + ") DO NOTHING"
	}
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if b.table == "" {
		return "", nil, fmt.Errorf("insert needs a table")
	}

	var s statement
	s.write("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES (")
	for i, v := range b.values {
		if i > 0 {
			s.write(", ")
		}
		s.bind(v)
	}
	s.write(")", b.onConflict)
	return s.result()
}

// ColumnList renders the db columns of model as a select list.
func ColumnList(model any) string {
	columns, _, err := fieldsOf(model)
	if err != nil {
		panic(fmt.Sprintf("querybuilder: %v", err))
	}
	return strings.Join(columns, ", ")
}

func fieldsOf(model any) ([]string, []any, error) {
	v := reflect.Indirect(reflect.ValueOf(model))
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model %T is not a struct", model)
	}

	t := v.Type()
	var (
		columns []string
		values  []any
	)
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		if name == "" || name == "-" {
			continue
		}
		columns = append(columns, name)
		values = append(values, v.Field(i).Interface())
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("model %T has no db columns", model)
	}
	return columns, values, nil
}
