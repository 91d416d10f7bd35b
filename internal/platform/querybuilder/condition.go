package querybuilder

// Condition is one predicate of a WHERE clause. Top-level conditions are
// joined with AND.
type Condition interface {
	render(s *statement)
}

type eq struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eq{column: column, value: value}
}

func (c eq) render(s *statement) {
	s.write(c.column, " = ")
	s.bind(c.value)
}

type in struct {
	column string
	values []any
}

// In matches column against a value list. An empty list matches no rows.
func In(column string, values []any) Condition {
	return in{column: column, values: values}
}

func (c in) render(s *statement) {
	if len(c.values) == 0 {
		s.write("FALSE")
		return
	}
	s.write(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			s.write(", ")
		}
		s.bind(v)
	}
	s.write(")")
}

type or []Condition

// Or groups conditions in parentheses. An empty Or matches no rows.
func Or(conditions ...Condition) Condition {
	return or(conditions)
}

func (c or) render(s *statement) {
	if len(c) == 0 {
		s.write("FALSE")
		return
	}
	s.write("(")
	for i, cond := range c {
		if i > 0 {
			s.write(" OR ")
		}
		cond.render(s)
	}
	s.write(")")
}
