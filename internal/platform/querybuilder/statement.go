// Package querybuilder renders the small set of PostgreSQL statements the
// repositories need, with $n placeholders numbered in argument order.
package querybuilder

import (
	"strconv"
	"strings"
)

// statement accumulates SQL text and the arguments bound to it.
type statement struct {
	sql  strings.Builder
	args []any
}

func (s *statement) write(parts ...string) {
	for _, p := range parts {
		s.sql.WriteString(p)
	}
}

// bind records v and writes its placeholder.
func (s *statement) bind(v any) {
	s.args = append(s.args, v)
	s.sql.WriteString("$")
	s.sql.WriteString(strconv.Itoa(len(s.args)))
}

func (s *statement) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	s.write(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			s.write(" AND ")
		}
		c.render(s)
	}
}

func (s *statement) result() (string, []any, error) {
	return s.sql.String(), s.args, nil
}
