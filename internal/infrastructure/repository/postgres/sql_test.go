package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestPQErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert user: %w", &pq.Error{Code: pqUniqueViolation})
	if !isUniqueViolation(unique) {
		t.Fatalf("expected wrapped 23505 to be a unique violation")
	}
	if isForeignKeyViolation(unique) {
		t.Fatalf("unique violation must not look like a foreign key violation")
	}

	fk := &pq.Error{Code: pqForeignKeyViolation}
	if !isForeignKeyViolation(fk) {
		t.Fatalf("expected 23503 to be a foreign key violation")
	}

	if isUniqueViolation(fmt.Errorf("connection refused")) {
		t.Fatalf("plain errors carry no pq code")
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get match: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(sql.ErrConnDone) {
		t.Fatalf("expected ErrConnDone not to be not found")
	}
}

func TestNullableConversions(t *testing.T) {
	if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for invalid int, got %v", *got)
	}
	score := 6
	if got := nullInt64ToIntPtr(intPtrToNullInt64(&score)); got == nil || *got != 6 {
		t.Fatalf("expected 6 after round trip, got %v", got)
	}
	if got := intPtrToNullInt64(nil); got.Valid {
		t.Fatalf("expected invalid NullInt64 for nil")
	}

	msg := "see you there"
	if got := nullStringToPtr(stringPtrToNullString(&msg)); got == nil || *got != msg {
		t.Fatalf("expected message after round trip, got %v", got)
	}
	if got := nullStringToPtr(sql.NullString{}); got != nil {
		t.Fatalf("expected nil for invalid string")
	}
}

func TestStringsToAny(t *testing.T) {
	got := stringsToAny([]string{"a", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected conversion: %+v", got)
	}
}
