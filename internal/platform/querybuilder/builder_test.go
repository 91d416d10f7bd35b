package querybuilder

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchRow struct {
	ID           string        `db:"id"`
	Location     string        `db:"location"`
	Player1Score sql.NullInt64 `db:"player1_score"`
	Ignored      string        `db:"-"`
	Untagged     string
	internal     string
}

func TestSelect_ParticipantFilterKeepsPlaceholderOrder(t *testing.T) {
	query, args, err := Select("id", "status").
		From("matches").
		Where(
			Or(Eq("player1_id", "player-ana"), Eq("player2_id", "player-ana")),
			Eq("status", "completed"),
		).
		OrderBy("match_date DESC", "id ASC").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, status FROM matches WHERE (player1_id = $1 OR player2_id = $2) AND status = $3 ORDER BY match_date DESC, id ASC",
		query)
	assert.Equal(t, []any{"player-ana", "player-ana", "completed"}, args)
}

func TestSelect_EmptyGroupsMatchNothing(t *testing.T) {
	query, args, err := Select("id").From("users").Where(In("id", nil), Or()).ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM users WHERE FALSE AND FALSE", query)
	assert.Empty(t, args)
}

func TestSelect_InAndForUpdate(t *testing.T) {
	query, args, err := Select("status").
		From("challenge_requests").
		Where(In("id", []any{"c1", "c2"})).
		ForUpdate().
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT status FROM challenge_requests WHERE id IN ($1, $2) FOR UPDATE", query)
	assert.Equal(t, []any{"c1", "c2"}, args)
}

func TestSelect_RequiresTable(t *testing.T) {
	_, _, err := Select("id").ToSQL()
	require.Error(t, err)
}

func TestUpdate_CompareAndSetReturning(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	query, args, err := Update("challenge_requests").
		Set("status", "accepted").
		Set("updated_at", at).
		Where(Eq("id", "c1"), Eq("status", "pending")).
		Returning("id", "status").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE challenge_requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4 RETURNING id, status",
		query)
	assert.Equal(t, []any{"accepted", at, "c1", "pending"}, args)
}

func TestUpdate_RefusesMissingWhere(t *testing.T) {
	_, _, err := Update("matches").Set("status", "completed").ToSQL()
	require.Error(t, err)

	_, _, err = Update("matches").Where(Eq("id", "m1")).ToSQL()
	require.Error(t, err)
}

func TestInsert_UsesTaggedExportedFields(t *testing.T) {
	row := matchRow{
		ID:           "m1",
		Location:     "Court A",
		Player1Score: sql.NullInt64{Int64: 6, Valid: true},
		Ignored:      "x",
		Untagged:     "y",
		internal:     "z",
	}

	query, args, err := Insert("matches", row).ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO matches (id, location, player1_score) VALUES ($1, $2, $3)", query)
	assert.Equal(t, []any{"m1", "Court A", sql.NullInt64{Int64: 6, Valid: true}}, args)
}

func TestInsert_OnConflictDoNothing(t *testing.T) {
	query, _, err := Insert("matches", &matchRow{ID: "m1"}).OnConflictDoNothing("id").ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO matches (id, location, player1_score) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING", query)

	query, _, err = Insert("matches", matchRow{}).OnConflictDoNothing().ToSQL()
	require.NoError(t, err)
	assert.Contains(t, query, ") ON CONFLICT DO NOTHING")
}

func TestInsert_RejectsNonStructModels(t *testing.T) {
	_, _, err := Insert("matches", "m1").ToSQL()
	require.Error(t, err)

	var missing *matchRow
	_, _, err = Insert("matches", missing).ToSQL()
	require.Error(t, err)

	type untagged struct{ ID string }
	_, _, err = Insert("matches", untagged{ID: "m1"}).ToSQL()
	require.Error(t, err)
}

func TestColumnList(t *testing.T) {
	assert.Equal(t, "id, location, player1_score", ColumnList(matchRow{}))
	assert.Panics(t, func() { ColumnList(42) })
}
