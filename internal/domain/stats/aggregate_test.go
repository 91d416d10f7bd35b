package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/match"
)

func completed(id, p1, p2 string, s1, s2 int, date time.Time) match.Match {
	return match.Match{
		ID:           id,
		Player1ID:    p1,
		Player2ID:    p2,
		Date:         date,
		Location:     "Court A",
		Status:       match.StatusCompleted,
		Player1Score: &s1,
		Player2Score: &s2,
	}
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 10, 0, 0, 0, time.UTC)
}

func TestWinPercentage(t *testing.T) {
	tests := []struct {
		wins, played, want int
	}{
		{0, 0, 0},
		{1, 1, 100},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{1, 2, 50},
	}

	for _, tt := range tests {
		if got := WinPercentage(tt.wins, tt.played); got != tt.want {
			t.Fatalf("WinPercentage(%d, %d) = %d, want %d", tt.wins, tt.played, got, tt.want)
		}
	}
}

func TestComputePlayer_SingleWin(t *testing.T) {
	matches := []match.Match{completed("m1", "u1", "u2", 6, 3, day(1))}

	got := ComputePlayer("u1", matches, DefaultRecentLimit)
	if got.MatchesPlayed != 1 || got.Wins != 1 || got.Losses != 0 || got.WinPercentage != 100 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if got.TotalGamesWon != 6 || got.TotalGamesLost != 3 {
		t.Fatalf("unexpected games: won=%d lost=%d", got.TotalGamesWon, got.TotalGamesLost)
	}

	loser := ComputePlayer("u2", matches, DefaultRecentLimit)
	if loser.Wins != 0 || loser.Losses != 1 || loser.WinPercentage != 0 {
		t.Fatalf("unexpected loser summary: %+v", loser)
	}
	if loser.Recent[0].OpponentID != "u1" || loser.Recent[0].PlayerScore != 3 || loser.Recent[0].OpponentScore != 6 {
		t.Fatalf("unexpected recent row: %+v", loser.Recent[0])
	}
}

func TestComputePlayer_IgnoresScheduledAndForeignMatches(t *testing.T) {
	matches := []match.Match{
		completed("m1", "u1", "u2", 6, 3, day(1)),
		completed("m2", "u3", "u2", 6, 3, day(2)),
		{ID: "m3", Player1ID: "u1", Player2ID: "u3", Date: day(3), Location: "Court B", Status: match.StatusScheduled},
	}

	got := ComputePlayer("u1", matches, DefaultRecentLimit)
	if got.MatchesPlayed != 1 {
		t.Fatalf("expected 1 qualifying match, got %d", got.MatchesPlayed)
	}
}

func TestComputePlayer_EmptyHistory(t *testing.T) {
	got := ComputePlayer("u1", nil, DefaultRecentLimit)
	if got.MatchesPlayed != 0 || got.WinPercentage != 0 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if got.Recent == nil || got.Opponents == nil {
		t.Fatalf("expected empty, non-nil slices")
	}
}

func TestComputePlayer_RecentMatchesNewestFirstAndLimited(t *testing.T) {
	var matches []match.Match
	for d := 1; d <= 7; d++ {
		matches = append(matches, completed("m"+string(rune('0'+d)), "u1", "u2", 6, d%5, day(d)))
	}

	got := ComputePlayer("u1", matches, DefaultRecentLimit)
	if len(got.Recent) != 5 {
		t.Fatalf("expected 5 recent matches, got %d", len(got.Recent))
	}
	wantIDs := []string{"m7", "m6", "m5", "m4", "m3"}
	for i, id := range wantIDs {
		if got.Recent[i].MatchID != id {
			t.Fatalf("recent[%d] = %s, want %s", i, got.Recent[i].MatchID, id)
		}
	}
}

func TestComputePlayer_OpponentBreakdownOrdering(t *testing.T) {
	matches := []match.Match{
		completed("m1", "u1", "u2", 6, 2, day(1)),
		completed("m2", "u3", "u1", 6, 4, day(2)),
		completed("m3", "u1", "u3", 7, 5, day(3)),
		completed("m4", "u1", "u4", 6, 1, day(4)),
		completed("m5", "u2", "u1", 6, 0, day(5)),
		completed("m6", "u1", "u3", 2, 6, day(6)),
	}

	got := ComputePlayer("u1", matches, DefaultRecentLimit)
	want := []OpponentRecord{
		{OpponentID: "u3", TotalMatches: 3, Wins: 1, Losses: 2},
		{OpponentID: "u2", TotalMatches: 2, Wins: 1, Losses: 1},
		{OpponentID: "u4", TotalMatches: 1, Wins: 1, Losses: 0},
	}
	if !reflect.DeepEqual(got.Opponents, want) {
		t.Fatalf("unexpected breakdown:\nwant %+v\ngot  %+v", want, got.Opponents)
	}
	if got.Wins != 3 || got.Losses != 3 || got.WinPercentage != 50 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestComputePlayer_TiedOpponentsKeepDiscoveryOrder(t *testing.T) {
	matches := []match.Match{
		completed("m1", "u1", "u2", 6, 2, day(1)),
		completed("m2", "u1", "u3", 6, 2, day(2)),
		completed("m3", "u1", "u4", 6, 2, day(3)),
	}

	got := ComputePlayer("u1", matches, DefaultRecentLimit)
	order := []string{got.Opponents[0].OpponentID, got.Opponents[1].OpponentID, got.Opponents[2].OpponentID}
	if !reflect.DeepEqual(order, []string{"u4", "u3", "u2"}) {
		t.Fatalf("unexpected opponent order: %v", order)
	}
}

func TestComputePlayer_Deterministic(t *testing.T) {
	matches := []match.Match{
		completed("m2", "u1", "u2", 6, 2, day(1)),
		completed("m1", "u1", "u3", 3, 6, day(1)),
		completed("m3", "u2", "u1", 6, 4, day(2)),
	}
	reversed := []match.Match{matches[2], matches[1], matches[0]}

	first := ComputePlayer("u1", matches, DefaultRecentLimit)
	second := ComputePlayer("u1", reversed, DefaultRecentLimit)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical summaries:\n%+v\n%+v", first, second)
	}
}

func TestBuildLeaderboard_SortsByWinPercentage(t *testing.T) {
	matches := []match.Match{
		completed("m1", "u3", "u2", 2, 6, day(1)),
		completed("m2", "u1", "u2", 6, 4, day(2)),
		completed("m3", "u2", "u3", 6, 1, day(3)),
		completed("m4", "u1", "u3", 6, 0, day(4)),
	}

	got := BuildLeaderboard(matches)
	want := []Standing{
		{PlayerID: "u1", MatchesPlayed: 2, Wins: 2, Losses: 0, WinPercentage: 100},
		{PlayerID: "u2", MatchesPlayed: 3, Wins: 2, Losses: 1, WinPercentage: 67},
		{PlayerID: "u3", MatchesPlayed: 3, Wins: 0, Losses: 3, WinPercentage: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected leaderboard:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestBuildLeaderboard_MatchesPerPlayerSummaries(t *testing.T) {
	matches := []match.Match{
		completed("m1", "u1", "u2", 6, 4, day(1)),
		completed("m2", "u2", "u3", 6, 3, day(2)),
		completed("m3", "u3", "u1", 7, 6, day(3)),
		completed("m4", "u4", "u1", 1, 6, day(4)),
		{ID: "m5", Player1ID: "u5", Player2ID: "u1", Date: day(5), Location: "Court C", Status: match.StatusScheduled},
	}

	rows := BuildLeaderboard(matches)
	if len(rows) != 4 {
		t.Fatalf("expected 4 ranked players, got %d", len(rows))
	}
	for _, row := range rows {
		summary := ComputePlayer(row.PlayerID, matches, DefaultRecentLimit)
		if row.MatchesPlayed != summary.MatchesPlayed || row.Wins != summary.Wins ||
			row.Losses != summary.Losses || row.WinPercentage != summary.WinPercentage {
			t.Fatalf("leaderboard row %+v disagrees with summary %+v", row, summary)
		}
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].WinPercentage < rows[i].WinPercentage {
			t.Fatalf("rows out of order at %d: %+v", i, rows)
		}
	}
}

func TestBuildLeaderboard_StableForTies(t *testing.T) {
	matches := []match.Match{
		completed("m1", "u1", "u2", 6, 4, day(1)),
		completed("m2", "u2", "u1", 6, 4, day(2)),
	}

	for i := 0; i < 10; i++ {
		rows := BuildLeaderboard(matches)
		if rows[0].PlayerID != "u1" || rows[1].PlayerID != "u2" {
			t.Fatalf("expected discovery order for tied rows, got %+v", rows)
		}
	}
}

func TestParticipantIDs(t *testing.T) {
	matches := []match.Match{
		completed("m1", "u3", "u1", 6, 4, day(1)),
		completed("m2", "u1", "u2", 6, 4, day(2)),
	}

	got := ParticipantIDs(matches)
	if !reflect.DeepEqual(got, []string{"u1", "u2", "u3"}) {
		t.Fatalf("unexpected ids: %v", got)
	}
}
