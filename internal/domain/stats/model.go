package stats

import "time"

// DefaultRecentLimit is how many completed matches a player summary lists.
const DefaultRecentLimit = 5

// PlayerSummary aggregates one player's completed matches.
type PlayerSummary struct {
	PlayerID       string
	MatchesPlayed  int
	Wins           int
	Losses         int
	WinPercentage  int
	TotalGamesWon  int
	TotalGamesLost int
	Recent         []RecentResult
	Opponents      []OpponentRecord
}

// RecentResult is one completed match seen from the summarized player's side.
type RecentResult struct {
	MatchID       string
	Date          time.Time
	Location      string
	OpponentID    string
	PlayerScore   int
	OpponentScore int
	Won           bool
}

// OpponentRecord is the head-to-head tally against one opponent.
type OpponentRecord struct {
	OpponentID   string
	TotalMatches int
	Wins         int
	Losses       int
}

// Standing is one leaderboard row before display names are attached.
type Standing struct {
	PlayerID      string
	MatchesPlayed int
	Wins          int
	Losses        int
	WinPercentage int
}
