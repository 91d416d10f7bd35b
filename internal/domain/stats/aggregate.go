package stats

import (
	"slices"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gdogra/tennisconnect/internal/domain/match"
)

// ComputePlayer summarizes the completed matches of playerID. Matches that are
// not completed or do not involve the player are ignored, so callers may pass
// a broader slice. The result depends only on the input.
func ComputePlayer(playerID string, matches []match.Match, recentLimit int) PlayerSummary {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}

	played := qualifying(playerID, matches)
	sortByDateDesc(played)

	summary := PlayerSummary{
		PlayerID:  playerID,
		Recent:    make([]RecentResult, 0, min(recentLimit, len(played))),
		Opponents: make([]OpponentRecord, 0),
	}
	opponentIdx := make(map[string]int)

	for i, m := range played {
		own, opp, opponentID := m.ScoresFor(playerID)
		won := own > opp

		summary.MatchesPlayed++
		if won {
			summary.Wins++
		} else {
			summary.Losses++
		}
		summary.TotalGamesWon += own
		summary.TotalGamesLost += opp

		if i < recentLimit {
			summary.Recent = append(summary.Recent, RecentResult{
				MatchID:       m.ID,
				Date:          m.Date,
				Location:      m.Location,
				OpponentID:    opponentID,
				PlayerScore:   own,
				OpponentScore: opp,
				Won:           won,
			})
		}

		idx, ok := opponentIdx[opponentID]
		if !ok {
			idx = len(summary.Opponents)
			opponentIdx[opponentID] = idx
			summary.Opponents = append(summary.Opponents, OpponentRecord{OpponentID: opponentID})
		}
		record := &summary.Opponents[idx]
		record.TotalMatches++
		if won {
			record.Wins++
		} else {
			record.Losses++
		}
	}

	sort.SliceStable(summary.Opponents, func(i, j int) bool {
		return summary.Opponents[i].TotalMatches > summary.Opponents[j].TotalMatches
	})
	summary.WinPercentage = WinPercentage(summary.Wins, summary.MatchesPlayed)

	return summary
}

// BuildLeaderboard tallies every player with at least one completed match in a
// single pass. Players are discovered walking matches by date ascending,
// player one before player two; rows are then stable-sorted by win percentage.
func BuildLeaderboard(matches []match.Match) []Standing {
	completed := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == match.StatusCompleted {
			completed = append(completed, m)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		if !completed[i].Date.Equal(completed[j].Date) {
			return completed[i].Date.Before(completed[j].Date)
		}
		return completed[i].ID < completed[j].ID
	})

	rows := make([]Standing, 0)
	rowIdx := make(map[string]int)
	tally := func(playerID string, won bool) {
		idx, ok := rowIdx[playerID]
		if !ok {
			idx = len(rows)
			rowIdx[playerID] = idx
			rows = append(rows, Standing{PlayerID: playerID})
		}
		row := &rows[idx]
		row.MatchesPlayed++
		if won {
			row.Wins++
		} else {
			row.Losses++
		}
	}

	for _, m := range completed {
		p1, p2, _ := m.ScoresFor(m.Player1ID)
		tally(m.Player1ID, p1 > p2)
		tally(m.Player2ID, p2 > p1)
	}

	for i := range rows {
		rows[i].WinPercentage = WinPercentage(rows[i].Wins, rows[i].MatchesPlayed)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].WinPercentage > rows[j].WinPercentage
	})

	return rows
}

// WinPercentage rounds wins/played*100 half up; zero when nothing was played.
func WinPercentage(wins, played int) int {
	if played <= 0 {
		return 0
	}
	return (200*wins + played) / (2 * played)
}

// ParticipantIDs returns the sorted distinct player ids across matches.
func ParticipantIDs(matches []match.Match) []string {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, m := range matches {
		set.Add(m.Player1ID)
		set.Add(m.Player2ID)
	}
	ids := set.ToSlice()
	slices.Sort(ids)
	return ids
}

func qualifying(playerID string, matches []match.Match) []match.Match {
	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status != match.StatusCompleted || !m.IsParticipant(playerID) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func sortByDateDesc(matches []match.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.After(matches[j].Date)
		}
		return matches[i].ID < matches[j].ID
	})
}
