package match

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestMatchValidate(t *testing.T) {
	base := Match{
		ID:        "m1",
		Player1ID: "u1",
		Player2ID: "u2",
		Date:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Location:  "Court A",
		Status:    StatusScheduled,
	}

	tests := []struct {
		name    string
		mutate  func(*Match)
		wantErr bool
	}{
		{name: "valid scheduled", mutate: func(*Match) {}},
		{
			name: "valid completed",
			mutate: func(m *Match) {
				m.Status = StatusCompleted
				m.Player1Score = intPtr(6)
				m.Player2Score = intPtr(3)
			},
		},
		{name: "same players", mutate: func(m *Match) { m.Player2ID = "u1" }, wantErr: true},
		{name: "missing location", mutate: func(m *Match) { m.Location = "" }, wantErr: true},
		{name: "scheduled with score", mutate: func(m *Match) { m.Player1Score = intPtr(1) }, wantErr: true},
		{
			name: "completed without scores",
			mutate: func(m *Match) {
				m.Status = StatusCompleted
				m.Player1Score = intPtr(6)
			},
			wantErr: true,
		},
		{
			name: "completed with tie",
			mutate: func(m *Match) {
				m.Status = StatusCompleted
				m.Player1Score = intPtr(4)
				m.Player2Score = intPtr(4)
			},
			wantErr: true,
		},
		{name: "unknown status", mutate: func(m *Match) { m.Status = "cancelled" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			tt.mutate(&m)
			err := m.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestScoresFor(t *testing.T) {
	m := Match{Player1ID: "u1", Player2ID: "u2", Player1Score: intPtr(6), Player2Score: intPtr(3)}

	own, opp, opponent := m.ScoresFor("u2")
	if own != 3 || opp != 6 || opponent != "u1" {
		t.Fatalf("unexpected scores for u2: own=%d opp=%d opponent=%s", own, opp, opponent)
	}
}

func TestValidateScore(t *testing.T) {
	if err := ValidateScore(6, 3); err != nil {
		t.Fatalf("expected valid score, got %v", err)
	}
	if err := ValidateScore(-1, 3); err == nil {
		t.Fatalf("expected negative score to fail")
	}
	if err := ValidateScore(4, 4); err == nil {
		t.Fatalf("expected equal scores to fail")
	}
}
