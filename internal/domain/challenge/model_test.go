package challenge

import (
	"testing"
	"time"
)

func TestChallengeValidate(t *testing.T) {
	matchID := "m1"
	base := Challenge{
		ID:               "c1",
		ChallengerID:     "u1",
		ChallengedID:     "u2",
		ProposedAt:       time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		ProposedLocation: "Court A",
		Status:           StatusPending,
	}

	tests := []struct {
		name    string
		mutate  func(*Challenge)
		wantErr bool
	}{
		{name: "valid pending", mutate: func(*Challenge) {}},
		{name: "valid accepted", mutate: func(c *Challenge) { c.Status = StatusAccepted; c.MatchID = &matchID }},
		{name: "self challenge", mutate: func(c *Challenge) { c.ChallengedID = "u1" }, wantErr: true},
		{name: "accepted without match", mutate: func(c *Challenge) { c.Status = StatusAccepted }, wantErr: true},
		{name: "declined with match", mutate: func(c *Challenge) { c.Status = StatusDeclined; c.MatchID = &matchID }, wantErr: true},
		{name: "pending with match", mutate: func(c *Challenge) { c.MatchID = &matchID }, wantErr: true},
		{name: "missing location", mutate: func(c *Challenge) { c.ProposedLocation = "" }, wantErr: true},
		{name: "zero date", mutate: func(c *Challenge) { c.ProposedAt = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestChallengeIsTerminal(t *testing.T) {
	if (Challenge{Status: StatusPending}).IsTerminal() {
		t.Fatalf("pending must not be terminal")
	}
	if !(Challenge{Status: StatusAccepted}).IsTerminal() || !(Challenge{Status: StatusDeclined}).IsTerminal() {
		t.Fatalf("accepted and declined must be terminal")
	}
}
