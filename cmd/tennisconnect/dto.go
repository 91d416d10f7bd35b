package main

import (
	"time"

	"github.com/gdogra/tennisconnect/internal/domain/challenge"
	"github.com/gdogra/tennisconnect/internal/domain/match"
	"github.com/gdogra/tennisconnect/internal/domain/user"
	"github.com/gdogra/tennisconnect/internal/usecase"
)

type playerDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`
}

type matchDTO struct {
	ID           string `json:"id"`
	Player1ID    string `json:"player1_id"`
	Player1Name  string `json:"player1_name,omitempty"`
	Player2ID    string `json:"player2_id"`
	Player2Name  string `json:"player2_name,omitempty"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	Player1Score *int   `json:"player1_score"`
	Player2Score *int   `json:"player2_score"`
}

type challengeDTO struct {
	ID               string  `json:"id"`
	ChallengerID     string  `json:"challenger_id"`
	ChallengerName   string  `json:"challenger_name,omitempty"`
	ChallengedID     string  `json:"challenged_id"`
	ChallengedName   string  `json:"challenged_name,omitempty"`
	ProposedDate     string  `json:"proposed_date"`
	ProposedLocation string  `json:"proposed_location"`
	Message          *string `json:"message,omitempty"`
	Status           string  `json:"status"`
	MatchID          *string `json:"match_id,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type acceptChallengeDTO struct {
	Challenge challengeDTO `json:"challenge"`
	Match     matchDTO     `json:"match"`
}

type seedDTO struct {
	Seeded bool `json:"seeded"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toPlayerDTO(u user.User) playerDTO {
	return playerDTO{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        string(u.Role),
		CreatedAt:   formatTime(u.CreatedAt),
	}
}

func toPlayerDTOs(items []user.User) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toPlayerDTO(item))
	}
	return out
}

func toMatchDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		Player1ID:    m.Player1ID,
		Player2ID:    m.Player2ID,
		Date:         formatTime(m.Date),
		Location:     m.Location,
		Status:       string(m.Status),
		Player1Score: m.Player1Score,
		Player2Score: m.Player2Score,
	}
}

func toMatchSummaryDTOs(items []usecase.MatchSummary) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		dto := toMatchDTO(item.Match)
		dto.Player1Name = item.Player1Name
		dto.Player2Name = item.Player2Name
		out = append(out, dto)
	}
	return out
}

func toChallengeDTO(c challenge.Challenge) challengeDTO {
	return challengeDTO{
		ID:               c.ID,
		ChallengerID:     c.ChallengerID,
		ChallengedID:     c.ChallengedID,
		ProposedDate:     formatTime(c.ProposedAt),
		ProposedLocation: c.ProposedLocation,
		Message:          c.Message,
		Status:           string(c.Status),
		MatchID:          c.MatchID,
		CreatedAt:        formatTime(c.CreatedAt),
	}
}

func toChallengeSummaryDTO(item usecase.ChallengeSummary) challengeDTO {
	dto := toChallengeDTO(item.Challenge)
	dto.ChallengerName = item.ChallengerName
	dto.ChallengedName = item.ChallengedName
	return dto
}
