package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gdogra/tennisconnect/internal/usecase"
)

func newChallengeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Propose, answer and list challenges",
	}
	cmd.AddCommand(
		newChallengeCreateCmd(c),
		newChallengeAcceptCmd(c),
		newChallengeDeclineCmd(c),
		newChallengeListCmd(c),
	)
	return cmd
}

func newChallengeCreateCmd(c *cli) *cobra.Command {
	var (
		input   usecase.CreateChallengeInput
		at      string
		message string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Challenge another player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proposedAt, err := parseTimeFlag("at", at)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			input.ProposedAt = proposedAt
			if cmd.Flags().Changed("message") {
				input.Message = &message
			}

			item, err := c.app.Challenges.Create(cmd.Context(), input)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, toChallengeDTO(item), nil)
		},
	}
	cmd.Flags().StringVar(&input.ChallengerID, "from", "", "challenger user id")
	cmd.Flags().StringVar(&input.ChallengedID, "to", "", "challenged user id")
	cmd.Flags().StringVar(&at, "at", "", "proposed start time (RFC3339)")
	cmd.Flags().StringVar(&input.ProposedLocation, "location", "", "proposed court or club")
	cmd.Flags().StringVar(&message, "message", "", "optional note for the opponent")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("at")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func newChallengeAcceptCmd(c *cli) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "accept <challenge-id>",
		Short: "Accept a pending challenge and schedule the match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, created, err := c.app.Challenges.Accept(cmd.Context(), args[0], actor)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, acceptChallengeDTO{
				Challenge: toChallengeDTO(item),
				Match:     toMatchDTO(created),
			}, nil)
		},
	}
	cmd.Flags().StringVar(&actor, "as", "", "acting user id")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}

func newChallengeDeclineCmd(c *cli) *cobra.Command {
	var actor, reason string

	cmd := &cobra.Command{
		Use:   "decline <challenge-id>",
		Short: "Decline a pending challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var reasonPtr *string
			if cmd.Flags().Changed("reason") {
				reasonPtr = &reason
			}
			item, err := c.app.Challenges.Decline(cmd.Context(), args[0], actor, reasonPtr)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, toChallengeDTO(item), nil)
		},
	}
	cmd.Flags().StringVar(&actor, "as", "", "acting user id")
	cmd.Flags().StringVar(&reason, "reason", "", "replaces the challenge message")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}

func newChallengeListCmd(c *cli) *cobra.Command {
	var (
		playerID    string
		pendingOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List challenges sent or received by a player, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := make([]challengeDTO, 0)
			filter := usecase.ListChallengesFilter{PendingOnly: pendingOnly}
			for item, err := range c.app.Challenges.ListForPlayer(cmd.Context(), playerID, filter) {
				if err != nil {
					return c.respond(cmd, nil, err)
				}
				out = append(out, toChallengeSummaryDTO(item))
			}
			return c.respond(cmd, out, nil)
		},
	}
	cmd.Flags().StringVar(&playerID, "player", "", "user id")
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "only pending challenges")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

func parseTimeFlag(name, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s must be an RFC3339 time: %s", usecase.ErrInvalidInput, name, raw)
	}
	return t.UTC(), nil
}
