package main

import (
	"github.com/spf13/cobra"

	"github.com/gdogra/tennisconnect/internal/usecase"
)

func newMatchCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Schedule matches and record results",
	}
	cmd.AddCommand(
		newMatchScheduleCmd(c),
		newMatchScoreCmd(c),
		newMatchRescheduleCmd(c),
		newMatchListCmd(c),
	)
	return cmd
}

func newMatchScheduleCmd(c *cli) *cobra.Command {
	var (
		input usecase.ScheduleMatchInput
		at    string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a match directly without a challenge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseTimeFlag("at", at)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			input.Date = date

			item, err := c.app.Matches.Schedule(cmd.Context(), input)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, toMatchDTO(item), nil)
		},
	}
	cmd.Flags().StringVar(&input.PlayerID, "player", "", "player one user id")
	cmd.Flags().StringVar(&input.OpponentID, "opponent", "", "player two user id")
	cmd.Flags().StringVar(&at, "at", "", "start time (RFC3339)")
	cmd.Flags().StringVar(&input.Location, "location", "", "court or club")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("opponent")
	_ = cmd.MarkFlagRequired("at")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func newMatchScoreCmd(c *cli) *cobra.Command {
	var (
		actor                      string
		player1Score, player2Score int
	)

	cmd := &cobra.Command{
		Use:   "score <match-id>",
		Short: "Record the final score of a scheduled match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := c.app.Matches.RecordScore(cmd.Context(), args[0], actor, player1Score, player2Score)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, toMatchDTO(item), nil)
		},
	}
	cmd.Flags().StringVar(&actor, "as", "", "acting user id")
	cmd.Flags().IntVar(&player1Score, "p1", 0, "games won by player one")
	cmd.Flags().IntVar(&player2Score, "p2", 0, "games won by player two")
	_ = cmd.MarkFlagRequired("as")
	_ = cmd.MarkFlagRequired("p1")
	_ = cmd.MarkFlagRequired("p2")
	return cmd
}

func newMatchRescheduleCmd(c *cli) *cobra.Command {
	var (
		input usecase.RescheduleMatchInput
		at    string
	)

	cmd := &cobra.Command{
		Use:   "reschedule <match-id>",
		Short: "Move a scheduled match to a new time and place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseTimeFlag("at", at)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			input.MatchID = args[0]
			input.Date = date

			item, err := c.app.Matches.Reschedule(cmd.Context(), input)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, toMatchDTO(item), nil)
		},
	}
	cmd.Flags().StringVar(&input.ActingUserID, "as", "", "acting user id")
	cmd.Flags().StringVar(&at, "at", "", "new start time (RFC3339)")
	cmd.Flags().StringVar(&input.Location, "location", "", "new court or club")
	_ = cmd.MarkFlagRequired("as")
	_ = cmd.MarkFlagRequired("at")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func newMatchListCmd(c *cli) *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a player's matches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.app.Matches.ListForPlayer(cmd.Context(), playerID)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, toMatchSummaryDTOs(items), nil)
		},
	}
	cmd.Flags().StringVar(&playerID, "player", "", "user id")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}
