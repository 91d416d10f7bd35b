package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdogra/tennisconnect/internal/usecase"
)

func newStatsCmd(c *cli) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "stats [player-id...]",
		Short: "Show statistics for one or more players",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case all && len(args) > 0:
				return c.respond(cmd, nil, fmt.Errorf("%w: --all cannot be combined with player ids", usecase.ErrInvalidInput))
			case all:
				items, err := c.app.Statistics.ComputeForAllPlayers(cmd.Context())
				return c.respond(cmd, items, err)
			case len(args) == 1:
				item, err := c.app.Statistics.ComputeForPlayer(cmd.Context(), args[0])
				return c.respond(cmd, item, err)
			case len(args) > 1:
				items, err := c.app.Statistics.ComputeForPlayers(cmd.Context(), args)
				return c.respond(cmd, items, err)
			default:
				return c.respond(cmd, nil, fmt.Errorf("%w: pass at least one player id or --all", usecase.ErrInvalidInput))
			}
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "every player with a completed match")
	return cmd
}

func newLeaderboardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank players by win percentage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := c.app.Statistics.Leaderboard(cmd.Context())
			return c.respond(cmd, rows, err)
		},
	}
}

func newSeedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo players and match history into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Seed(cmd.Context()); err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, seedDTO{Seeded: true}, nil)
		},
	}
}
