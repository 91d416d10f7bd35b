package main

import (
	"github.com/spf13/cobra"

	"github.com/gdogra/tennisconnect/internal/domain/user"
	"github.com/gdogra/tennisconnect/internal/usecase"
)

func newPlayerCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Register and list players",
	}
	cmd.AddCommand(newPlayerAddCmd(c), newPlayerListCmd(c))
	return cmd
}

func newPlayerAddCmd(c *cli) *cobra.Command {
	var input usecase.RegisterPlayerInput
	var role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.Role = user.Role(role)
			item, err := c.app.Players.Register(cmd.Context(), input)
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, toPlayerDTO(item), nil)
		},
	}
	cmd.Flags().StringVar(&input.DisplayName, "name", "", "display name")
	cmd.Flags().StringVar(&input.Email, "email", "", "email address")
	cmd.Flags().StringVar(&role, "role", string(user.RolePlayer), "player or admin")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newPlayerListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.app.Players.List(cmd.Context())
			if err != nil {
				return c.respond(cmd, nil, err)
			}
			return c.respond(cmd, toPlayerDTOs(items), nil)
		},
	}
}
