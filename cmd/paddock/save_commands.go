package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paddock/internal/champ"
)

func newSavesCommand(ctx *commandContext) *cobra.Command {
	savesCmd := &cobra.Command{
		Use:   "saves",
		Short: "Manage championship save files",
	}

	savesCmd.AddCommand(newSavesListCommand(ctx))
	savesCmd.AddCommand(newSavesShowCommand(ctx))
	savesCmd.AddCommand(newSavesDuplicateCommand(ctx))
	savesCmd.AddCommand(newSavesDeleteCommand(ctx))

	return savesCmd
}

func (c *commandContext) saves() (*champ.Saves, error) {
	layout, err := c.layout()
	if err != nil {
		return nil, err
	}
	return champ.NewSaves(layout, c.playerName(), c.ensureLogger()), nil
}

func newSavesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the player's saves",
		RunE: func(cmd *cobra.Command, args []string) error {
			saves, err := ctx.saves()
			if err != nil {
				return err
			}
			names, err := saves.List()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				save, err := saves.Get(name)
				if err != nil {
					ctx.ensureLogger().Warn("skipping unreadable save", "save", name, "error", err)
					continue
				}
				rows = append(rows, []string{
					name,
					save.Season.Name,
					fmt.Sprintf("%d", save.Season.CurrentRace),
					fmt.Sprintf("%d", save.Player.SeasonPoints),
					fmt.Sprintf("%d", len(save.Opponents)),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Save", "Season", "Race", "Points", "Opponents"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(out, "%d saves for %s\n", len(rows), ctx.playerName())
			return nil
		},
	}
}

func newSavesShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a save's standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saves, err := ctx.saves()
			if err != nil {
				return err
			}
			save, err := saves.Get(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Season:  %s\n", save.Season.Name)
			fmt.Fprintf(out, "Race:    %d\n", save.Season.CurrentRace)
			fmt.Fprintf(out, "Credits: %d\n", save.Career.Money)
			fmt.Fprintln(out)

			rows := [][]string{{
				save.Player.Name + " (player)",
				fmt.Sprintf("%d", save.Player.SeasonPoints),
				fmt.Sprintf("%d", save.Player.PointsPosition),
				fmt.Sprintf("%d", save.Player.PolesTaken),
			}}
			for _, opponent := range save.Opponents {
				rows = append(rows, []string{
					opponent.Name,
					fmt.Sprintf("%d", opponent.SeasonPoints),
					fmt.Sprintf("%d", opponent.PointsPosition),
					fmt.Sprintf("%d", opponent.PolesTaken),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Entrant", "Points", "Position", "Poles"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
}

func newSavesDuplicateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <source> <target>",
		Short: "Copy a save with the season progress reset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			saves, err := ctx.saves()
			if err != nil {
				return err
			}
			if _, err := saves.Duplicate(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicated %s to %s with progress reset\n", args[0], args[1])
			return nil
		},
	}
}

func newSavesDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saves, err := ctx.saves()
			if err != nil {
				return err
			}
			if err := saves.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted save %s\n", args[0])
			return nil
		},
	}
}
