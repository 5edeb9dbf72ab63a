package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"paddock/internal/rcd"
)

func newDriversCommand(ctx *commandContext) *cobra.Command {
	driversCmd := &cobra.Command{
		Use:   "drivers",
		Short: "Manage driver records",
	}

	driversCmd.AddCommand(newDriversListCommand(ctx))
	driversCmd.AddCommand(newDriversShowCommand(ctx))
	driversCmd.AddCommand(newDriversCreateCommand(ctx))
	driversCmd.AddCommand(newDriversDeleteCommand(ctx))

	return driversCmd
}

func (c *commandContext) driverLibrary() (*rcd.Library, error) {
	layout, err := c.layout()
	if err != nil {
		return nil, err
	}
	return rcd.NewLibrary(layout.TalentDir(), c.ensureLogger())
}

func newDriversListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List driver records",
		RunE: func(cmd *cobra.Command, args []string) error {
			library, err := ctx.driverLibrary()
			if err != nil {
				return err
			}
			stems, err := library.List()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(stems))
			for _, stem := range stems {
				record, err := library.GetByFilename(stem)
				if err != nil {
					ctx.ensureLogger().Warn("skipping unreadable record", "driver", stem, "error", err)
					continue
				}
				rows = append(rows, []string{
					record.Name(),
					record.Info.Nationality,
					fmt.Sprintf("%d", record.Info.Starts),
					fmt.Sprintf("%d", record.Info.Wins),
					fmt.Sprintf("%.0f", record.Stats.Speed),
					fmt.Sprintf("%.0f", record.Stats.Aggression),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Driver", "Nationality", "Starts", "Wins", "Speed", "Aggression"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(out, "%d drivers\n", len(rows))
			return nil
		},
	}
}

func newDriversShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one driver record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			library, err := ctx.driverLibrary()
			if err != nil {
				return err
			}
			record, err := library.Get(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:        %s\n", record.Name())
			fmt.Fprintf(out, "Nationality: %s\n", record.Info.Nationality)
			fmt.Fprintf(out, "Born:        %s\n", record.Info.DateOfBirth)
			fmt.Fprintf(out, "Career:      %d starts, %d poles, %d wins, %d championships\n",
				record.Info.Starts, record.Info.Poles, record.Info.Wins, record.Info.DriversChampionships)
			fmt.Fprintln(out)
			stats := record.Stats
			fmt.Fprintln(out, renderTable(
				[]string{"Stat", "Value"},
				[][]string{
					{"Aggression", fmt.Sprintf("%.2f", stats.Aggression)},
					{"Reputation", fmt.Sprintf("%.2f", stats.Reputation)},
					{"Courtesy", fmt.Sprintf("%.2f", stats.Courtesy)},
					{"Composure", fmt.Sprintf("%.2f", stats.Composure)},
					{"Speed", fmt.Sprintf("%.2f", stats.Speed)},
					{"Crash", fmt.Sprintf("%.2f", stats.Crash)},
					{"Recovery", fmt.Sprintf("%.2f", stats.Recovery)},
					{"CompletedLaps", fmt.Sprintf("%.2f", stats.CompletedLaps)},
					{"MinRacingSkill", fmt.Sprintf("%.2f", stats.MinRacingSkill)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}

func newDriversCreateCommand(ctx *commandContext) *cobra.Command {
	var nationality string
	var born string
	var randomize bool
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a driver record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			library, err := ctx.driverLibrary()
			if err != nil {
				return err
			}

			stats := rcd.DefaultStats()
			if randomize {
				stats = rcd.RandomStats(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), rcd.DefaultRandomBounds())
			}
			record, err := rcd.NewRecord(strings.TrimSpace(args[0]), rcd.PersonalInfo{
				Nationality: nationality,
				DateOfBirth: born,
			}, stats)
			if err != nil {
				return err
			}
			if err := library.Save(record, overwrite); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created driver %s (%s)\n", record.Name(), record.Filename())
			return nil
		},
	}

	cmd.Flags().StringVar(&nationality, "nationality", "Unknown", "Driver nationality")
	cmd.Flags().StringVar(&born, "born", "1-1-1980", "Date of birth (D-M-YYYY)")
	cmd.Flags().BoolVar(&randomize, "randomize", false, "Generate random performance stats")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing record")
	return cmd
}

func newDriversDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a driver record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			library, err := ctx.driverLibrary()
			if err != nil {
				return err
			}
			if err := library.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted driver %s\n", args[0])
			return nil
		},
	}
}
