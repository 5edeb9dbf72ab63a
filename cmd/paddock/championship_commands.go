package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"paddock/internal/champ"
	"paddock/internal/isolation"
)

func newChampionshipsCommand(ctx *commandContext) *cobra.Command {
	champCmd := &cobra.Command{
		Use:     "championships",
		Aliases: []string{"champ"},
		Short:   "Create and manage custom championships",
	}

	champCmd.AddCommand(newChampionshipsListCommand(ctx))
	champCmd.AddCommand(newChampionshipsCreateCommand(ctx))
	champCmd.AddCommand(newChampionshipsDeleteCommand(ctx))

	return champCmd
}

func (c *commandContext) creator() (*champ.Creator, error) {
	layout, err := c.layout()
	if err != nil {
		return nil, err
	}
	return champ.NewCreator(layout, c.ensureLogger()), nil
}

func newChampionshipsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom championships",
		RunE: func(cmd *cobra.Command, args []string) error {
			creator, err := ctx.creator()
			if err != nil {
				return err
			}
			names, err := creator.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No custom championships")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newChampionshipsCreateCommand(ctx *commandContext) *cobra.Command {
	var fullName string
	var vehicles []string
	var tracks []string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a championship from vehicle assignments",
		Long: `Create a custom championship. Each --vehicle takes a
"relative/path.veh=Driver Name" assignment; the vehicles are isolated into
a dedicated folder and a matching mod definition is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := parseAssignments(vehicles)
			if err != nil {
				return err
			}

			creator, err := ctx.creator()
			if err != nil {
				return err
			}
			modPath, report, err := creator.Create(args[0], assignments, tracks, champ.Options{FullName: fullName})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, item := range report.Items {
				if item.Err != nil {
					fmt.Fprintf(out, "  skipped %s: %v\n", item.Assignment.VehiclePath, item.Err)
				}
			}
			fmt.Fprintf(out, "Created championship %s (%d vehicles, %d tracks)\n",
				args[0], report.Succeeded(), len(tracks))
			fmt.Fprintf(out, "Definition: %s\n", modPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "full-name", "", "Display name when it differs from the identifier")
	cmd.Flags().StringArrayVar(&vehicles, "vehicle", nil, `Vehicle assignment "path.veh=Driver Name" (repeatable)`)
	cmd.Flags().StringArrayVar(&tracks, "track", nil, "Track name in race order (repeatable)")
	return cmd
}

func newChampionshipsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a championship and its isolated vehicles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creator, err := ctx.creator()
			if err != nil {
				return err
			}
			if err := creator.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted championship %s\n", args[0])
			return nil
		},
	}
}

func parseAssignments(values []string) ([]isolation.Assignment, error) {
	assignments := make([]isolation.Assignment, 0, len(values))
	for _, value := range values {
		path, driver, ok := strings.Cut(value, "=")
		if !ok || strings.TrimSpace(path) == "" || strings.TrimSpace(driver) == "" {
			return nil, fmt.Errorf(`invalid --vehicle value %q, expected "path.veh=Driver Name"`, value)
		}
		assignments = append(assignments, isolation.Assignment{
			VehiclePath: strings.TrimSpace(path),
			DriverName:  strings.TrimSpace(driver),
		})
	}
	return assignments, nil
}
