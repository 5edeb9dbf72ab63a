package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Validate the installation and summarize its contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := ctx.layout()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Install root: %s\n", layout.Root)

			missing, err := layout.Validate()
			if err != nil && len(missing) == 1 && missing[0] == "installation root" {
				return fmt.Errorf("validate installation: %w", err)
			}
			if len(missing) > 0 {
				fmt.Fprintf(out, "Missing items: %s\n", strings.Join(missing, ", "))
				return fmt.Errorf("installation at %s is incomplete", layout.Root)
			}
			if err != nil {
				return fmt.Errorf("validate installation: %w", err)
			}
			fmt.Fprintln(out, "Installation valid")

			counts, err := layout.Count()
			if err != nil {
				return fmt.Errorf("count installation contents: %w", err)
			}
			fmt.Fprintf(out, "Drivers: %d  Vehicles: %d  Tracks: %d\n",
				counts.Talents, counts.Vehicles, counts.Locations)

			profiles, err := layout.PlayerProfiles()
			if err == nil && len(profiles) > 0 {
				fmt.Fprintf(out, "Player profiles: %s\n", strings.Join(profiles, ", "))
			}
			return nil
		},
	}
}
