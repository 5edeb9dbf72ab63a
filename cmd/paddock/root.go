package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var rootFlag string
	var playerFlag string

	ctx := newCommandContext(&configFlag, &rootFlag, &playerFlag)

	rootCmd := &cobra.Command{
		Use:           "paddock",
		Short:         "Manage rFactor driver records, championships, and saves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Game installation root (overrides install_root)")
	rootCmd.PersistentFlags().StringVar(&playerFlag, "player", "", "Player profile (overrides the configured player)")

	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newDriversCommand(ctx))
	rootCmd.AddCommand(newVehiclesCommand(ctx))
	rootCmd.AddCommand(newTracksCommand(ctx))
	rootCmd.AddCommand(newChampionshipsCommand(ctx))
	rootCmd.AddCommand(newSavesCommand(ctx))

	return rootCmd
}
