package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"paddock/internal/catalog"
	"paddock/internal/gdb"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	tracksCmd := &cobra.Command{
		Use:   "tracks",
		Short: "Browse the track library",
	}

	tracksCmd.AddCommand(newTracksListCommand(ctx))
	tracksCmd.AddCommand(newTracksSearchCommand(ctx))

	return tracksCmd
}

// trackListing mirrors vehicleListing for the Locations tree.
func (c *commandContext) trackListing(ctx context.Context, refresh bool) ([]catalog.TrackRecord, error) {
	layout, err := c.layout()
	if err != nil {
		return nil, err
	}
	root := layout.LocationsDir()
	logger := c.ensureLogger()

	store, err := c.openCatalog()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	current, err := catalog.ModTimes(root, ".gdb")
	if err != nil {
		return nil, err
	}

	if !refresh {
		fresh, err := store.TracksFresh(ctx, root, current)
		if err != nil {
			return nil, err
		}
		if fresh {
			logger.Debug("track listing served from cache", "root", root)
			return store.Tracks(ctx, root)
		}
	}

	tracks, err := gdb.NewScanner(root, logger).Scan()
	if err != nil {
		return nil, err
	}
	records := make([]catalog.TrackRecord, 0, len(tracks))
	for _, track := range tracks {
		records = append(records, catalog.RecordTrack(track, current[track.RelativePath]))
	}
	if err := store.ReplaceTracks(ctx, root, records); err != nil {
		return nil, err
	}
	logger.Info("track listing rescanned", "root", root, "tracks", len(records))
	return store.Tracks(ctx, root)
}

func trackRows(records []catalog.TrackRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.TrackName, rec.VenueName, rec.Layout, rec.RelativePath})
	}
	return rows
}

func newTracksListCommand(ctx *commandContext) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracks",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := ctx.trackListing(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Track", "Venue", "Layout", "File"},
				trackRows(records),
				nil,
			))
			fmt.Fprintf(out, "%d tracks\n", len(records))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Rescan even when the cache is fresh")
	return cmd
}

func newTracksSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search tracks by name, venue, or layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := ctx.layout()
			if err != nil {
				return err
			}
			tracks, err := gdb.NewScanner(layout.LocationsDir(), ctx.ensureLogger()).Scan()
			if err != nil {
				return err
			}
			matches := gdb.Search(tracks, args[0])

			rows := make([][]string, 0, len(matches))
			for _, track := range matches {
				rows = append(rows, []string{track.TrackName, track.VenueName, track.Layout, track.RelativePath})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Track", "Venue", "Layout", "File"},
				rows,
				nil,
			))
			fmt.Fprintf(out, "%d matches\n", len(rows))
			return nil
		},
	}
}
