package main

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"paddock/internal/catalog"
	"paddock/internal/veh"
)

func newVehiclesCommand(ctx *commandContext) *cobra.Command {
	vehiclesCmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Browse the vehicle library",
	}

	vehiclesCmd.AddCommand(newVehiclesListCommand(ctx))
	vehiclesCmd.AddCommand(newVehiclesClassesCommand(ctx))
	vehiclesCmd.AddCommand(newVehiclesShowCommand(ctx))

	return vehiclesCmd
}

// vehicleListing returns the vehicle records for the install, served from
// the catalog cache when no .veh file changed since the last scan.
func (c *commandContext) vehicleListing(ctx context.Context, refresh bool) ([]catalog.VehicleRecord, error) {
	layout, err := c.layout()
	if err != nil {
		return nil, err
	}
	root := layout.VehiclesDir()
	logger := c.ensureLogger()

	store, err := c.openCatalog()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	current, err := catalog.ModTimes(root, ".veh")
	if err != nil {
		return nil, err
	}

	if !refresh {
		fresh, err := store.VehiclesFresh(ctx, root, current)
		if err != nil {
			return nil, err
		}
		if fresh {
			logger.Debug("vehicle listing served from cache", "root", root)
			return store.Vehicles(ctx, root)
		}
	}

	vehicles, err := veh.NewScanner(root, logger).Scan()
	if err != nil {
		return nil, err
	}
	records := make([]catalog.VehicleRecord, 0, len(vehicles))
	for _, vehicle := range vehicles {
		records = append(records, catalog.RecordVehicle(vehicle, current[vehicle.RelativePath]))
	}
	if err := store.ReplaceVehicles(ctx, root, records); err != nil {
		return nil, err
	}
	logger.Info("vehicle listing rescanned", "root", root, "vehicles", len(records))
	return store.Vehicles(ctx, root)
}

func newVehiclesListCommand(ctx *commandContext) *cobra.Command {
	var class string
	var refresh bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := ctx.vehicleListing(cmd.Context(), refresh)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, rec := range records {
				if class != "" && !recordHasClass(rec, class) {
					continue
				}
				rows = append(rows, []string{
					rec.RelativePath,
					rec.Description,
					rec.Driver,
					rec.Team,
					rec.Classes,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Description", "Driver", "Team", "Classes"},
				rows,
				nil,
			))
			fmt.Fprintf(out, "%d vehicles\n", len(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Only vehicles in this class")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Rescan even when the cache is fresh")
	return cmd
}

func newVehiclesClassesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the classes in the vehicle library",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := ctx.vehicleListing(cmd.Context(), false)
			if err != nil {
				return err
			}

			seen := make(map[string]struct{})
			var classes []string
			for _, rec := range records {
				for _, class := range strings.Fields(rec.Classes) {
					if _, ok := seen[class]; !ok {
						seen[class] = struct{}{}
						classes = append(classes, class)
					}
				}
			}
			slices.Sort(classes)

			out := cmd.OutOrStdout()
			for _, class := range classes {
				fmt.Fprintln(out, class)
			}
			return nil
		},
	}
}

func newVehiclesShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <relative-path>",
		Short: "Show one vehicle definition and its resolved references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := ctx.layout()
			if err != nil {
				return err
			}
			scanner := veh.NewScanner(layout.VehiclesDir(), ctx.ensureLogger())
			vehicle, err := scanner.ParseFile(filepath.Join(layout.VehiclesDir(), filepath.FromSlash(args[0])))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:    %s\n", vehicle.DisplayName())
			fmt.Fprintf(out, "Driver:  %s\n", vehicle.Team.Driver)
			fmt.Fprintf(out, "Team:    %s\n", vehicle.Team.Team)
			fmt.Fprintf(out, "Classes: %s\n", vehicle.Classes)
			fmt.Fprintln(out)

			var rows [][]string
			for _, ref := range vehicle.Config.Refs() {
				if ref.Ref.Raw == "" {
					continue
				}
				rows = append(rows, []string{ref.Key, ref.Ref.Raw, ref.Ref.Resolved, yesNo(ref.Ref.Exists)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Reference", "Value", "Resolved", "Found"},
				rows,
				nil,
			))
			return nil
		},
	}
}

// recordHasClass matches a class token against the record's space-separated
// class list.
func recordHasClass(rec catalog.VehicleRecord, class string) bool {
	for _, candidate := range strings.Fields(rec.Classes) {
		if strings.EqualFold(candidate, class) {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
