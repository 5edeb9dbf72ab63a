package gamedata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"paddock/internal/gamefile"
)

// Layout resolves the fixed subpaths of a simulator installation.
type Layout struct {
	Root string
}

// NewLayout returns a Layout rooted at root. The root is not validated here;
// call Validate before relying on the subpaths.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// TalentDir is where driver record (.rcd) files live.
func (l Layout) TalentDir() string {
	return filepath.Join(l.Root, "GameData", "Talent")
}

// VehiclesDir is the root of the vehicle (.veh) tree.
func (l Layout) VehiclesDir() string {
	return filepath.Join(l.Root, "GameData", "Vehicles")
}

// LocationsDir is the root of the track (.gdb) tree.
func (l Layout) LocationsDir() string {
	return filepath.Join(l.Root, "GameData", "Locations")
}

// ModsDir is where mod definition (.rfm) files live.
func (l Layout) ModsDir() string {
	return filepath.Join(l.Root, "rFm")
}

// UserDataDir is the parent of all player profiles.
func (l Layout) UserDataDir() string {
	return filepath.Join(l.Root, "UserData")
}

// PlayerDir is where one player's championship saves (.cch) live.
func (l Layout) PlayerDir(player string) string {
	return filepath.Join(l.UserDataDir(), player)
}

// requiredItems must exist directly under the installation root.
var requiredItems = []string{"rFactor.exe", "GameData", "UserData"}

// gameDataItems must exist under GameData.
var gameDataItems = []string{"Talent", "Vehicles", "Locations"}

// Validate checks that the layout root is a plausible installation. It
// returns the list of missing items alongside a nil/non-nil verdict so
// callers can present all problems at once.
func (l Layout) Validate() (missing []string, err error) {
	info, statErr := os.Stat(l.Root)
	if statErr != nil {
		return []string{"installation root"}, fmt.Errorf("%w: installation root %s", gamefile.ErrNotFound, l.Root)
	}
	if !info.IsDir() {
		return []string{"installation root"}, fmt.Errorf("%w: %s is not a directory", gamefile.ErrValidation, l.Root)
	}

	for _, item := range requiredItems {
		if _, statErr := os.Stat(filepath.Join(l.Root, item)); statErr != nil {
			missing = append(missing, item)
		}
	}
	if _, statErr := os.Stat(filepath.Join(l.Root, "GameData")); statErr == nil {
		for _, item := range gameDataItems {
			if _, statErr := os.Stat(filepath.Join(l.Root, "GameData", item)); statErr != nil {
				missing = append(missing, "GameData/"+item)
			}
		}
	}

	if len(missing) > 0 {
		return missing, fmt.Errorf("%w: invalid installation at %s, missing: %s",
			gamefile.ErrValidation, l.Root, strings.Join(missing, ", "))
	}
	return nil, nil
}

// PlayerProfiles lists the player profile directories under UserData.
func (l Layout) PlayerProfiles() ([]string, error) {
	entries, err := os.ReadDir(l.UserDataDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", gamefile.ErrNotFound, l.UserDataDir())
		}
		return nil, fmt.Errorf("list player profiles: %w", err)
	}
	var profiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			profiles = append(profiles, entry.Name())
		}
	}
	sort.Strings(profiles)
	return profiles, nil
}

// Counts summarizes installation contents for status display.
type Counts struct {
	Talents   int
	Vehicles  int
	Locations int
}

// Count tallies driver records, vehicles, and tracks. Dialog.rcd is a game
// text file that shares the talent extension and is excluded.
func (l Layout) Count() (Counts, error) {
	var counts Counts
	talents, err := gamefile.FindByExtension(l.TalentDir(), ".rcd", false)
	if err == nil {
		for _, path := range talents {
			if !strings.EqualFold(gamefile.Stem(path), "Dialog") {
				counts.Talents++
			}
		}
	}
	vehicles, err := gamefile.FindByExtension(l.VehiclesDir(), ".veh", true)
	if err == nil {
		counts.Vehicles = len(vehicles)
	}
	locations, err := gamefile.FindByExtension(l.LocationsDir(), ".gdb", true)
	if err == nil {
		counts.Locations = len(locations)
	}
	return counts, nil
}
