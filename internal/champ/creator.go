package champ

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"paddock/internal/gamedata"
	"paddock/internal/gamefile"
	"paddock/internal/isolation"
	"paddock/internal/rfm"
)

// rfmNameLimit is the longest mod filename (without extension) the
// simulator's multiplayer lobby can announce.
const rfmNameLimit = 19

// Options carries optional championship settings. Nil fields fall back to
// the stock defaults.
type Options struct {
	FullName      string
	Scoring       *rfm.DefaultScoring
	SeasonScoring *rfm.SeasonScoring
	PitGroups     []rfm.PitGroup
}

// Creator builds custom championships: it isolates the assigned vehicles
// and writes the matching mod definition. Creation within one install is
// serialized with a file lock.
type Creator struct {
	layout gamedata.Layout
	engine *isolation.Engine
	logger *slog.Logger
}

// NewCreator returns a creator for the given installation.
func NewCreator(layout gamedata.Layout, logger *slog.Logger) *Creator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Creator{
		layout: layout,
		engine: isolation.NewEngine(layout.VehiclesDir(), logger),
		logger: logger,
	}
}

// ModPath returns the mod definition file a championship is stored as.
func (c *Creator) ModPath(name string) string {
	return filepath.Join(c.layout.ModsDir(), isolation.FolderName(name)+".rfm")
}

// NameAvailable reports whether no championship with this name exists yet.
func (c *Creator) NameAvailable(name string) bool {
	_, err := os.Stat(c.ModPath(name))
	return os.IsNotExist(err)
}

// Create isolates the assigned vehicles and writes the mod definition.
// When the definition cannot be written the isolated vehicles are removed
// again. Returns the definition path and the isolation report.
func (c *Creator) Create(name string, assignments []isolation.Assignment, tracks []string, opts Options) (string, *isolation.Report, error) {
	if err := validateName(name); err != nil {
		return "", nil, err
	}
	if len(assignments) == 0 {
		return "", nil, fmt.Errorf("%w: at least one vehicle assignment is required", gamefile.ErrValidation)
	}
	if len(tracks) == 0 {
		return "", nil, fmt.Errorf("%w: at least one track is required", gamefile.ErrValidation)
	}

	if err := os.MkdirAll(c.layout.ModsDir(), 0o755); err != nil {
		return "", nil, fmt.Errorf("create mod directory: %w", err)
	}

	lock := flock.New(filepath.Join(c.layout.ModsDir(), ".paddock.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return "", nil, fmt.Errorf("acquire creation lock: %w", err)
	}
	if !ok {
		return "", nil, errors.New("another championship creation is in progress")
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			c.logger.Warn("releasing creation lock", "error", err)
		}
	}()

	modPath := c.ModPath(name)
	if _, err := os.Stat(modPath); err == nil {
		return "", nil, fmt.Errorf("%w: championship %q already exists", gamefile.ErrValidation, name)
	}

	report, err := c.engine.Isolate(name, assignments)
	if err != nil {
		return "", report, fmt.Errorf("isolate vehicles: %w", err)
	}

	mod := buildMod(name, tracks, report, opts)
	if err := rfm.GenerateFile(mod, modPath); err != nil {
		// Do not leave a half-created championship behind.
		if cleanupErr := c.engine.Cleanup(name); cleanupErr != nil {
			c.logger.Warn("rollback after failed definition write", "error", cleanupErr)
		}
		return "", report, fmt.Errorf("write mod definition: %w", err)
	}

	c.logger.Info("championship created",
		"championship", name,
		"definition", modPath,
		"vehicles", report.Succeeded(),
		"tracks", len(tracks))
	return modPath, report, nil
}

// Delete removes a championship's mod definition and its isolated
// vehicles.
func (c *Creator) Delete(name string) error {
	if name == "" {
		return fmt.Errorf("%w: championship name is required", gamefile.ErrValidation)
	}

	modPath := c.ModPath(name)
	deleted := false
	if _, err := os.Stat(modPath); err == nil {
		if err := os.Remove(modPath); err != nil {
			return fmt.Errorf("delete mod definition %s: %w", modPath, err)
		}
		deleted = true
	}

	if err := c.engine.Cleanup(name); err != nil {
		if deleted {
			c.logger.Warn("definition deleted but vehicle cleanup failed", "championship", name, "error", err)
			return nil
		}
		return err
	}

	if !deleted {
		c.logger.Info("no mod definition found", "championship", name)
	}
	return nil
}

// List returns the names of championships created by this tool, taken from
// the M_ prefixed definitions in the mod directory.
func (c *Creator) List() ([]string, error) {
	paths, err := gamefile.FindByExtension(c.layout.ModsDir(), ".rfm", false)
	if err != nil {
		if errors.Is(err, gamefile.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, path := range paths {
		stem := gamefile.Stem(filepath.Base(path))
		if strings.HasPrefix(stem, "M_") {
			names = append(names, strings.TrimPrefix(stem, "M_"))
		}
	}
	return names, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: championship name is required", gamefile.ErrValidation)
	}
	for _, r := range name {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			continue
		}
		return fmt.Errorf("%w: championship name must be alphanumeric (underscores allowed)", gamefile.ErrValidation)
	}
	if prefixed := isolation.FolderName(name); len(prefixed) > rfmNameLimit {
		return fmt.Errorf("%w: championship name %q is too long, at most %d characters",
			gamefile.ErrValidation, name, rfmNameLimit-len(isolation.FolderName("")))
	}
	return nil
}

// buildMod assembles the mod definition for an isolated championship. The
// vehicle filter is the championship name, which is what the isolated
// vehicle class lines were rewritten to.
func buildMod(name string, tracks []string, report *isolation.Report, opts Options) *rfm.Mod {
	fullName := opts.FullName
	if fullName == "" {
		fullName = name
	}

	vehicleCount := report.Succeeded()
	maxOpponents := vehicleCount - 1
	if maxOpponents < 1 {
		maxOpponents = 1
	}
	minOpponents := min(3, maxOpponents)

	mod := rfm.NewMod(fullName, name)
	mod.MaxOpponents = maxOpponents
	mod.MinOpponents = minOpponents
	mod.SceneOrder = append([]string(nil), tracks...)

	mod.Seasons = []rfm.Season{{
		Name:          seasonName(fullName),
		VehicleFilter: name,
		SceneOrder:    append([]string(nil), tracks...),
		MinOpponents:  minOpponents,
	}}

	if opts.Scoring != nil {
		mod.Scoring = *opts.Scoring
	}
	if opts.SeasonScoring != nil {
		mod.SeasonScoring = *opts.SeasonScoring
	}
	if len(opts.PitGroups) > 0 {
		mod.PitGroups = append([]rfm.PitGroup(nil), opts.PitGroups...)
	} else {
		mod.PitGroups = defaultPitGroups(vehicleCount)
	}

	// The career starting pool is the isolated vehicles, one entry per
	// file, as lowercased stems.
	for _, path := range report.IsolatedPaths() {
		mod.Career.StartingVehicles = append(mod.Career.StartingVehicles,
			strings.ToLower(gamefile.Stem(filepath.Base(path))))
	}

	return mod
}

// seasonName derives a season label that fits the multiplayer name limit.
func seasonName(fullName string) string {
	name := fullName + " Season"
	if len(name) <= rfmNameLimit {
		return name
	}
	name = fullName + " S1"
	if len(name) <= rfmNameLimit {
		return name
	}
	return fullName[:rfmNameLimit-len(" S1")] + " S1"
}

func defaultPitGroups(vehicleCount int) []rfm.PitGroup {
	groups := make([]rfm.PitGroup, 0, vehicleCount)
	for i := 0; i < vehicleCount; i++ {
		groups = append(groups, rfm.PitGroup{VehicleCount: 1, GroupName: fmt.Sprintf("Group%d", i+1)})
	}
	return groups
}
