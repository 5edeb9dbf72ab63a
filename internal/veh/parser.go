package veh

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"paddock/internal/gamefile"
)

// Parse parses vehicle definition content. Unknown keys and malformed
// numbers are tolerated; the simulator itself shrugs them off.
func Parse(content string) *Vehicle {
	vehicle := &Vehicle{Team: TeamInfo{PitGroup: "Group1"}}

	for _, line := range strings.Split(content, "\n") {
		if idx := strings.Index(line, "//"); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if setter, found := fieldSetters[key]; found {
			setter(vehicle, value)
		}
	}

	return vehicle
}

// tolerantInt parses an integer, returning fallback for n/a or garbage.
func tolerantInt(value string, fallback int) int {
	if strings.EqualFold(value, "n/a") {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

var fieldSetters = map[string]func(*Vehicle, string){
	"Number":       func(v *Vehicle, s string) { v.Number = tolerantInt(s, 0) },
	"Description":  func(v *Vehicle, s string) { v.Description = s },
	"Engine":       func(v *Vehicle, s string) { v.Engine = s },
	"Manufacturer": func(v *Vehicle, s string) { v.Manufacturer = s },
	"Classes":      func(v *Vehicle, s string) { v.Classes = s },
	"Category":     func(v *Vehicle, s string) { v.Category = s },

	"Team":             func(v *Vehicle, s string) { v.Team.Team = s },
	"FullTeamName":     func(v *Vehicle, s string) { v.Team.FullTeamName = s },
	"Driver":           func(v *Vehicle, s string) { v.Team.Driver = s },
	"PitGroup":         func(v *Vehicle, s string) { v.Team.PitGroup = s },
	"TeamHeadquarters": func(v *Vehicle, s string) { v.Team.TeamHeadquarters = s },
	"TeamFounded": func(v *Vehicle, s string) {
		if year, err := strconv.Atoi(s); err == nil {
			v.Team.TeamFounded = &year
		}
	},
	"TeamStarts":             func(v *Vehicle, s string) { v.Team.TeamStarts = tolerantInt(s, 0) },
	"TeamPoles":              func(v *Vehicle, s string) { v.Team.TeamPoles = tolerantInt(s, 0) },
	"TeamWins":               func(v *Vehicle, s string) { v.Team.TeamWins = tolerantInt(s, 0) },
	"TeamWorldChampionships": func(v *Vehicle, s string) { v.Team.TeamWorldChampionships = tolerantInt(s, 0) },

	"DefaultLivery":  func(v *Vehicle, s string) { v.Config.DefaultLivery = s },
	"GenString":      func(v *Vehicle, s string) { v.Config.GenString = s },
	"AIUpgradeClass": func(v *Vehicle, s string) { v.Config.AIUpgradeClass = s },

	"HDVehicle":   func(v *Vehicle, s string) { v.Config.HDVehicle.Raw = s },
	"Graphics":    func(v *Vehicle, s string) { v.Config.Graphics.Raw = s },
	"Spinner":     func(v *Vehicle, s string) { v.Config.Spinner.Raw = s },
	"Upgrades":    func(v *Vehicle, s string) { v.Config.Upgrades.Raw = s },
	"Sounds":      func(v *Vehicle, s string) { v.Config.Sounds.Raw = s },
	"Cameras":     func(v *Vehicle, s string) { v.Config.Cameras.Raw = s },
	"HeadPhysics": func(v *Vehicle, s string) { v.Config.HeadPhysics.Raw = s },
	"Cockpit":     func(v *Vehicle, s string) { v.Config.Cockpit.Raw = s },
}

// Scanner parses vehicle definitions under a vehicle library root and
// resolves their asset references.
type Scanner struct {
	root   string
	logger *slog.Logger
}

// NewScanner returns a scanner rooted at the vehicle library directory.
func NewScanner(root string, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{root: root, logger: logger}
}

// Root returns the vehicle library directory.
func (s *Scanner) Root() string {
	return s.root
}

// ParseFile parses one vehicle definition and resolves its references
// against the library root.
func (s *Scanner) ParseFile(path string) (*Vehicle, error) {
	content, err := gamefile.ReadFile(path)
	if err != nil {
		return nil, err
	}

	vehicle := Parse(content)
	vehicle.Path = path
	vehicle.FileName = filepath.Base(path)
	if rel, err := filepath.Rel(s.root, path); err == nil && !strings.HasPrefix(rel, "..") {
		vehicle.RelativePath = rel
	}

	dir := filepath.Dir(path)
	resolveRef(&vehicle.Config.HDVehicle, dir, s.root)
	resolveRef(&vehicle.Config.Graphics, dir, s.root)
	resolveRef(&vehicle.Config.Spinner, dir, s.root)
	resolveRef(&vehicle.Config.Upgrades, dir, s.root)
	resolveRef(&vehicle.Config.Sounds, dir, s.root)
	resolveRef(&vehicle.Config.Cameras, dir, s.root)
	resolveRef(&vehicle.Config.HeadPhysics, dir, s.root)
	resolveRef(&vehicle.Config.Cockpit, dir, s.root)

	return vehicle, nil
}

// Scan parses every vehicle definition under the root. Files that fail to
// parse are logged and skipped.
func (s *Scanner) Scan() ([]*Vehicle, error) {
	paths, err := gamefile.FindByExtension(s.root, ".veh", true)
	if err != nil {
		return nil, err
	}

	vehicles := make([]*Vehicle, 0, len(paths))
	for _, path := range paths {
		vehicle, err := s.ParseFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable vehicle", "path", path, "error", err)
			continue
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}

// resolveRef fills in Resolved and Exists for a non empty reference.
func resolveRef(ref *Ref, startDir, root string) {
	if ref.Raw == "" {
		return
	}
	ref.Resolved, ref.Exists = ResolveReference(startDir, ref.Raw, root)
}

// ResolveReference locates a referenced file. References with directory
// components resolve from the library root; bare filenames are searched
// upward from the vehicle's directory, stopping at the root. When nothing is
// found the root joined with the reference is returned with exists false.
func ResolveReference(startDir, raw, root string) (string, bool) {
	ref := filepath.FromSlash(strings.ReplaceAll(raw, `\`, "/"))

	if filepath.IsAbs(ref) {
		return ref, fileExists(ref)
	}
	if strings.ContainsRune(ref, filepath.Separator) {
		candidate := filepath.Join(root, ref)
		return candidate, fileExists(candidate)
	}

	dir := startDir
	for {
		candidate := filepath.Join(dir, ref)
		if fileExists(candidate) {
			return candidate, true
		}
		if samePath(dir, root) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return filepath.Join(root, ref), false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func samePath(a, b string) bool {
	cleanA, errA := filepath.Abs(a)
	cleanB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return cleanA == cleanB
}

// FilterByClass returns the vehicles carrying the given class.
func FilterByClass(vehicles []*Vehicle, class string) []*Vehicle {
	var matched []*Vehicle
	for _, vehicle := range vehicles {
		if vehicle.HasClass(class) {
			matched = append(matched, vehicle)
		}
	}
	return matched
}

// UniqueClasses returns every class seen across the vehicles, sorted.
func UniqueClasses(vehicles []*Vehicle) []string {
	seen := map[string]struct{}{}
	for _, vehicle := range vehicles {
		for _, class := range vehicle.ClassList() {
			seen[class] = struct{}{}
		}
	}
	classes := make([]string, 0, len(seen))
	for class := range seen {
		classes = append(classes, class)
	}
	slices.Sort(classes)
	return classes
}
