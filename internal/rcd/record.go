package rcd

import (
	"fmt"
	"strings"

	"paddock/internal/gamefile"
)

// PersonalInfo holds a driver's identity details and career totals.
type PersonalInfo struct {
	Nationality          string
	DateOfBirth          string // D-M-YYYY, not zero-padded
	Starts               int
	Poles                int
	Wins                 int
	DriversChampionships int
}

// Validate rejects negative career totals.
func (p PersonalInfo) Validate() error {
	counters := []struct {
		name  string
		value int
	}{
		{"Starts", p.Starts},
		{"Poles", p.Poles},
		{"Wins", p.Wins},
		{"DriversChampionships", p.DriversChampionships},
	}
	for _, c := range counters {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %d", gamefile.ErrValidation, c.name, c.value)
		}
	}
	return nil
}

// Stats holds the nine performance values the AI uses for a driver. Every
// field must be within [0, 100]; construction through NewRecord or Parse
// enforces that, it is never clamped.
type Stats struct {
	Aggression     float64
	Reputation     float64
	Courtesy       float64
	Composure      float64
	Speed          float64
	Crash          float64
	Recovery       float64
	CompletedLaps  float64
	MinRacingSkill float64
}

// Validate rejects any stat outside [0, 100].
func (s Stats) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"Aggression", s.Aggression},
		{"Reputation", s.Reputation},
		{"Courtesy", s.Courtesy},
		{"Composure", s.Composure},
		{"Speed", s.Speed},
		{"Crash", s.Crash},
		{"Recovery", s.Recovery},
		{"CompletedLaps", s.CompletedLaps},
		{"MinRacingSkill", s.MinRacingSkill},
	}
	for _, f := range fields {
		if f.value < 0.0 || f.value > 100.0 {
			return fmt.Errorf("%w: %s must be between 0.0 and 100.0, got %g", gamefile.ErrValidation, f.name, f.value)
		}
	}
	return nil
}

// DefaultStats returns the stat values used when a file omits a key.
func DefaultStats() Stats {
	return Stats{
		Aggression:     50.0,
		Reputation:     50.0,
		Courtesy:       50.0,
		Composure:      50.0,
		Speed:          50.0,
		Crash:          50.0,
		Recovery:       50.0,
		CompletedLaps:  90.0,
		MinRacingSkill: 50.0,
	}
}

// Record is one driver. The name is fixed at construction because it
// determines the file path.
type Record struct {
	name string

	Info  PersonalInfo
	Stats Stats
}

// NewRecord validates info and stats and builds a Record.
func NewRecord(name string, info PersonalInfo, stats Stats) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: driver name cannot be empty", gamefile.ErrValidation)
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return &Record{name: name, Info: info, Stats: stats}, nil
}

// Name returns the driver's display name, spaces included.
func (r *Record) Name() string {
	return r.name
}

// Filename returns the on-disk name for this record.
func (r *Record) Filename() string {
	return gamefile.NameToFilename(r.name) + ".rcd"
}
