package rcd

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"paddock/internal/gamefile"
)

const sampleRecord = `Brandon Lang
{
//Driver Info
  Nationality=American
  DateofBirth=28-11-1984
  Starts=9
  Poles=2
  Wins=0
  DriversChampionships=0

//Driver Stats
  Aggression=74.73
  Reputation=57.89
  Courtesy=62.10
  Composure=80.00
  Speed=95.13
  Crash=31.40
  Recovery=70.25
  CompletedLaps=96.50
  MinRacingSkill=55.00
}
`

func TestParseSampleRecord(t *testing.T) {
	record, err := Parse(sampleRecord)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if record.Name() != "Brandon Lang" {
		t.Errorf("Name = %q, want %q", record.Name(), "Brandon Lang")
	}
	if record.Filename() != "BrandonLang.rcd" {
		t.Errorf("Filename = %q, want BrandonLang.rcd", record.Filename())
	}
	if record.Info.Nationality != "American" {
		t.Errorf("Nationality = %q", record.Info.Nationality)
	}
	if record.Info.DateOfBirth != "28-11-1984" {
		t.Errorf("DateOfBirth = %q", record.Info.DateOfBirth)
	}
	if record.Info.Starts != 9 || record.Info.Poles != 2 {
		t.Errorf("career totals = %+v", record.Info)
	}
	if record.Stats.Speed != 95.13 {
		t.Errorf("Speed = %v, want 95.13", record.Stats.Speed)
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	record, err := Parse("Jane Doe\n{\n  Speed=80.0\n}\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if record.Info.Nationality != "Unknown" {
		t.Errorf("Nationality default = %q, want Unknown", record.Info.Nationality)
	}
	if record.Info.DateOfBirth != "01-01-1980" {
		t.Errorf("DateOfBirth default = %q", record.Info.DateOfBirth)
	}
	if record.Stats.CompletedLaps != 90.0 {
		t.Errorf("CompletedLaps default = %v, want 90.0", record.Stats.CompletedLaps)
	}
	if record.Stats.Reputation != 50.0 {
		t.Errorf("Reputation default = %v, want 50.0", record.Stats.Reputation)
	}
}

func TestParseMissingName(t *testing.T) {
	_, err := Parse("{\n  Speed=80.0\n}\n")
	if !errors.Is(err, gamefile.ErrFormat) || !strings.Contains(err.Error(), "missing name") {
		t.Fatalf("expected missing name format error, got %v", err)
	}
}

func TestParseMissingBraces(t *testing.T) {
	_, err := Parse("Jane Doe\n  Speed=80.0\n")
	if !errors.Is(err, gamefile.ErrFormat) || !strings.Contains(err.Error(), "missing braces") {
		t.Fatalf("expected missing braces format error, got %v", err)
	}
}

func TestParseBadNumber(t *testing.T) {
	_, err := Parse("Jane Doe\n{\n  Speed=fast\n}\n")
	if !errors.Is(err, gamefile.ErrFormat) || !strings.Contains(err.Error(), "Speed") {
		t.Fatalf("expected format error naming Speed, got %v", err)
	}
}

func TestStatsValidationRejectsOutOfRange(t *testing.T) {
	stats := DefaultStats()
	stats.Speed = 100.01
	if err := stats.Validate(); !errors.Is(err, gamefile.ErrValidation) {
		t.Errorf("Speed=100.01 should fail validation, got %v", err)
	}

	stats = DefaultStats()
	stats.Crash = -0.5
	if err := stats.Validate(); !errors.Is(err, gamefile.ErrValidation) {
		t.Errorf("Crash=-0.5 should fail validation, got %v", err)
	}
}

func TestPersonalInfoRejectsNegatives(t *testing.T) {
	info := PersonalInfo{Nationality: "British", DateOfBirth: "1-1-1990", Wins: -1}
	if err := info.Validate(); !errors.Is(err, gamefile.ErrValidation) {
		t.Errorf("negative Wins should fail validation, got %v", err)
	}
}

func TestGenerateParseRoundTrip(t *testing.T) {
	original, err := NewRecord("Maria Santos", PersonalInfo{
		Nationality:          "Brazilian",
		DateOfBirth:          "3-7-1992",
		Starts:               41,
		Poles:                5,
		Wins:                 8,
		DriversChampionships: 1,
	}, Stats{
		Aggression:     61.237,
		Reputation:     72.5,
		Courtesy:       55.0,
		Composure:      88.88,
		Speed:          91.04,
		Crash:          22.6,
		Recovery:       64.2,
		CompletedLaps:  97.1,
		MinRacingSkill: 70.0,
	})
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := Parse(Generate(original))
	if err != nil {
		t.Fatalf("Parse(Generate()) failed: %v", err)
	}

	if parsed.Name() != original.Name() {
		t.Errorf("Name = %q, want %q", parsed.Name(), original.Name())
	}
	if parsed.Info != original.Info {
		t.Errorf("Info = %+v, want %+v", parsed.Info, original.Info)
	}
	// Stats are written with two decimals, so compare to that tolerance.
	pairs := [][2]float64{
		{parsed.Stats.Aggression, original.Stats.Aggression},
		{parsed.Stats.Speed, original.Stats.Speed},
		{parsed.Stats.CompletedLaps, original.Stats.CompletedLaps},
	}
	for i, pair := range pairs {
		if math.Abs(pair[0]-pair[1]) > 0.005 {
			t.Errorf("stat %d = %v, want %v within 0.005", i, pair[0], pair[1])
		}
	}
}

func TestGeneratePreservesLiteralValue(t *testing.T) {
	record, err := Parse(sampleRecord)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(Generate(record), "Speed=95.13") {
		t.Error("regenerated record should contain the literal Speed=95.13")
	}
}

func TestRandomStatsAlwaysValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	bounds := DefaultRandomBounds()
	for i := 0; i < 500; i++ {
		stats := RandomStats(rng, bounds)
		if err := stats.Validate(); err != nil {
			t.Fatalf("iteration %d produced invalid stats: %v", i, err)
		}
		if stats.CompletedLaps < bounds.LapsMin || stats.CompletedLaps > bounds.LapsMax {
			t.Fatalf("CompletedLaps %v outside [%v, %v]", stats.CompletedLaps, bounds.LapsMin, bounds.LapsMax)
		}
	}
}
