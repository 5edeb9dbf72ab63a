package rcd

import (
	"fmt"
	"strings"

	"paddock/internal/gamefile"
)

// GenerateFile writes record to path in the legacy encoding.
func GenerateFile(record *Record, path string) error {
	return gamefile.WriteFile(path, Generate(record))
}

// Generate renders a record in the fixed line order the simulator expects:
// name, opening brace, driver info, blank line, driver stats with two
// decimal places, closing brace, trailing blank line.
func Generate(record *Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", record.Name())
	b.WriteString("{\n")

	b.WriteString("//Driver Info\n")
	fmt.Fprintf(&b, "  Nationality=%s\n", record.Info.Nationality)
	fmt.Fprintf(&b, "  DateofBirth=%s\n", record.Info.DateOfBirth)
	fmt.Fprintf(&b, "  Starts=%d\n", record.Info.Starts)
	fmt.Fprintf(&b, "  Poles=%d\n", record.Info.Poles)
	fmt.Fprintf(&b, "  Wins=%d\n", record.Info.Wins)
	fmt.Fprintf(&b, "  DriversChampionships=%d\n", record.Info.DriversChampionships)
	b.WriteString("\n")

	b.WriteString("//Driver Stats\n")
	fmt.Fprintf(&b, "  Aggression=%.2f\n", record.Stats.Aggression)
	fmt.Fprintf(&b, "  Reputation=%.2f\n", record.Stats.Reputation)
	fmt.Fprintf(&b, "  Courtesy=%.2f\n", record.Stats.Courtesy)
	fmt.Fprintf(&b, "  Composure=%.2f\n", record.Stats.Composure)
	fmt.Fprintf(&b, "  Speed=%.2f\n", record.Stats.Speed)
	fmt.Fprintf(&b, "  Crash=%.2f\n", record.Stats.Crash)
	fmt.Fprintf(&b, "  Recovery=%.2f\n", record.Stats.Recovery)
	fmt.Fprintf(&b, "  CompletedLaps=%.2f\n", record.Stats.CompletedLaps)
	fmt.Fprintf(&b, "  MinRacingSkill=%.2f\n", record.Stats.MinRacingSkill)

	b.WriteString("}\n")
	return b.String()
}
