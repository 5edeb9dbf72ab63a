package veh

import (
	"fmt"
	"strings"
)

// Ref is a file reference from a vehicle definition. Raw is the value as
// written; Resolved and Exists are filled in when the vehicle is parsed with
// a known library root.
type Ref struct {
	Raw      string
	Resolved string
	Exists   bool
}

// TeamInfo is the team and driver block of a vehicle definition.
type TeamInfo struct {
	Team             string
	FullTeamName     string
	Driver           string
	PitGroup         string
	TeamFounded      *int
	TeamHeadquarters string

	TeamStarts             int
	TeamPoles              int
	TeamWins               int
	TeamWorldChampionships int
}

// TechnicalConfig holds the asset references of a vehicle definition.
type TechnicalConfig struct {
	DefaultLivery string
	GenString     string

	HDVehicle   Ref
	Graphics    Ref
	Spinner     Ref
	Upgrades    Ref
	Sounds      Ref
	Cameras     Ref
	HeadPhysics Ref
	Cockpit     Ref

	AIUpgradeClass string
}

// NamedRef pairs an asset reference with the key it was read from.
type NamedRef struct {
	Key string
	Ref Ref
}

// Refs returns the asset references in collection order.
func (c *TechnicalConfig) Refs() []NamedRef {
	return []NamedRef{
		{"HDVehicle", c.HDVehicle},
		{"Graphics", c.Graphics},
		{"Spinner", c.Spinner},
		{"Sounds", c.Sounds},
		{"Cameras", c.Cameras},
		{"Upgrades", c.Upgrades},
		{"HeadPhysics", c.HeadPhysics},
		{"Cockpit", c.Cockpit},
	}
}

// Vehicle is one parsed vehicle definition.
type Vehicle struct {
	Number       int
	Description  string
	Engine       string
	Manufacturer string
	Classes      string
	Category     string

	Team   TeamInfo
	Config TechnicalConfig

	// Path is the absolute file location, FileName its base name, and
	// RelativePath the location under the vehicle library root when known.
	Path         string
	FileName     string
	RelativePath string
}

// DisplayName returns a name fit for listings.
func (v *Vehicle) DisplayName() string {
	if v.Description != "" {
		return v.Description
	}
	if v.Team.Driver != "" && v.Number != 0 {
		return fmt.Sprintf("%s #%d", v.Team.Driver, v.Number)
	}
	if v.Number != 0 {
		return fmt.Sprintf("Vehicle #%d", v.Number)
	}
	if v.FileName != "" {
		return v.FileName
	}
	return "Unknown Vehicle"
}

// ClassList splits the space separated Classes value.
func (v *Vehicle) ClassList() []string {
	return strings.Fields(v.Classes)
}

// HasClass reports whether the vehicle carries the given class.
func (v *Vehicle) HasClass(name string) bool {
	for _, class := range v.ClassList() {
		if class == name {
			return true
		}
	}
	return false
}
