package veh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paddock/internal/gamefile"
)

const sampleVehicle = `// The first chunk of this file  is the info used by rFactor
DefaultLivery="GRN_08.DDS"
HDVehicle=RHEZ.hdv
Graphics=RHEZ_GT3.gen
Spinner=RHEZ_spinner.gen
GenString=08
Sounds=RHEZ.sfx
Cameras=RHEZ_cams.cam
HeadPhysics=headphysics.ini
Cockpit=RHEZ_cockpit.ini
Upgrades=RHEZ_upgrades.ini

Number=8
Team="Team Green"
PitGroup="Group4"
Driver="Gus Morley"
Description="GRN #8"
Engine="Rhez V8"
Manufacturer=Rhez
Classes="2005 Rhez GT3"

FullTeamName="Team Green Racing"
TeamFounded=1998
TeamHeadquarters="Essex"
TeamStarts=n/a
TeamPoles=3
TeamWins=bogus
Category="GT"
`

func TestParseSampleVehicle(t *testing.T) {
	vehicle := Parse(sampleVehicle)

	if vehicle.Number != 8 {
		t.Errorf("Number = %d, want 8", vehicle.Number)
	}
	if vehicle.Description != "GRN #8" {
		t.Errorf("Description = %q", vehicle.Description)
	}
	if vehicle.Team.Driver != "Gus Morley" {
		t.Errorf("Driver = %q", vehicle.Team.Driver)
	}
	if vehicle.Team.PitGroup != "Group4" {
		t.Errorf("PitGroup = %q, want Group4", vehicle.Team.PitGroup)
	}
	if vehicle.Team.TeamFounded == nil || *vehicle.Team.TeamFounded != 1998 {
		t.Errorf("TeamFounded = %v, want 1998", vehicle.Team.TeamFounded)
	}
	// n/a and garbage collapse to zero.
	if vehicle.Team.TeamStarts != 0 || vehicle.Team.TeamWins != 0 {
		t.Errorf("TeamStarts/TeamWins = %d/%d, want 0/0", vehicle.Team.TeamStarts, vehicle.Team.TeamWins)
	}
	if vehicle.Config.HDVehicle.Raw != "RHEZ.hdv" {
		t.Errorf("HDVehicle.Raw = %q", vehicle.Config.HDVehicle.Raw)
	}
	if vehicle.Config.DefaultLivery != "GRN_08.DDS" {
		t.Errorf("DefaultLivery = %q", vehicle.Config.DefaultLivery)
	}

	classes := vehicle.ClassList()
	if len(classes) != 3 || classes[1] != "Rhez" {
		t.Errorf("ClassList() = %v", classes)
	}
	if !vehicle.HasClass("GT3") || vehicle.HasClass("GT4") {
		t.Error("HasClass mismatch")
	}
	if vehicle.DisplayName() != "GRN #8" {
		t.Errorf("DisplayName() = %q", vehicle.DisplayName())
	}
}

func TestParseDefaultsPitGroup(t *testing.T) {
	vehicle := Parse("Driver=\"X\"\n")
	if vehicle.Team.PitGroup != "Group1" {
		t.Errorf("PitGroup = %q, want Group1", vehicle.Team.PitGroup)
	}
}

// buildLibrary lays out a small vehicle library:
//
//	root/RHEZ/RHEZ.hdv
//	root/RHEZ/2005/GT3/TEAM_GREEN/GRN_08.veh
//	root/RHEZ/2005/GT3/RHEZ_GT3.gen
func buildLibrary(t *testing.T) (root, vehPath string) {
	t.Helper()
	root = t.TempDir()
	teamDir := filepath.Join(root, "RHEZ", "2005", "GT3", "TEAM_GREEN")
	if err := os.MkdirAll(teamDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "RHEZ", "RHEZ.hdv"), "hdv data")
	writeFile(t, filepath.Join(root, "RHEZ", "2005", "GT3", "RHEZ_GT3.gen"), "gen data")
	vehPath = filepath.Join(teamDir, "GRN_08.veh")
	writeFile(t, vehPath, sampleVehicle)
	return root, vehPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := gamefile.WriteFile(path, content); err != nil {
		t.Fatal(err)
	}
}

func TestScannerResolvesReferences(t *testing.T) {
	root, vehPath := buildLibrary(t)
	scanner := NewScanner(root, nil)

	vehicle, err := scanner.ParseFile(vehPath)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if vehicle.RelativePath != filepath.Join("RHEZ", "2005", "GT3", "TEAM_GREEN", "GRN_08.veh") {
		t.Errorf("RelativePath = %q", vehicle.RelativePath)
	}

	// Bare filename three levels up from the vehicle directory.
	hdv := vehicle.Config.HDVehicle
	if !hdv.Exists {
		t.Errorf("HDVehicle not found, resolved to %q", hdv.Resolved)
	}
	if hdv.Resolved != filepath.Join(root, "RHEZ", "RHEZ.hdv") {
		t.Errorf("HDVehicle.Resolved = %q", hdv.Resolved)
	}

	// One level up.
	if !vehicle.Config.Graphics.Exists {
		t.Errorf("Graphics not found, resolved to %q", vehicle.Config.Graphics.Resolved)
	}

	// Unresolvable references fall back to the root with exists false.
	sfx := vehicle.Config.Sounds
	if sfx.Exists {
		t.Error("Sounds.Exists = true for a missing file")
	}
	if sfx.Resolved != filepath.Join(root, "RHEZ.sfx") {
		t.Errorf("Sounds.Resolved = %q", sfx.Resolved)
	}
}

func TestResolveReferenceWithDirectoryComponents(t *testing.T) {
	root, _ := buildLibrary(t)

	resolved, exists := ResolveReference(
		filepath.Join(root, "RHEZ", "2005", "GT3", "TEAM_GREEN"),
		`RHEZ\RHEZ.hdv`,
		root,
	)
	if !exists {
		t.Errorf("reference with directory not found, resolved to %q", resolved)
	}
	if resolved != filepath.Join(root, "RHEZ", "RHEZ.hdv") {
		t.Errorf("resolved = %q", resolved)
	}
}

func TestScanParsesAllVehicles(t *testing.T) {
	root, _ := buildLibrary(t)
	writeFile(t, filepath.Join(root, "RHEZ", "2005", "GT3", "TEAM_GREEN", "GRN_09.veh"), "Number=9\n")

	vehicles, err := NewScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(vehicles) != 2 {
		t.Fatalf("Scan() found %d vehicles, want 2", len(vehicles))
	}

	classes := UniqueClasses(vehicles)
	want := []string{"2005", "GT3", "Rhez"}
	if len(classes) != len(want) {
		t.Fatalf("UniqueClasses() = %v, want %v", classes, want)
	}
	for i := range want {
		if classes[i] != want[i] {
			t.Errorf("UniqueClasses()[%d] = %q, want %q", i, classes[i], want[i])
		}
	}

	gt3 := FilterByClass(vehicles, "GT3")
	if len(gt3) != 1 {
		t.Errorf("FilterByClass(GT3) = %d vehicles, want 1", len(gt3))
	}
}

func TestPatchRewritesIsolationFields(t *testing.T) {
	patched, result := Patch(sampleVehicle, "TC2025", "Jo Vance", "TC")

	if !result.ClassesPatched || !result.DriverPatched || !result.DescriptionPatched {
		t.Errorf("result = %+v, want all fields patched", result)
	}
	// 2005 is a bare number and Rhez is blocklisted; GT3 survives.
	if !strings.Contains(patched, `Classes="TC2025 GT3"`) {
		t.Error("Classes not rewritten to championship plus base class")
	}
	if !strings.Contains(patched, `Driver="Jo Vance"`) {
		t.Error("Driver not rewritten")
	}
	if !strings.Contains(patched, `Description="TC GRN #8"`) {
		t.Error("Description not prefixed")
	}
	if !strings.Contains(patched, `DefaultLivery="TC_GRN_08.DDS"`) {
		t.Error("DefaultLivery not prefixed")
	}
	// Untouched lines survive byte for byte, comments included.
	if !strings.Contains(patched, "// The first chunk of this file  is the info used by rFactor") {
		t.Error("comment line altered")
	}
	if !strings.Contains(patched, "HDVehicle=RHEZ.hdv") {
		t.Error("HDVehicle line altered")
	}
	if !strings.Contains(patched, "GenString=08") {
		t.Error("GenString line altered")
	}
}

func TestPatchTrackLivery(t *testing.T) {
	content := "TrackLivery=\"MONZA, GRN_08_monza.dds\"\n"
	patched, _ := Patch(content, "TC2025", "Jo", "TC")
	if !strings.Contains(patched, `TrackLivery="MONZA, TC_GRN_08_monza.dds"`) {
		t.Errorf("TrackLivery not rewritten: %q", patched)
	}
}

func TestPatchClassesFallbackToChampionshipAlone(t *testing.T) {
	content := "Classes=\"2005 Rhez AI_ONLY\"\n"
	patched, result := Patch(content, "TC2025", "Jo", "TC")
	if !result.ClassesPatched {
		t.Error("ClassesPatched = false")
	}
	if !strings.Contains(patched, `Classes="TC2025"`) {
		t.Errorf("fallback classes wrong: %q", patched)
	}
}

func TestPatchDescriptionAlreadyPrefixed(t *testing.T) {
	content := "Description=\"TC GRN #8\"\n"
	patched, _ := Patch(content, "TC2025", "Jo", "TC")
	if !strings.Contains(patched, `Description="TC GRN #8"`) {
		t.Errorf("already prefixed description changed: %q", patched)
	}
}

func TestPatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "GRN_08.veh")
	if err := gamefile.WriteFile(path, sampleVehicle); err != nil {
		t.Fatal(err)
	}

	result, err := PatchFile(path, "TC2025", "Jo Vance", "TC")
	if err != nil {
		t.Fatalf("PatchFile() error = %v", err)
	}
	if !result.DriverPatched {
		t.Error("DriverPatched = false")
	}

	content, err := gamefile.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, `Driver="Jo Vance"`) {
		t.Error("patched file missing new driver")
	}
}
