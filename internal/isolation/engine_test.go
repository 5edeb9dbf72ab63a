package isolation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paddock/internal/gamefile"
)

const vehicleTemplate = `// Vehicle definition
HDVehicle=RHEZ.hdv
Graphics=RHEZ_GT3.gen
Sounds=RHEZ.sfx
Classes="RHEZ GT3"
Driver="Old Driver"
Description="GRN #8"
Number=8
Team="Team Green"
DefaultLivery="GRN_08.DDS"
`

// buildLibrary lays out a small vehicle library with two vehicles that
// share an upper-level physics file.
func buildLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		if err := gamefile.WriteFile(filepath.Join(root, filepath.FromSlash(rel)), content); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}

	write("RHEZ/RHEZ.hdv", "shared physics\n")
	write("RHEZ/2005/RHEZ.tbc", "tires\n")
	write("RHEZ/2005/GT3/RHEZ_GT3.gen", "graphics\n")
	write("RHEZ/2005/GT3/TEAM_GREEN/GRN_08.veh", vehicleTemplate)
	write("RHEZ/2005/GT3/TEAM_GREEN/GRN_08.DDS", "livery green\n")
	write("RHEZ/2005/GT3/TEAM_GREEN/helmet.tga", "helmet\n")
	write("RHEZ/2005/GT3/TEAM_BLUE/BLU_04.veh", strings.ReplaceAll(vehicleTemplate, "GRN_08", "BLU_04"))
	write("RHEZ/2005/GT3/TEAM_BLUE/BLU_04.DDS", "livery blue\n")
	return root
}

func TestVehiclePrefix(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"TestChampionship", "TE"},
		{"Test Championship", "TC"},
		{"My_Cup_Series", "MCS"},
		{"Grand_National_Touring_Cup", "GNT"},
		{"ab", "AB"},
		{"Ötztal Cup", "ÖC"},
		{"überserie", "ÜB"},
	}
	for _, tt := range tests {
		if got := VehiclePrefix(tt.name); got != tt.want {
			t.Errorf("VehiclePrefix(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsolateCopiesAndRewrites(t *testing.T) {
	root := buildLibrary(t)
	engine := NewEngine(root, nil)

	report, err := engine.Isolate("Test Cup", []Assignment{
		{VehiclePath: "RHEZ/2005/GT3/TEAM_GREEN/GRN_08.veh", DriverName: "Alice Quick"},
	})
	if err != nil {
		t.Fatalf("Isolate() error = %v", err)
	}
	if report.Folder != "M_Test Cup" {
		t.Errorf("Folder = %q, want %q", report.Folder, "M_Test Cup")
	}
	if report.BatchID == "" {
		t.Error("BatchID is empty")
	}
	if got := report.Items[0].IsolatedPath; got != "M_Test Cup/2005/GT3/TEAM_GREEN/TC_GRN_08.veh" {
		t.Errorf("IsolatedPath = %q", got)
	}

	isolated := filepath.Join(root, filepath.FromSlash(report.Items[0].IsolatedPath))
	content, err := gamefile.ReadFile(isolated)
	if err != nil {
		t.Fatalf("reading isolated vehicle: %v", err)
	}
	if !strings.Contains(content, `Classes="Test Cup RHEZ"`) {
		t.Errorf("Classes not rewritten:\n%s", content)
	}
	if !strings.Contains(content, `Driver="Alice Quick"`) {
		t.Errorf("Driver not rewritten:\n%s", content)
	}
	if !strings.Contains(content, `DefaultLivery="TC_GRN_08.DDS"`) {
		t.Errorf("DefaultLivery not rewritten:\n%s", content)
	}

	// Local livery is renamed, the unrelated helmet texture is not.
	dir := filepath.Dir(isolated)
	for _, name := range []string{"TC_GRN_08.DDS", "helmet.tga"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("local asset %s missing: %v", name, err)
		}
	}

	// Shared files keep their layout under the championship folder.
	for _, rel := range []string{
		"M_Test Cup/RHEZ.hdv",
		"M_Test Cup/2005/RHEZ.tbc",
		"M_Test Cup/2005/GT3/RHEZ_GT3.gen",
	} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("shared asset %s missing: %v", rel, err)
		}
	}
}

func TestIsolateSharedAssetCopiedOnce(t *testing.T) {
	root := buildLibrary(t)
	engine := NewEngine(root, nil)

	report, err := engine.Isolate("Test Cup", []Assignment{
		{VehiclePath: "RHEZ/2005/GT3/TEAM_GREEN/GRN_08.veh", DriverName: "Alice Quick"},
		{VehiclePath: "RHEZ/2005/GT3/TEAM_BLUE/BLU_04.veh", DriverName: "Bob Steady"},
	})
	if err != nil {
		t.Fatalf("Isolate() error = %v", err)
	}
	if got := report.Succeeded(); got != 2 {
		t.Fatalf("Succeeded() = %d, want 2", got)
	}
	if _, err := os.Stat(filepath.Join(root, "M_Test Cup", "RHEZ.hdv")); err != nil {
		t.Errorf("shared physics missing: %v", err)
	}
}

func TestIsolatePartialFailure(t *testing.T) {
	root := buildLibrary(t)
	engine := NewEngine(root, nil)

	report, err := engine.Isolate("Test Cup", []Assignment{
		{VehiclePath: "RHEZ/2005/GT3/TEAM_GREEN/GRN_08.veh", DriverName: "Alice Quick"},
		{VehiclePath: "RHEZ/2005/GT3/TEAM_RED/RED_01.veh", DriverName: "Carol Lost"},
		{VehiclePath: "RHEZ/2005/GT3/TEAM_BLUE/BLU_04.veh", DriverName: "Bob Steady"},
	})
	if err != nil {
		t.Fatalf("Isolate() error = %v, want partial success", err)
	}
	if got := report.Succeeded(); got != 2 {
		t.Errorf("Succeeded() = %d, want 2", got)
	}
	if got := report.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
	if !errors.Is(report.Items[1].Err, gamefile.ErrNotFound) {
		t.Errorf("missing vehicle error = %v, want ErrNotFound", report.Items[1].Err)
	}
}

func TestIsolateAllFailed(t *testing.T) {
	root := buildLibrary(t)
	engine := NewEngine(root, nil)

	_, err := engine.Isolate("Test Cup", []Assignment{
		{VehiclePath: "nope/missing.veh", DriverName: "Nobody"},
	})
	if err == nil {
		t.Fatal("Isolate() with no successes returned nil error")
	}
}

func TestIsolateValidation(t *testing.T) {
	engine := NewEngine(t.TempDir(), nil)

	if _, err := engine.Isolate("", []Assignment{{VehiclePath: "a.veh", DriverName: "d"}}); !errors.Is(err, gamefile.ErrValidation) {
		t.Errorf("empty championship error = %v, want ErrValidation", err)
	}
	if _, err := engine.Isolate("Cup", nil); !errors.Is(err, gamefile.ErrValidation) {
		t.Errorf("empty assignments error = %v, want ErrValidation", err)
	}
}

func TestCleanupAndListIsolated(t *testing.T) {
	root := buildLibrary(t)
	engine := NewEngine(root, nil)

	_, err := engine.Isolate("Test Cup", []Assignment{
		{VehiclePath: "RHEZ/2005/GT3/TEAM_GREEN/GRN_08.veh", DriverName: "Alice Quick"},
	})
	if err != nil {
		t.Fatalf("Isolate() error = %v", err)
	}

	names, err := engine.ListIsolated()
	if err != nil {
		t.Fatalf("ListIsolated() error = %v", err)
	}
	if len(names) != 1 || names[0] != "Test Cup" {
		t.Errorf("ListIsolated() = %v, want [Test Cup]", names)
	}

	if err := engine.Cleanup("Test Cup"); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "M_Test Cup")); !os.IsNotExist(err) {
		t.Error("championship folder still present after Cleanup")
	}

	// Cleaning up again is a no-op.
	if err := engine.Cleanup("Test Cup"); err != nil {
		t.Errorf("second Cleanup() error = %v", err)
	}
}
