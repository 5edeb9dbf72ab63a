// Package testsupport builds synthetic game installations for tests.
// The trees contain only the directories and stub files the code under
// test reads, never real game content.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"paddock/internal/gamedata"
	"paddock/internal/gamefile"
)

// Install is a throwaway game installation rooted in a test temp dir.
type Install struct {
	Root   string
	Layout gamedata.Layout
}

// NewInstall lays out a minimal valid installation: the game executable
// stub, the GameData subtree, and an empty UserData directory.
func NewInstall(t testing.TB) *Install {
	t.Helper()

	root := filepath.Join(t.TempDir(), "install")
	layout := gamedata.NewLayout(root)

	for _, dir := range []string{
		layout.TalentDir(),
		layout.VehiclesDir(),
		layout.LocationsDir(),
		layout.UserDataDir(),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "rFactor.exe"), []byte("stub"), 0o644); err != nil {
		t.Fatalf("write rFactor.exe: %v", err)
	}

	return &Install{Root: root, Layout: layout}
}

// AddPlayer creates a player profile directory under UserData.
func (in *Install) AddPlayer(t testing.TB, name string) string {
	t.Helper()

	dir := in.Layout.PlayerDir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir player %s: %v", name, err)
	}
	return dir
}

// WriteVehicle writes a .veh file under GameData/Vehicles at relPath
// using the game's native encoding and line endings.
func (in *Install) WriteVehicle(t testing.TB, relPath, content string) string {
	t.Helper()
	return in.writeGameFile(t, filepath.Join(in.Layout.VehiclesDir(), relPath), content)
}

// WriteTrack writes a .gdb file under GameData/Locations at relPath.
func (in *Install) WriteTrack(t testing.TB, relPath, content string) string {
	t.Helper()
	return in.writeGameFile(t, filepath.Join(in.Layout.LocationsDir(), relPath), content)
}

// WriteTalent writes a .rcd file into GameData/Talent.
func (in *Install) WriteTalent(t testing.TB, name, content string) string {
	t.Helper()
	return in.writeGameFile(t, filepath.Join(in.Layout.TalentDir(), name), content)
}

// WriteAsset writes raw bytes at relPath under GameData/Vehicles. Liveries
// and other binary assets are copied as-is, so encoding does not apply.
func (in *Install) WriteAsset(t testing.TB, relPath string, content []byte) string {
	t.Helper()

	path := filepath.Join(in.Layout.VehiclesDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func (in *Install) writeGameFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := gamefile.WriteFile(path, content); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
