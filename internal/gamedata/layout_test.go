package gamedata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"paddock/internal/gamefile"
)

func scaffoldInstall(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{
		"GameData/Talent",
		"GameData/Vehicles",
		"GameData/Locations",
		"UserData/TestPlayer",
		"rFm",
	} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "rFactor.exe"), []byte{0x4D, 0x5A}, 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestValidateAcceptsCompleteInstall(t *testing.T) {
	layout := NewLayout(scaffoldInstall(t))

	missing, err := layout.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("unexpected missing items: %v", missing)
	}
}

func TestValidateReportsMissingItems(t *testing.T) {
	root := scaffoldInstall(t)
	if err := os.RemoveAll(filepath.Join(root, "GameData", "Talent")); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(root, "rFactor.exe")); err != nil {
		t.Fatal(err)
	}

	missing, err := NewLayout(root).Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, gamefile.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	found := map[string]bool{}
	for _, item := range missing {
		found[item] = true
	}
	if !found["rFactor.exe"] || !found["GameData/Talent"] {
		t.Errorf("missing list %v lacks expected items", missing)
	}
}

func TestPlayerProfiles(t *testing.T) {
	root := scaffoldInstall(t)
	if err := os.MkdirAll(filepath.Join(root, "UserData", "Alice"), 0o755); err != nil {
		t.Fatal(err)
	}

	profiles, err := NewLayout(root).PlayerProfiles()
	if err != nil {
		t.Fatalf("PlayerProfiles failed: %v", err)
	}
	want := []string{"Alice", "TestPlayer"}
	if len(profiles) != len(want) {
		t.Fatalf("got %v, want %v", profiles, want)
	}
	for i := range want {
		if profiles[i] != want[i] {
			t.Errorf("profile[%d] = %q, want %q", i, profiles[i], want[i])
		}
	}
}

func TestCountExcludesDialog(t *testing.T) {
	root := scaffoldInstall(t)
	talentDir := filepath.Join(root, "GameData", "Talent")
	for _, name := range []string{"BrandonLang.rcd", "JoeDriver.rcd", "Dialog.rcd"} {
		if err := os.WriteFile(filepath.Join(talentDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	counts, err := NewLayout(root).Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if counts.Talents != 2 {
		t.Errorf("Talents = %d, want 2", counts.Talents)
	}
}
