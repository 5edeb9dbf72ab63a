package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paddock/internal/gamedata"
	"paddock/internal/gamefile"
	"paddock/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	layout     gamedata.Layout
}

// setupCLITestEnv lays out a minimal installation and a config file
// pointing at it.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	install := testsupport.NewInstall(t)
	install.AddPlayer(t, "TestDriver")

	base := filepath.Dir(install.Root)
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
install_root = %q
log_dir = %q
catalog_db = %q

[player]
name = "TestDriver"
`, install.Root, filepath.Join(base, "logs"), filepath.Join(base, "cache", "catalog.db"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, layout: install.Layout}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestCLIStatus(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env.configPath, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "Installation valid") {
		t.Errorf("status output missing verdict:\n%s", out)
	}
	if !strings.Contains(out, "TestDriver") {
		t.Errorf("status output missing player profile:\n%s", out)
	}
}

func TestCLIStatusIncompleteInstall(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.Remove(filepath.Join(env.layout.Root, "rFactor.exe")); err != nil {
		t.Fatalf("removing rFactor.exe: %v", err)
	}

	out, err := runCLI(t, env.configPath, "status")
	if err == nil {
		t.Fatal("status on incomplete install succeeded")
	}
	if !strings.Contains(out, "rFactor.exe") {
		t.Errorf("status output does not name the missing item:\n%s", out)
	}
}

func TestCLIDriversRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env.configPath, "drivers", "create", "Alice Quick",
		"--nationality", "Canadian", "--born", "3-7-1990", "--randomize")
	if err != nil {
		t.Fatalf("drivers create: %v", err)
	}
	if !strings.Contains(out, "AliceQuick.rcd") {
		t.Errorf("create output missing filename:\n%s", out)
	}

	out, err = runCLI(t, env.configPath, "drivers", "list")
	if err != nil {
		t.Fatalf("drivers list: %v", err)
	}
	if !strings.Contains(out, "Alice Quick") || !strings.Contains(out, "1 drivers") {
		t.Errorf("list output:\n%s", out)
	}

	out, err = runCLI(t, env.configPath, "drivers", "show", "Alice Quick")
	if err != nil {
		t.Fatalf("drivers show: %v", err)
	}
	if !strings.Contains(out, "Canadian") {
		t.Errorf("show output missing nationality:\n%s", out)
	}

	if _, err = runCLI(t, env.configPath, "drivers", "delete", "Alice Quick"); err != nil {
		t.Fatalf("drivers delete: %v", err)
	}
	out, err = runCLI(t, env.configPath, "drivers", "list")
	if err != nil {
		t.Fatalf("drivers list after delete: %v", err)
	}
	if !strings.Contains(out, "0 drivers") {
		t.Errorf("driver not deleted:\n%s", out)
	}
}

func TestCLIVehiclesListUsesCatalog(t *testing.T) {
	env := setupCLITestEnv(t)

	vehicle := `Classes="GT3"
Driver="Alice Quick"
Team="Team Green"
Description="GRN #8"
Number=8
`
	path := filepath.Join(env.layout.VehiclesDir(), "RHEZ", "GRN_08.veh")
	if err := gamefile.WriteFile(path, vehicle); err != nil {
		t.Fatalf("writing vehicle: %v", err)
	}

	// First run scans, second run is served from the cache; both must
	// agree.
	for i := 0; i < 2; i++ {
		out, err := runCLI(t, env.configPath, "vehicles", "list")
		if err != nil {
			t.Fatalf("vehicles list (run %d): %v", i+1, err)
		}
		if !strings.Contains(out, "RHEZ/GRN_08.veh") || !strings.Contains(out, "1 vehicles") {
			t.Errorf("vehicles list run %d:\n%s", i+1, out)
		}
	}

	out, err := runCLI(t, env.configPath, "vehicles", "list", "--class", "GT4")
	if err != nil {
		t.Fatalf("vehicles list --class: %v", err)
	}
	if !strings.Contains(out, "0 vehicles") {
		t.Errorf("class filter did not exclude:\n%s", out)
	}
}

func TestCLIChampionshipLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)

	vehicle := `HDVehicle=RHEZ.hdv
Classes="GT3"
Driver="Old Driver"
Description="GRN #8"
`
	write := func(rel, content string) {
		t.Helper()
		if err := gamefile.WriteFile(filepath.Join(env.layout.VehiclesDir(), filepath.FromSlash(rel)), content); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
	write("RHEZ/RHEZ.hdv", "physics\n")
	write("RHEZ/TEAM_GREEN/GRN_08.veh", vehicle)
	write("RHEZ/TEAM_BLUE/BLU_04.veh", strings.ReplaceAll(vehicle, "GRN_08", "BLU_04"))

	out, err := runCLI(t, env.configPath, "championships", "create", "TC2025",
		"--vehicle", "RHEZ/TEAM_GREEN/GRN_08.veh=Alice Quick",
		"--vehicle", "RHEZ/TEAM_BLUE/BLU_04.veh=Bob Steady",
		"--track", "Toban_Long")
	if err != nil {
		t.Fatalf("championships create: %v", err)
	}
	if !strings.Contains(out, "2 vehicles") {
		t.Errorf("create output:\n%s", out)
	}

	out, err = runCLI(t, env.configPath, "championships", "list")
	if err != nil {
		t.Fatalf("championships list: %v", err)
	}
	if !strings.Contains(out, "TC2025") {
		t.Errorf("list output:\n%s", out)
	}

	if _, err = runCLI(t, env.configPath, "championships", "delete", "TC2025"); err != nil {
		t.Fatalf("championships delete: %v", err)
	}
	out, err = runCLI(t, env.configPath, "championships", "list")
	if err != nil {
		t.Fatalf("championships list after delete: %v", err)
	}
	if !strings.Contains(out, "No custom championships") {
		t.Errorf("championship not deleted:\n%s", out)
	}
}

func TestCLIBadAssignmentFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	_, err := runCLI(t, env.configPath, "championships", "create", "TC2025",
		"--vehicle", "missing-driver.veh", "--track", "Toban_Long")
	if err == nil || !strings.Contains(err.Error(), "expected") {
		t.Errorf("bad assignment error = %v", err)
	}
}

func TestCLIConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env.configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Errorf("validate output:\n%s", out)
	}
	if !strings.Contains(out, "TestDriver") {
		t.Errorf("validate output missing player:\n%s", out)
	}
}
