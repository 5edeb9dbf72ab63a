package isolation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"paddock/internal/fileutil"
	"paddock/internal/gamefile"
	"paddock/internal/veh"
)

// folderPrefix marks isolated championship folders in the vehicle library.
const folderPrefix = "M_"

// renameExtensions are vehicle-specific files that get the championship
// prefix when their stem matches the vehicle definition's stem.
var renameExtensions = map[string]struct{}{
	".dds": {},
	".tga": {},
	".bmp": {},
	".txt": {},
}

// indirectExtensions are files referenced by physics and graphics
// definitions rather than by the vehicle definition itself.
var indirectExtensions = map[string]struct{}{
	".tbc": {},
	".ini": {},
	".mas": {},
	".pm":  {},
}

// FolderName returns the library folder an isolated championship lives in.
func FolderName(championship string) string {
	return folderPrefix + championship
}

// VehiclePrefix derives the short uppercase prefix stamped on isolated
// files: the initials of up to three words, padded from the name itself
// when a single word leaves fewer than two characters.
func VehiclePrefix(championship string) string {
	words := strings.Fields(strings.ReplaceAll(championship, "_", " "))
	var initials []rune
	for i, word := range words {
		if i == 3 {
			break
		}
		initials = append(initials, []rune(word)[0])
	}
	if len(initials) < 2 {
		if runes := []rune(championship); len(runes) >= 2 {
			initials = runes[:2]
		}
	}
	if len(initials) > 3 {
		initials = initials[:3]
	}
	return strings.ToUpper(string(initials))
}

// Engine isolates vehicles into championship folders.
type Engine struct {
	vehiclesDir string
	scanner     *veh.Scanner
	logger      *slog.Logger
}

// NewEngine returns an engine working against the given vehicle library
// root.
func NewEngine(vehiclesDir string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		vehiclesDir: vehiclesDir,
		scanner:     veh.NewScanner(vehiclesDir, logger),
		logger:      logger,
	}
}

// Isolate copies every assigned vehicle into the championship folder. A
// failed assignment is recorded in the report and the batch continues; the
// batch fails only when nothing isolates.
func (e *Engine) Isolate(championship string, assignments []Assignment) (*Report, error) {
	if championship == "" {
		return nil, fmt.Errorf("%w: championship name cannot be empty", gamefile.ErrValidation)
	}
	if len(assignments) == 0 {
		return nil, fmt.Errorf("%w: no vehicle assignments", gamefile.ErrValidation)
	}
	if info, err := os.Stat(e.vehiclesDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: vehicle library %s", gamefile.ErrNotFound, e.vehiclesDir)
	}

	folder := FolderName(championship)
	if err := os.MkdirAll(filepath.Join(e.vehiclesDir, folder), 0o755); err != nil {
		return nil, fmt.Errorf("create championship folder: %w", err)
	}

	report := &Report{
		BatchID: uuid.NewString(),
		Folder:  folder,
	}
	prefix := VehiclePrefix(championship)

	// Shared files already copied in this batch, keyed by lowercased
	// source path so case-insensitive libraries do not get duplicates.
	copied := make(map[string]struct{})

	for _, assignment := range assignments {
		isolated, err := e.isolateOne(championship, folder, prefix, assignment, copied)
		if err != nil {
			e.logger.Warn("vehicle isolation failed",
				"batch", report.BatchID,
				"vehicle", assignment.VehiclePath,
				"error", err)
		} else {
			e.logger.Info("vehicle isolated",
				"batch", report.BatchID,
				"vehicle", assignment.VehiclePath,
				"driver", assignment.DriverName,
				"isolated", isolated)
		}
		report.Items = append(report.Items, ItemResult{
			Assignment:   assignment,
			IsolatedPath: isolated,
			Err:          err,
		})
	}

	if report.Succeeded() == 0 {
		first := report.Items[0].Err
		return report, fmt.Errorf("all %d vehicles failed to isolate: %w", len(assignments), first)
	}
	return report, nil
}

func (e *Engine) isolateOne(championship, folder, prefix string, assignment Assignment, copied map[string]struct{}) (string, error) {
	if assignment.VehiclePath == "" {
		return "", fmt.Errorf("%w: assignment missing vehicle path", gamefile.ErrValidation)
	}
	if assignment.DriverName == "" {
		return "", fmt.Errorf("%w: assignment missing driver name", gamefile.ErrValidation)
	}

	relPath := filepath.FromSlash(assignment.VehiclePath)
	originalPath := filepath.Join(e.vehiclesDir, relPath)
	if !fileExists(originalPath) {
		return "", fmt.Errorf("%w: vehicle %s", gamefile.ErrNotFound, originalPath)
	}

	// Parse up front so a broken definition fails before anything is
	// copied.
	vehicle, err := e.scanner.ParseFile(originalPath)
	if err != nil {
		return "", fmt.Errorf("parse vehicle: %w", err)
	}

	newName := prefix + "_" + filepath.Base(relPath)
	isolatedRel := filepath.Join(replaceRoot(filepath.Dir(relPath), folder), newName)
	isolatedPath := filepath.Join(e.vehiclesDir, isolatedRel)

	if err := os.MkdirAll(filepath.Dir(isolatedPath), 0o755); err != nil {
		return "", fmt.Errorf("create vehicle folder: %w", err)
	}
	if err := fileutil.CopyFileVerified(originalPath, isolatedPath); err != nil {
		return "", fmt.Errorf("copy vehicle: %w", err)
	}

	if err := e.copyLocalAssets(filepath.Dir(originalPath), filepath.Dir(isolatedPath), filepath.Base(relPath), prefix); err != nil {
		e.logger.Warn("copying local assets", "vehicle", assignment.VehiclePath, "error", err)
	}
	e.copySharedAssets(vehicle, filepath.Dir(originalPath), folder, copied)
	e.copyIndirect(filepath.Dir(originalPath), folder, copied)

	result, err := veh.PatchFile(isolatedPath, championship, assignment.DriverName, prefix)
	if err != nil {
		return "", fmt.Errorf("patch vehicle: %w", err)
	}
	if !result.ClassesPatched {
		e.logger.Warn("vehicle has no Classes line", "vehicle", assignment.VehiclePath)
	}
	if !result.DriverPatched {
		e.logger.Warn("vehicle has no Driver line", "vehicle", assignment.VehiclePath)
	}

	return filepath.ToSlash(isolatedRel), nil
}

// copyLocalAssets copies the files next to the vehicle definition. Files
// whose stem matches the definition's stem and whose extension marks them
// vehicle-specific are renamed with the prefix; everything else keeps its
// name. The definition itself is skipped, it was copied already.
func (e *Engine) copyLocalAssets(sourceDir, destDir, vehName, prefix string) error {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return err
	}

	vehStem := gamefile.Stem(vehName)
	seen := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		key := strings.ToLower(name)
		if _, done := seen[key]; done {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".veh" {
			continue
		}

		destName := name
		if _, rename := renameExtensions[ext]; rename && strings.EqualFold(gamefile.Stem(name), vehStem) {
			destName = prefix + "_" + name
		}

		destFile := filepath.Join(destDir, destName)
		if fileExists(destFile) {
			continue
		}
		if err := fileutil.CopyFile(filepath.Join(sourceDir, name), destFile); err != nil {
			e.logger.Warn("copying asset", "file", name, "error", err)
			continue
		}
		seen[key] = struct{}{}
	}
	return nil
}

// copySharedAssets copies the files the definition references: physics,
// graphics, sounds, cameras, upgrades. Their position relative to the
// library root is preserved with only the root folder swapped for the
// championship folder.
func (e *Engine) copySharedAssets(vehicle *veh.Vehicle, vehicleDir, folder string, copied map[string]struct{}) {
	for _, ref := range vehicle.Config.Refs() {
		if ref.Ref.Raw == "" {
			continue
		}
		source, exists := veh.ResolveReference(vehicleDir, ref.Ref.Raw, e.vehiclesDir)
		if !exists {
			e.logger.Warn("referenced file not found", "key", ref.Key, "reference", ref.Ref.Raw)
			continue
		}
		e.copyShared(source, folder, ref.Key, copied)
	}
}

// copyIndirect sweeps the vehicle directory and two parent levels for files
// referenced by the physics and graphics definitions rather than by the
// vehicle itself: tire files, engine and gear settings, suspension, and
// archives.
func (e *Engine) copyIndirect(vehicleDir, folder string, copied map[string]struct{}) {
	searchDirs := []string{
		vehicleDir,
		filepath.Dir(vehicleDir),
		filepath.Dir(filepath.Dir(vehicleDir)),
	}

	for _, dir := range searchDirs {
		if !within(dir, e.vehiclesDir) {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if _, wanted := indirectExtensions[ext]; !wanted {
				continue
			}
			e.copyShared(filepath.Join(dir, entry.Name()), folder, "indirect", copied)
		}
	}
}

// copyShared copies one file into the championship folder, preserving its
// relative layout. Files already copied in this batch are skipped.
func (e *Engine) copyShared(source, folder, kind string, copied map[string]struct{}) {
	key := strings.ToLower(source)
	if _, done := copied[key]; done {
		return
	}

	rel, err := filepath.Rel(e.vehiclesDir, source)
	if err != nil || strings.HasPrefix(rel, "..") {
		e.logger.Warn("referenced file outside vehicle library", "file", source)
		return
	}

	dest := filepath.Join(e.vehiclesDir, replaceRoot(rel, folder))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		e.logger.Warn("creating folder for shared file", "kind", kind, "error", err)
		return
	}
	if fileExists(dest) {
		copied[key] = struct{}{}
		return
	}
	if err := fileutil.CopyFile(source, dest); err != nil {
		e.logger.Warn("copying shared file", "kind", kind, "file", source, "error", err)
		return
	}
	copied[key] = struct{}{}
}

// Cleanup removes the championship folder and everything in it. A missing
// folder is not an error.
func (e *Engine) Cleanup(championship string) error {
	if championship == "" {
		return fmt.Errorf("%w: championship name cannot be empty", gamefile.ErrValidation)
	}
	dir := filepath.Join(e.vehiclesDir, FolderName(championship))
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		e.logger.Info("no isolated vehicles to clean up", "championship", championship)
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("delete championship folder %s: %w", dir, err)
	}
	e.logger.Info("isolated vehicles removed", "championship", championship)
	return nil
}

// ListIsolated returns the names of championships with isolated vehicle
// folders.
func (e *Engine) ListIsolated() ([]string, error) {
	entries, err := os.ReadDir(e.vehiclesDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), folderPrefix) {
			names = append(names, strings.TrimPrefix(entry.Name(), folderPrefix))
		}
	}
	return names, nil
}

// replaceRoot swaps the first component of a relative path for the
// championship folder. A bare filename lands directly in the folder.
func replaceRoot(rel, folder string) string {
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == "" {
		return folder
	}
	parts := strings.Split(rel, "/")
	if len(parts) == 1 {
		return filepath.Join(folder, parts[0])
	}
	return filepath.Join(append([]string{folder}, parts[1:]...)...)
}

func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
