package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"paddock/internal/gamefile"
	"paddock/internal/gdb"
	"paddock/internal/veh"
)

// Store manages the listing cache backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS vehicles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    root TEXT NOT NULL,
    rel_path TEXT NOT NULL,
    file_name TEXT NOT NULL,
    description TEXT NOT NULL,
    driver TEXT NOT NULL,
    team TEXT NOT NULL,
    classes TEXT NOT NULL,
    category TEXT NOT NULL,
    mod_time INTEGER NOT NULL,
    scanned_at TEXT NOT NULL,
    UNIQUE(root, rel_path)
);
CREATE TABLE IF NOT EXISTS tracks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    root TEXT NOT NULL,
    rel_path TEXT NOT NULL,
    file_name TEXT NOT NULL,
    track_name TEXT NOT NULL,
    venue_name TEXT NOT NULL,
    layout TEXT NOT NULL,
    mod_time INTEGER NOT NULL,
    scanned_at TEXT NOT NULL,
    UNIQUE(root, rel_path)
);
CREATE INDEX IF NOT EXISTS idx_vehicles_root ON vehicles(root);
CREATE INDEX IF NOT EXISTS idx_tracks_root ON tracks(root);
`

// Open initializes or connects to the cache database at the given path.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: cache path cannot be empty", gamefile.ErrValidation)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// ReplaceVehicles swaps the cached vehicle listing for a library root.
func (s *Store) ReplaceVehicles(ctx context.Context, root string, records []VehicleRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicles WHERE root = ?`, root); err != nil {
		return fmt.Errorf("clear vehicle cache: %w", err)
	}

	scannedAt := time.Now().UTC().Format(time.RFC3339Nano)
	for _, rec := range records {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO vehicles (
                root, rel_path, file_name, description, driver, team,
                classes, category, mod_time, scanned_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			root,
			rec.RelativePath,
			rec.FileName,
			rec.Description,
			rec.Driver,
			rec.Team,
			rec.Classes,
			rec.Category,
			rec.ModTime.UnixNano(),
			scannedAt,
		)
		if err != nil {
			return fmt.Errorf("insert vehicle %s: %w", rec.RelativePath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// Vehicles returns the cached listing for a library root, ordered by path.
func (s *Store) Vehicles(ctx context.Context, root string) ([]VehicleRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT rel_path, file_name, description, driver, team, classes, category, mod_time
         FROM vehicles WHERE root = ? ORDER BY rel_path`,
		root,
	)
	if err != nil {
		return nil, fmt.Errorf("query vehicle cache: %w", err)
	}
	defer rows.Close()

	var records []VehicleRecord
	for rows.Next() {
		var rec VehicleRecord
		var modTime int64
		if err := rows.Scan(
			&rec.RelativePath, &rec.FileName, &rec.Description, &rec.Driver,
			&rec.Team, &rec.Classes, &rec.Category, &modTime,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		rec.ModTime = time.Unix(0, modTime).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vehicle rows: %w", err)
	}
	return records, nil
}

// ReplaceTracks swaps the cached track listing for a library root.
func (s *Store) ReplaceTracks(ctx context.Context, root string, records []TrackRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tracks WHERE root = ?`, root); err != nil {
		return fmt.Errorf("clear track cache: %w", err)
	}

	scannedAt := time.Now().UTC().Format(time.RFC3339Nano)
	for _, rec := range records {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO tracks (
                root, rel_path, file_name, track_name, venue_name, layout,
                mod_time, scanned_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			root,
			rec.RelativePath,
			rec.FileName,
			rec.TrackName,
			rec.VenueName,
			rec.Layout,
			rec.ModTime.UnixNano(),
			scannedAt,
		)
		if err != nil {
			return fmt.Errorf("insert track %s: %w", rec.RelativePath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// Tracks returns the cached listing for a library root, ordered by path.
func (s *Store) Tracks(ctx context.Context, root string) ([]TrackRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT rel_path, file_name, track_name, venue_name, layout, mod_time
         FROM tracks WHERE root = ? ORDER BY rel_path`,
		root,
	)
	if err != nil {
		return nil, fmt.Errorf("query track cache: %w", err)
	}
	defer rows.Close()

	var records []TrackRecord
	for rows.Next() {
		var rec TrackRecord
		var modTime int64
		if err := rows.Scan(
			&rec.RelativePath, &rec.FileName, &rec.TrackName,
			&rec.VenueName, &rec.Layout, &modTime,
		); err != nil {
			return nil, fmt.Errorf("scan track row: %w", err)
		}
		rec.ModTime = time.Unix(0, modTime).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate track rows: %w", err)
	}
	return records, nil
}

// VehiclesFresh reports whether the cached vehicle listing still matches
// the files on disk. Any added, removed, or modified file invalidates it.
func (s *Store) VehiclesFresh(ctx context.Context, root string, current map[string]time.Time) (bool, error) {
	records, err := s.Vehicles(ctx, root)
	if err != nil {
		return false, err
	}
	if records == nil {
		return false, nil
	}
	if len(records) != len(current) {
		return false, nil
	}
	for _, rec := range records {
		mtime, ok := current[rec.RelativePath]
		if !ok || !mtime.Equal(rec.ModTime) {
			return false, nil
		}
	}
	return true, nil
}

// TracksFresh reports whether the cached track listing still matches the
// files on disk.
func (s *Store) TracksFresh(ctx context.Context, root string, current map[string]time.Time) (bool, error) {
	records, err := s.Tracks(ctx, root)
	if err != nil {
		return false, err
	}
	if records == nil {
		return false, nil
	}
	if len(records) != len(current) {
		return false, nil
	}
	for _, rec := range records {
		mtime, ok := current[rec.RelativePath]
		if !ok || !mtime.Equal(rec.ModTime) {
			return false, nil
		}
	}
	return true, nil
}

// ModTimes walks a library root and returns the modification time of every
// file with the given extension, keyed by slash-separated relative path.
func ModTimes(root, ext string) (map[string]time.Time, error) {
	paths, err := gamefile.FindByExtension(root, ext, true)
	if err != nil {
		return nil, err
	}
	times := make(map[string]time.Time, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, fmt.Errorf("relativize %s: %w", path, err)
		}
		times[filepath.ToSlash(rel)] = info.ModTime().UTC()
	}
	return times, nil
}

// RecordVehicle converts a parsed vehicle into its cache row.
func RecordVehicle(v *veh.Vehicle, modTime time.Time) VehicleRecord {
	return VehicleRecord{
		RelativePath: v.RelativePath,
		FileName:     v.FileName,
		Description:  v.Description,
		Driver:       v.Team.Driver,
		Team:         v.Team.Team,
		Classes:      v.Classes,
		Category:     v.Category,
		ModTime:      modTime.UTC(),
	}
}

// RecordTrack converts a parsed track into its cache row.
func RecordTrack(t *gdb.Track, modTime time.Time) TrackRecord {
	return TrackRecord{
		RelativePath: t.RelativePath,
		FileName:     t.FileName,
		TrackName:    t.TrackName,
		VenueName:    t.VenueName,
		Layout:       t.Layout,
		ModTime:      modTime.UTC(),
	}
}
