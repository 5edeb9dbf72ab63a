// Package catalog persists scanned vehicle and track listings in SQLite so
// repeated commands do not re-read the whole game installation. Entries are
// keyed by file path and modification time; a listing is served from the
// cache only while every underlying file is unchanged.
package catalog
