package catalog

import "time"

// VehicleRecord is one cached vehicle listing row.
type VehicleRecord struct {
	RelativePath string
	FileName     string
	Description  string
	Driver       string
	Team         string
	Classes      string
	Category     string
	ModTime      time.Time
}

// TrackRecord is one cached track listing row.
type TrackRecord struct {
	RelativePath string
	FileName     string
	TrackName    string
	VenueName    string
	Layout       string
	ModTime      time.Time
}
