// Package gamedata describes the on-disk layout of a simulator installation.
//
// A Layout is rooted at the installation directory and exposes the fixed
// subpaths the rest of the repository works against: driver records under
// GameData/Talent, vehicles under GameData/Vehicles, tracks under
// GameData/Locations, mod definitions under rFm, and per-player saves under
// UserData/<player>. Validation checks that a directory actually is such an
// installation before any service touches it.
package gamedata
