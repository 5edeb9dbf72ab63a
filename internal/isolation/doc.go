// Package isolation copies championship vehicles into a private folder of
// the vehicle library.
//
// Isolating a vehicle copies its definition, its local assets, and the
// shared files it references into an M_<championship> folder, renames the
// vehicle-specific files with a short championship prefix, and patches the
// copied definition so the vehicles race only against each other.
package isolation
