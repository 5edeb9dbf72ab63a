// Package veh reads vehicle definition files and patches isolated copies.
//
// A vehicle definition is a flat key=value file referencing the physics,
// graphics, sound, and livery assets the vehicle needs. References are either
// paths relative to the vehicle library root or bare filenames resolved by
// walking up from the vehicle's own directory.
package veh
