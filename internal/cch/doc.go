// Package cch reads and writes championship save files.
//
// The save format is an extended INI dialect: section headers may repeat
// ([VEHICLE]), opponents live in numbered sections ([OPPONENT00],
// [OPPONENT01], ...), comments start with //, and a few values are quoted
// strings or float pairs like (10.000,10.000).
package cch
