// Package rfm parses and generates mod definition (.rfm) files.
//
// A mod definition is a championship template: filters, seasons with their
// track orders, the session/scoring grid, career economy multipliers, pit
// groups, and free-form config overrides. The format mixes flat
// "Key = Value" lines with brace-delimited blocks, some of which repeat
// (Season) or nest (a season's own SceneOrder). Season order is race
// presentation order and round-trips exactly.
package rfm
