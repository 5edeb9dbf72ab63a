// Package rcd parses and generates driver record (.rcd) files.
//
// A record is one driver: a name line, then a braced block of key=value
// pairs covering personal info (nationality, date of birth, career totals)
// and nine performance stats constrained to [0, 100]. The name doubles as
// the lookup key; the on-disk filename is the name with spaces removed.
package rcd
