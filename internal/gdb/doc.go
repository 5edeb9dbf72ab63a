// Package gdb reads track definition files from the locations library.
package gdb
