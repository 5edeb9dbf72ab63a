// Package logging constructs slog loggers from configuration. The console
// format is meant for a terminal, the json format for files and log
// shippers. Command logs additionally land in the configured log
// directory.
package logging
