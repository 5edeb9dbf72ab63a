// Package main hosts the paddock CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the internal packages on the
// terminal: driver record management, vehicle and track listings,
// championship creation, and save-file maintenance. It centralizes
// configuration resolution and logging setup so subcommands can focus on
// user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags
// here.
package main
