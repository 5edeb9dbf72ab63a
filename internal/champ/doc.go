// Package champ implements championship workflows on top of the codec
// packages: creating a custom championship (vehicle isolation plus mod
// definition generation, with rollback when the definition cannot be
// written) and managing the player's championship save files.
package champ
