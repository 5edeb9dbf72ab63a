// Package gamefile reads and writes the simulator's legacy text files.
//
// Every game-data format handled by this repository (.rcd, .rfm, .cch, .veh,
// .gdb) is Windows-1252 encoded with CRLF line endings. This package is the
// single place raw file bytes are touched: it decodes strictly (undefined
// code points fail instead of being silently replaced), normalizes line
// endings on write, and creates parent directories as needed.
//
// It also defines the sentinel errors the rest of the repository classifies
// failures with.
package gamefile
