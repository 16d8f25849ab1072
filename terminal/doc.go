// Package terminal provides direct ANSI control of an inline terminal viewport.
//
// Features:
//   - Fixed-height viewport reserved below the cursor, scrollback above left intact
//   - True color (24-bit) and 256-color palette support, default-color cells
//   - Diffed output using only relative cursor motion
//   - Raw stdin input parsing with escape sequence and kitty key-event handling
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
