// Package ui provides the terminal user interface for spyglass.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program with a single screen: a header bar, the
// console output pane, and a status bar. The host model owns global
// concerns (capture toggles, theme cycling, clipboard, help overlay) and
// delegates scrolling and search to the console pane.
//
// # Package Structure
//
//   - ui.go: Root model, Options, Update loop, and NewProgram
//   - header.go: Header and status bar rendering
//   - keys.go: Host-level key bindings
//   - help.go: Help overlay modal
//   - theme.go: Color themes and Lipgloss style construction
//
// # Event Flow
//
//  1. The first WindowSizeMsg lays out the pane and installs stream capture.
//  2. Captured output arrives as console.TextMsg via Program.Send, so every
//     mutation of the pane happens on the single update loop.
//  3. A one-second tick refreshes the header counters from stats.Store.
//  4. Quit restores the original streams before the program exits.
//
// # Key Bindings
//
//   - Space: Toggle follow mode
//   - j/k, g/G, ctrl+d/u: Scroll
//   - /: Search output, n/N for next/previous match
//   - s/S: Toggle stdout/stderr capture
//   - c: Clear output
//   - y: Copy buffer to clipboard
//   - T: Cycle theme
//   - h or ?: Help overlay
//   - q or Ctrl+C: Quit
package ui
