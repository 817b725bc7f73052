// Package ui provides the Bubble Tea terminal interface for clowder.
//
// # Architecture Overview
//
// The package implements the application loop plus the presentation layer.
// Model holds exactly one cats.State; Update translates key presses into
// domain events, runs them through cats.Transition, and converts the
// returned effects into tea.Cmds that hit the catbase client. Completions
// come back as loadDoneMsg / persistDoneMsg and re-enter Update as
// LoadCompleted / PersistCompleted events.
//
// Bubble Tea's runtime is the event queue the loop requires: Update never
// runs concurrently with itself, commands run off the loop, and their
// results are serialized back through the message channel. Several network
// operations may be in flight at once; their completions are applied in
// arrival order.
//
// # Views
//
// Three mutually exclusive views mirror the application state:
//
//   - Loading: spinner while the first fetch is in flight
//   - Failed: full-screen error panel with a reload hint
//   - Ready: horizontal cat selector, the selected cat's portrait and
//     click count, and key hints
//
// A help overlay and a theme cycle (persisted via internal/prefs) sit on
// top of all three.
//
// # Package Structure
//
//   - app.go: Model, Init/Update/View, key dispatch, messages and commands
//   - views.go: renderers for the three views plus the help overlay
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: color palettes and lipgloss styles
package ui
