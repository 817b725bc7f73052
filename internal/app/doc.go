// Package app wires clowder's pieces together: configuration, preferences,
// the cat store client, and the UI. Run is the only entry point; it owns
// startup ordering and nothing else.
package app
