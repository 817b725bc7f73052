// Package cats holds the domain model and the pure state machine for the
// clowder application.
//
// # Overview
//
// Everything here is side-effect free. The package defines the Cat record,
// the Roster (an ordered list with at most one selected member), the
// tri-state application State, the Event vocabulary, and Transition, the
// single function that maps (State, Event) to (State, Effect).
//
// # Data flow
//
//	UI gesture / network completion
//	          ↓ (Event)
//	 Transition(state, event)
//	          ↓
//	 (next State, optional Effect)
//	          ↓
//	 loop stores State, runs Effect asynchronously
//	          ↓
//	 Effect outcome re-enters as LoadCompleted / PersistCompleted
//
// # State machine
//
// State is exactly one of Loading, Failed, or Ready. There are no mixed
// states: any fetch or persist failure replaces the whole state with
// Failed, discarding displayed data. The only recovery path is a
// ReloadPressed event, which requests a fresh fetch.
//
// # Roster semantics
//
// A Roster is rebuilt from scratch on every successful load. Selection is
// carried forward by name: the previously selected cat's name is looked up
// in the new list, falling back to the first element, or to no selection
// when the list is empty. Names are not de-duplicated; the earliest match
// wins.
//
// Effects returned by Transition are inert values. Interpreting them
// (actually hitting the network) is the application loop's job, which keeps
// every rule in this package unit-testable without I/O.
package cats
