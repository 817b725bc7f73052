package cats

// Phase identifies which of the three application states holds.
type Phase int

const (
	// PhaseLoading is the initial state before any data has arrived.
	PhaseLoading Phase = iota
	// PhaseFailed holds a load or persist error; prior data is gone.
	PhaseFailed
	// PhaseReady holds a roster the user can interact with.
	PhaseReady
)

// State is the whole application state. Exactly one phase holds at a time:
// Err is set only in PhaseFailed, Roster is meaningful only in PhaseReady.
type State struct {
	Phase  Phase
	Err    error
	Roster Roster
}

// Loading returns the initial state.
func Loading() State {
	return State{Phase: PhaseLoading}
}

// Failed returns a failure state carrying err.
func Failed(err error) State {
	return State{Phase: PhaseFailed, Err: err}
}

// Ready returns an interactive state over roster.
func Ready(roster Roster) State {
	return State{Phase: PhaseReady, Roster: roster}
}

// Event is a user gesture or the completion of a network operation.
type Event interface{ isEvent() }

// ImageClicked increments the selected cat's counter.
type ImageClicked struct{}

// ResetPressed zeroes the selected cat's counter.
type ResetPressed struct{}

// ReloadPressed re-fetches the collection without discarding what is shown.
type ReloadPressed struct{}

// CatChosen moves the selection to the cat at Index.
type CatChosen struct{ Index int }

// LoadCompleted delivers the outcome of a fetch. Err set means failure.
type LoadCompleted struct {
	Cats []Cat
	Err  error
}

// PersistCompleted delivers the outcome of a record overwrite.
type PersistCompleted struct{ Err error }

func (ImageClicked) isEvent()     {}
func (ResetPressed) isEvent()     {}
func (ReloadPressed) isEvent()    {}
func (CatChosen) isEvent()        {}
func (LoadCompleted) isEvent()    {}
func (PersistCompleted) isEvent() {}

// Effect is a side-effecting request returned by Transition for the
// application loop to carry out. A nil Effect means nothing to do.
type Effect interface{ isEffect() }

// FetchEffect asks the loop to fetch the whole collection.
type FetchEffect struct{}

// PersistEffect asks the loop to overwrite one record in the store.
type PersistEffect struct{ Cat Cat }

func (FetchEffect) isEffect()   {}
func (PersistEffect) isEffect() {}

// Transition computes the next state and the effect to run for an event.
// It is pure: no I/O, no mutation of its inputs.
func Transition(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case ImageClicked:
		return updateSelected(s, func(c Cat) Cat {
			c.ClickCount++
			return c
		})

	case ResetPressed:
		return updateSelected(s, func(c Cat) Cat {
			c.ClickCount = 0
			return c
		})

	case ReloadPressed:
		// Keep whatever is on screen; a loading indicator is not forced.
		return s, FetchEffect{}

	case CatChosen:
		if s.Phase != PhaseReady {
			return s, nil
		}
		return Ready(s.Roster.Select(ev.Index)), nil

	case LoadCompleted:
		if ev.Err != nil {
			return Failed(ev.Err), nil
		}
		prevName := ""
		if prev, ok := s.Roster.Selected(); ok && s.Phase == PhaseReady {
			prevName = prev.Name
		}
		return Ready(NewRoster(ev.Cats, prevName)), nil

	case PersistCompleted:
		if ev.Err != nil {
			return Failed(ev.Err), nil
		}
		// A successful overwrite confirms what is already shown.
		return s, nil
	}

	return s, nil
}

func updateSelected(s State, fn func(Cat) Cat) (State, Effect) {
	if s.Phase != PhaseReady {
		return s, nil
	}
	roster, updated, ok := s.Roster.UpdateSelected(fn)
	if !ok {
		// Empty roster: nothing to mutate and nothing to persist.
		return s, nil
	}
	return Ready(roster), PersistEffect{Cat: updated}
}
