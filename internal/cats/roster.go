package cats

// Roster is an ordered list of cats with at most one selected member.
// The zero value is an empty roster with nothing selected.
type Roster struct {
	cats     []Cat
	selected int // index into cats, or -1 when nothing is selected
}

// NewRoster builds a roster from a freshly loaded list, carrying the
// selection forward from prevName: the first cat whose name matches is
// selected, falling back to the first element, or to nothing when the
// list is empty. Duplicate names resolve to the earliest match.
func NewRoster(loaded []Cat, prevName string) Roster {
	r := Roster{cats: cloneCats(loaded), selected: -1}
	if len(r.cats) == 0 {
		return r
	}
	r.selected = 0
	if prevName == "" {
		return r
	}
	for i, c := range r.cats {
		if c.Name == prevName {
			r.selected = i
			break
		}
	}
	return r
}

// Len returns the number of cats in the roster.
func (r Roster) Len() int {
	return len(r.cats)
}

// Cats returns a copy of the ordered list.
func (r Roster) Cats() []Cat {
	return cloneCats(r.cats)
}

// At returns the cat at index i.
func (r Roster) At(i int) (Cat, bool) {
	if i < 0 || i >= len(r.cats) {
		return Cat{}, false
	}
	return r.cats[i], true
}

// Selected returns the currently selected cat, if any.
func (r Roster) Selected() (Cat, bool) {
	return r.At(r.selected)
}

// SelectedIndex returns the index of the selected cat, or -1.
func (r Roster) SelectedIndex() int {
	return r.selected
}

// Select returns a roster with the selection moved to index i. Out-of-range
// indexes leave the roster unchanged; selection must stay a member.
func (r Roster) Select(i int) Roster {
	if i < 0 || i >= len(r.cats) {
		return r
	}
	out := r.clone()
	out.selected = i
	return out
}

// UpdateSelected returns a roster whose selected cat has been replaced by
// applying fn, plus the updated cat. With no selection the roster is
// returned unchanged and ok is false.
func (r Roster) UpdateSelected(fn func(Cat) Cat) (Roster, Cat, bool) {
	if r.selected < 0 || r.selected >= len(r.cats) {
		return r, Cat{}, false
	}
	out := r.clone()
	updated := fn(out.cats[out.selected])
	if updated.ClickCount < 0 {
		updated.ClickCount = 0
	}
	out.cats[out.selected] = updated
	return out, updated, true
}

func (r Roster) clone() Roster {
	return Roster{cats: cloneCats(r.cats), selected: r.selected}
}

func cloneCats(in []Cat) []Cat {
	if len(in) == 0 {
		return nil
	}
	dup := make([]Cat, len(in))
	copy(dup, in)
	return dup
}
