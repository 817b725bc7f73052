package cats

// Cat is one cat record as the user sees it.
type Cat struct {
	// Name is the display name. It doubles as the equality key when
	// re-associating the selection across reloads; the store assigns no
	// identifier that is guaranteed to survive a reload cycle.
	Name string

	// ImageSource is the URL of the cat's picture.
	ImageSource string

	// ClickCount is the number of times the cat has been clicked. Never
	// negative.
	ClickCount int

	// RemoteID is the entry identifier assigned by the remote store, or
	// empty for a record that has never been persisted. It addresses the
	// single-record replace operation and is never part of a record body.
	RemoteID string
}
