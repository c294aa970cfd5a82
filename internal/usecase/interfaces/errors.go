package interfaces

import "errors"

// Storage-level outcomes every repository implementation must report with
// these sentinels (wrapping is fine).
var (
	// ErrConflict is a uniqueness rule enforced by the store: a second open
	// invoice for a vehicle, a second completion record, a duplicate id.
	ErrConflict = errors.New("storage conflict")

	// ErrConcurrentModification means a row read inside the unit of work was
	// changed by someone else before commit. Nothing was written.
	ErrConcurrentModification = errors.New("concurrent modification")
)
