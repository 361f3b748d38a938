package isr

import "errors"

// ═══════════════════════════════════════════════════════════════════════════════
// ERROR DEFINITIONS
// ═══════════════════════════════════════════════════════════════════════════════
// Package-level sentinel errors, so callers can compare with errors.Is instead
// of parsing strings.
var (
	// ErrTooManyWildcards is returned when a query term carries more than two
	// '*' wildcards. The evaluator itself does not abort the process; the
	// driver decides what "fatal" means (see cmd/isrsearch).
	ErrTooManyWildcards = errors.New("isr: term has more than two wildcards")

	// ErrWordNotFound is returned by lookups against a word that has no
	// vocabulary entry.
	ErrWordNotFound = errors.New("isr: word not found in vocabulary")

	// ErrNoDocuments is returned when a query is evaluated before any
	// document has been ingested.
	ErrNoDocuments = errors.New("isr: no documents ingested")

	// ErrIndexNotBuilt is returned when Evaluate is called before Build.
	ErrIndexNotBuilt = errors.New("isr: permuterm index has not been built")
)

// errDuplicatePermutermKey indicates a broken invariant: two rotations
// compared byte-equal. The '$' sentinel guarantees this can't happen for
// well-formed input, so this is treated as unreachable and fatal.
type errDuplicatePermutermKey struct {
	key []byte
}

func (e *errDuplicatePermutermKey) Error() string {
	return "isr: duplicate permuterm key " + string(e.key) + " (invariant violation)"
}
