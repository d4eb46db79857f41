package lineup

import "errors"

// Errors returned by the lineup engine. Callers should match them with errors.Is,
// since most are wrapped with details about the offending input.
var (
	// ErrSizeMismatch is returned when the candidate subset does not have exactly
	// one candidate per slot.
	ErrSizeMismatch = errors.New("candidate count does not match slot count")

	// ErrMalformedCandidate is returned when a candidate record is missing required fields.
	ErrMalformedCandidate = errors.New("malformed candidate")

	// ErrDuplicateCandidate is returned when the same candidate appears twice in a
	// roster or in a search subset.
	ErrDuplicateCandidate = errors.New("duplicate candidate")

	// ErrUnknownCandidate is returned when a roster lookup does not match any candidate.
	ErrUnknownCandidate = errors.New("unknown candidate")

	// ErrEmptySlots is returned when a search is started without any slots to fill.
	ErrEmptySlots = errors.New("slot specification is empty")

	// ErrInvalidSlot is returned when a slot specification contains a blank resource.
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrInvalidWeights is returned when the point budget or a criterion weight is negative.
	ErrInvalidWeights = errors.New("invalid scoring weights")
)
