package rank

import "errors"

// Sentinel kinds for ranking errors. Both translate to a not-found
// condition at the HTTP boundary; everything else the ranker hits while
// scoring degrades to skipping the affected candidate.
var (
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrWrongOwner           = errors.New("availability belongs to a different user")
)
