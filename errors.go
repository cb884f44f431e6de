package aabb

import "errors"

// Misuse errors: querying before Build, or adding after Build. These are
// contract violations, not runtime conditions, and are raised as panics
// rather than returned errors.
var (
	ErrNotBuilt     = errors.New("aabb: index has not been built")
	ErrAlreadyBuilt = errors.New("aabb: add called after build")
)

// ErrFormat is wrapped by Load when the file's header doesn't match what
// this package writes: wrong magic, version, coordinate tag, or a
// truncated buffer. Wrap it (fmt.Errorf("%w: ...", ErrFormat)) rather than
// returning it bare so errors.Is(err, ErrFormat) can distinguish
// corruption from a plain I/O failure.
var ErrFormat = errors.New("aabb: corrupt or incompatible index file")
