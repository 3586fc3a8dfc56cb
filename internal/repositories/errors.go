package repositories

import "errors"

var (
	// ErrNotFound means no row matched the lookup. Owner-mismatched and
	// nonexistent ids are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a unique constraint (username or email) was hit.
	ErrConflict = errors.New("record already exists")
)
