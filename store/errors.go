package store

import "errors"

var (
	// ErrNoSnapshot indicates no campaign snapshot has been persisted yet.
	ErrNoSnapshot = errors.New("store: no snapshot found")

	// ErrNilSnapshot indicates a nil snapshot was passed to SaveSnapshot.
	ErrNilSnapshot = errors.New("store: nil snapshot")
)
