package tracker

import "errors"

var (
	// ErrItemNotFound is returned when a tracked item id does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrNoValidItems is returned when an ingest payload contained no
	// descriptor that survived validation.
	ErrNoValidItems = errors.New("no valid items were tracked")
)
