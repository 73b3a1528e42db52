package usecase

import "errors"

var (
	// ErrItemNotFound is returned when an item does not exist or does not
	// belong to the requesting user. The two cases are not distinguished.
	ErrItemNotFound = errors.New("item not found")
)
