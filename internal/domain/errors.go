package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique constraint was hit.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidPurchase is returned when a purchase lacks the parts checkout needs to link.
	ErrInvalidPurchase = errors.New("invalid purchase")
)
