package domain

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPageNumber keeps Offset well inside the range Postgres accepts.
	MaxPageNumber = math.MaxInt32 / MaxPageSize
)

// PageRequest is a zero-based page of a listing.
type PageRequest struct {
	Number int
	Size   int
}

// NewPageRequest clamps number and size into a usable range.
func NewPageRequest(number, size int) PageRequest {
	if number < 0 {
		number = 0
	}
	if number > MaxPageNumber {
		number = MaxPageNumber
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageRequest{Number: number, Size: size}
}

func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page is one slice of a listing plus the total it was cut from.
type Page[T any] struct {
	Items         []T
	Number        int
	Size          int
	TotalElements int
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.TotalElements + p.Size - 1) / p.Size
}
