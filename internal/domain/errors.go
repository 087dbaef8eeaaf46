package domain

import "errors"

var (
	// ErrListingNotFound signals a listing key absent from both category tables.
	ErrListingNotFound = errors.New("listing not found")
	// ErrMediaNotFound signals a missing media item.
	ErrMediaNotFound = errors.New("media not found")
	// ErrOfficeNotFound signals an office key with no active listings.
	ErrOfficeNotFound = errors.New("office not found")
	// ErrInvalidBounds signals a geographic box whose northeast corner is not
	// strictly greater than its southwest corner.
	ErrInvalidBounds = errors.New("invalid geographic bounds")
)
