package types

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable covers failures to open, ping or talk to the store.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound is the parent of every recoverable "nothing there" outcome.
	ErrNotFound = errors.New("not found")

	ErrConstraintViolation = errors.New("constraint violation")
	ErrInvalidListing      = errors.New("invalid listing")
)

var (
	ErrListingNotFound  = fmt.Errorf("listing %w", ErrNotFound)
	ErrProviderNotFound = fmt.Errorf("provider %w", ErrNotFound)
	ErrReportNotFound   = fmt.Errorf("report artifact %w", ErrNotFound)
	ErrUnknownReport    = fmt.Errorf("report definition %w", ErrNotFound)
)
