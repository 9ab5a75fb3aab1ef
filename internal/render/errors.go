package render

import "errors"

var (
	// ErrInvariant reports a draw call whose density preconditions do not
	// hold. It indicates a bug in the caller, not bad data.
	ErrInvariant = errors.New("render invariant violated")

	// ErrUnknownStyle is returned by ParseStyle.
	ErrUnknownStyle = errors.New("unknown render style")

	// ErrUnknownColor is returned for palette entries that do not exist.
	ErrUnknownColor = errors.New("unknown palette entry")
)
