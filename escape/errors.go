package escape

import "errors"

// ErrInvalidIdentifier is returned when an identifier segment contains a
// NUL byte or otherwise cannot be represented in PostgreSQL syntax.
var ErrInvalidIdentifier = errors.New("escape: invalid identifier")

// ErrInvalidString is returned when a string value contains a NUL byte,
// which PostgreSQL string literals cannot encode.
var ErrInvalidString = errors.New("escape: invalid string value")

// ErrUnsupportedValue is returned when a host value has no textual SQL
// representation (e.g. a function, channel, or other non-data value).
var ErrUnsupportedValue = errors.New("escape: unsupported value")
