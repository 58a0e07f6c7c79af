package sqlgram

import "errors"

// ErrEmptyList is returned when a construction that requires at least one
// element receives none: NewNonEmptyList over an empty slice, or
// CompactingRequired when every entry is absent.
//
// This is a data error, not a programming error. Construction sites where
// emptiness is impossible by construction (NonEmpty, the literal form)
// do not return it and cannot fail.
var ErrEmptyList = errors.New("at least one element is required")
