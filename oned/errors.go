package oned

import "errors"

// ErrEmptySelection is returned by NthElement when asked to select from an
// empty slice.
var ErrEmptySelection = errors.New("oned: cannot select from an empty slice")

// ErrIndexOutOfRange is returned by NthElement when k is outside [0, len(s)).
var ErrIndexOutOfRange = errors.New("oned: selection index out of range")
