package core

import "errors"

// ErrInvalidArgument reports an out-of-range constructor argument.
// Constructors wrap it with context describing the offending value.
var ErrInvalidArgument = errors.New("invalid argument")
