package errors

import "errors"

// requested record does not exist.
var ErrMissing = errors.New("missing")

// more records are found than the operation expects.
var ErrTooMuch = errors.New("too much")
