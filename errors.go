package fsst

import "github.com/pkg/errors"

// ErrTruncatedEscape is returned by Decode/DecodeInto when the encoded
// stream ends with an escape byte (255) that has no following literal —
// a malformed-input condition, not a programmer error that should panic.
var ErrTruncatedEscape = errors.New("fsst: decode: stream ends with a dangling escape byte")
