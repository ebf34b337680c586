// Package common defines sentinel errors shared across the recco client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

// ErrInvalidToken marks a stored token that could not be decoded.
var ErrInvalidToken = errors.New("invalid token")
