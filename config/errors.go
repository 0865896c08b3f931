package config

import "errors"

// ErrInvalidLayout indicates a layout document that cannot be decoded,
// fails validation or cannot be turned into a rule chain.
var ErrInvalidLayout = errors.New("config: invalid layout")
