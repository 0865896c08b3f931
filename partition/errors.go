// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every build-time configuration failure.
// All other sentinels in this package wrap it, so
// errors.Is(err, ErrConfiguration) matches any of them.
var ErrConfiguration = errors.New("partition: invalid configuration")

// ErrUnknownKind indicates a strategy kind outside {qper,qopen,hbb,eo,leaf,end}.
var ErrUnknownKind = fmt.Errorf("%w: unknown strategy kind", ErrConfiguration)

// ErrBadAxis indicates an axis index outside the geometry, or an EvenOdd flag
// vector whose length differs from the number of axes.
var ErrBadAxis = fmt.Errorf("%w: bad axis selector", ErrConfiguration)

// ErrQuotientDomain indicates a quotient split with parts <= 0, parts >= size
// or more than one short trailing block.
var ErrQuotientDomain = fmt.Errorf("%w: quotient not representable", ErrConfiguration)

// ErrHaloDomain indicates a halo depth h <= 0 or an axis with size <= 2h.
var ErrHaloDomain = fmt.Errorf("%w: halo does not fit", ErrConfiguration)

// configErrorf attaches rule context to a sentinel: "<rule>: <msg>: <sentinel>".
func configErrorf(rule string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", rule, fmt.Sprintf(format, args...), sentinel)
}
