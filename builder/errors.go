// SPDX-License-Identifier: MIT
// Package: hypercubes/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is. Rule failures keep the partition sentinel
// in the chain, so errors.Is(err, partition.ErrConfiguration) holds for them.

package builder

import (
	"errors"
	"fmt"
)

// ErrNoRules indicates Build was called with an empty rule chain.
var ErrNoRules = errors.New("builder: empty rule chain")

// ErrEmptyGeometry indicates a geometry with no axes.
var ErrEmptyGeometry = errors.New("builder: geometry has no axes")

// builderErrorf prefixes an error with the entry point name, keeping %w.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
