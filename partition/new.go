// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/mmesiti/hypercubes/geometry"
)

// New instantiates rule on geom. End yields a nil Class and no error.
// Every configuration problem is reported here, wrapped around one of the
// package sentinels, and never later.
func New(geom geometry.Geometry, rule Rule) (Class, error) {
	var (
		s   Strategy1D
		err error
	)
	switch rule.Kind {
	case KindEnd:
		return nil, nil
	case KindEvenOdd:
		e, err := NewEvenOdd(rule.Name, geom, rule.Axes)
		if err != nil {
			return nil, err
		}
		return e, nil
	case KindQPeriodic, KindQOpen, KindHBB, KindLeaf:
		if rule.Axis < 0 || rule.Axis >= len(geom) {
			return nil, configErrorf(rule.Name, ErrBadAxis, "axis %d of %d", rule.Axis, len(geom))
		}
		sp := geom[rule.Axis]
		switch rule.Kind {
		case KindQPeriodic:
			s, err = NewQuotient(sp, rule.Param, Periodic)
		case KindQOpen:
			s, err = NewQuotient(sp, rule.Param, Open)
		case KindHBB:
			s, err = NewHaloBorderBulk(sp, rule.Param)
		default:
			s, err = NewLeaf(sp)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rule.Name, err)
		}
	default:
		return nil, configErrorf(rule.Name, ErrUnknownKind, "kind %s", rule.Kind)
	}

	a, err := Lift(rule.Name, geom, rule.Axis, s)
	if err != nil {
		return nil, err
	}

	return a, nil
}
