// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"strings"
)

// Kind identifies a decomposition strategy.
type Kind uint8

const (
	// KindQPeriodic is a quotient split with periodic boundary conditions.
	KindQPeriodic Kind = iota + 1
	// KindQOpen is a quotient split with open boundary conditions.
	KindQOpen
	// KindHBB is the halo/border/bulk split.
	KindHBB
	// KindEvenOdd is the multi-axis checkerboard split.
	KindEvenOdd
	// KindLeaf enumerates the sites of one axis.
	KindLeaf
	// KindEnd terminates a rule chain.
	KindEnd
)

var kindNames = map[Kind]string{
	KindQPeriodic: "qper",
	KindQOpen:     "qopen",
	KindHBB:       "hbb",
	KindEvenOdd:   "eo",
	KindLeaf:      "leaf",
	KindEnd:       "end",
}

// String returns the short name used in rule lists ("qper", "hbb", ...).
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind converts a short name into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Rule is one step of a decomposition chain.
//
// Axis selects the axis for qper, qopen, hbb and leaf. Axes flags the
// checkerboarded axes for eo. Param carries the number of parts (qper, qopen)
// or the halo depth (hbb). End ignores every selector.
type Rule struct {
	Name  string
	Kind  Kind
	Axis  int
	Axes  []bool
	Param int
}

// QPeriodic returns a rule splitting axis into parts blocks, wrapping around.
func QPeriodic(name string, axis, parts int) Rule {
	return Rule{Name: name, Kind: KindQPeriodic, Axis: axis, Param: parts}
}

// QOpen returns a rule splitting axis into parts blocks, without wrapping.
func QOpen(name string, axis, parts int) Rule {
	return Rule{Name: name, Kind: KindQOpen, Axis: axis, Param: parts}
}

// HBB returns a halo/border/bulk rule of depth halo on axis.
func HBB(name string, axis, halo int) Rule {
	return Rule{Name: name, Kind: KindHBB, Axis: axis, Param: halo}
}

// EvenOddRule returns a checkerboard rule acting on the flagged axes.
func EvenOddRule(name string, axes ...bool) Rule {
	return Rule{Name: name, Kind: KindEvenOdd, Axes: append([]bool(nil), axes...)}
}

// LeafRule returns a rule enumerating the sites of axis.
func LeafRule(name string, axis int) Rule {
	return Rule{Name: name, Kind: KindLeaf, Axis: axis}
}

// End returns the chain terminator.
func End(name string) Rule {
	return Rule{Name: name, Kind: KindEnd}
}

// Key identifies the rule by value.
func (r Rule) Key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q %s", r.Name, r.Kind)
	switch r.Kind {
	case KindEvenOdd:
		sb.WriteByte(' ')
		sb.WriteString(flagString(r.Axes))
	case KindEnd:
	default:
		fmt.Fprintf(&sb, " %d %d", r.Axis, r.Param)
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (r Rule) String() string { return "(" + r.Key() + ")" }

// ChainKey identifies a rule suffix by value.
func ChainKey(rules []Rule) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = r.Key()
	}

	return strings.Join(parts, ";")
}

func flagString(flags []bool) string {
	b := make([]byte, len(flags))
	for i, f := range flags {
		if f {
			b[i] = 'T'
		} else {
			b[i] = 'F'
		}
	}

	return string(b)
}
