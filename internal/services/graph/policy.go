package graph

import (
	"fmt"
	"strings"
)

// MissingRelationPolicy decides what happens when a root references a key
// the batch result did not contain.
type MissingRelationPolicy int

const (
	// DropMissing leaves the relation unset and logs a warning.
	DropMissing MissingRelationPolicy = iota
	// FailOnMissing fails the whole assembly with relation_missing.
	FailOnMissing
)

func (p MissingRelationPolicy) String() string {
	switch p {
	case FailOnMissing:
		return "fail"
	default:
		return "drop"
	}
}

func ParseMissingRelationPolicy(s string) (MissingRelationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return DropMissing, nil
	case "fail":
		return FailOnMissing, nil
	default:
		return DropMissing, fmt.Errorf("unknown missing relation policy %q", s)
	}
}
