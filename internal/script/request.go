// Package script composes broadcast narration scripts from knowledge base
// facts and phrase bank templates.
package script

import (
	"errors"
	"fmt"
)

// LengthClass is a coarse target for script size.
type LengthClass string

const (
	LengthShort  LengthClass = "short"
	LengthMedium LengthClass = "medium"
	LengthLong   LengthClass = "long"
)

// ErrUnknownTone marks a request tone outside the phrase bank's declared set.
var ErrUnknownTone = errors.New("unknown tone")

// ErrUnknownLength marks a request length outside the length class set.
var ErrUnknownLength = errors.New("unknown length class")

// ParseLengthClass validates a raw length class string.
func ParseLengthClass(s string) (LengthClass, error) {
	switch LengthClass(s) {
	case LengthShort, LengthMedium, LengthLong:
		return LengthClass(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLength, s)
}

// factBudget returns how many facts a length class narrates; -1 means all.
// Budgets are fixed so word counts are monotone across classes for the
// same selection sequence.
func (lc LengthClass) factBudget() int {
	switch lc {
	case LengthShort:
		return 2
	case LengthMedium:
		return 4
	default:
		return -1
	}
}

// Request selects a location and presentation parameters for one script.
type Request struct {
	City     string      `json:"city"`
	Landmark string      `json:"landmark,omitempty"` // empty = city's first landmark
	Tone     string      `json:"tone"`
	Length   LengthClass `json:"length"`
}
