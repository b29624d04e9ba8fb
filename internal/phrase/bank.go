// Package phrase holds the narration phrase bank: template fragments keyed
// by slot and tone. The bank is loaded once at startup, validated for full
// slot/tone coverage, and read-only afterwards.
package phrase

import (
	"fmt"
	"strings"

	"scriptdesk/internal/entropy"
)

// Slot names a position in the narration structure.
type Slot string

const (
	SlotOpening     Slot = "opening"
	SlotDescription Slot = "description"
	SlotBody        Slot = "body"
	SlotVisit       Slot = "visit"
	SlotClosing     Slot = "closing"
)

// RequiredSlots must carry at least one template for every declared tone.
// Validated at load time, so the composer can assume non-empty results.
var RequiredSlots = []Slot{SlotOpening, SlotDescription, SlotBody, SlotVisit, SlotClosing}

// ConfigurationError reports a malformed phrase bank. It is a startup-time
// integrity failure: once a bank loads, this error never occurs per-request.
type ConfigurationError struct {
	Slot   Slot
	Tone   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Slot == "" && e.Tone == "" {
		return "phrase bank: " + e.Reason
	}
	return fmt.Sprintf("phrase bank: slot %q tone %q: %s", e.Slot, e.Tone, e.Reason)
}

// Template is one phrase fragment. Placeholders {city}, {landmark} and
// {fact} are substituted at composition time.
type Template string

// Render substitutes the template's placeholders.
func (t Template) Render(city, landmark, fact string) string {
	r := strings.NewReplacer(
		"{city}", city,
		"{landmark}", landmark,
		"{fact}", fact,
	)
	return r.Replace(string(t))
}

// Bank maps slot and tone to candidate templates.
type Bank struct {
	tones     []string
	toneSet   map[string]bool
	templates map[Slot]map[string][]Template
}

// NewBank builds and validates a bank. Every declared tone must have at
// least one template for every required slot.
func NewBank(tones []string, templates map[Slot]map[string][]Template) (*Bank, error) {
	if len(tones) == 0 {
		return nil, &ConfigurationError{Reason: "no tones declared"}
	}

	b := &Bank{
		tones:     tones,
		toneSet:   make(map[string]bool, len(tones)),
		templates: templates,
	}
	for _, tone := range tones {
		if tone == "" {
			return nil, &ConfigurationError{Reason: "empty tone name"}
		}
		if b.toneSet[tone] {
			return nil, &ConfigurationError{Tone: tone, Reason: "declared twice"}
		}
		b.toneSet[tone] = true
	}

	for _, slot := range RequiredSlots {
		for _, tone := range tones {
			if len(templates[slot][tone]) == 0 {
				return nil, &ConfigurationError{Slot: slot, Tone: tone, Reason: "no templates"}
			}
		}
	}

	return b, nil
}

// Tones returns the declared tone set in declaration order.
func (b *Bank) Tones() []string {
	out := make([]string, len(b.tones))
	copy(out, b.tones)
	return out
}

// HasTone reports whether tone is part of the declared set.
func (b *Bank) HasTone(tone string) bool {
	return b.toneSet[tone]
}

// Templates returns the eligible templates for a slot/tone pair in
// declaration order.
func (b *Bank) Templates(slot Slot, tone string) ([]Template, error) {
	ts := b.templates[slot][tone]
	if len(ts) == 0 {
		return nil, &ConfigurationError{Slot: slot, Tone: tone, Reason: "no templates"}
	}
	out := make([]Template, len(ts))
	copy(out, ts)
	return out, nil
}

// Pick selects one eligible template using the given entropy source, so
// repeated identical requests vary their phrasing whenever more than one
// candidate exists.
func (b *Bank) Pick(slot Slot, tone string, src entropy.Source) (Template, error) {
	ts := b.templates[slot][tone]
	if len(ts) == 0 {
		return "", &ConfigurationError{Slot: slot, Tone: tone, Reason: "no templates"}
	}
	return ts[entropy.Pick(src, len(ts))], nil
}
