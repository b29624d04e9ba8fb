package script

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scriptdesk/internal/entropy"
	"scriptdesk/internal/knowledge"
	"scriptdesk/internal/phrase"
)

// Broadcast pacing: ~2.5 spoken words per second, ~150 read words per minute.
const (
	wordsPerSecond = 2.5
	wordsPerMinute = 150
)

// segmentJoin is the fixed join policy: one blank line between segments.
const segmentJoin = "\n\n"

// Segment is one narration unit of a composed script.
type Segment struct {
	Slot phrase.Slot `json:"slot"`
	Text string      `json:"text"`
}

// Metadata describes a composed script.
type Metadata struct {
	WordCount        int     `json:"word_count"`
	Tone             string  `json:"tone"`
	FactsUsed        []int   `json:"facts_used"` // ordered fact indexes narrated
	ReadingMinutes   float64 `json:"reading_minutes"`
	BroadcastSeconds int     `json:"broadcast_seconds"`
}

// ComposedScript is the composer's output: ordered segments, their
// concatenation, and a metadata record. A fresh value per call; nothing is
// shared across requests.
type ComposedScript struct {
	ID       string    `json:"id"`
	City     string    `json:"city"`
	Landmark string    `json:"landmark"`
	Segments []Segment `json:"segments"`
	Text     string    `json:"text"`
	Metadata Metadata  `json:"metadata"`
}

// Composer assembles scripts from the knowledge base and phrase bank
// snapshots. Stateless between calls; safe for concurrent use.
type Composer struct {
	kb   *knowledge.Base
	bank *phrase.Bank
	src  entropy.Source
}

// NewComposer wires a composer to its immutable snapshots. A nil source
// defaults to crypto/rand.
func NewComposer(kb *knowledge.Base, bank *phrase.Bank, src entropy.Source) *Composer {
	if src == nil {
		src = entropy.Crypto{}
	}
	return &Composer{kb: kb, bank: bank, src: src}
}

// Compose builds one script for the request.
//
// Segment order is fixed: opening, description, one body segment per
// selected fact (insertion order, truncated by the length budget, never
// reordered), visiting notes at long length when the record has them, then
// closing. Segments are joined with one blank line. Unknown cities and
// landmarks surface as *knowledge.NotFoundError unchanged; a failed call
// produces no partial output.
func (c *Composer) Compose(req Request) (*ComposedScript, error) {
	if !c.bank.HasTone(req.Tone) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTone, req.Tone)
	}
	length, err := ParseLengthClass(string(req.Length))
	if err != nil {
		return nil, err
	}

	city, err := c.kb.City(req.City)
	if err != nil {
		return nil, err
	}

	var rec knowledge.LandmarkRecord
	if req.Landmark == "" {
		rec, err = c.kb.FirstLandmark(req.City)
	} else {
		rec, err = c.kb.Landmark(req.City, req.Landmark)
	}
	if err != nil {
		return nil, err
	}

	facts := rec.Facts
	if budget := length.factBudget(); budget >= 0 && len(facts) > budget {
		facts = facts[:budget]
	}

	segments := make([]Segment, 0, len(facts)+4)
	addSegment := func(slot phrase.Slot, fact string) error {
		tpl, err := c.bank.Pick(slot, req.Tone, c.src)
		if err != nil {
			return err
		}
		segments = append(segments, Segment{
			Slot: slot,
			Text: tpl.Render(city.Name, rec.Name, fact),
		})
		return nil
	}

	if err := addSegment(phrase.SlotOpening, ""); err != nil {
		return nil, err
	}
	if err := addSegment(phrase.SlotDescription, rec.Description); err != nil {
		return nil, err
	}

	factsUsed := make([]int, 0, len(facts))
	for i, fact := range facts {
		if err := addSegment(phrase.SlotBody, fact); err != nil {
			return nil, err
		}
		factsUsed = append(factsUsed, i)
	}

	if length == LengthLong && rec.VisitingNotes != "" {
		if err := addSegment(phrase.SlotVisit, rec.VisitingNotes); err != nil {
			return nil, err
		}
	}
	if err := addSegment(phrase.SlotClosing, ""); err != nil {
		return nil, err
	}

	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = seg.Text
	}
	text := strings.Join(parts, segmentJoin)

	words := len(strings.Fields(text))
	return &ComposedScript{
		ID:       uuid.NewString(),
		City:     city.Name,
		Landmark: rec.Name,
		Segments: segments,
		Text:     text,
		Metadata: Metadata{
			WordCount:        words,
			Tone:             req.Tone,
			FactsUsed:        factsUsed,
			ReadingMinutes:   roundTenth(float64(words) / wordsPerMinute),
			BroadcastSeconds: int(float64(words) / wordsPerSecond),
		},
	}, nil
}

func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
