package phrase

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// bankFile is the TOML shape of the phrase bank:
//
//	tones = ["formal", "conversational"]
//
//	[slots.opening]
//	formal = ["In the heart of {city} stands {landmark}."]
type bankFile struct {
	Tones []string                       `toml:"tones"`
	Slots map[string]map[string][]string `toml:"slots"`
}

// LoadFile reads and validates a phrase bank TOML file.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read phrase bank: %w", err)
	}

	var f bankFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse phrase bank %s: %w", path, err)
	}

	templates := make(map[Slot]map[string][]Template, len(f.Slots))
	for slotName, byTone := range f.Slots {
		slot := Slot(slotName)
		templates[slot] = make(map[string][]Template, len(byTone))
		for tone, texts := range byTone {
			for _, text := range texts {
				templates[slot][tone] = append(templates[slot][tone], Template(text))
			}
		}
	}

	bank, err := NewBank(f.Tones, templates)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}
