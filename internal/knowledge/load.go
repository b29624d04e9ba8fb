package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
)

// dataFile is the on-disk shape of the knowledge base. Cities and landmarks
// are arrays, not objects, so insertion order survives the round trip.
type dataFile struct {
	Cities []CityRecord `json:"cities"`
}

// LoadFile reads and indexes a knowledge base JSON file.
func LoadFile(path string) (*Base, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	var f dataFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
	}
	if len(f.Cities) == 0 {
		return nil, fmt.Errorf("knowledge base %s declares no cities", path)
	}

	// Stamp the owning city onto each landmark record.
	for ci := range f.Cities {
		for li := range f.Cities[ci].Landmarks {
			f.Cities[ci].Landmarks[li].City = f.Cities[ci].Name
		}
	}

	base, err := NewBase(f.Cities)
	if err != nil {
		return nil, fmt.Errorf("index knowledge base %s: %w", path, err)
	}
	return base, nil
}
