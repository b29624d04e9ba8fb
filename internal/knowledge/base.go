package knowledge

import (
	"fmt"
	"strings"
)

// NotFoundError reports a city or landmark absent from the knowledge base.
// It is always surfaced to the caller verbatim, never retried or defaulted.
type NotFoundError struct {
	Kind string // "city" or "landmark"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Name)
}

// Base is the immutable in-memory knowledge base snapshot.
// Safe for concurrent use: nothing mutates it after construction.
type Base struct {
	cities []CityRecord

	// Lookup indexes keyed by normalized names.
	cityIndex     map[string]int
	landmarkIndex map[string]map[string]int
}

// Normalize is the single comparison policy for city and landmark names:
// lowercase, trimmed, inner whitespace collapsed. Every lookup and every
// index key goes through this function.
func Normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// NewBase builds a snapshot from city records. The city+landmark name pair
// must be unique after normalization.
func NewBase(cities []CityRecord) (*Base, error) {
	b := &Base{
		cities:        cities,
		cityIndex:     make(map[string]int, len(cities)),
		landmarkIndex: make(map[string]map[string]int, len(cities)),
	}

	for ci, city := range cities {
		ckey := Normalize(city.Name)
		if ckey == "" {
			return nil, fmt.Errorf("city %d has an empty name", ci)
		}
		if _, dup := b.cityIndex[ckey]; dup {
			return nil, fmt.Errorf("duplicate city %q", city.Name)
		}
		b.cityIndex[ckey] = ci

		landmarks := make(map[string]int, len(city.Landmarks))
		for li, lm := range city.Landmarks {
			lkey := Normalize(lm.Name)
			if lkey == "" {
				return nil, fmt.Errorf("city %q: landmark %d has an empty name", city.Name, li)
			}
			if _, dup := landmarks[lkey]; dup {
				return nil, fmt.Errorf("city %q: duplicate landmark %q", city.Name, lm.Name)
			}
			landmarks[lkey] = li
		}
		b.landmarkIndex[ckey] = landmarks
	}

	return b, nil
}

// Cities returns all city records in insertion order.
func (b *Base) Cities() []CityRecord {
	out := make([]CityRecord, len(b.cities))
	copy(out, b.cities)
	return out
}

// City returns the record for a city.
func (b *Base) City(name string) (CityRecord, error) {
	ci, ok := b.cityIndex[Normalize(name)]
	if !ok {
		return CityRecord{}, &NotFoundError{Kind: "city", Name: name}
	}
	return b.cities[ci], nil
}

// Landmarks returns the landmark records for a city in insertion order.
func (b *Base) Landmarks(city string) ([]LandmarkRecord, error) {
	rec, err := b.City(city)
	if err != nil {
		return nil, err
	}
	out := make([]LandmarkRecord, len(rec.Landmarks))
	copy(out, rec.Landmarks)
	return out, nil
}

// Landmark returns exactly one landmark record for a city+landmark pair.
func (b *Base) Landmark(city, landmark string) (LandmarkRecord, error) {
	ckey := Normalize(city)
	ci, ok := b.cityIndex[ckey]
	if !ok {
		return LandmarkRecord{}, &NotFoundError{Kind: "city", Name: city}
	}
	li, ok := b.landmarkIndex[ckey][Normalize(landmark)]
	if !ok {
		return LandmarkRecord{}, &NotFoundError{Kind: "landmark", Name: landmark}
	}
	return b.cities[ci].Landmarks[li], nil
}

// FirstLandmark returns the city's first landmark by insertion order.
// Used when a request names a city but no landmark; the choice is
// deterministic and stable across calls.
func (b *Base) FirstLandmark(city string) (LandmarkRecord, error) {
	rec, err := b.City(city)
	if err != nil {
		return LandmarkRecord{}, err
	}
	if len(rec.Landmarks) == 0 {
		return LandmarkRecord{}, &NotFoundError{Kind: "landmark", Name: "(none for " + rec.Name + ")"}
	}
	return rec.Landmarks[0], nil
}

// LandmarkCount returns the total number of landmarks across all cities.
func (b *Base) LandmarkCount() int {
	n := 0
	for _, c := range b.cities {
		n += len(c.Landmarks)
	}
	return n
}
