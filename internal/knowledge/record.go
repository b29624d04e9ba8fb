// Package knowledge holds the immutable city/landmark knowledge base.
// The base is loaded once at startup and is read-only for the process
// lifetime; all lookups go through one normalization policy.
package knowledge

// Category classifies a landmark.
type Category string

const (
	CategoryHistorical Category = "historical"
	CategoryNatural    Category = "natural"
	CategoryModern     Category = "modern"
	CategoryReligious  Category = "religious"
	CategoryCultural   Category = "cultural"
)

// LandmarkRecord describes one landmark within one city.
// Facts are narrated in insertion order and never reordered.
type LandmarkRecord struct {
	City          string   `json:"city"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Description   string   `json:"description"`
	Facts         []string `json:"facts"`
	VisitingNotes string   `json:"visiting_notes,omitempty"`
}

// CityRecord groups the landmarks of one city, preserving insertion order.
type CityRecord struct {
	Name      string           `json:"name"`
	Region    string           `json:"region,omitempty"`
	Landmarks []LandmarkRecord `json:"landmarks"`
}
