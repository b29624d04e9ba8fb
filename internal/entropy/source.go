// Package entropy provides the randomness sources behind phrase selection.
// Selection is injectable so tests can pin an exact sequence; production
// uses crypto/rand, optionally topped up with true randomness from
// random.org.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
)

// Source yields floats in [0, 1). Implementations must be safe for
// concurrent use; compose calls share one source.
type Source interface {
	Float() float64
}

// Pick maps one draw from src onto an index in [0, n).
func Pick(src Source, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(src.Float() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Crypto is a stateless source backed by crypto/rand.
type Crypto struct{}

func (Crypto) Float() float64 {
	return cryptoFloat()
}

func cryptoFloat() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Should never happen; 0.5 is a safe midpoint default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// Fixed replays a predetermined sequence, cycling when exhausted.
// Test use only: it makes phrase selection fully deterministic.
type Fixed struct {
	mu   sync.Mutex
	vals []float64
	next int
}

// NewFixed creates a Fixed source. An empty sequence always yields 0.
func NewFixed(vals ...float64) *Fixed {
	return &Fixed{vals: vals}
}

func (f *Fixed) Float() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.vals) == 0 {
		return 0
	}
	v := f.vals[f.next%len(f.vals)]
	f.next++
	return v
}
