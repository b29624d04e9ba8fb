package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Range(t *testing.T) {
	src := Crypto{}
	for i := 0; i < 1000; i++ {
		v := src.Float()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestFixed_Cycles(t *testing.T) {
	src := NewFixed(0.1, 0.5, 0.9)
	assert.Equal(t, 0.1, src.Float())
	assert.Equal(t, 0.5, src.Float())
	assert.Equal(t, 0.9, src.Float())
	assert.Equal(t, 0.1, src.Float())
}

func TestFixed_Empty(t *testing.T) {
	src := NewFixed()
	assert.Equal(t, 0.0, src.Float())
	assert.Equal(t, 0.0, src.Float())
}

func TestPick(t *testing.T) {
	assert.Equal(t, 0, Pick(NewFixed(0.99), 1))
	assert.Equal(t, 0, Pick(NewFixed(0.99), 0))
	assert.Equal(t, 0, Pick(NewFixed(0), 4))
	assert.Equal(t, 1, Pick(NewFixed(0.3), 4))
	assert.Equal(t, 3, Pick(NewFixed(0.99), 4))
}
