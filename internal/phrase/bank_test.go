package phrase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scriptdesk/internal/entropy"
)

// fullTemplates covers every required slot for the given tones.
func fullTemplates(tones ...string) map[Slot]map[string][]Template {
	templates := make(map[Slot]map[string][]Template)
	for _, slot := range RequiredSlots {
		templates[slot] = make(map[string][]Template)
		for _, tone := range tones {
			templates[slot][tone] = []Template{
				Template("first " + string(slot) + " for {landmark} in {city}: {fact}"),
				Template("second " + string(slot) + " for {landmark} in {city}: {fact}"),
			}
		}
	}
	return templates
}

func TestNewBank(t *testing.T) {
	bank, err := NewBank([]string{"formal", "concise"}, fullTemplates("formal", "concise"))
	require.NoError(t, err)

	assert.Equal(t, []string{"formal", "concise"}, bank.Tones())
	assert.True(t, bank.HasTone("formal"))
	assert.False(t, bank.HasTone("sarcastic"))
}

func TestNewBank_MissingCoverage(t *testing.T) {
	templates := fullTemplates("formal")
	delete(templates[SlotClosing], "formal")

	_, err := NewBank([]string{"formal"}, templates)
	require.Error(t, err)

	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, SlotClosing, confErr.Slot)
	assert.Equal(t, "formal", confErr.Tone)
}

func TestNewBank_NoTones(t *testing.T) {
	_, err := NewBank(nil, fullTemplates())
	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
}

func TestNewBank_DuplicateTone(t *testing.T) {
	_, err := NewBank([]string{"formal", "formal"}, fullTemplates("formal"))
	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, "formal", confErr.Tone)
}

func TestTemplates_Order(t *testing.T) {
	bank, err := NewBank([]string{"formal"}, fullTemplates("formal"))
	require.NoError(t, err)

	ts, err := bank.Templates(SlotOpening, "formal")
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Contains(t, string(ts[0]), "first opening")
	assert.Contains(t, string(ts[1]), "second opening")
}

func TestTemplates_UndeclaredTone(t *testing.T) {
	bank, err := NewBank([]string{"formal"}, fullTemplates("formal"))
	require.NoError(t, err)

	_, err = bank.Templates(SlotOpening, "dramatic")
	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
}

func TestPick_Deterministic(t *testing.T) {
	bank, err := NewBank([]string{"formal"}, fullTemplates("formal"))
	require.NoError(t, err)

	// A pinned sequence makes selection reproducible.
	first, err := bank.Pick(SlotOpening, "formal", entropy.NewFixed(0))
	require.NoError(t, err)
	assert.Contains(t, string(first), "first opening")

	second, err := bank.Pick(SlotOpening, "formal", entropy.NewFixed(0.99))
	require.NoError(t, err)
	assert.Contains(t, string(second), "second opening")
}

func TestRender(t *testing.T) {
	tpl := Template("In {city}, {landmark} endures: {fact}")
	got := tpl.Render("Cairo", "Great Pyramid", "it is very old")
	assert.Equal(t, "In Cairo, Great Pyramid endures: it is very old", got)
}

func TestLoadFile(t *testing.T) {
	bank, err := LoadFile("testdata/bank.toml")
	require.NoError(t, err)

	assert.Equal(t, []string{"formal", "concise"}, bank.Tones())

	ts, err := bank.Templates(SlotOpening, "formal")
	require.NoError(t, err)
	assert.Len(t, ts, 2)
}

func TestLoadFile_MissingCoverage(t *testing.T) {
	_, err := LoadFile("testdata/bank_incomplete.toml")
	require.Error(t, err)

	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
}
