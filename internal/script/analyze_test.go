package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const broadcastSample = `According to UNESCO records, the Great Pyramid is situated on the Giza plateau, where it has stood for more than 4500 years. Officials estimate that 2.3 million stone blocks went into its construction, and records show it was completed around 2560 BC.

Historically, the monument was regarded as the tallest structure on Earth, holding that title for 3800 years. Experts note that its sides align with the compass points, a feat of ancient engineering that still draws study today. Figures from the tourism board put annual visitors well above ten million.

Currently, restoration work continues across the plateau, and statistics indicate steady growth in heritage tourism. The site was designated a World Heritage landmark in 1979.

Notably, the pyramid remains the last surviving wonder of the ancient world, a witness to the history and culture of Cairo.`

func TestAnalyze_BasicStats(t *testing.T) {
	a := Analyze("First sentence here. Second one follows.\n\nThird paragraph line.")

	assert.Equal(t, 9, a.Basic.WordCount)
	assert.Equal(t, 3, a.Basic.SentenceCount)
	assert.Equal(t, 2, a.Basic.ParagraphCount)
	assert.InDelta(t, 3.0, a.Basic.AvgSentenceLen, 0.05)
	assert.Greater(t, a.Basic.AvgWordLen, 0.0)
}

func TestAnalyze_BroadcastStyle(t *testing.T) {
	a := Analyze(broadcastSample)

	assert.Equal(t, "broadcast", a.Style.StyleType)
	assert.GreaterOrEqual(t, a.Style.JournalistScore, 5)
	assert.Equal(t, 100, a.Style.Objectivity)
	assert.True(t, a.Style.UsesData)
	assert.True(t, a.Style.HasDates)
	assert.True(t, a.Style.WellStructured)
	assert.Equal(t, "formal", a.Style.Tone)

	assert.True(t, a.Content.MentionsSources)
	assert.Contains(t, a.Content.TopicsCovered, "history")
	assert.Contains(t, a.Content.TopicsCovered, "tourism")

	assert.GreaterOrEqual(t, a.Overall.Value, 75.0)
	assert.Equal(t, 100, a.Overall.Max)
}

func TestAnalyze_PersonalOpinionCostsObjectivity(t *testing.T) {
	a := Analyze("I think this place is amazing. I believe everyone should go. In my opinion it is the best.")

	assert.Equal(t, 70, a.Style.Objectivity)
	assert.Equal(t, "informal", a.Style.Tone)

	var types []string
	for _, r := range a.Recommendations {
		types = append(types, r.Type)
	}
	assert.Contains(t, types, "objectivity")
	assert.Contains(t, types, "style")
	assert.Contains(t, types, "length")
}

func TestAnalyze_ShortScriptRecommendations(t *testing.T) {
	a := Analyze("A tiny script.")

	require.NotEmpty(t, a.Recommendations)
	first := a.Recommendations[0]
	assert.Equal(t, "length", first.Type)
	assert.Equal(t, "high", first.Priority)
	assert.Equal(t, "needs work", a.Overall.Rating)
}

func TestAnalyze_CleanScriptGetsInfoOnly(t *testing.T) {
	a := Analyze(broadcastSample)

	for _, r := range a.Recommendations {
		assert.NotEqual(t, "high", r.Priority, "broadcast-ready copy should raise no high-priority issues: %+v", r)
	}
}

func TestAnalyze_MostCommonWords(t *testing.T) {
	a := Analyze(strings.Repeat("pyramid plateau pyramid monument ", 3))

	require.NotEmpty(t, a.Content.MostCommonWords)
	assert.Equal(t, "pyramid", a.Content.MostCommonWords[0].Word)
	assert.Equal(t, 6, a.Content.MostCommonWords[0].Count)
	assert.LessOrEqual(t, len(a.Content.MostCommonWords), 5)
}

func TestAnalyze_Empty(t *testing.T) {
	a := Analyze("")

	assert.Zero(t, a.Basic.WordCount)
	assert.Zero(t, a.Basic.SentenceCount)
	assert.NotEmpty(t, a.Recommendations)
	assert.Zero(t, a.Content.DiversityScore)
}
