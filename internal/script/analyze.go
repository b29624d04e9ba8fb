package script

import (
	"regexp"
	"sort"
	"strings"
)

// BasicStats are raw size and pacing measurements of a script.
type BasicStats struct {
	WordCount        int     `json:"word_count"`
	SentenceCount    int     `json:"sentence_count"`
	CharCount        int     `json:"char_count"`
	ParagraphCount   int     `json:"paragraph_count"`
	AvgSentenceLen   float64 `json:"avg_sentence_length"`
	AvgWordLen       float64 `json:"avg_word_length"`
	ReadingMinutes   float64 `json:"reading_minutes"`
	BroadcastSeconds int     `json:"broadcast_seconds"`
}

// StyleReport grades how broadcast-ready the prose reads.
type StyleReport struct {
	StyleType       string `json:"style_type"` // "broadcast" or "general"
	JournalistScore int    `json:"journalist_score"`
	Objectivity     int    `json:"objectivity"` // 0-100
	UsesData        bool   `json:"uses_data"`
	NumbersCount    int    `json:"numbers_count"`
	HasDates        bool   `json:"has_dates"`
	WellStructured  bool   `json:"well_structured"`
	Tone            string `json:"tone"` // "formal", "informal" or "balanced"
}

// WordFrequency is one entry of the most-common-words list.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ContentReport summarizes what the script talks about.
type ContentReport struct {
	MostCommonWords []WordFrequency `json:"most_common_words"`
	TopicsCovered   []string        `json:"topics_covered"`
	HasQuotes       bool            `json:"has_quotes"`
	MentionsSources bool            `json:"mentions_sources"`
	DiversityScore  float64         `json:"diversity_score"`
}

// Recommendation is one prioritized editorial suggestion.
type Recommendation struct {
	Type       string `json:"type"`
	Priority   string `json:"priority"` // "high", "medium" or "info"
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// Score is the overall 0-100 assessment.
type Score struct {
	Value  float64 `json:"score"`
	Rating string  `json:"rating"`
	Max    int     `json:"max_score"`
}

// Analysis is a full script assessment with recommendations.
type Analysis struct {
	Basic           BasicStats       `json:"basic"`
	Style           StyleReport      `json:"style"`
	Content         ContentReport    `json:"content"`
	Recommendations []Recommendation `json:"recommendations"`
	Overall         Score            `json:"overall_score"`
}

var (
	numberRe = regexp.MustCompile(`\d+`)
	yearRe   = regexp.MustCompile(`\b\d{4}\b`)

	// Phrases characteristic of broadcast journalism.
	journalistMarkers = []string{
		"according to", "reports indicate", "sources say", "officials",
		"historically", "currently", "located", "situated", "experts",
		"figures", "statistics", "notably", "meanwhile", "records show",
	}

	// First-person markers that cost objectivity points.
	personalMarkers = []string{
		"i think", "i feel", "i believe", "in my opinion", "we believe",
		"my view",
	}

	formalMarkers   = []string{"regarded", "situated", "according to", "established", "designated", "constitutes"}
	informalMarkers = []string{"amazing", "awesome", "stunning", "incredible", "wow", "cool"}

	sourceMarkers = []string{"source", "sources", "report", "study", "records", "unesco", "archive"}

	topicKeywords = map[string][]string{
		"history":  {"history", "historical", "ancient", "century", "era", "dynasty"},
		"culture":  {"culture", "cultural", "heritage", "architecture", "art", "tradition"},
		"tourism":  {"tourism", "visitors", "visit", "tour", "travelers"},
		"economy":  {"economy", "economic", "investment", "development", "jobs"},
		"religion": {"mosque", "church", "temple", "pilgrimage", "sacred"},
	}
)

// Analyze assesses a script's length, style, and content, and produces
// prioritized recommendations plus an overall score.
func Analyze(text string) *Analysis {
	a := &Analysis{
		Basic:   basicStats(text),
		Style:   styleReport(text),
		Content: contentReport(text),
	}
	a.Recommendations = recommend(a.Basic, a.Style, a.Content)
	a.Overall = overallScore(a.Basic, a.Style, a.Content)
	return a
}

func basicStats(text string) BasicStats {
	words := strings.Fields(text)
	sentences := 0
	for _, s := range strings.Split(text, ".") {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	var avgSentence, avgWord float64
	if sentences > 0 {
		avgSentence = roundTenth(float64(len(words)) / float64(sentences))
	}
	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += len([]rune(w))
		}
		avgWord = roundTenth(float64(total) / float64(len(words)))
	}

	return BasicStats{
		WordCount:        len(words),
		SentenceCount:    sentences,
		CharCount:        len([]rune(text)),
		ParagraphCount:   strings.Count(text, "\n\n") + 1,
		AvgSentenceLen:   avgSentence,
		AvgWordLen:       avgWord,
		ReadingMinutes:   roundTenth(float64(len(words)) / wordsPerMinute),
		BroadcastSeconds: int(float64(len(words)) / wordsPerSecond),
	}
}

func styleReport(text string) StyleReport {
	lower := strings.ToLower(text)

	jscore := 0
	for _, m := range journalistMarkers {
		if strings.Contains(lower, m) {
			jscore++
		}
	}

	objectivity := 100
	for _, m := range personalMarkers {
		if strings.Contains(lower, m) {
			objectivity -= 10
		}
	}
	if objectivity < 0 {
		objectivity = 0
	}

	formal, informal := 0, 0
	for _, m := range formalMarkers {
		if strings.Contains(lower, m) {
			formal++
		}
	}
	for _, m := range informalMarkers {
		if strings.Contains(lower, m) {
			informal++
		}
	}
	tone := "balanced"
	if formal > informal*2 {
		tone = "formal"
	} else if informal > formal {
		tone = "informal"
	}

	styleType := "general"
	if jscore >= 5 {
		styleType = "broadcast"
	}

	numbers := len(numberRe.FindAllString(text, -1))
	return StyleReport{
		StyleType:       styleType,
		JournalistScore: jscore,
		Objectivity:     objectivity,
		UsesData:        numbers > 0,
		NumbersCount:    numbers,
		HasDates:        yearRe.MatchString(text),
		WellStructured:  strings.Count(text, "\n\n") >= 2,
		Tone:            tone,
	}
}

func contentReport(text string) ContentReport {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	freq := make(map[string]int)
	seen := make(map[string]bool)
	for _, w := range words {
		seen[w] = true
		w = strings.Trim(w, ".,!?;:\"'()")
		if len([]rune(w)) > 3 {
			freq[w]++
		}
	}

	common := make([]WordFrequency, 0, len(freq))
	for w, n := range freq {
		common = append(common, WordFrequency{Word: w, Count: n})
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].Count != common[j].Count {
			return common[i].Count > common[j].Count
		}
		return common[i].Word < common[j].Word
	})
	if len(common) > 5 {
		common = common[:5]
	}

	var topics []string
	for _, topic := range []string{"history", "culture", "tourism", "economy", "religion"} {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(lower, kw) {
				topics = append(topics, topic)
				break
			}
		}
	}

	mentionsSources := false
	for _, m := range sourceMarkers {
		if strings.Contains(lower, m) {
			mentionsSources = true
			break
		}
	}

	diversity := 0.0
	if len(words) > 0 {
		diversity = float64(len(seen)) / float64(len(words))
	}

	return ContentReport{
		MostCommonWords: common,
		TopicsCovered:   topics,
		HasQuotes:       strings.ContainsAny(text, `"'`),
		MentionsSources: mentionsSources,
		DiversityScore:  diversity,
	}
}

func recommend(basic BasicStats, style StyleReport, content ContentReport) []Recommendation {
	var recs []Recommendation

	if basic.WordCount < 100 {
		recs = append(recs, Recommendation{
			Type:       "length",
			Priority:   "high",
			Issue:      "script is too short",
			Suggestion: "Add more detail and background. A solid broadcast script runs 200-500 words.",
		})
	} else if basic.WordCount > 600 {
		recs = append(recs, Recommendation{
			Type:       "length",
			Priority:   "medium",
			Issue:      "script may run long for a single segment",
			Suggestion: "Tighten the narration around the key points, or split the coverage into two segments.",
		})
	}

	if style.JournalistScore < 3 {
		recs = append(recs, Recommendation{
			Type:       "style",
			Priority:   "high",
			Issue:      "style is not broadcast-ready",
			Suggestion: `Use reporting phrases such as "according to" and "records show", and avoid first-person framing.`,
		})
	}

	if style.Objectivity < 80 {
		recs = append(recs, Recommendation{
			Type:       "objectivity",
			Priority:   "high",
			Issue:      "script contains personal opinion",
			Suggestion: "Keep journalistic distance: replace personal views with documented facts and figures.",
		})
	}

	if !style.UsesData {
		recs = append(recs, Recommendation{
			Type:       "data",
			Priority:   "medium",
			Issue:      "no numbers or statistics",
			Suggestion: "Ground the narration with figures: visitor counts, dates, dimensions, costs.",
		})
	}

	if !content.MentionsSources {
		recs = append(recs, Recommendation{
			Type:       "sources",
			Priority:   "high",
			Issue:      "no sources mentioned",
			Suggestion: `Cite where the information comes from, e.g. "according to UNESCO records".`,
		})
	}

	if basic.ParagraphCount < 3 {
		recs = append(recs, Recommendation{
			Type:       "structure",
			Priority:   "medium",
			Issue:      "script is not organized into paragraphs",
			Suggestion: "Break the script into a clear opening, two or three body paragraphs, and a closing.",
		})
	}

	if basic.AvgSentenceLen > 25 {
		recs = append(recs, Recommendation{
			Type:       "readability",
			Priority:   "medium",
			Issue:      "sentences run too long to read aloud",
			Suggestion: "Shorten sentences toward 15-20 words so the narration breathes.",
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Type:       "general",
			Priority:   "info",
			Issue:      "no significant problems found",
			Suggestion: "The script is well built and broadcast-ready.",
		})
	}

	return recs
}

func overallScore(basic BasicStats, style StyleReport, content ContentReport) Score {
	score := 0.0

	// Length (20 points).
	switch {
	case basic.WordCount >= 200 && basic.WordCount <= 500:
		score += 20
	case basic.WordCount >= 150 && basic.WordCount < 200,
		basic.WordCount > 500 && basic.WordCount <= 600:
		score += 15
	default:
		score += 10
	}

	// Journalistic style (25 points).
	s := float64(style.JournalistScore) * 3
	if s > 25 {
		s = 25
	}
	score += s

	// Objectivity (15 points).
	score += float64(style.Objectivity) * 0.15

	// Data use (15 points).
	if style.UsesData {
		score += 10
	}
	if style.HasDates {
		score += 5
	}

	// Sourcing (10 points).
	if content.MentionsSources {
		score += 10
	}

	// Structure (10 points).
	if basic.ParagraphCount >= 3 {
		score += 5
	}
	if style.WellStructured {
		score += 5
	}

	// Lexical diversity (5 points).
	score += content.DiversityScore * 5

	if score > 100 {
		score = 100
	}
	score = roundTenth(score)

	rating := "needs work"
	switch {
	case score >= 90:
		rating = "excellent"
	case score >= 75:
		rating = "very good"
	case score >= 60:
		rating = "good"
	case score >= 50:
		rating = "fair"
	}

	return Score{Value: score, Rating: rating, Max: 100}
}
