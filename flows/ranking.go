package flows

import (
	"sort"
	"strings"
)

// SectionScorer ranks a document section's relevance to an audience.
// Implementations are interchangeable; the summary flow only depends on
// the top-N cut, not on how sections are scored.
type SectionScorer interface {
	Score(section, audience string) float64
}

// audienceKeywords biases section scoring toward terms each audience
// tends to care about.
var audienceKeywords = map[string][]string{
	"Student":        {"definition", "example", "concept", "summary", "explain", "introduction"},
	"Lawyer":         {"liability", "clause", "agreement", "obligation", "regulation", "contract", "legal", "court"},
	"Researcher":     {"method", "result", "data", "analysis", "study", "hypothesis", "conclusion", "figure"},
	"General Public": {"overview", "impact", "benefit", "cost", "people", "important"},
}

// keywordScorer scores a section by audience keyword overlap plus a mild
// length prior, so substantial sections win ties over fragments.
type keywordScorer struct{}

func (keywordScorer) Score(section, audience string) float64 {
	lower := strings.ToLower(section)
	score := 0.0
	for _, kw := range audienceKeywords[audience] {
		score += float64(strings.Count(lower, kw))
	}

	words := len(strings.Fields(section))
	if words > 20 {
		score += 1.0
	}
	if words > 100 {
		score += 1.0
	}
	return score
}

// SplitSections breaks text into paragraph-level sections on blank lines.
func SplitSections(text string) []string {
	parts := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sections = append(sections, p)
		}
	}
	return sections
}

// TopSections scores each paragraph section against the audience and
// returns the top-N joined back together in their original document
// order. Text that already fits within n sections is returned unchanged.
func TopSections(text, audience string, n int, scorer SectionScorer) string {
	sections := SplitSections(text)
	if n <= 0 || len(sections) <= n {
		return text
	}
	if scorer == nil {
		scorer = keywordScorer{}
	}

	type ranked struct {
		index int
		score float64
	}
	rankings := make([]ranked, len(sections))
	for i, s := range sections {
		rankings[i] = ranked{index: i, score: scorer.Score(s, audience)}
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].score > rankings[j].score
	})
	kept := rankings[:n]
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].index < kept[j].index
	})

	out := make([]string, 0, n)
	for _, r := range kept {
		out = append(out, sections[r.index])
	}
	return strings.Join(out, "\n\n")
}
