package flows

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSections(t *testing.T) {
	text := "first paragraph\n\nsecond paragraph\n\n\n\nthird"
	sections := SplitSections(text)
	assert.Equal(t, []string{"first paragraph", "second paragraph", "third"}, sections)
}

func TestSplitSectionsHandlesWindowsLineEndings(t *testing.T) {
	text := "one\r\n\r\ntwo"
	assert.Equal(t, []string{"one", "two"}, SplitSections(text))
}

func TestTopSectionsKeepsDocumentOrder(t *testing.T) {
	var sections []string
	for i := 0; i < 10; i++ {
		sections = append(sections, fmt.Sprintf("section %d filler text", i))
	}
	// Make sections 7 and 2 clearly the most relevant for Researcher.
	sections[7] = "section 7 method data analysis study result"
	sections[2] = "section 2 hypothesis data method"
	text := strings.Join(sections, "\n\n")

	got := TopSections(text, "Researcher", 2, keywordScorer{})
	kept := SplitSections(got)
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept sections, got %d", len(kept))
	}
	// Original document order must be preserved after the cut.
	assert.Contains(t, kept[0], "section 2")
	assert.Contains(t, kept[1], "section 7")
}

func TestTopSectionsPassThroughWhenUnderBudget(t *testing.T) {
	text := "only one paragraph"
	assert.Equal(t, text, TopSections(text, "Student", 5, keywordScorer{}))
	assert.Equal(t, text, TopSections(text, "Student", 0, keywordScorer{}))
}

func TestTopSectionsWithNilScorerFallsBack(t *testing.T) {
	text := "a\n\nb\n\nc"
	got := TopSections(text, "Student", 2, nil)
	assert.Len(t, SplitSections(got), 2)
}

// countingScorer verifies TopSections consults the injected strategy.
type countingScorer struct{ calls int }

func (s *countingScorer) Score(section, audience string) float64 {
	s.calls++
	return float64(len(section))
}

func TestTopSectionsUsesInjectedScorer(t *testing.T) {
	scorer := &countingScorer{}
	TopSections("a\n\nbb\n\nccc", "Student", 2, scorer)
	if scorer.calls != 3 {
		t.Fatalf("expected scorer to be consulted for all 3 sections, got %d calls", scorer.calls)
	}
}
