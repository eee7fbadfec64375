package jobrank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ═══════════════════════════════════════════════════════════════════════════════
// RANKER FACADE TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestRanker_Rank_ConcreteScenario(t *testing.T) {
	jobs := []JobRecord{
		{
			Title:       "Senior Python Engineer",
			Company:     "Acme",
			Description: "We need Python and AWS skills",
		},
		{
			Title:       "Barista",
			Company:     "Cafe Co",
			Description: "Serve coffee",
		},
	}

	results := NewRanker().Rank(jobs, "python", 0)
	require.Len(t, results, 2)

	assert.Equal(t, "Senior Python Engineer", results[0].Job.Title)
	assert.Greater(t, results[0].Score, 0.0)
	assert.Equal(t, 0.0, results[1].Score)
}

func TestRanker_Rank_TitleOutranksDescription(t *testing.T) {
	// Two near-identical jobs; the query term sits in the title of one and
	// only in the description of the other. Repetition weighting must put
	// the title match first.
	jobs := []JobRecord{
		{Title: "senior developer", Description: "python"},
		{Title: "python developer", Description: "general role"},
	}

	results := NewRanker().Rank(jobs, "python", 0)
	require.Len(t, results, 2)

	assert.Equal(t, "python developer", results[0].Job.Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestRanker_Rank_TopKTruncation(t *testing.T) {
	jobs := []JobRecord{
		{Description: "python"},
		{Description: "python python"},
		{Description: "barista"},
		{Description: "python python python"},
		{Description: "coffee"},
	}

	results := NewRanker().Rank(jobs, "python", 2)
	require.Len(t, results, 2)

	// The two highest scorers are the tf=3 and tf=2 documents, in that
	// order (lengths differ but tf dominates here).
	assert.Equal(t, "python python python", results[0].Job.Description)
	assert.Equal(t, "python python", results[1].Job.Description)
}

func TestRanker_Rank_TopKLargerThanCorpus(t *testing.T) {
	jobs := []JobRecord{{Description: "python"}, {Description: "barista"}}

	results := NewRanker().Rank(jobs, "python", 10)
	assert.Len(t, results, 2)
}

func TestRanker_Rank_ZeroMatchFloor(t *testing.T) {
	jobs := []JobRecord{
		{Title: "first"},
		{Title: "second"},
		{Title: "third"},
	}

	results := NewRanker().Rank(jobs, "snowboarding", 0)
	require.Len(t, results, 3)

	// Every score exactly 0.0, original input order preserved (stable sort).
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, results[i].Job.Title)
		assert.Equal(t, 0.0, results[i].Score)
	}
}

func TestRanker_Rank_EmptyQuery(t *testing.T) {
	jobs := []JobRecord{{Title: "first"}, {Title: "second"}}

	for _, query := range []string{"", "   ", "!!!"} {
		results := NewRanker().Rank(jobs, query, 0)
		require.Len(t, results, 2)
		assert.Equal(t, "first", results[0].Job.Title)
		assert.Equal(t, 0.0, results[0].Score)
		assert.Equal(t, 0.0, results[1].Score)
	}
}

func TestRanker_Rank_EmptyCorpus(t *testing.T) {
	results := NewRanker().Rank(nil, "python", 0)
	assert.Empty(t, results)

	results = NewRanker().Rank([]JobRecord{}, "python", 5)
	assert.Empty(t, results)
}

func TestRanker_Rank_Deterministic(t *testing.T) {
	jobs := []JobRecord{
		{Title: "Python Engineer", Keywords: []string{"python", "aws"}},
		{Title: "Go Developer", Keywords: []string{"golang", "aws"}},
		{Title: "Data Scientist", Description: "python pandas numpy"},
	}

	ranker := NewRanker()
	first := ranker.Rank(jobs, "python aws", 0)
	second := ranker.Rank(jobs, "python aws", 0)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Job.Title, second[i].Job.Title)
		assert.Equal(t, first[i].Score, second[i].Score) // byte-for-byte reproducible
	}
}

func TestRanker_Rank_DoesNotMutateInput(t *testing.T) {
	jobs := []JobRecord{
		{Title: "Python Engineer", Keywords: []string{"python"}},
		{Title: "Barista"},
	}
	original := make([]JobRecord, len(jobs))
	copy(original, jobs)

	NewRanker().Rank(jobs, "python", 1)

	require.Equal(t, original, jobs)
}

func TestRanker_Rank_KeywordsBoost(t *testing.T) {
	// Keywords repeat 2x, description 1x: a keyword match must outrank a
	// description-only match when everything else is equal.
	jobs := []JobRecord{
		{Description: "kubernetes mentioned once here"},
		{Description: "generic mentioned once here", Keywords: []string{"kubernetes"}},
	}

	results := NewRanker().Rank(jobs, "kubernetes", 0)
	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0].Job.Keywords)
}

func TestRanker_RankAll(t *testing.T) {
	jobs := []JobRecord{
		{Description: "python"},
		{Description: "barista"},
		{Description: "python python"},
	}

	results := NewRanker().RankAll(jobs, "python")
	assert.Len(t, results, 3)
}

func TestRanker_CustomConfig_Stemming(t *testing.T) {
	config := DefaultRankerConfig()
	config.Analyzer.EnableStemming = true

	jobs := []JobRecord{
		{Title: "Running Club Coordinator"},
		{Title: "Barista"},
	}

	// With stemming, the query "run" matches the stemmed title token "run".
	results := NewRankerWithConfig(config).Rank(jobs, "run", 0)
	require.Len(t, results, 2)
	assert.Equal(t, "Running Club Coordinator", results[0].Job.Title)
	assert.Greater(t, results[0].Score, 0.0)

	// Without stemming, the same query matches nothing.
	plain := NewRanker().Rank(jobs, "run", 0)
	assert.Equal(t, 0.0, plain[0].Score)
}

func TestRanker_CustomConfig_FieldWeights(t *testing.T) {
	// Inverting the weights makes description matches beat title matches.
	config := DefaultRankerConfig()
	config.Weights = FieldWeights{Title: 1, Company: 1, Location: 1, Description: 3, Keyword: 1}

	jobs := []JobRecord{
		{Title: "python", Description: "general role"},
		{Title: "senior developer", Description: "python"},
	}

	results := NewRankerWithConfig(config).Rank(jobs, "python", 0)
	require.Len(t, results, 2)
	assert.Equal(t, "senior developer", results[0].Job.Title)
}

func TestRanker_ConcurrentRankings(t *testing.T) {
	// Rank builds all state locally, so concurrent calls on the same input
	// slice must not interfere.
	jobs := []JobRecord{
		{Title: "Python Engineer"},
		{Title: "Go Developer"},
		{Title: "Barista"},
	}
	ranker := NewRanker()
	want := ranker.Rank(jobs, "python", 0)

	done := make(chan []ScoredJob, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- ranker.Rank(jobs, "python", 0)
		}()
	}

	for i := 0; i < 8; i++ {
		require.Equal(t, want, <-done)
	}
}
