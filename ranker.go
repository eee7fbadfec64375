// ═══════════════════════════════════════════════════════════════════════════════
// RANKER: The Public Entry Point
// ═══════════════════════════════════════════════════════════════════════════════
// Rank is what the rest of the system calls: give it the scraped candidate
// jobs and the user's query, get back the jobs ordered by relevance.
//
// COMPLETE FLOW:
// --------------
// Rank(jobs, "python aws", topK=10)
//
//	Step 1: Fit → project + tokenize every job, compute IDF  (fresh each call)
//	Step 2: Candidate pruning → bitmap union of docs containing any query term
//	Step 3: Score every candidate with BM25 (non-candidates stay at 0.0)
//	Step 4: Stable sort by score, descending
//	Step 5: Truncate to topK
//
// Refitting on every call is deliberate: the candidate set changes between
// searches and a fresh index is always consistent with it. A caller ranking
// ONE corpus against MANY queries should instead Fit once and Score per
// query — both operations are public for exactly that reason.
// ═══════════════════════════════════════════════════════════════════════════════

package jobrank

import (
	"log/slog"
	"sort"
)

// ScoredJob pairs an input record with its BM25 relevance score.
type ScoredJob struct {
	Job   JobRecord // The original record, unmodified
	Score float64   // ≥ 0; exactly 0.0 when no query term matched
}

// RankerConfig bundles everything tunable about a ranking operation. Each
// Ranker owns its config by value, so differently-tuned rankers can run
// concurrently in one process without interference.
type RankerConfig struct {
	BM25     BM25Parameters
	Analyzer AnalyzerConfig
	Weights  FieldWeights
}

// DefaultRankerConfig returns the standard tuning: BM25 k1=1.5 b=0.75,
// plain alphanumeric tokenization, title-heavy field weights.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		BM25:     DefaultBM25Parameters(),
		Analyzer: DefaultAnalyzerConfig(),
		Weights:  DefaultFieldWeights(),
	}
}

// Ranker orders job records by BM25 relevance to a query.
//
// A Ranker is stateless between calls — no index survives a Rank — and is
// safe for concurrent use as long as callers do not mutate the input slice
// mid-call. The zero value is NOT usable; construct via NewRanker or
// NewRankerWithConfig.
type Ranker struct {
	config RankerConfig
}

// NewRanker returns a Ranker with the default configuration.
func NewRanker() *Ranker {
	return NewRankerWithConfig(DefaultRankerConfig())
}

// NewRankerWithConfig returns a Ranker with custom tuning.
func NewRankerWithConfig(config RankerConfig) *Ranker {
	return &Ranker{config: config}
}

// Rank scores every job against the query and returns them ordered by score,
// highest first.
//
// Ties keep their original input order (stable sort) — exact ties are common
// in BM25, most obviously the all-zero scores of a query matching nothing.
// topK > 0 truncates the result to the topK best entries; topK <= 0 or
// topK >= len(jobs) returns all of them.
//
// Rank never fails: an empty corpus returns an empty slice, an empty or
// unmatchable query returns every job at score 0.0 in input order. The
// input slice and its records are never modified.
func (r *Ranker) Rank(jobs []JobRecord, query string, topK int) []ScoredJob {
	slog.Debug("ranking jobs",
		slog.String("query", query),
		slog.Int("corpus", len(jobs)),
		slog.Int("topK", topK))

	idx := FitWithConfig(jobs, r.config)
	queryTokens := TokenizeWithConfig(query, r.config.Analyzer)

	// Score only documents that contain at least one query term; everything
	// else keeps the 0.0 it was initialized with. Same results as scoring
	// all N, minus the wasted formula evaluations.
	results := make([]ScoredJob, len(jobs))
	for i, job := range jobs {
		results[i] = ScoredJob{Job: job}
	}

	candidates := idx.CandidateDocuments(queryTokens)
	iter := candidates.Iterator()
	for iter.HasNext() {
		docIndex := int(iter.Next())
		results[docIndex].Score = idx.scoreTokens(queryTokens, docIndex)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK > 0 && topK < len(results) {
		results = results[:topK]
	}
	return results
}

// RankAll is Rank without truncation: every job comes back, scored and
// sorted.
func (r *Ranker) RankAll(jobs []JobRecord, query string) []ScoredJob {
	return r.Rank(jobs, query, 0)
}
