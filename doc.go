// Package jobrank ranks scraped job postings against a free-text query using
// BM25 over field-weighted documents.
//
// The engine is a pure in-memory computation: no storage, no network, no
// shared state between calls. Callers assemble the candidate records, the
// package orders them.
//
// # Quick Start
//
//	ranker := jobrank.NewRanker()
//	results := ranker.Rank(jobs, "senior python remote", 20)
//	for _, r := range results {
//	    fmt.Println(r.Job.Title, r.Score)
//	}
//
// # Fit Once, Score Many
//
// Rank rebuilds its index on every call so results always reflect the batch
// it was handed. To rank one batch against several queries without refitting:
//
//	idx := jobrank.Fit(jobs)
//	a := idx.Score("python", 0)
//	b := idx.Score("golang", 0)
//
// # Boolean Pre-Filtering
//
// Hard constraints compose with relevance ranking through FilterBuilder:
//
//	matches := jobrank.NewFilterBuilder(idx).
//	    Term("golang").
//	    And().Not().Term("blockchain").
//	    ExecuteRanked(10)
package jobrank
