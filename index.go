// ═══════════════════════════════════════════════════════════════════════════════
// CORPUS INDEX: Per-Ranking Document Statistics
// ═══════════════════════════════════════════════════════════════════════════════
// Before any document can be scored, the whole candidate set is "fitted" into
// a CorpusIndex: per-document token statistics plus corpus-wide term weights.
//
// Example: Given these projected documents:
//   Doc 0: "python engineer python"
//   Doc 1: "barista"
//
// The fitted index holds:
//   Documents:  [["python", "engineer", "python"], ["barista"]]
//   DocLengths: [3, 1]
//   TermFreqs:  [{python: 2, engineer: 1}, {barista: 1}]
//   AvgDocLen:  2.0
//   IDF:        {python: ..., engineer: ..., barista: ...}
//   DocBitmaps: {python: {0}, engineer: {0}, barista: {1}}
//
// The index is index-aligned with the input slice: entry i of every
// per-document field describes the record at input position i.
//
// LIFECYCLE:
// ----------
// A CorpusIndex is built fresh by every Fit call and owned by that caller.
// Nothing is cached or shared across calls: Fit is a pure function of its
// inputs, which is what makes concurrent rankings trivially safe. A caller
// ranking one corpus against many queries should Fit once and Score many
// times rather than paying for a refit per query.
// ═══════════════════════════════════════════════════════════════════════════════

package jobrank

import (
	"log/slog"
	"math"

	"github.com/RoaringBitmap/roaring"
)

// CorpusIndex holds the fitted statistics for one ordered batch of records.
//
// All per-document slices share the input slice's length and ordering.
// The struct is read-only after Fit returns; concurrent Score calls against
// the same index are safe.
type CorpusIndex struct {
	// PER-DOCUMENT STORAGE (index-aligned with the fitted input slice)
	Documents  [][]string       // Tokens of each document, occurrence order kept
	DocLengths []int            // Token count of each document
	TermFreqs  []map[string]int // Term → occurrence count within each document

	// CORPUS-WIDE STORAGE
	AvgDocLen  float64                    // Mean document length (0 for empty corpus)
	IDF        map[string]float64         // Term → inverse document frequency
	DocBitmaps map[string]*roaring.Bitmap // Term → bitmap of document indices

	// Configuration the index was fitted with. Score reuses these so query
	// analysis always matches document analysis.
	BM25     BM25Parameters
	Analyzer AnalyzerConfig
	Weights  FieldWeights
}

// NumDocs returns the number of fitted documents.
func (idx *CorpusIndex) NumDocs() int {
	return len(idx.Documents)
}

// Fit builds a CorpusIndex over a batch of job records using the default
// configuration. See FitWithConfig for the mechanics.
func Fit(jobs []JobRecord) *CorpusIndex {
	return FitWithConfig(jobs, DefaultRankerConfig())
}

// FitWithConfig builds a CorpusIndex over a batch of job records.
//
// STEP-BY-STEP:
// -------------
//  1. For each record, in input order:
//     a. Project fields into one weighted text (see ProjectText)
//     b. Tokenize it
//     c. Record the token sequence, its length, and per-term counts
//  2. Compute the average document length (0 when the batch is empty)
//  3. For every distinct term anywhere in the corpus, compute
//
//     IDF(t) = ln((N − docCount(t) + 0.5) / (docCount(t) + 0.5) + 1.0)
//
//     where docCount(t) is how many documents contain t. The +1.0 inside the
//     logarithm keeps IDF strictly positive even for terms present in every
//     document, unlike the textbook Robertson–Sparck-Jones form.
//
// docCount comes straight from the roaring bitmap cardinality: during step 1
// each term's bitmap collects the indices of the documents containing it, so
// step 3 is a map walk with O(1) counting per term.
//
// An empty batch yields a valid degenerate index: zero documents, zero
// AvgDocLen, empty vocabulary. Fit never fails.
func FitWithConfig(jobs []JobRecord, config RankerConfig) *CorpusIndex {
	idx := &CorpusIndex{
		Documents:  make([][]string, 0, len(jobs)),
		DocLengths: make([]int, 0, len(jobs)),
		TermFreqs:  make([]map[string]int, 0, len(jobs)),
		IDF:        make(map[string]float64),
		DocBitmaps: make(map[string]*roaring.Bitmap),
		BM25:       config.BM25,
		Analyzer:   config.Analyzer,
		Weights:    config.Weights,
	}

	// STEP 1: Per-document statistics
	totalTokens := 0
	for docIndex, job := range jobs {
		tokens := TokenizeWithConfig(ProjectText(job, config.Weights), config.Analyzer)

		termFreqs := make(map[string]int, len(tokens))
		for _, token := range tokens {
			termFreqs[token]++

			bitmap, exists := idx.DocBitmaps[token]
			if !exists {
				bitmap = roaring.NewBitmap()
				idx.DocBitmaps[token] = bitmap
			}
			bitmap.Add(uint32(docIndex))
		}

		idx.Documents = append(idx.Documents, tokens)
		idx.DocLengths = append(idx.DocLengths, len(tokens))
		idx.TermFreqs = append(idx.TermFreqs, termFreqs)
		totalTokens += len(tokens)
	}

	// STEP 2: Average document length
	if len(jobs) > 0 {
		idx.AvgDocLen = float64(totalTokens) / float64(len(jobs))
	}

	// STEP 3: IDF per vocabulary term
	n := float64(len(jobs))
	for term, bitmap := range idx.DocBitmaps {
		docCount := float64(bitmap.GetCardinality())
		idx.IDF[term] = math.Log((n-docCount+0.5)/(docCount+0.5) + 1.0)
	}

	slog.Debug("fitted corpus index",
		slog.Int("documents", len(jobs)),
		slog.Int("vocabulary", len(idx.IDF)),
		slog.Float64("avgDocLen", idx.AvgDocLen))

	return idx
}

// CandidateDocuments returns the bitmap union of documents containing at
// least one of the given tokens.
//
// This is the ranking fast path: documents outside the union cannot score
// above zero for the query, so Rank skips the BM25 formula for them without
// changing any result. The returned bitmap is freshly allocated; callers may
// mutate it.
func (idx *CorpusIndex) CandidateDocuments(tokens []string) *roaring.Bitmap {
	candidates := roaring.NewBitmap()
	for _, token := range tokens {
		if bitmap, exists := idx.DocBitmaps[token]; exists {
			candidates.Or(bitmap)
		}
	}
	return candidates
}

// DocCount returns how many fitted documents contain the given term, 0 for
// terms outside the vocabulary.
func (idx *CorpusIndex) DocCount(term string) int {
	bitmap, exists := idx.DocBitmaps[term]
	if !exists {
		return 0
	}
	return int(bitmap.GetCardinality())
}
