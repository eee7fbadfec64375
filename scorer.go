// ═══════════════════════════════════════════════════════════════════════════════
// BM25 SCORING
// ═══════════════════════════════════════════════════════════════════════════════
// BM25 (Best Matching 25) estimates how relevant a document is to a query.
// It is the ranking function behind Lucene, Elasticsearch, and Solr.
//
// FOR EACH QUERY TERM:
//
//	score += IDF(term) * (TF * (k1 + 1)) / (TF + k1 * (1 − b + b * (docLen / avgDocLen)))
//
// Where:
//	IDF       = how rare the term is across the corpus (computed at Fit time)
//	TF        = how often the term appears in this document
//	k1        = term frequency saturation (occurrence #10 adds less than #2)
//	b         = length normalization strength (long docs stop winning on bulk)
//	docLen    = this document's token count
//	avgDocLen = mean token count across the corpus
//
// WORKED EXAMPLE:
// ---------------
// Corpus of 2 docs, avgDocLen 2.0. Doc 0 = ["python", "engineer", "python"].
// Query "python", k1=1.5, b=0.75:
//
//	IDF("python") = ln((2 − 1 + 0.5)/(1 + 0.5) + 1) = ln(2) ≈ 0.693
//	TF = 2, lengthNorm = 3/2
//	score = 0.693 * (2 * 2.5) / (2 + 1.5 * (1 − 0.75 + 0.75 * 1.5)) ≈ 0.853
// ═══════════════════════════════════════════════════════════════════════════════

package jobrank

// BM25Parameters holds the two tuning knobs of the BM25 formula, fixed for
// the lifetime of one ranking operation.
type BM25Parameters struct {
	K1 float64 // Term frequency saturation (typical: 1.2-2.0)
	B  float64 // Length normalization, 0 = ignore length, 1 = full (typical: 0.75)
}

// DefaultBM25Parameters returns the standard tuning: K1 1.5, B 0.75.
func DefaultBM25Parameters() BM25Parameters {
	return BM25Parameters{
		K1: 1.5,
		B:  0.75,
	}
}

// TermScore is one query term's contribution to a document's score, as
// reported by Explain.
type TermScore struct {
	Term         string  // Analyzed query token
	TF           int     // Occurrences in the scored document
	IDF          float64 // Corpus-wide inverse document frequency
	Contribution float64 // idf * saturated-tf, the amount added to the score
}

// Score computes the BM25 relevance of the fitted document at docIndex
// against a free-text query.
//
// BEHAVIOR:
// ---------
//   - docIndex out of range → 0.0, never a panic. A ranking pass must not
//     abort a whole batch over one bad index.
//   - The query is analyzed with the same config the documents were fitted
//     with, so query terms and document terms always agree.
//   - Query tokens are iterated RAW, not deduplicated: a term repeated in
//     the query contributes once per occurrence. Query-side term frequency
//     is honored implicitly.
//   - Terms outside the corpus vocabulary, or absent from this document,
//     contribute nothing.
//
// The result is always ≥ 0; exactly 0.0 means no query term matched.
func (idx *CorpusIndex) Score(query string, docIndex int) float64 {
	if docIndex < 0 || docIndex >= len(idx.Documents) {
		return 0.0
	}
	return idx.scoreTokens(TokenizeWithConfig(query, idx.Analyzer), docIndex)
}

// scoreTokens is the shared scoring loop behind Score, Explain, and Rank.
// The query is already analyzed; docIndex is already bounds-checked.
func (idx *CorpusIndex) scoreTokens(queryTokens []string, docIndex int) float64 {
	score := 0.0
	for _, term := range queryTokens {
		score += idx.termContribution(term, docIndex)
	}
	return score
}

// termContribution computes one term's BM25 addend for one document.
func (idx *CorpusIndex) termContribution(term string, docIndex int) float64 {
	idf, inVocabulary := idx.IDF[term]
	if !inVocabulary {
		return 0.0
	}

	tf := float64(idx.TermFreqs[docIndex][term])
	if tf == 0 {
		return 0.0
	}

	// With an empty-corpus AvgDocLen of 0 the length ratio is undefined;
	// fall back to 1 (treat the document as average length).
	lengthNorm := 1.0
	if idx.AvgDocLen > 0 {
		lengthNorm = float64(idx.DocLengths[docIndex]) / idx.AvgDocLen
	}

	k1, b := idx.BM25.K1, idx.BM25.B
	numerator := tf * (k1 + 1)
	denominator := tf + k1*(1-b+b*lengthNorm)
	return idf * (numerator / denominator)
}

// Explain returns the per-term breakdown of Score(query, docIndex): one
// TermScore per matching query token, in query order, repeated tokens
// included. Summing the Contribution fields reproduces Score exactly.
//
// Non-matching tokens (unknown term, or term absent from this document) are
// omitted, so an empty result means the document scored 0.0.
func (idx *CorpusIndex) Explain(query string, docIndex int) []TermScore {
	if docIndex < 0 || docIndex >= len(idx.Documents) {
		return nil
	}

	var breakdown []TermScore
	for _, term := range TokenizeWithConfig(query, idx.Analyzer) {
		contribution := idx.termContribution(term, docIndex)
		if contribution == 0 {
			continue
		}
		breakdown = append(breakdown, TermScore{
			Term:         term,
			TF:           idx.TermFreqs[docIndex][term],
			IDF:          idx.IDF[term],
			Contribution: contribution,
		})
	}
	return breakdown
}
