// ═══════════════════════════════════════════════════════════════════════════════
// BOOLEAN FILTERS: Narrowing the Corpus Before Ranking
// ═══════════════════════════════════════════════════════════════════════════════
// BM25 ranks by similarity, it never excludes. When the user says "must be
// remote, must mention Go, no crypto", that is a boolean constraint, and
// bitmaps answer it instantly: every term already has a roaring bitmap of
// the documents containing it, so AND/OR/NOT are single bitmap operations.
//
// EXAMPLE USAGE:
// --------------
// Jobs mentioning "golang" AND "remote":
//
//	matches := NewFilterBuilder(idx).
//	    Term("golang").
//	    And().
//	    Term("remote").
//	    Execute()
//
// Jobs mentioning ("golang" OR "rust") but NOT "blockchain", BM25-ranked:
//
//	ranked := NewFilterBuilder(idx).
//	    Group(func(f *FilterBuilder) {
//	        f.Term("golang").Or().Term("rust")
//	    }).
//	    And().Not().Term("blockchain").
//	    ExecuteRanked(10)
//
// Filter terms run through the index's analyzer config, so "Remote!" and
// "remote" constrain identically.
// ═══════════════════════════════════════════════════════════════════════════════

package jobrank

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// FilterMatch is one document selected by a boolean filter, identified by its
// index into the fitted input slice.
type FilterMatch struct {
	DocIndex int     // Position of the matching record in the fitted slice
	Score    float64 // BM25 score against the filter's positive terms
}

// filterOp is a pending boolean operation between filter clauses.
type filterOp int

const (
	opAnd filterOp = iota
	opOr
)

// FilterBuilder accumulates a boolean query against a fitted corpus.
//
// Clauses evaluate left to right; use Group to control precedence. The
// builder is single-use and not safe for concurrent mutation, but it only
// reads from the index, so many builders may share one CorpusIndex.
type FilterBuilder struct {
	index  *CorpusIndex
	stack  []*roaring.Bitmap // Intermediate clause results, in clause order
	ops    []filterOp        // Operation between clause i and clause i+1
	negate bool              // Next clause is negated
	terms  []string          // Positive analyzed terms, kept for ExecuteRanked
}

// NewFilterBuilder starts a boolean filter over a fitted corpus.
func NewFilterBuilder(index *CorpusIndex) *FilterBuilder {
	return &FilterBuilder{index: index}
}

// Term adds a single-term clause: documents whose projected text contains
// the term.
//
// The argument is analyzed first; if analysis yields several tokens (the
// caller passed a phrase), each token becomes its own clause joined by the
// pending operation, mirroring how the text would have been indexed. If
// analysis yields nothing, the clause matches no documents.
func (fb *FilterBuilder) Term(term string) *FilterBuilder {
	tokens := TokenizeWithConfig(term, fb.index.Analyzer)
	if len(tokens) == 0 {
		fb.pushClause(roaring.NewBitmap())
		return fb
	}

	for i, token := range tokens {
		if i > 0 {
			// Multi-token input behaves like repeated Term calls joined
			// with the same pending operator semantics as indexing: all
			// tokens must appear.
			fb.ops = append(fb.ops, opAnd)
		}

		if !fb.negate {
			fb.terms = append(fb.terms, token)
		}
		fb.pushClause(fb.termBitmap(token))
	}
	return fb
}

// And joins the previous and next clauses with intersection.
func (fb *FilterBuilder) And() *FilterBuilder {
	fb.ops = append(fb.ops, opAnd)
	return fb
}

// Or joins the previous and next clauses with union.
func (fb *FilterBuilder) Or() *FilterBuilder {
	fb.ops = append(fb.ops, opOr)
	return fb
}

// Not negates the next clause: documents NOT matching it.
func (fb *FilterBuilder) Not() *FilterBuilder {
	fb.negate = true
	return fb
}

// Group evaluates a sub-filter as one clause, controlling precedence.
//
//	f.Group(func(g *FilterBuilder) { g.Term("golang").Or().Term("rust") }).
//	    And().Term("remote")
//	// (golang OR rust) AND remote
func (fb *FilterBuilder) Group(fn func(*FilterBuilder)) *FilterBuilder {
	sub := NewFilterBuilder(fb.index)
	fn(sub)
	result := sub.Execute()

	if fb.negate {
		result = fb.negateBitmap(result)
		fb.negate = false
	} else {
		fb.terms = append(fb.terms, sub.terms...)
	}

	fb.pushClause(result)
	return fb
}

// Execute evaluates the filter and returns the matching document indices as
// a bitmap. An empty builder matches nothing.
func (fb *FilterBuilder) Execute() *roaring.Bitmap {
	if len(fb.stack) == 0 {
		return roaring.NewBitmap()
	}

	result := fb.stack[0]
	for i := 1; i < len(fb.stack); i++ {
		if i-1 >= len(fb.ops) {
			break
		}
		switch fb.ops[i-1] {
		case opAnd:
			result = roaring.And(result, fb.stack[i])
		case opOr:
			result = roaring.Or(result, fb.stack[i])
		}
	}
	return result
}

// ExecuteRanked evaluates the filter, BM25-scores every matching document
// against the filter's positive terms, and returns the matches sorted by
// score descending (ties in document order). maxResults > 0 truncates;
// maxResults <= 0 returns all matches.
//
// A match kept purely by negative clauses (no positive term hits) scores 0.0
// and sorts last.
func (fb *FilterBuilder) ExecuteRanked(maxResults int) []FilterMatch {
	matched := fb.Execute()

	results := make([]FilterMatch, 0, matched.GetCardinality())
	iter := matched.Iterator()
	for iter.HasNext() {
		docIndex := int(iter.Next())
		results = append(results, FilterMatch{
			DocIndex: docIndex,
			Score:    fb.index.scoreTokens(fb.terms, docIndex),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if maxResults > 0 && maxResults < len(results) {
		results = results[:maxResults]
	}
	return results
}

// termBitmap returns a private copy of the term's document bitmap, applying
// any pending negation.
func (fb *FilterBuilder) termBitmap(token string) *roaring.Bitmap {
	var bitmap *roaring.Bitmap
	if existing, exists := fb.index.DocBitmaps[token]; exists {
		bitmap = existing.Clone() // never hand out the index's own bitmap
	} else {
		bitmap = roaring.NewBitmap()
	}

	if fb.negate {
		bitmap = fb.negateBitmap(bitmap)
		fb.negate = false
	}
	return bitmap
}

// negateBitmap returns all fitted document indices except those set.
func (fb *FilterBuilder) negateBitmap(bitmap *roaring.Bitmap) *roaring.Bitmap {
	all := roaring.NewBitmap()
	all.AddRange(0, uint64(fb.index.NumDocs()))
	return roaring.AndNot(all, bitmap)
}

func (fb *FilterBuilder) pushClause(bitmap *roaring.Bitmap) {
	fb.stack = append(fb.stack, bitmap)
}

// ═══════════════════════════════════════════════════════════════════════════════
// CONVENIENCE FILTERS
// ═══════════════════════════════════════════════════════════════════════════════

// AllOf returns the documents containing every one of the given terms.
func AllOf(index *CorpusIndex, terms ...string) *roaring.Bitmap {
	if len(terms) == 0 {
		return roaring.NewBitmap()
	}
	fb := NewFilterBuilder(index).Term(terms[0])
	for _, term := range terms[1:] {
		fb.And().Term(term)
	}
	return fb.Execute()
}

// AnyOf returns the documents containing at least one of the given terms.
func AnyOf(index *CorpusIndex, terms ...string) *roaring.Bitmap {
	if len(terms) == 0 {
		return roaring.NewBitmap()
	}
	fb := NewFilterBuilder(index).Term(terms[0])
	for _, term := range terms[1:] {
		fb.Or().Term(term)
	}
	return fb.Execute()
}

// TermExcluding returns the documents containing include but not exclude.
func TermExcluding(index *CorpusIndex, include, exclude string) *roaring.Bitmap {
	return NewFilterBuilder(index).
		Term(include).
		And().Not().Term(exclude).
		Execute()
}
