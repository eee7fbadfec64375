// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// Text analysis turns raw job-posting text into the tokens the ranking engine
// actually scores. The pipeline is deliberately small:
//
//  1. Lowercasing     → "Senior Python" → "senior python"
//  2. Tokenization    → maximal runs of ASCII letters and digits
//  3. (opt) Stopwords → drop "the", "and", ... when enabled
//  4. (opt) Length    → drop tokens shorter than MinTokenLength
//  5. (opt) Stemming  → "engineering" → "engin" when enabled
//
// EXAMPLE TRANSFORMATION:
// -----------------------
// Input:  "Hello, World! 2024"
// Step 1: "hello, world! 2024"
// Step 2: ["hello", "world", "2024"]
//
// Everything that is not [a-z0-9] acts as a separator and is discarded: this
// means "C++" tokenizes to ["c"], "user@email.com" to ["user", "email", "com"],
// and a string of punctuation yields no tokens at all.
//
// The default configuration runs ONLY steps 1 and 2. Stopword removal, length
// filtering, and stemming are opt-in: job titles and keyword lists are short,
// and dropping or rewriting terms there changes rankings in surprising ways.
// ═══════════════════════════════════════════════════════════════════════════════

package jobrank

import (
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

// AnalyzerConfig controls the optional stages of the analysis pipeline.
//
// The default (see DefaultAnalyzerConfig) performs plain lowercase
// alphanumeric tokenization, which is what ranking uses unless the caller
// opts in to more aggressive normalization. Documents and queries must
// always be analyzed with the SAME config or term lookups silently miss.
type AnalyzerConfig struct {
	MinTokenLength  int  // Minimum token length to keep (default: 1, keep all)
	EnableStemming  bool // Apply Snowball English stemming (default: false)
	EnableStopwords bool // Remove common English stopwords (default: false)
}

// DefaultAnalyzerConfig returns the analyzer configuration used by ranking:
// lowercase alphanumeric tokenization with no filtering.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MinTokenLength:  1,
		EnableStemming:  false,
		EnableStopwords: false,
	}
}

// Tokenize splits text into lowercase alphanumeric tokens using the default
// configuration.
//
// Example:
//
//	Tokenize("Hello, World! 2024")
//	// Returns: ["hello", "world", "2024"]
//
// Tokenize is total: empty input, whitespace, punctuation-only strings, and
// text with no ASCII alphanumerics all return an empty slice, never an error.
func Tokenize(text string) []string {
	return TokenizeWithConfig(text, DefaultAnalyzerConfig())
}

// TokenizeWithConfig runs the full analysis pipeline with a custom
// configuration.
//
// Example:
//
//	config := AnalyzerConfig{MinTokenLength: 2, EnableStemming: true}
//	tokens := TokenizeWithConfig("Building scalable systems", config)
//	// Returns: ["build", "scalabl", "system"]
func TokenizeWithConfig(text string, config AnalyzerConfig) []string {
	tokens := splitAlphanumeric(strings.ToLower(text))

	if config.EnableStopwords {
		tokens = stopwordFilter(tokens)
	}

	if config.MinTokenLength > 1 {
		tokens = lengthFilter(tokens, config.MinTokenLength)
	}

	if config.EnableStemming {
		tokens = stemmerFilter(tokens)
	}

	return tokens
}

// splitAlphanumeric extracts maximal runs of [a-z0-9] in left-to-right order.
//
// Input is expected to be lowercased already. Any rune outside [a-z0-9] is a
// separator, so consecutive separators never produce empty tokens and
// non-ASCII characters are simply discarded.
//
// Why strings.FieldsFunc?
// - Treats runs of separators as one (no empty tokens to filter out)
// - Single pass, no regexp compilation
func splitAlphanumeric(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isAlphanumeric(r)
	})
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// stopwordFilter removes common English words that carry no ranking signal.
func stopwordFilter(tokens []string) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, skip := englishStopwords[token]; !skip {
			r = append(r, token)
		}
	}
	return r
}

// lengthFilter removes tokens shorter than minLength.
func lengthFilter(tokens []string, minLength int) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) >= minLength {
			r = append(r, token)
		}
	}
	return r
}

// stemmerFilter reduces each token to its Snowball (Porter2) English root.
//
// Trade-offs:
// + "engineer" matches "engineering" in descriptions
// - Over-stems some domain terms ("kubernetes" → "kubernet")
// - English-only
func stemmerFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = snowballeng.Stem(token, false)
	}
	return r
}

// englishStopwords is the stopword list applied when EnableStopwords is set.
//
// Kept intentionally short: this library ranks short, keyword-dense records
// (titles, keyword lists), where aggressive stopword removal does more harm
// than good. Uses struct{} values for zero-byte map entries.
var englishStopwords = map[string]struct{}{
	"a":     {},
	"an":    {},
	"and":   {},
	"are":   {},
	"as":    {},
	"at":    {},
	"be":    {},
	"but":   {},
	"by":    {},
	"for":   {},
	"from":  {},
	"has":   {},
	"have":  {},
	"he":    {},
	"her":   {},
	"his":   {},
	"if":    {},
	"in":    {},
	"into":  {},
	"is":    {},
	"it":    {},
	"its":   {},
	"my":    {},
	"no":    {},
	"not":   {},
	"of":    {},
	"on":    {},
	"or":    {},
	"our":   {},
	"she":   {},
	"so":    {},
	"such":  {},
	"that":  {},
	"the":   {},
	"their": {},
	"then":  {},
	"there": {},
	"these": {},
	"they":  {},
	"this":  {},
	"to":    {},
	"was":   {},
	"we":    {},
	"were":  {},
	"will":  {},
	"with":  {},
	"you":   {},
	"your":  {},
}
