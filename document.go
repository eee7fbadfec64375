// ═══════════════════════════════════════════════════════════════════════════════
// DOCUMENT PROJECTION: Field Weighting by Repetition
// ═══════════════════════════════════════════════════════════════════════════════
// A job posting is not one blob of text: a query term in the TITLE means far
// more than the same term buried in paragraph four of the description. Real
// multi-field BM25 (BM25F) scores each field separately and combines them.
// This engine uses a simpler trick with nearly the same effect: project the
// record into ONE synthetic text, repeating the high-signal fields.
//
// EXAMPLE:
// --------
// JobRecord{
//     Title:       "Senior Python Engineer",
//     Company:     "Acme",
//     Description: "We need Python and AWS skills",
// }
//
// projects (with default weights) to:
//
// "Senior Python Engineer Senior Python Engineer Senior Python Engineer
//  Acme Acme We need Python and AWS skills"
//
// "python" now has term frequency 4 instead of 2, so a title match outranks
// a description-only match through ordinary single-field BM25 — no separate
// per-field scoring machinery needed.
// ═══════════════════════════════════════════════════════════════════════════════

package jobrank

import "strings"

// JobRecord is one job posting as seen by the ranking engine.
//
// Every field is optional: an empty string or nil slice means the field is
// absent and contributes nothing to the projected text. The engine never
// mutates a record and attaches no identity to it; callers keep whatever
// IDs, URLs, or timestamps they need on their own side.
type JobRecord struct {
	Title       string   // Job title, e.g. "Senior Python Engineer"
	Company     string   // Company name
	Location    string   // Free-form location, e.g. "Berlin (Remote)"
	Description string   // Full job description text
	Keywords    []string // Extracted skill keywords, in extraction order
}

// FieldWeights sets how many times each field is repeated in the projected
// text. A weight of n multiplies the field's term frequencies by n; zero or
// negative drops the field from ranking entirely.
type FieldWeights struct {
	Title       int
	Company     int
	Location    int
	Description int
	Keyword     int // Applied to each keyword individually
}

// DefaultFieldWeights returns the standard projection weights:
// title 3x, company 2x, location 2x, description 1x, each keyword 2x.
func DefaultFieldWeights() FieldWeights {
	return FieldWeights{
		Title:       3,
		Company:     2,
		Location:    2,
		Description: 1,
		Keyword:     2,
	}
}

// ProjectText flattens a record into a single whitespace-joined string with
// field-specific repetition, in fixed field order: title, company, location,
// description, then keywords in their given order.
//
// Absent fields are skipped entirely — they contribute zero tokens, not
// empty placeholders. The result feeds the tokenizer; it is never shown to
// users.
func ProjectText(job JobRecord, weights FieldWeights) string {
	var parts []string

	appendRepeated := func(text string, count int) {
		if text == "" {
			return
		}
		for i := 0; i < count; i++ {
			parts = append(parts, text)
		}
	}

	appendRepeated(job.Title, weights.Title)
	appendRepeated(job.Company, weights.Company)
	appendRepeated(job.Location, weights.Location)
	appendRepeated(job.Description, weights.Description)

	for _, keyword := range job.Keywords {
		appendRepeated(keyword, weights.Keyword)
	}

	return strings.Join(parts, " ")
}
