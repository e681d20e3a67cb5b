package match

import (
	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

// Confidence ranks how certain the matcher is that a candidate is
// correct. "none" is a valid outcome, not an error: it leaves the
// decision to a human reviewer.
type Confidence string

const (
	ConfidenceAlta  Confidence = "alta"
	ConfidenceMedia Confidence = "media"
	ConfidenceBaja  Confidence = "baja"
)

// Method names the tier that produced a match.
type Method string

const (
	MethodCode    Method = "code"
	MethodExact   Method = "exact"
	MethodSynonym Method = "synonym"
	MethodFuzzy   Method = "fuzzy"
)

const (
	// minScore is the similarity floor below which a fuzzy candidate
	// is discarded.
	minScore = 0.6
	// mediaScore is the similarity at which a fuzzy match is promoted
	// from baja to media.
	mediaScore = 0.85
	// synonymScore is the fixed score for dictionary hits: above the
	// fuzzy media cutoff, below an exact match.
	synonymScore = 0.8
)

// Result is one ranked candidate for an imported row.
type Result struct {
	AccountID  string
	Confidence Confidence
	Score      float64
	Method     Method
}

// Row is one imported record to be matched: a free-text code and label,
// either of which may be blank.
type Row struct {
	Code string
	Name string
}

// RowMatch pairs an input row with its match, nil when no candidate
// was confident enough.
type RowMatch struct {
	Row   Row
	Match *Result
}

// Match finds the best candidate account for a free-text code and
// label, trying four escalating tiers and stopping at the first hit:
// verbatim code, normalized name equality, synonym dictionary, then
// edit-distance similarity. Returns nil when nothing reaches the
// similarity floor. Deterministic and pure.
func Match(sourceCode, sourceName string, accounts []model.Account) *Result {
	if sourceCode != "" {
		for _, a := range accounts {
			if a.Code == sourceCode {
				return &Result{AccountID: a.ID, Confidence: ConfidenceAlta, Score: 1, Method: MethodCode}
			}
		}
	}

	name := Normalize(sourceName)
	if name == "" {
		return nil
	}

	for _, a := range accounts {
		if Normalize(a.Name) == name {
			return &Result{AccountID: a.ID, Confidence: ConfidenceAlta, Score: 1, Method: MethodExact}
		}
	}

	for _, a := range accounts {
		if synonymHit(name, Normalize(a.Name)) {
			return &Result{AccountID: a.ID, Confidence: ConfidenceMedia, Score: synonymScore, Method: MethodSynonym}
		}
	}

	bestScore := 0.0
	bestID := ""
	for _, a := range accounts {
		if s := similarity(name, Normalize(a.Name)); s > bestScore {
			bestScore = s
			bestID = a.ID
		}
	}
	if bestScore < minScore {
		return nil
	}
	conf := ConfidenceBaja
	if bestScore >= mediaScore {
		conf = ConfidenceMedia
	}
	return &Result{AccountID: bestID, Confidence: conf, Score: bestScore, Method: MethodFuzzy}
}

// Batch applies Match to every row independently. There is no cross-row
// state, so results are order-independent and idempotent.
func Batch(rows []Row, accounts []model.Account) []RowMatch {
	results := make([]RowMatch, len(rows))
	for i, row := range rows {
		results[i] = RowMatch{Row: row, Match: Match(row.Code, row.Name, accounts)}
	}
	return results
}
