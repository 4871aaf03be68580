package intake

import (
	"cmp"
	"slices"
)

// Summary counts the outcomes of a batch.
type Summary struct {
	Total    int `json:"total" yaml:"total"`
	Accepted int `json:"accepted" yaml:"accepted"`
	Rejected int `json:"rejected" yaml:"rejected"`
	Failed   int `json:"failed" yaml:"failed"`
}

// OK reports whether every document was accepted.
func (s Summary) OK() bool {
	return s.Accepted == s.Total
}

// Summarize counts results by outcome.
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome() {
		case OutcomeAccepted:
			summary.Accepted++
		case OutcomeRejected:
			summary.Rejected++
		default:
			summary.Failed++
		}
	}
	return summary
}

// SortByPath orders results by document path, in place.
func SortByPath(results []Result) {
	slices.SortFunc(results, func(a, b Result) int {
		return cmp.Compare(a.Path, b.Path)
	})
}
