package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Outcome(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"accepted without error", Result{Path: "a.yml", Record: struct{}{}}, OutcomeAccepted},
		{"rejected with a report", Result{Path: "b.yml", Err: rejection}, OutcomeRejected},
		{"failed with any other error", Result{Path: "c.yml", Err: assert.AnError}, OutcomeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Outcome())
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Run("counts by outcome", func(t *testing.T) {
		summary := Summarize([]Result{
			{Path: "a.yml"},
			{Path: "b.yml", Err: rejection},
			{Path: "c.yml", Err: rejection},
			{Path: "d.yml", Err: assert.AnError},
		})

		assert.Equal(t, Summary{Total: 4, Accepted: 1, Rejected: 2, Failed: 1}, summary)
		assert.False(t, summary.OK())
	})

	t.Run("an empty batch is ok", func(t *testing.T) {
		summary := Summarize(nil)

		assert.Equal(t, Summary{}, summary)
		assert.True(t, summary.OK())
	})
}

func TestSortByPath(t *testing.T) {
	results := []Result{{Path: "c.yml"}, {Path: "a.yml"}, {Path: "b.yml"}}

	SortByPath(results)

	assert.Equal(t, []Result{{Path: "a.yml"}, {Path: "b.yml"}, {Path: "c.yml"}}, results)
}
