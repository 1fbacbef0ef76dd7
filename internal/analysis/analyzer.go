package analysis

import (
	"time"

	"finadvisor/internal/models"
)

// Analyze runs the full pipeline over a transaction snapshot and returns a
// fresh report. The snapshot can come from the live store or from a CSV batch
// that was never persisted; repeated calls at the same reference time return
// identical reports and leave the input untouched.
func Analyze(now time.Time, txs []models.Transaction) *Report {
	patterns := Patterns(now, txs)
	waste := Waste(txs)
	opps := Opportunities(txs)

	return &Report{
		Patterns:        patterns,
		Waste:           waste,
		Opportunities:   opps,
		Trends:          TrendsFor(txs),
		Categories:      Categories(txs),
		Recommendations: Recommendations(patterns, waste, opps),
		Alerts:          Alerts(patterns, waste, txs),
	}
}
