// Package stats computes derived statistics from in-memory domain
// records. Every function is pure and defined for empty input: ratios
// over zero denominators come back as 0, never NaN.
package stats

import (
	"math"

	"autoskola_dashboard/models"
)

type PaymentProgress struct {
	PaidAmount  float64 `json:"paid_amount"`
	TotalAmount float64 `json:"total_amount"`
	Percentage  int     `json:"percentage"`
	Overpaid    bool    `json:"overpaid"`
}

type PaymentStats struct {
	Count          int     `json:"count"`
	TotalAmount    float64 `json:"total_amount"`
	CompletedCount int     `json:"completed_count"`
	AverageAmount  float64 `json:"average_amount"`
}

// PassRate returns the share of passed results as a whole percentage,
// rounded half up. Empty input yields 0.
func PassRate(results []models.TestResult) int {
	if len(results) == 0 {
		return 0
	}
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return int(math.Round(float64(passed) / float64(len(results)) * 100))
}

// CategoryAverages returns the mean score per category over results
// whose Tip matches. Categories with no matching results map to 0;
// results with an unlisted Tip contribute to no bucket.
func CategoryAverages(results []models.TestResult, categories []string) map[string]int {
	averages := make(map[string]int, len(categories))
	for _, cat := range categories {
		sum := 0.0
		n := 0
		for _, r := range results {
			if r.Tip == cat {
				sum += r.Score
				n++
			}
		}
		if n == 0 {
			averages[cat] = 0
			continue
		}
		averages[cat] = int(math.Round(sum / float64(n)))
	}
	return averages
}

// PaymentProgressFor sums the candidate's completed payments against
// the agreed package price. The percentage is clamped to [0,100];
// overpayment is reported through the Overpaid flag instead of a
// percentage above 100. A zero package price yields percentage 0.
func PaymentProgressFor(candidate models.Candidate, payments []models.Payment) PaymentProgress {
	paid := 0.0
	for _, p := range payments {
		if p.CandidateID == candidate.ID && p.Status == models.PaymentStatusCompleted {
			paid += p.Amount
		}
	}

	progress := PaymentProgress{
		PaidAmount:  paid,
		TotalAmount: candidate.PackagePrice,
	}
	if candidate.PackagePrice <= 0 {
		progress.Overpaid = paid > 0
		return progress
	}

	pct := int(math.Round(paid / candidate.PackagePrice * 100))
	if pct > 100 {
		pct = 100
		progress.Overpaid = true
	}
	progress.Percentage = pct
	return progress
}

// GlobalPaymentStats aggregates all payments regardless of status;
// only CompletedCount looks at the status field.
func GlobalPaymentStats(payments []models.Payment) PaymentStats {
	s := PaymentStats{Count: len(payments)}
	for _, p := range payments {
		s.TotalAmount += p.Amount
		if p.Status == models.PaymentStatusCompleted {
			s.CompletedCount++
		}
	}
	if s.Count > 0 {
		s.AverageAmount = s.TotalAmount / float64(s.Count)
	}
	return s
}
