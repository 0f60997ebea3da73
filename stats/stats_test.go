package stats

import (
	"testing"

	"autoskola_dashboard/models"
)

func TestPassRate(t *testing.T) {
	tests := []struct {
		name    string
		results []models.TestResult
		want    int
	}{
		{name: "empty", results: nil, want: 0},
		{name: "all passed", results: []models.TestResult{{Passed: true}, {Passed: true}}, want: 100},
		{name: "none passed", results: []models.TestResult{{}, {}}, want: 0},
		{name: "half", results: []models.TestResult{{Passed: true}, {}}, want: 50},
		{name: "rounds half up", results: []models.TestResult{{Passed: true}, {}, {}}, want: 33},
		{
			name:    "two thirds",
			results: []models.TestResult{{Passed: true}, {Passed: true}, {}},
			want:    67,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PassRate(tt.results)
			if got != tt.want {
				t.Errorf("PassRate() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("PassRate() = %d, out of [0,100]", got)
			}
		})
	}
}

func TestCategoryAverages(t *testing.T) {
	results := []models.TestResult{
		{Tip: "teorija", Score: 90},
		{Tip: "teorija", Score: 80},
		{Tip: "znak", Score: 70},
		{Tip: "nepoznato", Score: 100}, // unlisted category, must land nowhere
	}
	categories := []string{"teorija", "znak", "raskrsnica"}

	got := CategoryAverages(results, categories)

	want := map[string]int{"teorija": 85, "znak": 70, "raskrsnica": 0}
	for cat, avg := range want {
		if got[cat] != avg {
			t.Errorf("CategoryAverages()[%q] = %d, want %d", cat, got[cat], avg)
		}
	}
	if len(got) != len(categories) {
		t.Errorf("CategoryAverages() has %d buckets, want %d", len(got), len(categories))
	}
}

func TestCategoryAveragesEmpty(t *testing.T) {
	got := CategoryAverages(nil, []string{"teorija", "znak"})
	for cat, avg := range got {
		if avg != 0 {
			t.Errorf("CategoryAverages(nil)[%q] = %d, want 0", cat, avg)
		}
	}
}

func TestPaymentProgressFor(t *testing.T) {
	candidate := models.Candidate{ID: 7, PackagePrice: 1000}

	tests := []struct {
		name     string
		payments []models.Payment
		wantPaid float64
		wantPct  int
		wantOver bool
	}{
		{name: "no payments", wantPaid: 0, wantPct: 0},
		{
			name: "partial",
			payments: []models.Payment{
				{CandidateID: 7, Amount: 250, Status: models.PaymentStatusCompleted},
			},
			wantPaid: 250, wantPct: 25,
		},
		{
			name: "pending and other candidates ignored",
			payments: []models.Payment{
				{CandidateID: 7, Amount: 500, Status: models.PaymentStatusCompleted},
				{CandidateID: 7, Amount: 500, Status: models.PaymentStatusPending},
				{CandidateID: 8, Amount: 500, Status: models.PaymentStatusCompleted},
			},
			wantPaid: 500, wantPct: 50,
		},
		{
			name: "overpayment clamps to 100",
			payments: []models.Payment{
				{CandidateID: 7, Amount: 1200, Status: models.PaymentStatusCompleted},
			},
			wantPaid: 1200, wantPct: 100, wantOver: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaymentProgressFor(candidate, tt.payments)
			if got.PaidAmount != tt.wantPaid {
				t.Errorf("PaidAmount = %v, want %v", got.PaidAmount, tt.wantPaid)
			}
			if got.Percentage != tt.wantPct {
				t.Errorf("Percentage = %d, want %d", got.Percentage, tt.wantPct)
			}
			if got.Overpaid != tt.wantOver {
				t.Errorf("Overpaid = %v, want %v", got.Overpaid, tt.wantOver)
			}
		})
	}
}

func TestPaymentProgressMonotone(t *testing.T) {
	candidate := models.Candidate{ID: 1, PackagePrice: 800}
	prev := -1
	for paid := 0.0; paid <= 800; paid += 50 {
		p := PaymentProgressFor(candidate, []models.Payment{
			{CandidateID: 1, Amount: paid, Status: models.PaymentStatusCompleted},
		})
		if p.Percentage < prev {
			t.Fatalf("percentage decreased: paid=%v pct=%d prev=%d", paid, p.Percentage, prev)
		}
		prev = p.Percentage
	}
}

func TestPaymentProgressZeroTotal(t *testing.T) {
	candidate := models.Candidate{ID: 1, PackagePrice: 0}
	got := PaymentProgressFor(candidate, []models.Payment{
		{CandidateID: 1, Amount: 100, Status: models.PaymentStatusCompleted},
	})
	if got.Percentage != 0 {
		t.Errorf("Percentage = %d, want 0 for zero package price", got.Percentage)
	}
	if !got.Overpaid {
		t.Error("expected Overpaid for nonzero paid against zero package price")
	}
}

func TestGlobalPaymentStats(t *testing.T) {
	got := GlobalPaymentStats([]models.Payment{
		{Amount: 500, Status: models.PaymentStatusCompleted},
		{Amount: 300, Status: models.PaymentStatusPending},
	})
	if got.Count != 2 || got.TotalAmount != 800 || got.CompletedCount != 1 || got.AverageAmount != 400 {
		t.Errorf("GlobalPaymentStats() = %+v, want count=2 total=800 completed=1 avg=400", got)
	}
}

func TestGlobalPaymentStatsEmpty(t *testing.T) {
	got := GlobalPaymentStats(nil)
	if got.Count != 0 || got.AverageAmount != 0 {
		t.Errorf("GlobalPaymentStats(nil) = %+v, want zeroes", got)
	}
}
