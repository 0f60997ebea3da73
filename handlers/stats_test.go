package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoskola_dashboard/datasource"

	"github.com/gin-gonic/gin"
)

func setupStatsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStatsHandler(datasource.NewFixtureSource())
	r.GET("/stats/results", h.GetResultStats)
	r.GET("/stats/payments", h.GetPaymentStats)
	r.GET("/candidates/:id/payments/progress", h.GetCandidatePaymentProgress)
	r.GET("/dashboard", h.GetDashboard)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := map[string]json.RawMessage{}
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response for %s: %v", path, err)
		}
	}
	return w, body
}

func TestGetResultStats(t *testing.T) {
	r := setupStatsRouter()
	w, body := doGet(t, r, "/stats/results")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var passRate int
	if err := json.Unmarshal(body["pass_rate"], &passRate); err != nil {
		t.Fatal(err)
	}
	// Fixture holds 4 results, 2 passed.
	if passRate != 50 {
		t.Errorf("pass_rate = %d, want 50", passRate)
	}

	var averages map[string]int
	if err := json.Unmarshal(body["category_averages"], &averages); err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"teorija": 85, "znak": 70, "raskrsnica": 55}
	for cat, avg := range want {
		if averages[cat] != avg {
			t.Errorf("category_averages[%q] = %d, want %d", cat, averages[cat], avg)
		}
	}
}

func TestGetResultStatsCustomCategories(t *testing.T) {
	r := setupStatsRouter()
	w, body := doGet(t, r, "/stats/results?categories=teorija,nepostojeca")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var averages map[string]int
	if err := json.Unmarshal(body["category_averages"], &averages); err != nil {
		t.Fatal(err)
	}
	if len(averages) != 2 {
		t.Errorf("got %d buckets, want 2", len(averages))
	}
	if averages["teorija"] != 85 || averages["nepostojeca"] != 0 {
		t.Errorf("category_averages = %v", averages)
	}
}

func TestGetPaymentStats(t *testing.T) {
	r := setupStatsRouter()
	w, _ := doGet(t, r, "/stats/payments")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got struct {
		Count          int     `json:"count"`
		TotalAmount    float64 `json:"total_amount"`
		CompletedCount int     `json:"completed_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Count != 3 || got.TotalAmount != 1900 || got.CompletedCount != 2 {
		t.Errorf("payment stats = %+v", got)
	}
}

func TestGetCandidatePaymentProgress(t *testing.T) {
	r := setupStatsRouter()
	w, _ := doGet(t, r, "/candidates/1/payments/progress")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got struct {
		PaidAmount  float64 `json:"paid_amount"`
		TotalAmount float64 `json:"total_amount"`
		Percentage  int     `json:"percentage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	// Candidate 1: 500 completed of a 1200 package, pending ignored.
	if got.PaidAmount != 500 || got.TotalAmount != 1200 || got.Percentage != 42 {
		t.Errorf("payment progress = %+v", got)
	}
}

func TestGetCandidatePaymentProgressNotFound(t *testing.T) {
	r := setupStatsRouter()
	w, _ := doGet(t, r, "/candidates/999/payments/progress")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetDashboard(t *testing.T) {
	r := setupStatsRouter()
	w, body := doGet(t, r, "/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	for _, key := range []string{"candidate_count", "instructor_count", "open_exam_sessions", "pass_rate", "category_averages", "payments"} {
		if _, ok := body[key]; !ok {
			t.Errorf("dashboard response missing %q", key)
		}
	}

	var openExams int
	if err := json.Unmarshal(body["open_exam_sessions"], &openExams); err != nil {
		t.Fatal(err)
	}
	if openExams != 2 {
		t.Errorf("open_exam_sessions = %d, want 2", openExams)
	}
}
