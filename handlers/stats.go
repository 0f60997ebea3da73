package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"autoskola_dashboard/datasource"
	"autoskola_dashboard/stats"

	"github.com/gin-gonic/gin"
)

// defaultCategories are the practice-test categories shown on the
// dashboard when the caller does not ask for specific ones.
var defaultCategories = []string{"teorija", "znak", "raskrsnica"}

type StatsHandler struct {
	src datasource.Source
}

func NewStatsHandler(src datasource.Source) *StatsHandler {
	return &StatsHandler{src: src}
}

// GetResultStats returns the overall pass rate and per-category score
// averages for practice-test results
func (h *StatsHandler) GetResultStats(c *gin.Context) {
	results, err := h.src.TestResults(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching test results: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch test results"})
		return
	}

	categories := defaultCategories
	if q := c.Query("categories"); q != "" {
		categories = strings.Split(q, ",")
	}

	c.JSON(http.StatusOK, gin.H{
		"total":             len(results),
		"pass_rate":         stats.PassRate(results),
		"category_averages": stats.CategoryAverages(results, categories),
	})
}

// GetPaymentStats returns aggregate payment figures
func (h *StatsHandler) GetPaymentStats(c *gin.Context) {
	payments, err := h.src.Payments(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching payments: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, stats.GlobalPaymentStats(payments))
}

// GetCandidatePaymentProgress returns one candidate's payment progress
// against the agreed package price
func (h *StatsHandler) GetCandidatePaymentProgress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate id"})
		return
	}

	candidate, err := h.src.CandidateByID(c.Request.Context(), id)
	if err == datasource.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching candidate %d: %v", id, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch candidate"})
		return
	}

	payments, err := h.src.PaymentsByCandidate(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error fetching payments for candidate %d: %v", id, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, stats.PaymentProgressFor(*candidate, payments))
}

// GetDashboard returns the stat-card summary for the landing page
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	candidates, err := h.src.Candidates(ctx)
	if err != nil {
		log.Printf("Error fetching candidates: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}
	instructors, err := h.src.Instructors(ctx)
	if err != nil {
		log.Printf("Error fetching instructors: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}
	exams, err := h.src.ExamSessions(ctx)
	if err != nil {
		log.Printf("Error fetching exam sessions: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}
	payments, err := h.src.Payments(ctx)
	if err != nil {
		log.Printf("Error fetching payments: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}
	results, err := h.src.TestResults(ctx)
	if err != nil {
		log.Printf("Error fetching test results: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}

	openExams := 0
	for _, e := range exams {
		if e.Status == "open" {
			openExams++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"candidate_count":    len(candidates),
		"instructor_count":   len(instructors),
		"open_exam_sessions": openExams,
		"pass_rate":          stats.PassRate(results),
		"category_averages":  stats.CategoryAverages(results, defaultCategories),
		"payments":           stats.GlobalPaymentStats(payments),
	})
}
