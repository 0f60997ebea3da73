package handlers

import (
	"log"
	"net/http"
	"strconv"

	"autoskola_dashboard/storage"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	store storage.ReportStore
}

func NewReportHandler(store storage.ReportStore) *ReportHandler {
	return &ReportHandler{store: store}
}

// GetReports handles retrieving all stored daily reports
func (h *ReportHandler) GetReports(c *gin.Context) {
	reports, err := h.store.ListDailyReports(c.Request.Context())
	if err != nil {
		log.Printf("Error listing daily reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetReportByID handles retrieving a single daily report
func (h *ReportHandler) GetReportByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	report, err := h.store.DailyReportByID(c.Request.Context(), id)
	if err == storage.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching daily report %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
