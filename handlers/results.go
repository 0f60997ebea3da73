package handlers

import (
	"log"
	"net/http"
	"strconv"

	"autoskola_dashboard/datasource"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	src datasource.Source
}

func NewResultHandler(src datasource.Source) *ResultHandler {
	return &ResultHandler{src: src}
}

// GetTestResults handles retrieving test results with optional filters
func (h *ResultHandler) GetTestResults(c *gin.Context) {
	results, err := h.src.TestResults(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching test results: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch test results"})
		return
	}

	tip := c.Query("tip")
	candidateID := c.Query("candidate_id")
	if tip != "" || candidateID != "" {
		var candID int
		if candidateID != "" {
			candID, err = strconv.Atoi(candidateID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate_id"})
				return
			}
		}
		filtered := results[:0:0]
		for _, r := range results {
			if tip != "" && r.Tip != tip {
				continue
			}
			if candidateID != "" && r.CandidateID != candID {
				continue
			}
			filtered = append(filtered, r)
		}
		results = filtered
	}

	c.JSON(http.StatusOK, results)
}
