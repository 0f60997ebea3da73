package handlers

import (
	"log"
	"net/http"
	"strconv"

	"autoskola_dashboard/datasource"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	src datasource.Source
}

func NewCandidateHandler(src datasource.Source) *CandidateHandler {
	return &CandidateHandler{src: src}
}

// GetCandidates handles retrieving all candidates
func (h *CandidateHandler) GetCandidates(c *gin.Context) {
	candidates, err := h.src.Candidates(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching candidates: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch candidates"})
		return
	}

	// Optional filter by assigned instructor
	if instructorID := c.Query("instructor_id"); instructorID != "" {
		id, err := strconv.Atoi(instructorID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instructor_id"})
			return
		}
		filtered := candidates[:0:0]
		for _, cand := range candidates {
			if cand.InstructorID != nil && *cand.InstructorID == id {
				filtered = append(filtered, cand)
			}
		}
		candidates = filtered
	}

	c.JSON(http.StatusOK, candidates)
}

// GetCandidateByID handles retrieving a single candidate
func (h *CandidateHandler) GetCandidateByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, candidate)
}
