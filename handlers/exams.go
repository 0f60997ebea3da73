package handlers

import (
	"log"
	"net/http"
	"strconv"

	"autoskola_dashboard/datasource"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	src datasource.Source
}

func NewExamHandler(src datasource.Source) *ExamHandler {
	return &ExamHandler{src: src}
}

// GetExamSessions handles retrieving all exam sessions
func (h *ExamHandler) GetExamSessions(c *gin.Context) {
	exams, err := h.src.ExamSessions(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching exam sessions: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch exam sessions"})
		return
	}

	// Optional filters on type and status
	examType := c.Query("type")
	status := c.Query("status")
	if examType != "" || status != "" {
		filtered := exams[:0:0]
		for _, e := range exams {
			if examType != "" && e.Type != examType {
				continue
			}
			if status != "" && e.Status != status {
				continue
			}
			filtered = append(filtered, e)
		}
		exams = filtered
	}

	c.JSON(http.StatusOK, exams)
}

// GetExamSessionByID handles retrieving a single exam session
func (h *ExamHandler) GetExamSessionByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exam session id"})
		return
	}

	exam, err := h.src.ExamSessionByID(c.Request.Context(), id)
	if err == datasource.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exam session not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching exam session %d: %v", id, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch exam session"})
		return
	}

	c.JSON(http.StatusOK, exam)
}
