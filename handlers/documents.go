package handlers

import (
	"fmt"
	"log"
	"net/http"

	"autoskola_dashboard/datasource"
	"autoskola_dashboard/document"
	"autoskola_dashboard/storage"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	src   datasource.Source
	store storage.ReportStore
}

func NewDocumentHandler(src datasource.Source, store storage.ReportStore) *DocumentHandler {
	return &DocumentHandler{src: src, store: store}
}

type DrivingLogRequest struct {
	InstructorID int    `json:"instructor_id" binding:"required"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
}

type RegistrationRequest struct {
	CandidateID int `json:"candidate_id" binding:"required"`
	ExamID      int `json:"exam_id" binding:"required"`
}

// GenerateDrivingLog renders the daily driving-log sheet for one
// instructor, saves the summary record and streams the PDF
func (h *DocumentHandler) GenerateDrivingLog(c *gin.Context) {
	var req DrivingLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	instructor, err := h.src.InstructorByID(c.Request.Context(), req.InstructorID)
	if err == datasource.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching instructor %d: %v", req.InstructorID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch instructor"})
		return
	}

	pdfBytes, filename, report, err := document.GenerateDrivingLog(*instructor, req.Date)
	if err != nil {
		log.Printf("Error generating driving log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		return
	}

	reportID, err := h.store.SaveDailyReport(c.Request.Context(), report)
	if err != nil {
		log.Printf("Error saving daily report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save daily report"})
		return
	}

	c.Header("X-Report-ID", fmt.Sprintf("%d", reportID))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GenerateRegistration renders the exam registration form (prijavnica)
// and streams the PDF. The candidate, their instructor and the exam
// session must all resolve, otherwise the request is refused.
func (h *DocumentHandler) GenerateRegistration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	candidate, err := h.src.CandidateByID(ctx, req.CandidateID)
	if err == datasource.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching candidate %d: %v", req.CandidateID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch candidate"})
		return
	}

	exam, err := h.src.ExamSessionByID(ctx, req.ExamID)
	if err == datasource.ErrNotFound {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Exam session not found for candidate"})
		return
	}
	if err != nil {
		log.Printf("Error fetching exam session %d: %v", req.ExamID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch exam session"})
		return
	}

	if candidate.InstructorID == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Candidate has no assigned instructor"})
		return
	}
	instructor, err := h.src.InstructorByID(ctx, *candidate.InstructorID)
	if err == datasource.ErrNotFound {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Candidate's instructor could not be resolved"})
		return
	}
	if err != nil {
		log.Printf("Error fetching instructor %d: %v", *candidate.InstructorID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch instructor"})
		return
	}

	pdfBytes, filename, err := document.GenerateRegistrationForm(candidate, instructor, exam)
	if err == document.ErrIncompleteData {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Incomplete data for registration form"})
		return
	}
	if err != nil {
		log.Printf("Error generating registration form: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
