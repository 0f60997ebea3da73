package handlers

import (
	"log"
	"net/http"
	"strconv"

	"autoskola_dashboard/datasource"

	"github.com/gin-gonic/gin"
)

type InstructorHandler struct {
	src datasource.Source
}

func NewInstructorHandler(src datasource.Source) *InstructorHandler {
	return &InstructorHandler{src: src}
}

// GetInstructors handles retrieving all instructors
func (h *InstructorHandler) GetInstructors(c *gin.Context) {
	instructors, err := h.src.Instructors(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching instructors: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch instructors"})
		return
	}

	c.JSON(http.StatusOK, instructors)
}

// GetInstructorByID handles retrieving a single instructor
func (h *InstructorHandler) GetInstructorByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instructor id"})
		return
	}

	instructor, err := h.src.InstructorByID(c.Request.Context(), id)
	if err == datasource.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching instructor %d: %v", id, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch instructor"})
		return
	}

	c.JSON(http.StatusOK, instructor)
}

// GetVehicles handles retrieving all vehicles
func (h *InstructorHandler) GetVehicles(c *gin.Context) {
	vehicles, err := h.src.Vehicles(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching vehicles: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch vehicles"})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}
