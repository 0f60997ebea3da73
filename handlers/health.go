package handlers

import (
	"database/sql"
	"net/http"

	"autoskola_dashboard/datasource"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db  *sql.DB
	src datasource.Source
}

func NewHealthHandler(db *sql.DB, src datasource.Source) *HealthHandler {
	return &HealthHandler{db: db, src: src}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	// Check database connection
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"data_source": h.src.Mode(),
	})
}
