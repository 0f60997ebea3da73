package handlers

import (
	"log"
	"net/http"
	"strconv"

	"autoskola_dashboard/datasource"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	src datasource.Source
}

func NewPaymentHandler(src datasource.Source) *PaymentHandler {
	return &PaymentHandler{src: src}
}

// GetPayments handles retrieving payments, optionally for one candidate
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	if candidateID := c.Query("candidate_id"); candidateID != "" {
		id, err := strconv.Atoi(candidateID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate_id"})
			return
		}
		payments, err := h.src.PaymentsByCandidate(c.Request.Context(), id)
		if err != nil {
			log.Printf("Error fetching payments for candidate %d: %v", id, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
		return
	}

	payments, err := h.src.Payments(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching payments: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
