package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookinglogRepo "safesched/database/repository/bookinglog"
)

// BookingLogHandler exposes the append-only booking log.
type BookingLogHandler struct {
	Repo bookinglogRepo.BookingLogRepository
}

// NewBookingLogHandler constructs a BookingLogHandler.
func NewBookingLogHandler(repo bookinglogRepo.BookingLogRepository) *BookingLogHandler {
	return &BookingLogHandler{Repo: repo}
}

// ListBookings returns all committed bookings in creation order.
func (h *BookingLogHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Repo.List(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
