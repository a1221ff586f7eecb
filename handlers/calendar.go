package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	availabilityRepo "safesched/database/repository/availability"
	"safesched/config"
)

// CalendarHandler exposes read access to participant calendars plus busy
// interval seeding for demos and tests.
type CalendarHandler struct {
	Repo availabilityRepo.AvailabilityRepository
}

// NewCalendarHandler constructs a CalendarHandler.
func NewCalendarHandler(repo availabilityRepo.AvailabilityRepository) *CalendarHandler {
	return &CalendarHandler{Repo: repo}
}

// ListParticipants returns all known participant identifiers.
func (h *CalendarHandler) ListParticipants(c *gin.Context) {
	participants, err := h.Repo.Participants(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list participants", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list participants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": participants})
}

// GetAgenda returns the participant's clipped busy intervals within a window.
// The window defaults to the next seven days.
func (h *CalendarHandler) GetAgenda(c *gin.Context) {
	participant := c.Param("participant")
	now := time.Now().In(config.Location())

	from := now
	to := now.AddDate(0, 0, 7)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp, expected RFC3339"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp, expected RFC3339"})
			return
		}
		to = parsed
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must be after 'from'"})
		return
	}

	busy, err := h.Repo.BusyWithin(c.Request.Context(), participant, from, to)
	if err != nil {
		getLogger(c).Error("failed to fetch busy intervals",
			zap.String("participant", participant), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch busy intervals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"participant": participant, "from": from, "to": to, "busy": busy})
}

// AddBusyInterval appends a busy interval to the participant's calendar.
// Intended for demo seeding and test setup; bookings go through the
// scheduling flow.
func (h *CalendarHandler) AddBusyInterval(c *gin.Context) {
	participant := c.Param("participant")
	var input struct {
		Start time.Time `json:"start" binding:"required"`
		End   time.Time `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !input.End.After(input.Start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
		return
	}

	if err := h.Repo.AddBusy(c.Request.Context(), participant, input.Start, input.End); err != nil {
		getLogger(c).Error("failed to add busy interval",
			zap.String("participant", participant), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add busy interval"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"participant": participant, "start": input.Start, "end": input.End})
}
