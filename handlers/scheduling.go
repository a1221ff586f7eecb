package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"safesched/models"
	"safesched/services/conference"
	"safesched/services/scheduling"
)

// SchedulingHandler exposes the scheduling session flow over HTTP.
type SchedulingHandler struct {
	Service scheduling.SessionService
	Logger  *zap.Logger
}

// NewSchedulingHandler constructs a SchedulingHandler.
func NewSchedulingHandler(svc scheduling.SessionService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: svc, Logger: logger}
}

// InitiateSession parses a free-text request, computes candidate slots and
// opens a new scheduling session.
func (h *SchedulingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.InitiateSession(c.Request.Context(), input.Text)
	if err != nil {
		h.Logger.Error("failed to initiate scheduling session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate scheduling session", "details": err.Error()})
		return
	}

	resp := models.SchedulingResponse{
		SessionID:  session.SessionID,
		Request:    &session.Request,
		Candidates: session.Candidates,
	}
	if len(session.Candidates) == 0 {
		// Zero candidates is a normal outcome, not an error.
		c.JSON(http.StatusOK, gin.H{
			"sessionID":  session.SessionID,
			"request":    session.Request,
			"candidates": []models.Candidate{},
			"message":    "No free slots found in the requested window. Widen the timeframe or reduce the duration.",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSession records the user's slot selection on an open session.
func (h *SchedulingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		SlotStart time.Time `json:"slotStart" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectSlot(c.Request.Context(), sessionID, input.SlotStart)
	if err != nil {
		h.respondSessionError(c, err, "failed to select slot")
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking finalizes the session into a Booking. The consent flag is a
// precondition supplied by the host surface; commit is refused without it.
func (h *SchedulingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID" binding:"required"`
		Consent   bool   `json:"consent"`
		Provider  string `json:"provider"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !input.Consent {
		c.JSON(http.StatusForbidden, gin.H{"error": "consent is required before booking"})
		return
	}

	provider := conference.Provider(input.Provider)
	if provider == "" {
		provider = conference.ProviderFallback
	}

	booking, err := h.Service.ConfirmBooking(c.Request.Context(), input.SessionID, provider)
	if err != nil {
		if scheduling.IsConflict(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot is no longer available, please re-run the search", "details": err.Error()})
			return
		}
		h.respondSessionError(c, err, "failed to confirm booking")
		return
	}

	c.JSON(http.StatusOK, models.SchedulingResponse{Booking: booking})
}

// CancelSession abandons an open session with no side effects.
func (h *SchedulingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.Logger.Error("failed to cancel scheduling session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

func (h *SchedulingHandler) respondSessionError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, scheduling.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "scheduling session not found or expired"})
	case scheduling.IsInvalidRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "details": err.Error()})
	}
}
