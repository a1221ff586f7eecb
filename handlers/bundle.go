// File: safesched/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Scheduling session endpoints
	InitiateSession gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Calendar endpoints
	ListParticipants gin.HandlerFunc
	GetAgenda        gin.HandlerFunc
	AddBusyInterval  gin.HandlerFunc

	// Booking log endpoints
	ListBookings gin.HandlerFunc
}
