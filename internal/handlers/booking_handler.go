package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/travelhub/travel-booking-backend/internal/database"
	"github.com/travelhub/travel-booking-backend/internal/models"
	"github.com/travelhub/travel-booking-backend/internal/services"
)

// BookingHandler handles booking endpoints
type BookingHandler struct {
	service *services.BookingService
	logger  *logrus.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(service *services.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	booking, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var validationErr *models.ValidationError
		var referenceErr *services.ReferenceError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": validationErr.Error()})
		case errors.As(err, &referenceErr):
			c.JSON(http.StatusNotFound, gin.H{"detail": referenceErr.Error()})
		default:
			h.logger.WithError(err).Error("Failed to create booking")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// List handles GET /api/bookings
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), c.Query("user_email"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Get handles GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Booking not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to get booking")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
