package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/travelhub/travel-booking-backend/internal/database"
	"github.com/travelhub/travel-booking-backend/internal/models"
)

// HotelHandler handles hotel endpoints
type HotelHandler struct {
	store  database.HotelStore
	logger *logrus.Logger
}

// NewHotelHandler creates a new HotelHandler
func NewHotelHandler(store database.HotelStore, logger *logrus.Logger) *HotelHandler {
	return &HotelHandler{store: store, logger: logger}
}

// Create handles POST /api/hotels
func (h *HotelHandler) Create(c *gin.Context) {
	var req models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	hotel := models.NewHotel(&req)
	if err := h.store.Create(c.Request.Context(), hotel); err != nil {
		h.logger.WithError(err).Error("Failed to create hotel")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, hotel)
}

// List handles GET /api/hotels
func (h *HotelHandler) List(c *gin.Context) {
	filter := database.HotelFilter{DestinationID: c.Query("destination_id")}

	hotels, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list hotels")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, hotels)
}
