package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/travelhub/travel-booking-backend/internal/database"
	"github.com/travelhub/travel-booking-backend/internal/models"
)

// DestinationHandler handles destination endpoints
type DestinationHandler struct {
	store  database.DestinationStore
	logger *logrus.Logger
}

// NewDestinationHandler creates a new DestinationHandler
func NewDestinationHandler(store database.DestinationStore, logger *logrus.Logger) *DestinationHandler {
	return &DestinationHandler{store: store, logger: logger}
}

// Create handles POST /api/destinations
func (h *DestinationHandler) Create(c *gin.Context) {
	var req models.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	destination := models.NewDestination(&req)
	if err := h.store.Create(c.Request.Context(), destination); err != nil {
		h.logger.WithError(err).Error("Failed to create destination")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, destination)
}

// List handles GET /api/destinations
func (h *DestinationHandler) List(c *gin.Context) {
	filter := database.DestinationFilter{}
	// A present but empty type parameter is rejected, not ignored
	if typeParam, ok := c.GetQuery("type"); ok {
		destinationType := models.DestinationType(typeParam)
		if !destinationType.IsValid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "type must be one of: beach, mountain, city, adventure, cultural, nature"})
			return
		}
		filter.Type = &destinationType
	}

	limit := database.DefaultListLimit
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 || parsed > database.MaxListLimit {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "limit must be an integer between 1 and 100"})
			return
		}
		limit = parsed
	}

	destinations, err := h.store.List(c.Request.Context(), filter, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list destinations")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, destinations)
}

// Get handles GET /api/destinations/:id
func (h *DestinationHandler) Get(c *gin.Context) {
	destination, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Destination not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to get destination")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, destination)
}

// Search handles POST /api/destinations/search
func (h *DestinationHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	filter := database.SearchFilter{
		Query:     req.Query,
		Type:      req.DestinationType,
		MinRating: req.MinRating,
	}

	destinations, err := h.store.Search(c.Request.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to search destinations")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, destinations)
}
