package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RecommendationHandler handles the recommendation endpoint. This is a
// placeholder: it echoes the submitted preferences alongside two fixed
// suggestions until a real recommendation engine is wired in.
type RecommendationHandler struct {
	logger *logrus.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{logger: logger}
}

// Recommend handles POST /api/recommendations
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var preferences map[string]interface{}
	if err := c.ShouldBindJSON(&preferences); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "AI recommendations will be available once OpenAI API is configured",
		"preferences": preferences,
		"mock_recommendations": []gin.H{
			{
				"destination": "Paris, France",
				"reason":      "Perfect for cultural enthusiasts",
				"confidence":  0.95,
			},
			{
				"destination": "Bali, Indonesia",
				"reason":      "Great for beach lovers and relaxation",
				"confidence":  0.87,
			},
		},
	})
}
