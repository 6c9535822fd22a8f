package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/travel-booking-backend/internal/database"
	"github.com/travelhub/travel-booking-backend/internal/models"
	"github.com/travelhub/travel-booking-backend/internal/services"
)

type testEnv struct {
	router       *gin.Engine
	destinations *database.MemoryDestinationStore
	hotels       *database.MemoryHotelStore
	bookings     *database.MemoryBookingStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	env := &testEnv{
		destinations: database.NewMemoryDestinationStore(),
		hotels:       database.NewMemoryHotelStore(),
		bookings:     database.NewMemoryBookingStore(),
	}

	bookingService := services.NewBookingService(env.destinations, env.hotels, env.bookings, logger)

	destinationHandler := NewDestinationHandler(env.destinations, logger)
	hotelHandler := NewHotelHandler(env.hotels, logger)
	bookingHandler := NewBookingHandler(bookingService, logger)
	recommendationHandler := NewRecommendationHandler(logger)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/destinations", destinationHandler.Create)
		api.GET("/destinations", destinationHandler.List)
		api.GET("/destinations/:id", destinationHandler.Get)
		api.POST("/destinations/search", destinationHandler.Search)

		api.POST("/hotels", hotelHandler.Create)
		api.GET("/hotels", hotelHandler.List)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.List)
		api.GET("/bookings/:id", bookingHandler.Get)

		api.POST("/recommendations", recommendationHandler.Recommend)
	}
	env.router = router

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedDestination(t *testing.T, destination models.Destination) {
	t.Helper()
	require.NoError(t, e.destinations.Create(context.Background(), &destination))
}

func (e *testEnv) seedHotel(t *testing.T, hotel models.Hotel) {
	t.Helper()
	require.NoError(t, e.hotels.Create(context.Background(), &hotel))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, w, &body)
	return body["detail"]
}
