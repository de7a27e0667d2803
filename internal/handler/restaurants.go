package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"discovery-api/internal/models"
	"discovery-api/internal/service"
	"discovery-api/internal/yelp"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler handles restaurant search requests
type RestaurantHandler struct {
	service RestaurantService
}

// Service interface for dependency injection
type RestaurantService interface {
	Search(ctx context.Context, req models.SearchRequest) ([]models.SimplifiedBusiness, error)
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(svc RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: svc}
}

// Search handles GET /api/restaurants requests
//
//	@Summary		Search restaurants near a location
//	@Description	Aggregates deduplicated restaurants around a city or coordinate pair, expanding the search area until the requested count is met.
//	@Produce		json
//	@Param			city		query	string	false	"City name; required when no coordinates are given"
//	@Param			latitude	query	number	false	"Latitude; requires longitude"
//	@Param			longitude	query	number	false	"Longitude; requires latitude"
//	@Param			cuisine		query	string	false	"Cuisine keyword filter"
//	@Param			limit		query	int		false	"Result count (1-200, default 120)"
//	@Param			radius		query	number	false	"Search radius in miles, capped at 25"
//	@Success		200	{array}		models.SimplifiedBusiness
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/api/restaurants [get]
func (h *RestaurantHandler) Search(c *gin.Context) {
	req := models.SearchRequest{
		City:    c.Query("city"),
		Cuisine: c.Query("cuisine"),
	}

	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")
	if (latStr == "") != (lonStr == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be provided together"})
		return
	}
	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
			return
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
			return
		}
		req.Latitude = &lat
		req.Longitude = &lon
	}

	limitStr := c.Query("limit")
	if limitStr == "" {
		limitStr = c.Query("maxResults")
	}
	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
		req.TargetCount = limit
	}

	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius format"})
			return
		}
		req.RadiusMiles = &radius
	}

	results, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		var statusErr *yelp.StatusError
		switch {
		case errors.Is(err, service.ErrMissingLocation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'city' or 'latitude'/'longitude'"})
		case errors.Is(err, yelp.ErrNoAPIKey):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upstream api key not configured"})
		case errors.As(err, &statusErr):
			c.JSON(statusErr.StatusCode, gin.H{"error": statusErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, results)
}
