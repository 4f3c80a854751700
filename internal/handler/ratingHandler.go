package handler

import (
	"errors"
	"net/http"
	"strconv"

	"animehub/internal/dto"
	"animehub/internal/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating routes on the anime group. The read path
// works anonymously; the write path needs a session.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	rating := router.Group("/:anime_id/rating")
	{
		rating.GET("", optionalAuth, h.GetView)
		rating.POST("", requireAuth, h.Submit)
	}
}

// Submit creates or fully replaces the caller's rating of a title
// POST /api/anime/:anime_id/rating
func (h *RatingHandler) Submit(c *gin.Context) {
	animeID, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anime ID"})
		return
	}

	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.SubmitRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all scores must be integers from 1 to 10"})
		return
	}

	result, err := h.ratingService.SubmitRating(userID, animeID, req)
	if err != nil {
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit rating"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetView returns the caller's own rating (null when anonymous or absent)
// plus community averages and count
// GET /api/anime/:anime_id/rating
func (h *RatingHandler) GetView(c *gin.Context) {
	animeID, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anime ID"})
		return
	}

	userID, _ := currentUserID(c)

	view, err := h.ratingService.GetRatingView(userID, animeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rating"})
		return
	}

	c.JSON(http.StatusOK, view)
}
