package handler

import (
	"errors"
	"net/http"
	"strconv"

	"animehub/internal/dto"
	"animehub/internal/service"

	"github.com/gin-gonic/gin"
)

type AnimeHandler struct {
	animeService service.AnimeService
}

func NewAnimeHandler(animeService service.AnimeService) *AnimeHandler {
	return &AnimeHandler{animeService: animeService}
}

// RegisterRoutes registers catalogue routes. Reads are public; writes are
// admin only.
func (h *AnimeHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	router.GET("", h.List)
	router.GET("/:anime_id", h.GetByID)

	admin := router.Group("", requireAuth, requireAdmin)
	{
		admin.POST("", h.Create)
		admin.PUT("/:anime_id", h.Update)
		admin.DELETE("/:anime_id", h.Delete)
	}
}

// List retrieves titles with pagination
// GET /api/anime?page=1&page_size=20
func (h *AnimeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	titles, err := h.animeService.ListAnime(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list anime"})
		return
	}

	c.JSON(http.StatusOK, titles)
}

// GetByID retrieves one title
// GET /api/anime/:anime_id
func (h *AnimeHandler) GetByID(c *gin.Context) {
	animeID, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anime ID"})
		return
	}

	anime, err := h.animeService.GetAnimeByID(animeID)
	if err != nil {
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch anime"})
		return
	}

	c.JSON(http.StatusOK, anime)
}

// Create adds a new title
// POST /api/anime
func (h *AnimeHandler) Create(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateAnimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	anime, err := h.animeService.CreateAnime(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create anime"})
		return
	}

	c.JSON(http.StatusCreated, anime)
}

// Update modifies an existing title
// PUT /api/anime/:anime_id
func (h *AnimeHandler) Update(c *gin.Context) {
	animeID, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anime ID"})
		return
	}

	var req dto.UpdateAnimeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	anime, err := h.animeService.UpdateAnime(animeID, req)
	if err != nil {
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update anime"})
		return
	}

	c.JSON(http.StatusOK, anime)
}

// Delete removes a title
// DELETE /api/anime/:anime_id
func (h *AnimeHandler) Delete(c *gin.Context) {
	animeID, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anime ID"})
		return
	}

	if err := h.animeService.DeleteAnime(animeID); err != nil {
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete anime"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Anime deleted successfully"})
}
