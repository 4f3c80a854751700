package handler

import (
	"errors"
	"net/http"
	"strconv"

	"animehub/internal/dto"
	"animehub/internal/service"

	"github.com/gin-gonic/gin"
)

type WatchStatusHandler struct {
	statusService service.WatchStatusService
}

func NewWatchStatusHandler(statusService service.WatchStatusService) *WatchStatusHandler {
	return &WatchStatusHandler{statusService: statusService}
}

// RegisterRoutes registers watch-status routes on the anime group
func (h *WatchStatusHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	status := router.Group("/:anime_id/status")
	{
		status.GET("", optionalAuth, h.GetView)
		status.POST("", requireAuth, h.Set)
	}
}

// Set assigns the caller's watch status for a title
// POST /api/anime/:anime_id/status
func (h *WatchStatusHandler) Set(c *gin.Context) {
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

	var req dto.SetStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.statusService.SetStatus(userID, animeID, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrAnimeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set status"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetView returns the caller's status (null when anonymous or unset) plus
// community counts per status
// GET /api/anime/:anime_id/status
func (h *WatchStatusHandler) GetView(c *gin.Context) {
	animeID, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anime ID"})
		return
	}

	userID, _ := currentUserID(c)

	view, err := h.statusService.GetStatusView(userID, animeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch status"})
		return
	}

	c.JSON(http.StatusOK, view)
}
