package dto

import (
	"time"

	"animehub/internal/models"
)

// CreateAnimeDTO for creating a new title (admin only)
type CreateAnimeDTO struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	Year        *int    `json:"year,omitempty" binding:"omitempty,min=1900,max=2100"`
	ImageURL    *string `json:"image_url,omitempty" binding:"omitempty,url"`
}

// UpdateAnimeDTO for updating an existing title (admin only)
type UpdateAnimeDTO struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	Year        *int    `json:"year,omitempty" binding:"omitempty,min=1900,max=2100"`
	ImageURL    *string `json:"image_url,omitempty" binding:"omitempty,url"`
}

// AnimeResponse for returning title information
type AnimeResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Genre       *string   `json:"genre,omitempty"`
	Year        *int      `json:"year,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromModelToAnimeResponse converts an Anime model to AnimeResponse DTO
func FromModelToAnimeResponse(anime *models.Anime) *AnimeResponse {
	return &AnimeResponse{
		ID:          anime.ID,
		Title:       anime.Title,
		Description: anime.Description,
		Genre:       anime.Genre,
		Year:        anime.Year,
		ImageURL:    anime.ImageURL,
		CreatedAt:   anime.CreatedAt,
		UpdatedAt:   anime.UpdatedAt,
	}
}

// PaginatedAnimeResponse for returning paginated titles
type PaginatedAnimeResponse struct {
	Data       []AnimeResponse `json:"data"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
}

// NewPaginatedAnimeResponse creates a paginated anime response
func NewPaginatedAnimeResponse(data []AnimeResponse, total, page, pageSize int) *PaginatedAnimeResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedAnimeResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
