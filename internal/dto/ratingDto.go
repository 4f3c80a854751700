package dto

import (
	"time"

	"animehub/internal/models"
)

// SubmitRatingDTO for creating or replacing a user's rating of a title.
// All four sub-scores are required and bounded to 1..10; overall is never
// accepted from the caller.
type SubmitRatingDTO struct {
	Story      int `json:"story" binding:"required,min=1,max=10"`
	Art        int `json:"art" binding:"required,min=1,max=10"`
	Characters int `json:"characters" binding:"required,min=1,max=10"`
	Sound      int `json:"sound" binding:"required,min=1,max=10"`
}

// UserRatingResponse for returning a user's own rating
type UserRatingResponse struct {
	Story      int       `json:"story"`
	Art        int       `json:"art"`
	Characters int       `json:"characters"`
	Sound      int       `json:"sound"`
	Overall    float64   `json:"overall"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromModelToUserRatingResponse converts a Rating model to its DTO
func FromModelToUserRatingResponse(rating *models.Rating) *UserRatingResponse {
	return &UserRatingResponse{
		Story:      rating.Story,
		Art:        rating.Art,
		Characters: rating.Characters,
		Sound:      rating.Sound,
		Overall:    rating.Overall,
		CreatedAt:  rating.CreatedAt,
		UpdatedAt:  rating.UpdatedAt,
	}
}

// AverageRatingsResponse carries community means as fixed-point strings with
// one digit of precision; "0.0" when the title has no ratings yet
type AverageRatingsResponse struct {
	Story      string `json:"story"`
	Art        string `json:"art"`
	Characters string `json:"characters"`
	Sound      string `json:"sound"`
	Overall    string `json:"overall"`
}

// RatingViewResponse for the read path: the caller's own rating (nil when
// anonymous or absent) plus community aggregates
type RatingViewResponse struct {
	UserRating     *UserRatingResponse    `json:"user_rating"`
	AverageRatings AverageRatingsResponse `json:"average_ratings"`
	RatingsCount   int64                  `json:"ratings_count"`
}

// SubmitRatingResponse for the write path: the stored rating plus refreshed
// community aggregates
type SubmitRatingResponse struct {
	Rating         UserRatingResponse     `json:"rating"`
	AverageRatings AverageRatingsResponse `json:"average_ratings"`
	RatingsCount   int64                  `json:"ratings_count"`
}
