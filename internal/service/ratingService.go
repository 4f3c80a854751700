package service

import (
	"errors"
	"fmt"

	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	SubmitRating(userID string, animeID int64, scores dto.SubmitRatingDTO) (*dto.SubmitRatingResponse, error)
	GetRatingView(userID string, animeID int64) (*dto.RatingViewResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	animeRepo  repository.AnimeRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, animeRepo repository.AnimeRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		animeRepo:  animeRepo,
	}
}

// SubmitRating creates or fully replaces the caller's rating of a title.
// Overall is always the mean of the four sub-scores, never caller-supplied.
// Community aggregates are recomputed from rows after the write.
func (s *ratingService) SubmitRating(userID string, animeID int64, scores dto.SubmitRatingDTO) (*dto.SubmitRatingResponse, error) {
	// Check if anime exists
	if _, err := s.animeRepo.GetByID(animeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}

	overall := float64(scores.Story+scores.Art+scores.Characters+scores.Sound) / 4

	existing, err := s.ratingRepo.GetByUserAndAnime(userID, animeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var rating *models.Rating

	if existing != nil {
		// Full replace of all five stored fields
		existing.Story = scores.Story
		existing.Art = scores.Art
		existing.Characters = scores.Characters
		existing.Sound = scores.Sound
		existing.Overall = overall
		if err := s.ratingRepo.Update(existing); err != nil {
			return nil, err
		}
		rating = existing
	} else {
		rating = &models.Rating{
			UserID:     userID,
			AnimeID:    animeID,
			Story:      scores.Story,
			Art:        scores.Art,
			Characters: scores.Characters,
			Sound:      scores.Sound,
			Overall:    overall,
		}
		if err := s.ratingRepo.Create(rating); err != nil {
			if !repository.IsUniqueViolation(err) {
				return nil, err
			}
			// A racing submit from the same user created the row first;
			// overwrite it. Last write wins.
			rating, err = s.ratingRepo.GetByUserAndAnime(userID, animeID)
			if err != nil {
				return nil, err
			}
			rating.Story = scores.Story
			rating.Art = scores.Art
			rating.Characters = scores.Characters
			rating.Sound = scores.Sound
			rating.Overall = overall
			if err := s.ratingRepo.Update(rating); err != nil {
				return nil, err
			}
		}
	}

	averages, count, err := s.communityAggregates(animeID)
	if err != nil {
		return nil, err
	}

	return &dto.SubmitRatingResponse{
		Rating:         *dto.FromModelToUserRatingResponse(rating),
		AverageRatings: *averages,
		RatingsCount:   count,
	}, nil
}

// GetRatingView returns the caller's own rating (nil for anonymous callers
// or when absent) plus community aggregates. A title with no ratings yields
// "0.0" for every average field, not an error.
func (s *ratingService) GetRatingView(userID string, animeID int64) (*dto.RatingViewResponse, error) {
	var userRating *dto.UserRatingResponse

	if userID != "" {
		rating, err := s.ratingRepo.GetByUserAndAnime(userID, animeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if rating != nil {
			userRating = dto.FromModelToUserRatingResponse(rating)
		}
	}

	averages, count, err := s.communityAggregates(animeID)
	if err != nil {
		return nil, err
	}

	return &dto.RatingViewResponse{
		UserRating:     userRating,
		AverageRatings: *averages,
		RatingsCount:   count,
	}, nil
}

func (s *ratingService) communityAggregates(animeID int64) (*dto.AverageRatingsResponse, int64, error) {
	avg, err := s.ratingRepo.CalculateAverages(animeID)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.ratingRepo.CountRatings(animeID)
	if err != nil {
		return nil, 0, err
	}

	return &dto.AverageRatingsResponse{
		Story:      formatAverage(avg.Story),
		Art:        formatAverage(avg.Art),
		Characters: formatAverage(avg.Characters),
		Sound:      formatAverage(avg.Sound),
		Overall:    formatAverage(avg.Overall),
	}, count, nil
}

// formatAverage renders a mean with one digit of precision, "0.0" when the
// title has no ratings
func formatAverage(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
