package repository

import (
	"animehub/internal/models"

	"gorm.io/gorm"
)

// RatingAverages holds the community-wide mean of every rating field for one
// title. Zero values mean "no ratings yet".
type RatingAverages struct {
	Story      float64
	Art        float64
	Characters float64
	Sound      float64
	Overall    float64
}

type RatingRepository interface {
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	GetByUserAndAnime(userID string, animeID int64) (*models.Rating, error)
	CalculateAverages(animeID int64) (*RatingAverages, error)
	CountRatings(animeID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// Update an existing rating (full replace of all five fields)
func (r *ratingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// GetByUserAndAnime retrieves a user's rating for a specific title
func (r *ratingRepository) GetByUserAndAnime(userID string, animeID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND anime_id = ?", userID, animeID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// CalculateAverages computes the mean of every rating field across all
// ratings for a title, reading from source rows on every call
func (r *ratingRepository) CalculateAverages(animeID int64) (*RatingAverages, error) {
	var avg RatingAverages

	err := r.db.Model(&models.Rating{}).
		Select(
			"COALESCE(AVG(story), 0) as story, " +
				"COALESCE(AVG(art), 0) as art, " +
				"COALESCE(AVG(characters), 0) as characters, " +
				"COALESCE(AVG(sound), 0) as sound, " +
				"COALESCE(AVG(overall), 0) as overall").
		Where("anime_id = ?", animeID).
		Scan(&avg).Error

	if err != nil {
		return nil, err
	}

	return &avg, nil
}

// CountRatings counts the total number of ratings for a title
func (r *ratingRepository) CountRatings(animeID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("anime_id = ?", animeID).Count(&count).Error
	return count, err
}
