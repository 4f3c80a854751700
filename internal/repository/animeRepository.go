package repository

import (
	"animehub/internal/models"

	"gorm.io/gorm"
)

type AnimeRepository interface {
	Create(anime *models.Anime) error
	Update(anime *models.Anime) error
	Delete(animeID int64) error
	GetByID(animeID int64) (*models.Anime, error)
	List(page, pageSize int) ([]models.Anime, int64, error)
}

type animeRepository struct {
	db *gorm.DB
}

func NewAnimeRepository(db *gorm.DB) AnimeRepository {
	return &animeRepository{db: db}
}

// Create a new anime title
func (r *animeRepository) Create(anime *models.Anime) error {
	return r.db.Create(anime).Error
}

// Update an existing anime title
func (r *animeRepository) Update(anime *models.Anime) error {
	return r.db.Save(anime).Error
}

// Delete an anime title by ID
func (r *animeRepository) Delete(animeID int64) error {
	result := r.db.Delete(&models.Anime{}, animeID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID retrieves an anime title by ID
func (r *animeRepository) GetByID(animeID int64) (*models.Anime, error) {
	var anime models.Anime
	if err := r.db.First(&anime, animeID).Error; err != nil {
		return nil, err
	}
	return &anime, nil
}

// List retrieves anime titles with pagination, newest first
func (r *animeRepository) List(page, pageSize int) ([]models.Anime, int64, error) {
	var titles []models.Anime
	var total int64

	if err := r.db.Model(&models.Anime{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&titles).Error

	if err != nil {
		return nil, 0, err
	}

	return titles, total, nil
}
