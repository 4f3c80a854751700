package repository

import (
	"animehub/internal/models"

	"gorm.io/gorm"
)

type WatchStatusRepository interface {
	Create(status *models.WatchStatus) error
	Update(status *models.WatchStatus) error
	GetByUserAndAnime(userID string, animeID int64) (*models.WatchStatus, error)
	CountByStatus(animeID int64, status string) (int64, error)
}

type watchStatusRepository struct {
	db *gorm.DB
}

func NewWatchStatusRepository(db *gorm.DB) WatchStatusRepository {
	return &watchStatusRepository{db: db}
}

func (r *watchStatusRepository) Create(status *models.WatchStatus) error {
	return r.db.Create(status).Error
}

func (r *watchStatusRepository) Update(status *models.WatchStatus) error {
	return r.db.Save(status).Error
}

func (r *watchStatusRepository) GetByUserAndAnime(userID string, animeID int64) (*models.WatchStatus, error) {
	var status models.WatchStatus
	err := r.db.Where("user_id = ? AND anime_id = ?", userID, animeID).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *watchStatusRepository) CountByStatus(animeID int64, status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.WatchStatus{}).
		Where("anime_id = ? AND status = ?", animeID, status).
		Count(&count).Error
	return count, err
}
