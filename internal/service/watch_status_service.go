package service

import (
	"errors"

	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/repository"

	"gorm.io/gorm"
)

var ErrInvalidStatus = errors.New("status must be one of PLANNED, WATCHING, COMPLETED, DROPPED")

var watchStatuses = []string{
	models.StatusPlanned,
	models.StatusWatching,
	models.StatusCompleted,
	models.StatusDropped,
}

type WatchStatusService interface {
	SetStatus(userID string, animeID int64, status string) (*dto.StatusViewResponse, error)
	GetStatusView(userID string, animeID int64) (*dto.StatusViewResponse, error)
}

type watchStatusService struct {
	statusRepo repository.WatchStatusRepository
	animeRepo  repository.AnimeRepository
}

func NewWatchStatusService(statusRepo repository.WatchStatusRepository, animeRepo repository.AnimeRepository) WatchStatusService {
	return &watchStatusService{
		statusRepo: statusRepo,
		animeRepo:  animeRepo,
	}
}

// SetStatus upserts the caller's watch status for a title and returns the
// recomputed per-status counts
func (s *watchStatusService) SetStatus(userID string, animeID int64, status string) (*dto.StatusViewResponse, error) {
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	// Check if anime exists
	if _, err := s.animeRepo.GetByID(animeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}

	existing, err := s.statusRepo.GetByUserAndAnime(userID, animeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Status = status
		if err := s.statusRepo.Update(existing); err != nil {
			return nil, err
		}
	} else {
		record := &models.WatchStatus{
			UserID:  userID,
			AnimeID: animeID,
			Status:  status,
		}
		if err := s.statusRepo.Create(record); err != nil {
			if !repository.IsUniqueViolation(err) {
				return nil, err
			}
			// Racing set from the same user inserted first; overwrite it
			record, err = s.statusRepo.GetByUserAndAnime(userID, animeID)
			if err != nil {
				return nil, err
			}
			record.Status = status
			if err := s.statusRepo.Update(record); err != nil {
				return nil, err
			}
		}
	}

	counts, err := s.statusCounts(animeID)
	if err != nil {
		return nil, err
	}

	return &dto.StatusViewResponse{
		UserStatus: &status,
		Counts:     counts,
	}, nil
}

// GetStatusView returns the caller's status (nil for anonymous callers or
// when unset) plus per-status counts
func (s *watchStatusService) GetStatusView(userID string, animeID int64) (*dto.StatusViewResponse, error) {
	var userStatus *string

	if userID != "" {
		record, err := s.statusRepo.GetByUserAndAnime(userID, animeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if record != nil {
			userStatus = &record.Status
		}
	}

	counts, err := s.statusCounts(animeID)
	if err != nil {
		return nil, err
	}

	return &dto.StatusViewResponse{
		UserStatus: userStatus,
		Counts:     counts,
	}, nil
}

func (s *watchStatusService) statusCounts(animeID int64) (map[string]int64, error) {
	counts := make(map[string]int64, len(watchStatuses))
	for _, status := range watchStatuses {
		count, err := s.statusRepo.CountByStatus(animeID, status)
		if err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, nil
}

func isValidStatus(status string) bool {
	for _, s := range watchStatuses {
		if s == status {
			return true
		}
	}
	return false
}
