package service

import (
	"errors"

	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/repository"

	"gorm.io/gorm"
)

var ErrAnimeNotFound = errors.New("anime not found")

type AnimeService interface {
	CreateAnime(createdBy string, req dto.CreateAnimeDTO) (*dto.AnimeResponse, error)
	UpdateAnime(animeID int64, req dto.UpdateAnimeDTO) (*dto.AnimeResponse, error)
	DeleteAnime(animeID int64) error
	GetAnimeByID(animeID int64) (*dto.AnimeResponse, error)
	ListAnime(page, pageSize int) (*dto.PaginatedAnimeResponse, error)
}

type animeService struct {
	animeRepo repository.AnimeRepository
}

func NewAnimeService(animeRepo repository.AnimeRepository) AnimeService {
	return &animeService{animeRepo: animeRepo}
}

// CreateAnime adds a new title to the catalogue
func (s *animeService) CreateAnime(createdBy string, req dto.CreateAnimeDTO) (*dto.AnimeResponse, error) {
	anime := &models.Anime{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
		CreatedBy:   createdBy,
	}

	if err := s.animeRepo.Create(anime); err != nil {
		return nil, err
	}

	return dto.FromModelToAnimeResponse(anime), nil
}

// UpdateAnime applies the non-nil fields of the request to an existing title
func (s *animeService) UpdateAnime(animeID int64, req dto.UpdateAnimeDTO) (*dto.AnimeResponse, error) {
	anime, err := s.animeRepo.GetByID(animeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		anime.Title = *req.Title
	}
	if req.Description != nil {
		anime.Description = req.Description
	}
	if req.Genre != nil {
		anime.Genre = req.Genre
	}
	if req.Year != nil {
		anime.Year = req.Year
	}
	if req.ImageURL != nil {
		anime.ImageURL = req.ImageURL
	}

	if err := s.animeRepo.Update(anime); err != nil {
		return nil, err
	}

	return dto.FromModelToAnimeResponse(anime), nil
}

// DeleteAnime removes a title; ratings, comments and statuses cascade
func (s *animeService) DeleteAnime(animeID int64) error {
	if err := s.animeRepo.Delete(animeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnimeNotFound
		}
		return err
	}
	return nil
}

// GetAnimeByID retrieves one title
func (s *animeService) GetAnimeByID(animeID int64) (*dto.AnimeResponse, error) {
	anime, err := s.animeRepo.GetByID(animeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}

	return dto.FromModelToAnimeResponse(anime), nil
}

// ListAnime retrieves titles with pagination
func (s *animeService) ListAnime(page, pageSize int) (*dto.PaginatedAnimeResponse, error) {
	titles, total, err := s.animeRepo.List(page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AnimeResponse, 0, len(titles))
	for i := range titles {
		responses = append(responses, *dto.FromModelToAnimeResponse(&titles[i]))
	}

	return dto.NewPaginatedAnimeResponse(responses, int(total), page, pageSize), nil
}
