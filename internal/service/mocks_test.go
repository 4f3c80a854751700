package service

import (
	"context"

	"animehub/internal/models"
	"animehub/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// uniqueViolationErr fakes the error Postgres raises when a concurrent
// request wins an insert on a composite unique index
func uniqueViolationErr() error {
	return &pgconn.PgError{Code: "23505"}
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(id string, avatarURL string) (*models.User, error) {
	args := m.Called(id, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAnimeRepository mocks the AnimeRepository interface
type MockAnimeRepository struct {
	mock.Mock
}

func (m *MockAnimeRepository) Create(anime *models.Anime) error {
	args := m.Called(anime)
	return args.Error(0)
}

func (m *MockAnimeRepository) Update(anime *models.Anime) error {
	args := m.Called(anime)
	return args.Error(0)
}

func (m *MockAnimeRepository) Delete(animeID int64) error {
	args := m.Called(animeID)
	return args.Error(0)
}

func (m *MockAnimeRepository) GetByID(animeID int64) (*models.Anime, error) {
	args := m.Called(animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Anime), args.Error(1)
}

func (m *MockAnimeRepository) List(page, pageSize int) ([]models.Anime, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Anime), args.Get(1).(int64), args.Error(2)
}

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(commentID int64) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(commentID int64) (*models.Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByAnime(animeID int64) ([]models.Comment, error) {
	args := m.Called(animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

// MockReactionRepository mocks the ReactionRepository interface
type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Create(reaction *models.Reaction) error {
	args := m.Called(reaction)
	return args.Error(0)
}

func (m *MockReactionRepository) Update(reaction *models.Reaction) error {
	args := m.Called(reaction)
	return args.Error(0)
}

func (m *MockReactionRepository) Delete(reactionID int64) error {
	args := m.Called(reactionID)
	return args.Error(0)
}

func (m *MockReactionRepository) GetByUserAndComment(userID string, commentID int64) (*models.Reaction, error) {
	args := m.Called(userID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reaction), args.Error(1)
}

func (m *MockReactionRepository) CountByKind(commentID int64, kind string) (int64, error) {
	args := m.Called(commentID, kind)
	return args.Get(0).(int64), args.Error(1)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) Update(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByUserAndAnime(userID string, animeID int64) (*models.Rating, error) {
	args := m.Called(userID, animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) CalculateAverages(animeID int64) (*repository.RatingAverages, error) {
	args := m.Called(animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RatingAverages), args.Error(1)
}

func (m *MockRatingRepository) CountRatings(animeID int64) (int64, error) {
	args := m.Called(animeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockWatchStatusRepository mocks the WatchStatusRepository interface
type MockWatchStatusRepository struct {
	mock.Mock
}

func (m *MockWatchStatusRepository) Create(status *models.WatchStatus) error {
	args := m.Called(status)
	return args.Error(0)
}

func (m *MockWatchStatusRepository) Update(status *models.WatchStatus) error {
	args := m.Called(status)
	return args.Error(0)
}

func (m *MockWatchStatusRepository) GetByUserAndAnime(userID string, animeID int64) (*models.WatchStatus, error) {
	args := m.Called(userID, animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchStatus), args.Error(1)
}

func (m *MockWatchStatusRepository) CountByStatus(animeID int64, status string) (int64, error) {
	args := m.Called(animeID, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockLoginLimiter mocks the LoginLimiter interface
type MockLoginLimiter struct {
	mock.Mock
}

func (m *MockLoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoginLimiter) RecordFailure(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockLoginLimiter) Reset(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}
