package handler

import (
	"context"

	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser fakes the auth middleware by stashing an identity in the context
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", "testuser")
		c.Set("role", role)
		c.Next()
	}
}

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(username, password, email string) (*models.User, error) {
	args := m.Called(username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) RevokeToken(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockReactionService mocks the ReactionService interface
type MockReactionService struct {
	mock.Mock
}

func (m *MockReactionService) ToggleReaction(userID string, commentID int64, kind string) (*dto.ReactionResponse, error) {
	args := m.Called(userID, commentID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReactionResponse), args.Error(1)
}

// MockRatingService mocks the RatingService interface
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) SubmitRating(userID string, animeID int64, scores dto.SubmitRatingDTO) (*dto.SubmitRatingResponse, error) {
	args := m.Called(userID, animeID, scores)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitRatingResponse), args.Error(1)
}

func (m *MockRatingService) GetRatingView(userID string, animeID int64) (*dto.RatingViewResponse, error) {
	args := m.Called(userID, animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingViewResponse), args.Error(1)
}

// MockAnimeService mocks the AnimeService interface
type MockAnimeService struct {
	mock.Mock
}

func (m *MockAnimeService) CreateAnime(createdBy string, req dto.CreateAnimeDTO) (*dto.AnimeResponse, error) {
	args := m.Called(createdBy, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnimeResponse), args.Error(1)
}

func (m *MockAnimeService) UpdateAnime(animeID int64, req dto.UpdateAnimeDTO) (*dto.AnimeResponse, error) {
	args := m.Called(animeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnimeResponse), args.Error(1)
}

func (m *MockAnimeService) DeleteAnime(animeID int64) error {
	args := m.Called(animeID)
	return args.Error(0)
}

func (m *MockAnimeService) GetAnimeByID(animeID int64) (*dto.AnimeResponse, error) {
	args := m.Called(animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnimeResponse), args.Error(1)
}

func (m *MockAnimeService) ListAnime(page, pageSize int) (*dto.PaginatedAnimeResponse, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedAnimeResponse), args.Error(1)
}

// MockCommentService mocks the CommentService interface
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(userID string, animeID int64, content string) (*dto.CommentResponse, error) {
	args := m.Called(userID, animeID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) ListComments(animeID int64, viewerID string) (*dto.CommentListResponse, error) {
	args := m.Called(animeID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentListResponse), args.Error(1)
}

func (m *MockCommentService) DeleteComment(commentID int64, userID, role string) error {
	args := m.Called(commentID, userID, role)
	return args.Error(0)
}

// MockWatchStatusService mocks the WatchStatusService interface
type MockWatchStatusService struct {
	mock.Mock
}

func (m *MockWatchStatusService) SetStatus(userID string, animeID int64, status string) (*dto.StatusViewResponse, error) {
	args := m.Called(userID, animeID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatusViewResponse), args.Error(1)
}

func (m *MockWatchStatusService) GetStatusView(userID string, animeID int64) (*dto.StatusViewResponse, error) {
	args := m.Called(userID, animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatusViewResponse), args.Error(1)
}
