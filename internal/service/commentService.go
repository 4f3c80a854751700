package service

import (
	"errors"

	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/repository"

	"gorm.io/gorm"
)

var ErrNotCommentOwner = errors.New("you don't have permission to delete this comment")

type CommentService interface {
	CreateComment(userID string, animeID int64, content string) (*dto.CommentResponse, error)
	ListComments(animeID int64, viewerID string) (*dto.CommentListResponse, error)
	DeleteComment(commentID int64, userID, role string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	animeRepo   repository.AnimeRepository
}

func NewCommentService(commentRepo repository.CommentRepository, animeRepo repository.AnimeRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		animeRepo:   animeRepo,
	}
}

// CreateComment posts a new comment on a title
func (s *commentService) CreateComment(userID string, animeID int64, content string) (*dto.CommentResponse, error) {
	// Check if anime exists
	if _, err := s.animeRepo.GetByID(animeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		UserID:  userID,
		AnimeID: animeID,
		Content: content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Reload with author and reactions
	comment, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment, userID), nil
}

// ListComments retrieves the comments of a title, newest first, with
// reaction tallies and the viewer's own reaction. viewerID may be empty.
func (s *commentService) ListComments(animeID int64, viewerID string) (*dto.CommentListResponse, error) {
	comments, err := s.commentRepo.GetByAnime(animeID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i], viewerID))
	}

	return &dto.CommentListResponse{Comments: responses}, nil
}

// DeleteComment removes a comment; allowed for its author or an admin
func (s *commentService) DeleteComment(commentID int64, userID, role string) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	isOwner := comment.UserID == userID
	isAdmin := role == "admin"
	if !isOwner && !isAdmin {
		return ErrNotCommentOwner
	}

	return s.commentRepo.Delete(commentID)
}
