package service

import (
	"errors"
	"strings"

	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidReaction = errors.New("reaction type must be LIKE or DISLIKE")
)

type ReactionService interface {
	ToggleReaction(userID string, commentID int64, kind string) (*dto.ReactionResponse, error)
}

type reactionService struct {
	reactionRepo repository.ReactionRepository
	commentRepo  repository.CommentRepository
}

func NewReactionService(reactionRepo repository.ReactionRepository, commentRepo repository.CommentRepository) ReactionService {
	return &reactionService{
		reactionRepo: reactionRepo,
		commentRepo:  commentRepo,
	}
}

// ToggleReaction applies a three-way transition on the caller's reaction row:
// none -> create, same kind -> delete (un-react), other kind -> flip in
// place. Tallies are recounted from rows afterwards so they can never drift.
func (s *reactionService) ToggleReaction(userID string, commentID int64, kind string) (*dto.ReactionResponse, error) {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	if kind != models.ReactionLike && kind != models.ReactionDislike {
		return nil, ErrInvalidReaction
	}

	// Check if comment exists
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	existing, err := s.reactionRepo.GetByUserAndComment(userID, commentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var userReaction *string

	switch {
	case existing == nil:
		reaction := &models.Reaction{
			UserID:    userID,
			CommentID: commentID,
			Kind:      kind,
		}
		if err := s.reactionRepo.Create(reaction); err != nil {
			if !repository.IsUniqueViolation(err) {
				return nil, err
			}
			// A racing request from the same user won the insert; flip that
			// row instead. Last write wins.
			winner, err := s.reactionRepo.GetByUserAndComment(userID, commentID)
			if err != nil {
				return nil, err
			}
			winner.Kind = kind
			if err := s.reactionRepo.Update(winner); err != nil {
				return nil, err
			}
		}
		userReaction = &kind

	case existing.Kind == kind:
		// Re-picking the held kind removes the reaction
		if err := s.reactionRepo.Delete(existing.ID); err != nil {
			return nil, err
		}
		userReaction = nil

	default:
		existing.Kind = kind
		if err := s.reactionRepo.Update(existing); err != nil {
			return nil, err
		}
		userReaction = &kind
	}

	likes, err := s.reactionRepo.CountByKind(commentID, models.ReactionLike)
	if err != nil {
		return nil, err
	}
	dislikes, err := s.reactionRepo.CountByKind(commentID, models.ReactionDislike)
	if err != nil {
		return nil, err
	}

	return &dto.ReactionResponse{
		LikesCount:    likes,
		DislikesCount: dislikes,
		UserReaction:  userReaction,
	}, nil
}
