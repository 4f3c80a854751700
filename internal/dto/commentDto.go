package dto

import (
	"time"

	"animehub/internal/models"
)

// CreateCommentDTO for posting a comment on a title
type CreateCommentDTO struct {
	Content string `json:"comment" binding:"required,min=2,max=1000"`
}

// CommentAuthor is the public slice of the commenting user
type CommentAuthor struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar,omitempty"`
}

// CommentResponse for returning a comment with its reaction tallies and the
// caller's own reaction kind (nil when anonymous or not reacted)
type CommentResponse struct {
	ID            int64         `json:"id"`
	Content       string        `json:"comment"`
	CreatedAt     time.Time     `json:"created_at"`
	User          CommentAuthor `json:"user"`
	LikesCount    int64         `json:"likes_count"`
	DislikesCount int64         `json:"dislikes_count"`
	UserReaction  *string       `json:"user_reaction"`
}

// FromModelToCommentResponse converts a Comment model (with preloaded User
// and Reactions) into a CommentResponse for the given viewer. viewerID may
// be empty for anonymous callers.
func FromModelToCommentResponse(comment *models.Comment, viewerID string) *CommentResponse {
	var likes, dislikes int64
	var userReaction *string

	for i := range comment.Reactions {
		switch comment.Reactions[i].Kind {
		case models.ReactionLike:
			likes++
		case models.ReactionDislike:
			dislikes++
		}
		if viewerID != "" && comment.Reactions[i].UserID == viewerID {
			kind := comment.Reactions[i].Kind
			userReaction = &kind
		}
	}

	return &CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		User: CommentAuthor{
			ID:       comment.User.ID,
			Username: comment.User.Username,
			Avatar:   comment.User.Avatar,
		},
		LikesCount:    likes,
		DislikesCount: dislikes,
		UserReaction:  userReaction,
	}
}

// CommentListResponse wraps the comments of one title
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}
