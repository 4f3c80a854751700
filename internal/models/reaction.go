package models

import "time"

// Reaction kinds a user can hold on a comment.
const (
	ReactionLike    = "LIKE"
	ReactionDislike = "DISLIKE"
)

// Reaction is one user's stance on one comment. The composite unique index
// keeps it to at most one row per (user, comment) pair.
type Reaction struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_comment_reaction"`
	CommentID int64     `json:"comment_id" gorm:"not null;uniqueIndex:idx_user_comment_reaction"`
	Kind      string    `json:"kind" gorm:"not null;size:10"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Comment Comment `json:"comment,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE;"`
}

func (Reaction) TableName() string {
	return "comment_reactions"
}
