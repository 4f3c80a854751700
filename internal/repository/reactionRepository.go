package repository

import (
	"animehub/internal/models"

	"gorm.io/gorm"
)

type ReactionRepository interface {
	Create(reaction *models.Reaction) error
	Update(reaction *models.Reaction) error
	Delete(reactionID int64) error
	GetByUserAndComment(userID string, commentID int64) (*models.Reaction, error)
	CountByKind(commentID int64, kind string) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Create a new reaction
func (r *reactionRepository) Create(reaction *models.Reaction) error {
	return r.db.Create(reaction).Error
}

// Update an existing reaction in place (kind flip)
func (r *reactionRepository) Update(reaction *models.Reaction) error {
	return r.db.Save(reaction).Error
}

// Delete a reaction by ID (un-react)
func (r *reactionRepository) Delete(reactionID int64) error {
	return r.db.Delete(&models.Reaction{}, reactionID).Error
}

// GetByUserAndComment retrieves a user's reaction on a specific comment
func (r *reactionRepository) GetByUserAndComment(userID string, commentID int64) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&reaction).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// CountByKind counts reactions of one kind on a comment. Counts are always
// recomputed from rows rather than kept as running counters.
func (r *reactionRepository) CountByKind(commentID int64, kind string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Reaction{}).
		Where("comment_id = ? AND kind = ?", commentID, kind).
		Count(&count).Error
	return count, err
}
