package dto

// ReactionRequest: payload for toggling a reaction on a comment
type ReactionRequest struct {
	Type string `json:"type" binding:"required"`
}

// ReactionResponse carries the recomputed tallies after a toggle plus the
// caller's resulting reaction kind (nil after an un-react)
type ReactionResponse struct {
	LikesCount    int64   `json:"likes_count"`
	DislikesCount int64   `json:"dislikes_count"`
	UserReaction  *string `json:"user_reaction"`
}
