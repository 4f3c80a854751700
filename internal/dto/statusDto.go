package dto

// SetStatusDTO for assigning a watch status to a title
type SetStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

// StatusViewResponse carries the caller's own status (nil when anonymous or
// unset) plus community counts per status
type StatusViewResponse struct {
	UserStatus *string          `json:"user_status"`
	Counts     map[string]int64 `json:"counts"`
}
