package models

import "time"

// Watch statuses a user can assign to a title.
const (
	StatusPlanned   = "PLANNED"
	StatusWatching  = "WATCHING"
	StatusCompleted = "COMPLETED"
	StatusDropped   = "DROPPED"
)

type WatchStatus struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_anime_status"`
	AnimeID   int64     `json:"anime_id" gorm:"not null;uniqueIndex:idx_user_anime_status"`
	Status    string    `json:"status" gorm:"not null;size:20"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Anime Anime `json:"anime,omitempty" gorm:"foreignKey:AnimeID;constraint:OnDelete:CASCADE;"`
}

func (WatchStatus) TableName() string {
	return "watch_statuses"
}
