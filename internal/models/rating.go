package models

import "time"

// Rating is one user's four-criterion score of one anime title. Overall is
// always the arithmetic mean of the four sub-scores, computed server-side.
type Rating struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_anime_rating"`
	AnimeID    int64     `json:"anime_id" gorm:"not null;uniqueIndex:idx_user_anime_rating"`
	Story      int       `json:"story" gorm:"not null;check:story >= 1 AND story <= 10"`
	Art        int       `json:"art" gorm:"not null;check:art >= 1 AND art <= 10"`
	Characters int       `json:"characters" gorm:"not null;check:characters >= 1 AND characters <= 10"`
	Sound      int       `json:"sound" gorm:"not null;check:sound >= 1 AND sound <= 10"`
	Overall    float64   `json:"overall" gorm:"not null;type:decimal(4,2)"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Anime Anime `json:"anime,omitempty" gorm:"foreignKey:AnimeID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
