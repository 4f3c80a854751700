package models

import "time"

type Anime struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Genre       *string   `json:"genre,omitempty"`
	Year        *int      `json:"year,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedBy   string    `json:"created_by" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Creator User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE;"`
}

func (Anime) TableName() string {
	return "anime"
}
