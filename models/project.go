package models

import (
	"time"
)

// Column limits, in characters
const (
	TitleMaxLength = 100
	LinkMaxLength  = 200
	ImageMaxLength = 200
)

// Project represents one portfolio entry
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Link        string    `json:"link" gorm:"type:varchar(200)"`
	Image       *string   `json:"image" gorm:"type:varchar(200);default:null"` // filename in the upload directory
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ImageName returns the stored image filename, or "" when the project has none
func (p Project) ImageName() string {
	if p.Image == nil {
		return ""
	}
	return *p.Image
}
