package models

import "gorm.io/gorm"

// DefaultThumbnail is used when a course is created without one.
const DefaultThumbnail = "https://via.placeholder.com/300x200?text=Course+Thumbnail"

// Course represents a catalog course. Deleting a course only flips
// IsActive so that existing enrollments and certificates keep a valid
// reference.
type Course struct {
	gorm.Model
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    string  `json:"duration" gorm:"default:'N/A'"`
	CreatedBy   uint    `json:"created_by" gorm:"index;not null"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	Creator     User    `json:"creator" gorm:"foreignKey:CreatedBy"`
	Videos      []Video `json:"videos" gorm:"foreignKey:CourseID"`
}

// Video belongs to exactly one course. OrderIndex is the playback
// position within the course.
type Video struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	EmbedURL   string `json:"embed_url"`
	Duration   string `json:"duration" gorm:"default:'N/A'"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
}
