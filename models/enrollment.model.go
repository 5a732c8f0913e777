package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment records that a user joined a course. The composite unique
// index guarantees at most one row per (user, course) pair; duplicate
// inserts surface as gorm.ErrDuplicatedKey.
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID    uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	Course      Course     `json:"course" gorm:"foreignKey:CourseID"`
}
