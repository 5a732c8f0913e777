package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an issued completion record. StudentName and
// CourseTitle are snapshots taken at issuance so the certificate stays
// stable if the user or course is renamed later. Rows are immutable
// once created; the composite unique index makes issuance idempotent.
type Certificate struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseID      uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CertificateID string    `json:"certificate_id" gorm:"unique;not null"`
	StudentName   string    `json:"student_name"`
	CourseTitle   string    `json:"course_title"`
	IssuedAt      time.Time `json:"issued_at"`
	Course        Course    `json:"course" gorm:"foreignKey:CourseID"`
}
