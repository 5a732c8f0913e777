package services

import (
	"errors"
	"fmt"
	"time"

	"learnhub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateService issues completion certificates. Issuance is
// idempotent per (user, course): repeated calls return the existing
// certificate unchanged.
type CertificateService struct {
	db          *gorm.DB
	enrollments *EnrollmentService
}

func NewCertificateService(db *gorm.DB, enrollments *EnrollmentService) *CertificateService {
	return &CertificateService{db: db, enrollments: enrollments}
}

// Issue creates or returns the certificate for a completed course. The
// bool result is true when a new certificate was created. The course is
// looked up by id without the active filter so that certificates stay
// issuable after a course is retired from the catalog.
func (s *CertificateService) Issue(userID, courseID uint) (*models.Certificate, bool, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrCourseNotFound
		}
		return nil, false, err
	}

	completed, err := s.enrollments.HasCompleted(userID, courseID)
	if err != nil {
		return nil, false, err
	}
	if !completed {
		return nil, false, ErrNotEligible
	}

	var existing models.Certificate
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return &existing, false, nil
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrUserNotFound
		}
		return nil, false, err
	}

	certificate := models.Certificate{
		UserID:        userID,
		CourseID:      courseID,
		CertificateID: newCertificateID(),
		StudentName:   user.Name,
		CourseTitle:   course.Title,
		IssuedAt:      time.Now(),
	}

	if err := s.db.Create(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent race; return the winner's row.
			if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err != nil {
				return nil, false, err
			}
			return &existing, false, nil
		}
		return nil, false, err
	}

	return &certificate, true, nil
}

// ListForUser returns the user's certificates, newest first, with the
// course resolved for display.
func (s *CertificateService) ListForUser(userID uint) ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := s.db.Where("user_id = ?", userID).Preload("Course").Order("issued_at desc").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}

// newCertificateID builds a collision-resistant identifier from a
// millisecond timestamp and a random UUID fragment.
func newCertificateID() string {
	return fmt.Sprintf("LH%d%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
