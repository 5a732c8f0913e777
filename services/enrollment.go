package services

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

// EnrollmentService maintains the per-user (course, completed) pairs.
// No other service mutates enrollment rows.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll creates an enrollment with Completed=false. The course must
// exist and be active. A second enroll for the same pair fails with
// ErrAlreadyEnrolled; the unique index catches the concurrent case.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	var course models.Course
	if err := s.db.Where("id = ? AND is_active = ?", courseID, true).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	var existing models.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}

	if err := s.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	enrollment.Course = course
	return &enrollment, nil
}

// MarkComplete flips the completed flag. Completing an already
// completed enrollment is a no-op that returns the current row.
func (s *EnrollmentService) MarkComplete(userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	if enrollment.Completed {
		return &enrollment, nil
	}

	now := time.Now()
	enrollment.Completed = true
	enrollment.CompletedAt = &now

	if err := s.db.Save(&enrollment).Error; err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// ListForUser returns the user's enrollments with the course resolved
// for display, in insertion order.
func (s *EnrollmentService) ListForUser(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ?", userID).Preload("Course").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// HasCompleted reports whether the user finished the course. This is
// the precondition for certificate issuance.
func (s *EnrollmentService) HasCompleted(userID, courseID uint) (bool, error) {
	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ? AND completed = ?", userID, courseID, true).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
