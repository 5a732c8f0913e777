package services

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollCreatesSingleEnrollment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)
	course := createTestCourse(t, db, admin.ID, "Go Basics")

	enrollment, err := svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, enrollment.Completed)
	assert.Equal(t, course.ID, enrollment.CourseID)

	// Second enroll for the same pair must fail and not add a row.
	_, err = svc.Enroll(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnrollMissingOrInactiveCourse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)

	_, err := svc.Enroll(student.ID, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	course := createTestCourse(t, db, admin.ID, "Retired Course")
	require.NoError(t, db.Model(course).Update("is_active", false).Error)

	_, err = svc.Enroll(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestMarkCompleteRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)
	course := createTestCourse(t, db, admin.ID, "Go Basics")

	_, err := svc.MarkComplete(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestMarkCompleteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)
	course := createTestCourse(t, db, admin.ID, "Go Basics")

	_, err := svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	first, err := svc.MarkComplete(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, first.Completed)
	require.NotNil(t, first.CompletedAt)

	second, err := svc.MarkComplete(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, second.Completed)
	assert.Equal(t, first.ID, second.ID)
	// No-op: the completion timestamp must not move.
	assert.Equal(t, first.CompletedAt.Unix(), second.CompletedAt.Unix())

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListForUserResolvesCourses(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)
	first := createTestCourse(t, db, admin.ID, "Go Basics")
	second := createTestCourse(t, db, admin.ID, "Advanced Go")

	_, err := svc.Enroll(student.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(student.ID, second.ID)
	require.NoError(t, err)

	enrollments, err := svc.ListForUser(student.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	assert.Equal(t, "Go Basics", enrollments[0].Course.Title)
	assert.Equal(t, "Advanced Go", enrollments[1].Course.Title)
}

func TestHasCompleted(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEnrollmentService(db)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)
	course := createTestCourse(t, db, admin.ID, "Go Basics")

	done, err := svc.HasCompleted(student.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, done)

	_, err = svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	done, err = svc.HasCompleted(student.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, done)

	_, err = svc.MarkComplete(student.ID, course.ID)
	require.NoError(t, err)

	done, err = svc.HasCompleted(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, done)
}
