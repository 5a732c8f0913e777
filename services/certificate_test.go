package services

import (
	"strings"
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueRequiresCompletion(t *testing.T) {
	db := setupTestDB(t)
	enrollments := NewEnrollmentService(db)
	svc := NewCertificateService(db, enrollments)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)
	course := createTestCourse(t, db, admin.ID, "Go Basics")

	// Missing course
	_, _, err := svc.Issue(student.ID, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	// Not enrolled
	_, _, err = svc.Issue(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrNotEligible)

	// Enrolled but not completed
	_, err = enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)
	_, _, err = svc.Issue(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestIssueIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	enrollments := NewEnrollmentService(db)
	svc := NewCertificateService(db, enrollments)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)
	course := createTestCourse(t, db, admin.ID, "Go Basics")

	_, err := enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)
	_, err = enrollments.MarkComplete(student.ID, course.ID)
	require.NoError(t, err)

	first, created, err := svc.Issue(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, strings.HasPrefix(first.CertificateID, "LH"))
	assert.Equal(t, "Student", first.StudentName)
	assert.Equal(t, "Go Basics", first.CourseTitle)

	for i := 0; i < 3; i++ {
		again, created, err := svc.Issue(student.ID, course.ID)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.CertificateID, again.CertificateID)
	}

	var count int64
	require.NoError(t, db.Model(&models.Certificate{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIssuedCertificateSnapshotIsStable(t *testing.T) {
	db := setupTestDB(t)
	enrollments := NewEnrollmentService(db)
	svc := NewCertificateService(db, enrollments)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Original Name", "student@test.com", models.RoleStudent)
	course := createTestCourse(t, db, admin.ID, "Original Title")

	_, err := enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)
	_, err = enrollments.MarkComplete(student.ID, course.ID)
	require.NoError(t, err)

	cert, _, err := svc.Issue(student.ID, course.ID)
	require.NoError(t, err)

	// Rename the user and the course after issuance.
	require.NoError(t, db.Model(student).Update("name", "New Name").Error)
	require.NoError(t, db.Model(course).Update("title", "New Title").Error)

	var reloaded models.Certificate
	require.NoError(t, db.First(&reloaded, cert.ID).Error)
	assert.Equal(t, "Original Name", reloaded.StudentName)
	assert.Equal(t, "Original Title", reloaded.CourseTitle)
}

func TestIssueWorksForRetiredCourse(t *testing.T) {
	db := setupTestDB(t)
	enrollments := NewEnrollmentService(db)
	svc := NewCertificateService(db, enrollments)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)
	course := createTestCourse(t, db, admin.ID, "Go Basics")

	_, err := enrollments.Enroll(student.ID, course.ID)
	require.NoError(t, err)
	_, err = enrollments.MarkComplete(student.ID, course.ID)
	require.NoError(t, err)

	// Soft-delete the course, then issue. The direct-id lookup must
	// still find it.
	require.NoError(t, db.Model(course).Update("is_active", false).Error)

	cert, created, err := svc.Issue(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Go Basics", cert.CourseTitle)
}

func TestListForUserNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	enrollments := NewEnrollmentService(db)
	svc := NewCertificateService(db, enrollments)

	admin := createTestUser(t, db, "Admin", "admin@test.com", models.RoleAdmin)
	student := createTestUser(t, db, "Student", "student@test.com", models.RoleStudent)

	for _, title := range []string{"First Course", "Second Course"} {
		course := createTestCourse(t, db, admin.ID, title)
		_, err := enrollments.Enroll(student.ID, course.ID)
		require.NoError(t, err)
		_, err = enrollments.MarkComplete(student.ID, course.ID)
		require.NoError(t, err)
		_, _, err = svc.Issue(student.ID, course.ID)
		require.NoError(t, err)
	}

	certificates, err := svc.ListForUser(student.ID)
	require.NoError(t, err)
	require.Len(t, certificates, 2)
	assert.False(t, certificates[0].IssuedAt.Before(certificates[1].IssuedAt))
	assert.Equal(t, "Second Course", certificates[0].Course.Title)
}

func TestNewCertificateIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newCertificateID()
		assert.True(t, strings.HasPrefix(id, "LH"))
		assert.False(t, seen[id], "duplicate certificate id %s", id)
		seen[id] = true
	}
}
