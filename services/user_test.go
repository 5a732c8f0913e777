package services

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, bcrypt.MinCost)

	user, err := svc.Register("Student", "Student@Test.com", "secret123", "")
	require.NoError(t, err)

	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "student@test.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, bcrypt.MinCost)

	_, err := svc.Register("First", "dup@test.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Register("Second", "dup@test.com", "secret456", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, bcrypt.MinCost)

	_, err := svc.Register("User", "user@test.com", "secret123", "superuser")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, bcrypt.MinCost)

	_, err := svc.Register("Student", "student@test.com", "secret123", "")
	require.NoError(t, err)

	user, err := svc.Authenticate("student@test.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Student", user.Name)

	_, err = svc.Authenticate("student@test.com", "wrong-password")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Authenticate("nobody@test.com", "secret123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, bcrypt.MinCost)

	created, err := svc.Register("Student", "student@test.com", "secret123", "")
	require.NoError(t, err)

	user, err := svc.Profile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, user.Email)

	_, err = svc.Profile(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
