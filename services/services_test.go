package services

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps every query on the same memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Video{},
		&models.Enrollment{},
		&models.Certificate{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email, role string) *models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    email,
		Password: "hashed-password",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestCourse(t *testing.T, db *gorm.DB, adminID uint, title string) *models.Course {
	t.Helper()

	course := models.Course{
		Title:       title,
		Description: "A test course",
		Category:    "testing",
		Thumbnail:   models.DefaultThumbnail,
		Duration:    "2 hours",
		CreatedBy:   adminID,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}
