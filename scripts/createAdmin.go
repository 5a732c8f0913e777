package main

import (
	"log"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the admin account from ADMIN_NAME / ADMIN_EMAIL / ADMIN_PASSWORD.
// Safe to run repeatedly; does nothing if the email already exists.
func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	email := config.AppConfig.AdminEmail

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}

	admin := models.User{
		Name:     config.AppConfig.AdminName,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error creating admin: %v", err)
	}

	log.Printf("Admin user created: %s", email)
}
