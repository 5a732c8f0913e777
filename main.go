package main

import (
	"log"
	"strings"

	"learnhub/config"
	authController "learnhub/controllers/auth"
	certificateController "learnhub/controllers/certificate"
	controllers "learnhub/controllers/course"
	"learnhub/database"
	"learnhub/middleware"
	authRoutes "learnhub/routers/authRoutes"
	certificateRoutes "learnhub/routers/certificateRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	"learnhub/services"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	users := services.NewUserService(db, config.AppConfig.SaltRound)
	enrollments := services.NewEnrollmentService(db)
	certificates := services.NewCertificateService(db, enrollments)
	catalog := services.NewCatalogService(db)
	catalog.TitleLookup = utils.FetchVideoTitle

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "LearnHub API is running!", nil)
	})

	authRoutes.SetupAuthRoutes(app, authController.NewController(users, enrollments))
	courseRoutes.SetupCourseRoutes(app, controllers.NewController(catalog))
	certificateRoutes.SetupCertificateRoutes(app, certificateController.NewController(certificates, users))

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

// allowedOrigins builds the CORS allow list from the configured
// frontend URL plus the local dev servers.
func allowedOrigins() string {
	origins := []string{
		"http://localhost:5173",
		"http://localhost:5174",
	}
	if config.AppConfig.FrontendURL != "" {
		origins = append(origins, config.AppConfig.FrontendURL)
	}
	return strings.Join(origins, ",")
}
