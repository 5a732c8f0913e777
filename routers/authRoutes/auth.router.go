package authRoutes

import (
	authController "learnhub/controllers/auth"
	"learnhub/middleware"
	"learnhub/models"
	authValidator "learnhub/validators/auth"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration, login, profile and the
// student enrollment actions.
func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller) {
	authGroup := app.Group("/api/auth")

	// Public routes
	authGroup.Post("/register", authValidator.Register(), ctrl.Signup)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)

	// Protected routes
	authGroup.Get("/profile", middleware.JWTMiddleware, ctrl.Profile)

	// Student actions
	authGroup.Post("/enroll", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), courseValidator.CourseRef(), ctrl.EnrollInCourse)
	authGroup.Post("/complete", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), courseValidator.CourseRef(), ctrl.MarkCourseComplete)
	authGroup.Get("/enrollments", middleware.JWTMiddleware, ctrl.GetEnrollments)
}
