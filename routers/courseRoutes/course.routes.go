package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	"learnhub/models"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and the admin CRUD.
func SetupCourseRoutes(app *fiber.App, ctrl *controllers.Controller) {
	courseGroup := app.Group("/api/courses")

	// Public routes
	courseGroup.Get("/", ctrl.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), ctrl.GetCourseDetails)

	// Admin only routes
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreateCourse(), ctrl.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CourseID(), validators.UpdateCourse(), ctrl.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CourseID(), ctrl.DeleteCourse)
}
