package certificateRoutes

import (
	certificateController "learnhub/controllers/certificate"
	"learnhub/middleware"
	"learnhub/models"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up the student certificate endpoints.
func SetupCertificateRoutes(app *fiber.App, ctrl *certificateController.Controller) {
	certGroup := app.Group("/api/certificates")

	certGroup.Post("/generate", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), courseValidator.CourseRef(), ctrl.GenerateCertificate)
	certGroup.Get("/my-certificates", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), ctrl.GetUserCertificates)
}
