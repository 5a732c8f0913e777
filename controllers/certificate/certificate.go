package certificateController

import (
	"errors"
	"log"

	"learnhub/middleware"
	"learnhub/services"
	"learnhub/utils"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Certificates *services.CertificateService
	Users        *services.UserService
}

func NewController(certificates *services.CertificateService, users *services.UserService) *Controller {
	return &Controller{Certificates: certificates, Users: users}
}

// GenerateCertificate issues a certificate for a completed course.
// Repeated requests return the existing certificate with 200 instead
// of creating duplicates.
func (ctrl *Controller) GenerateCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourseRef").(*courseValidator.CourseRefRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	certificate, created, err := ctrl.Certificates.Issue(userID, reqData.CourseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		if errors.Is(err, services.ErrNotEligible) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not completed or not enrolled!", nil)
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("Error issuing certificate for user %d, course %d: %v", userID, reqData.CourseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	if !created {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate already generated!", certificate)
	}

	if user, err := ctrl.Users.Profile(userID); err == nil {
		go utils.SendCertificateEmail(user.Name, user.Email, certificate.CourseTitle, certificate.CertificateID)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate generated successfully!", certificate)
}

// GetUserCertificates lists the current user's certificates, newest first.
func (ctrl *Controller) GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificates, err := ctrl.Certificates.ListForUser(userID)
	if err != nil {
		log.Printf("Error fetching certificates: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"total":        len(certificates),
	})
}
