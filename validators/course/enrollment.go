package courseValidator

import (
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseRefRequest is the body shared by enroll, complete and
// certificate generation.
type CourseRefRequest struct {
	CourseID uint `json:"courseId" validate:"required,gt=0"`
}

// CourseRef validates a {courseId} request body.
func CourseRef() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRefRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId is required!", nil)
		}

		c.Locals("validatedCourseRef", reqData)
		return c.Next()
	}
}
