package courseValidator

import (
	"strconv"
	"strings"

	"learnhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type VideoRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url" validate:"required"`
	Duration string `json:"duration"`
}

type CreateCourseRequest struct {
	Title       string         `json:"title" validate:"required,min=3"`
	Description string         `json:"description" validate:"required,min=5"`
	Category    string         `json:"category" validate:"required"`
	Thumbnail   string         `json:"thumbnail" validate:"omitempty,url"`
	Duration    string         `json:"duration"`
	Videos      []VideoRequest `json:"videos" validate:"dive"`
}

type UpdateCourseRequest struct {
	Title       string         `json:"title" validate:"omitempty,min=3"`
	Description string         `json:"description" validate:"omitempty,min=5"`
	Category    string         `json:"category"`
	Thumbnail   string         `json:"thumbnail" validate:"omitempty,url"`
	Duration    string         `json:"duration"`
	Videos      []VideoRequest `json:"videos" validate:"dive"`
}

func courseFieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	for _, e := range err.(validator.ValidationErrors) {
		switch e.Field() {
		case "Title":
			errors["title"] = "Title is required and must be at least 3 characters long!"
		case "Description":
			errors["description"] = "Description is required and must be at least 5 characters long!"
		case "Category":
			errors["category"] = "Category is required!"
		case "Thumbnail":
			errors["thumbnail"] = "Thumbnail must be a valid URL!"
		case "URL":
			errors["videos"] = "Every video needs a URL!"
		}
	}
	return errors
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, courseFieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, courseFieldErrors(err))
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
