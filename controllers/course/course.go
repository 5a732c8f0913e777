package controllers

import (
	"errors"
	"log"

	"learnhub/middleware"
	"learnhub/services"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Catalog *services.CatalogService
}

func NewController(catalog *services.CatalogService) *Controller {
	return &Controller{Catalog: catalog}
}

// GetAllCourses lists active courses for the public catalog.
func (ctrl *Controller) GetAllCourses(c *fiber.Ctx) error {
	courses, err := ctrl.Catalog.List()
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetCourseDetails fetches a single course by id, including retired
// ones so old enrollments can still render.
func (ctrl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := ctrl.Catalog.Get(courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func (ctrl *Controller) CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.Catalog.Create(userID, toCourseInput(reqData.Title, reqData.Description, reqData.Category, reqData.Thumbnail, reqData.Duration, reqData.Videos))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title, description and category are required!", nil)
		}
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func (ctrl *Controller) UpdateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.Catalog.Update(userID, courseID, toCourseInput(reqData.Title, reqData.Description, reqData.Category, reqData.Thumbnail, reqData.Duration, reqData.Videos))
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		if errors.Is(err, services.ErrForbidden) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to update this course!", nil)
		}
		log.Printf("Error updating course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func (ctrl *Controller) DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	if err := ctrl.Catalog.Delete(userID, courseID); err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		if errors.Is(err, services.ErrForbidden) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to delete this course!", nil)
		}
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func toCourseInput(title, description, category, thumbnail, duration string, videos []courseValidator.VideoRequest) services.CourseInput {
	in := services.CourseInput{
		Title:       title,
		Description: description,
		Category:    category,
		Thumbnail:   thumbnail,
		Duration:    duration,
	}
	for _, v := range videos {
		in.Videos = append(in.Videos, services.VideoInput{
			Title:    v.Title,
			URL:      v.URL,
			Duration: v.Duration,
		})
	}
	return in
}
