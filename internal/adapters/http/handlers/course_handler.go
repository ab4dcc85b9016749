package handlers

import (
	"context"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/core/services"
	"dealerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler handles training course endpoints
type CourseHandler struct {
	courseService *services.CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListPublished handles listing published courses for the mobile app
// @Summary List published courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Response
// @Router /courses/published [get]
func (h *CourseHandler) ListPublished(c *fiber.Ctx) error {
	return h.list(c, true)
}

// List handles listing every course
// @Summary List courses
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/courses [get]
func (h *CourseHandler) List(c *fiber.Ctx) error {
	return h.list(c, false)
}

func (h *CourseHandler) list(c *fiber.Ctx, publishedOnly bool) error {
	courses, err := h.courseService.List(c.Context(), publishedOnly)
	if err != nil {
		return handleError(c, err, "Failed to list courses")
	}

	return response.List(c, "Courses retrieved successfully", courses, int64(len(courses)))
}

// GetPublished handles getting a published course
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /courses/{id} [get]
func (h *CourseHandler) GetPublished(c *fiber.Ctx) error {
	return h.get(c, true)
}

// Get handles getting any course
// @Summary Get course (admin)
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/courses/{id} [get]
func (h *CourseHandler) Get(c *fiber.Ctx) error {
	return h.get(c, false)
}

func (h *CourseHandler) get(c *fiber.Ctx, publishedOnly bool) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	course, err := h.courseService.Get(c.Context(), id, publishedOnly)
	if err != nil {
		return handleError(c, err, "Failed to get course")
	}

	return response.Success(c, "Course retrieved successfully", course)
}

// Create handles course creation
// @Summary Create course
// @Description Content is HTML and is sanitised before it is stored
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CourseInput true "Course"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/courses [post]
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var req services.CourseInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	course, err := h.courseService.Create(c.Context(), &req)
	if err != nil {
		return handleError(c, err, "Failed to create course")
	}

	return response.Created(c, "Course created successfully", course)
}

// Update handles course update
// @Summary Update course
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param body body services.UpdateCourseInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/courses/{id} [put]
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	var req services.UpdateCourseInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	course, err := h.courseService.Update(c.Context(), id, &req)
	if err != nil {
		return handleError(c, err, "Failed to update course")
	}

	return response.Success(c, "Course updated successfully", course)
}

// Publish handles publishing a course
// @Summary Publish course
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/courses/{id}/publish [put]
func (h *CourseHandler) Publish(c *fiber.Ctx) error {
	return h.toggle(c, h.courseService.Publish, "Course published")
}

// Unpublish handles unpublishing a course
// @Summary Unpublish course
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/courses/{id}/unpublish [put]
func (h *CourseHandler) Unpublish(c *fiber.Ctx) error {
	return h.toggle(c, h.courseService.Unpublish, "Course unpublished")
}

func (h *CourseHandler) toggle(c *fiber.Ctx, fn func(context.Context, uint) (*models.Course, error), success string) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	course, err := fn(c.Context(), id)
	if err != nil {
		return handleError(c, err, "Failed to update course")
	}

	return response.Success(c, success, course)
}

// Delete handles course deletion
// @Summary Delete course
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/courses/{id} [delete]
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	if err := h.courseService.Delete(c.Context(), id); err != nil {
		return handleError(c, err, "Failed to delete course")
	}

	return response.Success(c, "Course deleted successfully", nil)
}
