package services

import (
	"context"

	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/core/domain"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// CourseService manages e-learning courses for technicians
type CourseService struct {
	courseRepo repositories.CourseRepository
	policy     *bluemonday.Policy
	logger     *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo repositories.CourseRepository, logger *zap.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		policy:     bluemonday.UGCPolicy(),
		logger:     logger,
	}
}

// CourseInput represents create course input. Content is rich text HTML and
// must still carry text once sanitised.
type CourseInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Content     string `json:"content" validate:"required"`
	IsPublished bool   `json:"is_published"`
}

// UpdateCourseInput is a partial patch
type UpdateCourseInput struct {
	Title   *string `json:"title" validate:"omitnil,notblank,max=255"`
	Content *string `json:"content" validate:"omitnil,notblank"`
}

// Create stores a course with sanitised content
func (s *CourseService) Create(ctx context.Context, input *CourseInput) (*models.Course, error) {
	input.Content = s.policy.Sanitize(input.Content)
	if err := validate(input); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:       input.Title,
		Content:     input.Content,
		IsPublished: input.IsPublished,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info("course created", zap.Uint("course_id", course.ID))
	return course, nil
}

// Get gets a course by ID. Unpublished courses are reported as missing when
// publishedOnly is set.
func (s *CourseService) Get(ctx context.Context, id uint, publishedOnly bool) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrCourseNotFound)
	}
	if publishedOnly && !course.IsPublished {
		return nil, domain.ErrCourseNotFound
	}
	return course, nil
}

// List lists courses
func (s *CourseService) List(ctx context.Context, publishedOnly bool) ([]*models.Course, error) {
	return s.courseRepo.List(ctx, publishedOnly)
}

// Update applies a partial patch to a course
func (s *CourseService) Update(ctx context.Context, id uint, input *UpdateCourseInput) (*models.Course, error) {
	if input.Content != nil {
		sanitized := s.policy.Sanitize(*input.Content)
		input.Content = &sanitized
	}
	if err := validate(input); err != nil {
		return nil, err
	}

	course, err := s.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if v := trimPtr(input.Title); v != nil {
		course.Title = *v
	}
	if input.Content != nil {
		course.Content = *input.Content
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Publish makes the course visible in the mobile app
func (s *CourseService) Publish(ctx context.Context, id uint) (*models.Course, error) {
	return s.setPublished(ctx, id, true)
}

// Unpublish hides the course from the mobile app
func (s *CourseService) Unpublish(ctx context.Context, id uint) (*models.Course, error) {
	return s.setPublished(ctx, id, false)
}

// Delete hard deletes a course
func (s *CourseService) Delete(ctx context.Context, id uint) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrCourseNotFound)
	}
	s.logger.Info("course deleted", zap.Uint("course_id", id))
	return nil
}

func (s *CourseService) setPublished(ctx context.Context, id uint, published bool) (*models.Course, error) {
	course, err := s.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if err := s.courseRepo.SetPublished(ctx, id, published); err != nil {
		return nil, err
	}
	course.IsPublished = published

	s.logger.Info("course publish state changed", zap.Uint("course_id", id), zap.Bool("published", published))
	return course, nil
}
