package services

import (
	"errors"
	"strings"

	"learnhub/models"
	"learnhub/utils"

	"gorm.io/gorm"
)

// CourseInput is the already-validated input for course create/update.
type CourseInput struct {
	Title       string
	Description string
	Category    string
	Thumbnail   string
	Duration    string
	Videos      []VideoInput
}

type VideoInput struct {
	Title    string
	URL      string
	Duration string
}

// CatalogService provides course CRUD with soft delete and creator-only
// ownership on mutations.
type CatalogService struct {
	db *gorm.DB

	// TitleLookup optionally resolves a title for a video that was
	// submitted without one. Failures are ignored.
	TitleLookup func(videoURL string) (string, error)
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// List returns active courses, newest first, with creator and ordered
// videos resolved. Soft-deleted courses never appear here.
func (s *CatalogService) List() ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("is_active = ?", true).
		Preload("Creator").
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Get fetches a course by id regardless of the active flag, so existing
// enrollment and certificate references stay resolvable.
func (s *CatalogService) Get(id uint) (*models.Course, error) {
	var course models.Course
	err := s.db.Preload("Creator").
		Preload("Videos", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
		First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// Create stores a new course owned by the acting admin. Video URLs are
// normalized into embeddable form at write time.
func (s *CatalogService) Create(adminID uint, in CourseInput) (*models.Course, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Category) == "" {
		return nil, ErrValidation
	}

	course := models.Course{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Thumbnail:   in.Thumbnail,
		Duration:    in.Duration,
		CreatedBy:   adminID,
		IsActive:    true,
		Videos:      s.buildVideos(in.Videos),
	}
	if course.Thumbnail == "" {
		course.Thumbnail = models.DefaultThumbnail
	}
	if course.Duration == "" {
		course.Duration = "N/A"
	}

	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}

	return s.Get(course.ID)
}

// Update applies a partial update. Only the creating admin may update;
// a non-empty video list replaces the course's videos wholesale.
func (s *CatalogService) Update(adminID, id uint, in CourseInput) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if course.CreatedBy != adminID {
		return nil, ErrForbidden
	}

	if v := strings.TrimSpace(in.Title); v != "" {
		course.Title = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		course.Description = v
	}
	if v := strings.TrimSpace(in.Category); v != "" {
		course.Category = v
	}
	if in.Thumbnail != "" {
		course.Thumbnail = in.Thumbnail
	}
	if in.Duration != "" {
		course.Duration = in.Duration
	}

	if err := s.db.Save(&course).Error; err != nil {
		return nil, err
	}

	if len(in.Videos) > 0 {
		if err := s.db.Where("course_id = ?", course.ID).Delete(&models.Video{}).Error; err != nil {
			return nil, err
		}
		videos := s.buildVideos(in.Videos)
		for i := range videos {
			videos[i].CourseID = course.ID
		}
		if err := s.db.Create(&videos).Error; err != nil {
			return nil, err
		}
	}

	return s.Get(course.ID)
}

// Delete soft-deletes a course by flipping IsActive. Only the creating
// admin may delete.
func (s *CatalogService) Delete(adminID, id uint) error {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	if course.CreatedBy != adminID {
		return ErrForbidden
	}

	course.IsActive = false
	return s.db.Save(&course).Error
}

func (s *CatalogService) buildVideos(inputs []VideoInput) []models.Video {
	videos := make([]models.Video, 0, len(inputs))
	for i, in := range inputs {
		video := models.Video{
			Title:      in.Title,
			URL:        in.URL,
			EmbedURL:   utils.ToEmbedURL(in.URL),
			Duration:   in.Duration,
			OrderIndex: i,
		}
		if video.Duration == "" {
			video.Duration = "N/A"
		}
		if video.Title == "" && s.TitleLookup != nil {
			if title, err := s.TitleLookup(in.URL); err == nil {
				video.Title = title
			}
		}
		videos = append(videos, video)
	}
	return videos
}
