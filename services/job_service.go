package services

import (
	"errors"

	"github.com/thehellodigital/job-khuiji/models"
	"github.com/thehellodigital/job-khuiji/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrFieldNotString = errors.New("field must be a string")
)

// jobColumns maps the JSON field names a client may set to their columns.
// Everything else a creation or update body carries goes into extra.
var jobColumns = map[string]string{
	"title":      "title",
	"category":   "category",
	"summary":    "summary",
	"coverImage": "cover_image",
	"userEmail":  "user_email",
	"postedBy":   "posted_by",
}

type JobService struct {
	repos *repositories.Repos
}

func NewJobService(repos *repositories.Repos) *JobService {
	return &JobService{repos: repos}
}

func (s *JobService) CreateJob(body map[string]any) (models.Job, error) {
	job := jobFromBody(body)
	err := s.repos.Job.Create(&job)
	return job, err
}

func (s *JobService) GetJob(id uint) (models.Job, error) {
	job, err := s.repos.Job.FindByID(id)
	if err != nil {
		return models.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (s *JobService) ListJobs(latestFirst bool) ([]models.Job, error) {
	return s.repos.Job.List(latestFirst)
}

func (s *JobService) ListJobsByPoster(email string) ([]models.Job, error) {
	return s.repos.Job.ListByPosterEmail(email)
}

// UpdateJob applies exactly the fields present in the body. Known fields map
// to their columns and must be strings, unknown keys merge into the extra
// document. Updating a missing id reports zero matches instead of failing.
func (s *JobService) UpdateJob(id uint, body map[string]any) (int64, error) {
	updates := map[string]any{}
	extra := map[string]any{}
	for k, v := range body {
		if col, ok := jobColumns[k]; ok {
			sv, isString := v.(string)
			if !isString {
				return 0, ErrFieldNotString
			}
			updates[col] = sv
			continue
		}
		switch k {
		case "id", "createdAt", "updatedAt":
		default:
			extra[k] = v
		}
	}

	if len(extra) > 0 {
		job, err := s.repos.Job.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		merged := datatypes.JSONMap{}
		for k, v := range job.Extra {
			merged[k] = v
		}
		for k, v := range extra {
			merged[k] = v
		}
		updates["extra"] = merged
	}

	if len(updates) == 0 {
		if _, err := s.repos.Job.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, nil
			}
			return 0, err
		}
		return 1, nil
	}

	return s.repos.Job.Update(id, updates)
}

func (s *JobService) DeleteJob(id uint) (int64, error) {
	return s.repos.Job.Delete(id)
}

func jobFromBody(body map[string]any) models.Job {
	var job models.Job
	extra := datatypes.JSONMap{}
	for k, v := range body {
		if sv, isString := v.(string); isString {
			switch k {
			case "title":
				job.Title = sv
				continue
			case "category":
				job.Category = sv
				continue
			case "summary":
				job.Summary = sv
				continue
			case "coverImage":
				job.CoverImage = sv
				continue
			case "userEmail":
				job.UserEmail = sv
				continue
			case "postedBy":
				job.PostedBy = sv
				continue
			}
		}
		switch k {
		case "id", "createdAt", "updatedAt":
		default:
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		job.Extra = extra
	}
	return job
}
