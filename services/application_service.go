package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/thehellodigital/job-khuiji/dto"
	"github.com/thehellodigital/job-khuiji/models"
	"github.com/thehellodigital/job-khuiji/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrMissingFields       = errors.New("jobId & applicantEmail required")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrInvalidAction       = errors.New("invalid action")
	ErrAlreadyDecided      = errors.New("application already decided")
	ErrCallerRequired      = errors.New("callerEmail required")
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type ApplicationService struct {
	repos *repositories.Repos
}

func NewApplicationService(repos *repositories.Repos) *ApplicationService {
	return &ApplicationService{repos: repos}
}

// Submit stores a new application. Status defaults to pending when the
// client leaves it out; a supplied status must be a known value.
func (s *ApplicationService) Submit(input dto.CreateApplicationDTO) (models.Application, error) {
	if input.JobID == "" || input.ApplicantEmail == "" {
		return models.Application{}, ErrMissingFields
	}

	status := models.StatusPending
	if input.Status != "" {
		status = models.ApplicationStatus(input.Status)
		if !status.Valid() {
			return models.Application{}, ErrInvalidStatus
		}
	}

	app := models.Application{
		JobID:          input.JobID,
		ApplicantEmail: input.ApplicantEmail,
		ApplicantName:  input.ApplicantName,
		Message:        input.Message,
		Status:         status,
	}
	if len(input.Extra) > 0 {
		app.Extra = datatypes.JSONMap(input.Extra)
	}
	return app, s.repos.Application.Create(&app)
}

// ListApplications resolves the filter parameters in fixed precedence:
// posterEmail first (a two-step lookup through the poster's jobs, any other
// parameter is ignored), then jobId, then applicantEmail, then everything.
func (s *ApplicationService) ListApplications(posterEmail, jobID, applicantEmail string) ([]models.Application, error) {
	if posterEmail != "" {
		jobs, err := s.repos.Job.ListByPosterEmail(posterEmail)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(jobs))
		for _, job := range jobs {
			ids = append(ids, strconv.FormatUint(uint64(job.ID), 10))
		}
		return s.repos.Application.ListByJobIDs(ids)
	}
	if jobID != "" {
		return s.repos.Application.List(repositories.ApplicationFilter{JobID: jobID})
	}
	if applicantEmail != "" {
		return s.repos.Application.List(repositories.ApplicationFilter{ApplicantEmail: applicantEmail})
	}
	return s.repos.Application.List(repositories.ApplicationFilter{})
}

// Decide runs the approval workflow. Only the poster of the referenced job
// may decide, only pending applications can transition, and approving
// inserts the accepted task together with the status update in one
// transaction.
func (s *ApplicationService) Decide(id uint, input dto.DecideApplicationDTO) error {
	app, err := s.repos.Application.FindByID(id)
	if err != nil {
		return ErrApplicationNotFound
	}

	jobID, err := strconv.ParseUint(app.JobID, 10, 32)
	if err != nil {
		return ErrJobNotFound
	}
	job, err := s.repos.Job.FindByID(uint(jobID))
	if err != nil {
		return ErrJobNotFound
	}

	if input.ApproverEmail == "" || input.ApproverEmail != job.UserEmail {
		return ErrNotAuthorized
	}

	if input.Action != ActionApprove && input.Action != ActionReject {
		return ErrInvalidAction
	}
	if app.Status != models.StatusPending {
		return ErrAlreadyDecided
	}

	now := time.Now().UTC()
	if input.Action == ActionApprove {
		task := models.AcceptedTask{
			JobID:      app.JobID,
			Title:      job.Title,
			Category:   job.Category,
			Summary:    job.Summary,
			CoverImage: job.CoverImage,
			PostedBy:   job.PostedBy,
			UserEmail:  app.ApplicantEmail,
			AcceptedBy: input.ApproverEmail,
			AcceptedAt: now,
		}
		return s.repos.Application.Approve(app.ID, &task, input.ApproverEmail, now)
	}
	return s.repos.Application.Reject(app.ID, input.ApproverEmail, now)
}

// DeleteApplication removes an application for its applicant or the job's
// poster. Deleting an id that does not exist reports zero rows, matching the
// other delete endpoints.
func (s *ApplicationService) DeleteApplication(id uint, callerEmail string) (int64, error) {
	if callerEmail == "" {
		return 0, ErrCallerRequired
	}

	app, err := s.repos.Application.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if callerEmail != app.ApplicantEmail && !s.isPoster(app.JobID, callerEmail) {
		return 0, ErrNotAuthorized
	}
	return s.repos.Application.Delete(id)
}

func (s *ApplicationService) isPoster(jobID, email string) bool {
	id, err := strconv.ParseUint(jobID, 10, 32)
	if err != nil {
		return false
	}
	job, err := s.repos.Job.FindByID(uint(id))
	return err == nil && job.UserEmail == email
}
