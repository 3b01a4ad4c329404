package services

import (
	"github.com/thehellodigital/job-khuiji/models"
	"github.com/thehellodigital/job-khuiji/repositories"
)

type AcceptedTaskService struct {
	repos *repositories.Repos
}

func NewAcceptedTaskService(repos *repositories.Repos) *AcceptedTaskService {
	return &AcceptedTaskService{repos: repos}
}

func (s *AcceptedTaskService) ListByUserEmail(email string) ([]models.AcceptedTask, error) {
	return s.repos.AcceptedTask.ListByUserEmail(email)
}

func (s *AcceptedTaskService) Delete(id uint) (int64, error) {
	return s.repos.AcceptedTask.Delete(id)
}
