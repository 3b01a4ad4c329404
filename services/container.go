package services

import "github.com/thehellodigital/job-khuiji/repositories"

type Services struct {
	Job          *JobService
	Application  *ApplicationService
	AcceptedTask *AcceptedTaskService
	Upload       *UploadService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Job:          NewJobService(repos),
		Application:  NewApplicationService(repos),
		AcceptedTask: NewAcceptedTaskService(repos),
		Upload:       NewUploadService(),
	}
}
