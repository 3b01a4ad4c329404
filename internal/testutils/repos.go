package testutils

import (
	"sort"
	"time"

	"github.com/thehellodigital/job-khuiji/models"
	"github.com/thehellodigital/job-khuiji/repositories"
	"gorm.io/gorm"
)

// In-memory repository doubles for unit tests. They honor the same
// contracts as the gorm implementations: gorm.ErrRecordNotFound for missing
// records, zero counts for no-op updates and deletes, empty (never nil)
// list results, and an all-or-nothing Approve.

func NewFakeRepos() (*repositories.Repos, *FakeJobRepo, *FakeApplicationRepo, *FakeAcceptedTaskRepo) {
	jobs := NewFakeJobRepo()
	apps := NewFakeApplicationRepo()
	tasks := NewFakeAcceptedTaskRepo()
	repos := &repositories.Repos{
		Job:          jobs,
		Application:  apps,
		AcceptedTask: tasks,
	}
	return repos, jobs, apps, tasks
}

type FakeJobRepo struct {
	Jobs       map[uint]models.Job
	Err        error
	LastUpdate map[string]any
	nextID     uint
}

var _ repositories.JobRepo = (*FakeJobRepo)(nil)

func NewFakeJobRepo() *FakeJobRepo {
	return &FakeJobRepo{Jobs: map[uint]models.Job{}}
}

func (f *FakeJobRepo) Create(job *models.Job) error {
	if f.Err != nil {
		return f.Err
	}
	f.nextID++
	job.ID = f.nextID
	f.Jobs[job.ID] = *job
	return nil
}

func (f *FakeJobRepo) FindByID(id uint) (models.Job, error) {
	if f.Err != nil {
		return models.Job{}, f.Err
	}
	job, ok := f.Jobs[id]
	if !ok {
		return models.Job{}, gorm.ErrRecordNotFound
	}
	return job, nil
}

func (f *FakeJobRepo) List(latestFirst bool) ([]models.Job, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	jobs := f.sorted()
	if latestFirst {
		for i, j := 0, len(jobs)-1; i < j; i, j = i+1, j-1 {
			jobs[i], jobs[j] = jobs[j], jobs[i]
		}
	}
	return jobs, nil
}

func (f *FakeJobRepo) ListByPosterEmail(email string) ([]models.Job, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	jobs := []models.Job{}
	for _, job := range f.sorted() {
		if job.UserEmail == email {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (f *FakeJobRepo) Update(id uint, fields map[string]any) (int64, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	if _, ok := f.Jobs[id]; !ok {
		return 0, nil
	}
	f.LastUpdate = fields
	return 1, nil
}

func (f *FakeJobRepo) Delete(id uint) (int64, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	if _, ok := f.Jobs[id]; !ok {
		return 0, nil
	}
	delete(f.Jobs, id)
	return 1, nil
}

func (f *FakeJobRepo) sorted() []models.Job {
	ids := make([]uint, 0, len(f.Jobs))
	for id := range f.Jobs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	jobs := make([]models.Job, 0, len(ids))
	for _, id := range ids {
		jobs = append(jobs, f.Jobs[id])
	}
	return jobs
}

type FakeApplicationRepo struct {
	Apps  map[uint]models.Application
	Tasks []models.AcceptedTask

	Err        error
	ApproveErr error

	ListCalls         int
	ListByJobIDsCalls int
	LastJobIDs        []string

	nextID uint
}

var _ repositories.ApplicationRepo = (*FakeApplicationRepo)(nil)

func NewFakeApplicationRepo() *FakeApplicationRepo {
	return &FakeApplicationRepo{Apps: map[uint]models.Application{}}
}

func (f *FakeApplicationRepo) Create(app *models.Application) error {
	if f.Err != nil {
		return f.Err
	}
	f.nextID++
	app.ID = f.nextID
	f.Apps[app.ID] = *app
	return nil
}

func (f *FakeApplicationRepo) FindByID(id uint) (models.Application, error) {
	if f.Err != nil {
		return models.Application{}, f.Err
	}
	app, ok := f.Apps[id]
	if !ok {
		return models.Application{}, gorm.ErrRecordNotFound
	}
	return app, nil
}

func (f *FakeApplicationRepo) List(filter repositories.ApplicationFilter) ([]models.Application, error) {
	f.ListCalls++
	if f.Err != nil {
		return nil, f.Err
	}
	apps := []models.Application{}
	for _, app := range f.sorted() {
		if filter.JobID != "" && app.JobID != filter.JobID {
			continue
		}
		if filter.ApplicantEmail != "" && app.ApplicantEmail != filter.ApplicantEmail {
			continue
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (f *FakeApplicationRepo) ListByJobIDs(jobIDs []string) ([]models.Application, error) {
	f.ListByJobIDsCalls++
	f.LastJobIDs = jobIDs
	if f.Err != nil {
		return nil, f.Err
	}
	wanted := map[string]bool{}
	for _, id := range jobIDs {
		wanted[id] = true
	}
	apps := []models.Application{}
	for _, app := range f.sorted() {
		if wanted[app.JobID] {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (f *FakeApplicationRepo) Approve(id uint, task *models.AcceptedTask, decidedBy string, decidedAt time.Time) error {
	if f.ApproveErr != nil {
		return f.ApproveErr
	}
	f.Tasks = append(f.Tasks, *task)
	f.setDecision(id, models.StatusApproved, decidedBy, decidedAt)
	return nil
}

func (f *FakeApplicationRepo) Reject(id uint, decidedBy string, decidedAt time.Time) error {
	if f.Err != nil {
		return f.Err
	}
	f.setDecision(id, models.StatusRejected, decidedBy, decidedAt)
	return nil
}

func (f *FakeApplicationRepo) Delete(id uint) (int64, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	if _, ok := f.Apps[id]; !ok {
		return 0, nil
	}
	delete(f.Apps, id)
	return 1, nil
}

func (f *FakeApplicationRepo) setDecision(id uint, status models.ApplicationStatus, decidedBy string, decidedAt time.Time) {
	app, ok := f.Apps[id]
	if !ok {
		return
	}
	app.Status = status
	app.DecidedBy = &decidedBy
	app.DecidedAt = &decidedAt
	f.Apps[id] = app
}

func (f *FakeApplicationRepo) sorted() []models.Application {
	ids := make([]uint, 0, len(f.Apps))
	for id := range f.Apps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	apps := make([]models.Application, 0, len(ids))
	for _, id := range ids {
		apps = append(apps, f.Apps[id])
	}
	return apps
}

type FakeAcceptedTaskRepo struct {
	Tasks  map[uint]models.AcceptedTask
	Err    error
	nextID uint
}

var _ repositories.AcceptedTaskRepo = (*FakeAcceptedTaskRepo)(nil)

func NewFakeAcceptedTaskRepo() *FakeAcceptedTaskRepo {
	return &FakeAcceptedTaskRepo{Tasks: map[uint]models.AcceptedTask{}}
}

// Add seeds a task, assigning an id.
func (f *FakeAcceptedTaskRepo) Add(task models.AcceptedTask) models.AcceptedTask {
	f.nextID++
	task.ID = f.nextID
	f.Tasks[task.ID] = task
	return task
}

func (f *FakeAcceptedTaskRepo) ListByUserEmail(email string) ([]models.AcceptedTask, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	ids := make([]uint, 0, len(f.Tasks))
	for id := range f.Tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	tasks := []models.AcceptedTask{}
	for _, id := range ids {
		if f.Tasks[id].UserEmail == email {
			tasks = append(tasks, f.Tasks[id])
		}
	}
	return tasks, nil
}

func (f *FakeAcceptedTaskRepo) Delete(id uint) (int64, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	if _, ok := f.Tasks[id]; !ok {
		return 0, nil
	}
	delete(f.Tasks, id)
	return 1, nil
}
