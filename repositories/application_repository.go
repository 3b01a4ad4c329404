package repositories

import (
	"time"

	"github.com/thehellodigital/job-khuiji/db"
	"github.com/thehellodigital/job-khuiji/models"
	"gorm.io/gorm"
)

// ApplicationFilter narrows List to a single job or applicant. The service
// layer decides which field wins when a request supplies several.
type ApplicationFilter struct {
	JobID          string
	ApplicantEmail string
}

type ApplicationRepo interface {
	Create(app *models.Application) error
	FindByID(id uint) (models.Application, error)
	List(filter ApplicationFilter) ([]models.Application, error)
	ListByJobIDs(jobIDs []string) ([]models.Application, error)
	Approve(id uint, task *models.AcceptedTask, decidedBy string, decidedAt time.Time) error
	Reject(id uint, decidedBy string, decidedAt time.Time) error
	Delete(id uint) (int64, error)
}

type DBApplicationRepo struct{}

func (r *DBApplicationRepo) Create(app *models.Application) error {
	return db.DB.Create(app).Error
}

func (r *DBApplicationRepo) FindByID(id uint) (models.Application, error) {
	var app models.Application
	err := db.DB.First(&app, id).Error
	return app, err
}

func (r *DBApplicationRepo) List(filter ApplicationFilter) ([]models.Application, error) {
	tx := db.DB
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.ApplicantEmail != "" {
		tx = tx.Where("applicant_email = ?", filter.ApplicantEmail)
	}
	apps := []models.Application{}
	err := tx.Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) ListByJobIDs(jobIDs []string) ([]models.Application, error) {
	apps := []models.Application{}
	if len(jobIDs) == 0 {
		return apps, nil
	}
	err := db.DB.Where("job_id IN ?", jobIDs).Find(&apps).Error
	return apps, err
}

// Approve inserts the accepted task and flips the application's status in a
// single transaction, so a failure of either write leaves no partial state.
func (r *DBApplicationRepo) Approve(id uint, task *models.AcceptedTask, decidedBy string, decidedAt time.Time) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		return tx.Model(&models.Application{}).Where("id = ?", id).Updates(map[string]any{
			"status":     string(models.StatusApproved),
			"decided_by": decidedBy,
			"decided_at": decidedAt,
		}).Error
	})
}

func (r *DBApplicationRepo) Reject(id uint, decidedBy string, decidedAt time.Time) error {
	return db.DB.Model(&models.Application{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(models.StatusRejected),
		"decided_by": decidedBy,
		"decided_at": decidedAt,
	}).Error
}

func (r *DBApplicationRepo) Delete(id uint) (int64, error) {
	tx := db.DB.Delete(&models.Application{}, id)
	return tx.RowsAffected, tx.Error
}
