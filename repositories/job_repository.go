package repositories

import (
	"github.com/thehellodigital/job-khuiji/db"
	"github.com/thehellodigital/job-khuiji/models"
)

type JobRepo interface {
	Create(job *models.Job) error
	FindByID(id uint) (models.Job, error)
	List(latestFirst bool) ([]models.Job, error)
	ListByPosterEmail(email string) ([]models.Job, error)
	Update(id uint, fields map[string]any) (int64, error)
	Delete(id uint) (int64, error)
}

type DBJobRepo struct{}

func (r *DBJobRepo) Create(job *models.Job) error {
	return db.DB.Create(job).Error
}

func (r *DBJobRepo) FindByID(id uint) (models.Job, error) {
	var job models.Job
	err := db.DB.First(&job, id).Error
	return job, err
}

func (r *DBJobRepo) List(latestFirst bool) ([]models.Job, error) {
	jobs := []models.Job{}
	tx := db.DB
	if latestFirst {
		tx = tx.Order("id desc")
	}
	err := tx.Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) ListByPosterEmail(email string) ([]models.Job, error) {
	jobs := []models.Job{}
	err := db.DB.Where("user_email = ?", email).Find(&jobs).Error
	return jobs, err
}

// Update applies the given column set and reports how many rows matched.
// Updating a missing id is not an error, the count is just zero.
func (r *DBJobRepo) Update(id uint, fields map[string]any) (int64, error) {
	tx := db.DB.Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *DBJobRepo) Delete(id uint) (int64, error) {
	tx := db.DB.Delete(&models.Job{}, id)
	return tx.RowsAffected, tx.Error
}
