package repositories

import (
	"github.com/thehellodigital/job-khuiji/db"
	"github.com/thehellodigital/job-khuiji/models"
)

type AcceptedTaskRepo interface {
	ListByUserEmail(email string) ([]models.AcceptedTask, error)
	Delete(id uint) (int64, error)
}

type DBAcceptedTaskRepo struct{}

func (r *DBAcceptedTaskRepo) ListByUserEmail(email string) ([]models.AcceptedTask, error) {
	tasks := []models.AcceptedTask{}
	err := db.DB.Where("user_email = ?", email).Find(&tasks).Error
	return tasks, err
}

func (r *DBAcceptedTaskRepo) Delete(id uint) (int64, error) {
	tx := db.DB.Delete(&models.AcceptedTask{}, id)
	return tx.RowsAffected, tx.Error
}
