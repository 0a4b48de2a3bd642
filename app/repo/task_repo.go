package repo

import (
	"time"

	"github.com/20225587/Tasker/app/models"

	"gorm.io/gorm"
)

// Listing order: earliest deadline first with undated tasks last, newest
// task first within a day.
const taskListOrder = "(CASE WHEN tasks.deadline IS NULL THEN 1 ELSE 0 END), tasks.deadline ASC, tasks.id DESC"

// TaskWithOwner is a task-list row joined with the owning user.
type TaskWithOwner struct {
	ID          uint
	Title       string
	Description string
	Deadline    *time.Time
	Status      models.Status
	UserID      uint
	Username    string
	Email       string
}

type TaskRepository struct{ db *gorm.DB }

func NewTaskRepository(db *gorm.DB) *TaskRepository { return &TaskRepository{db: db} }

func (r *TaskRepository) Create(t *models.Task) error { return r.db.Create(t).Error }

func (r *TaskRepository) FindByID(id uint) (*models.Task, error) {
	var t models.Task
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) listQuery() *gorm.DB {
	return r.db.Model(&models.Task{}).
		Select("tasks.id, tasks.title, tasks.description, tasks.deadline, tasks.status, tasks.user_id, users.username, users.email").
		Joins("LEFT JOIN users ON users.id = tasks.user_id").
		Order(taskListOrder)
}

func (r *TaskRepository) ListAll() ([]TaskWithOwner, error) {
	var rows []TaskWithOwner
	return rows, r.listQuery().Scan(&rows).Error
}

func (r *TaskRepository) ListByOwner(userID uint) ([]TaskWithOwner, error) {
	var rows []TaskWithOwner
	return rows, r.listQuery().Where("tasks.user_id = ?", userID).Scan(&rows).Error
}

func (r *TaskRepository) Update(t *models.Task) error { return r.db.Save(t).Error }

func (r *TaskRepository) UpdateStatus(id uint, status models.Status) error {
	return r.db.Model(&models.Task{}).Where("id = ?", id).Update("status", status).Error
}

func (r *TaskRepository) Delete(id uint) error {
	return r.db.Delete(&models.Task{}, id).Error
}

func (r *TaskRepository) CountByOwner(userID uint) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Task{}).Where("user_id = ?", userID).Count(&count).Error
}
