package services

import (
	"errors"
	"time"

	"github.com/20225587/Tasker/app/models"
	"github.com/20225587/Tasker/app/notify"
	"github.com/20225587/Tasker/app/repo"
	"github.com/20225587/Tasker/global"

	"gorm.io/gorm"
)

// TaskService owns both task-update paths: the full replace reserved for
// administrators and the status-only update owners may perform. Each has
// its own permission predicate so the entity's rules live in one place.
type TaskService struct {
	tasks    *repo.TaskRepository
	users    *repo.UserRepository
	notifier notify.Notifier
}

func NewTaskService(tasks *repo.TaskRepository, users *repo.UserRepository, notifier notify.Notifier) *TaskService {
	return &TaskService{tasks: tasks, users: users, notifier: notifier}
}

// ListFor scopes the listing to the caller: administrators see every
// task, everyone else only their own.
func (s *TaskService) ListFor(callerID uint, role models.Role) ([]repo.TaskWithOwner, error) {
	if role == models.RoleAdmin {
		return s.tasks.ListAll()
	}
	return s.tasks.ListByOwner(callerID)
}

// Assign creates a task for an existing owner and mails them about it.
// The notification is best-effort: a failed send is logged and the
// creation stands.
func (s *TaskService) Assign(title, description string, deadline *time.Time, ownerID uint) (*models.Task, error) {
	owner, err := s.users.FindByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	t := &models.Task{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		Status:      models.StatusPending,
		UserID:      owner.ID,
	}
	if err := s.tasks.Create(t); err != nil {
		return nil, err
	}
	if err := s.notifier.TaskAssigned(*owner, *t); err != nil {
		global.Logger.Warn().Err(err).Uint("task", t.ID).Str("to", owner.Email).Msg("assignment notification failed")
	}
	return t, nil
}

// Edit is the full field replace, including owner and status.
func (s *TaskService) Edit(id uint, title, description string, deadline *time.Time, ownerID uint, status models.Status) error {
	t, err := s.tasks.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	if _, err := s.users.FindByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	t.Title = title
	t.Description = description
	t.Deadline = deadline
	t.UserID = ownerID
	t.Status = status
	return s.tasks.Update(t)
}

// UpdateStatus changes only the status. Owners may update their own
// tasks; administrators any. The miss and the permission failure share
// one message so neither leaks the other.
func (s *TaskService) UpdateStatus(id uint, status models.Status, callerID uint, role models.Role) error {
	t, err := s.tasks.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskAccess
		}
		return err
	}
	if role != models.RoleAdmin && t.UserID != callerID {
		return ErrTaskAccess
	}
	return s.tasks.UpdateStatus(id, status)
}

func (s *TaskService) Delete(id uint) error {
	if _, err := s.tasks.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return s.tasks.Delete(id)
}
