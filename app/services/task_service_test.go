package services

import (
	"testing"
	"time"

	"github.com/20225587/Tasker/app/models"
	"github.com/20225587/Tasker/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to   string
	task string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (f *fakeNotifier) TaskAssigned(to models.User, task models.Task) error {
	f.sent = append(f.sent, sentMail{to: to.Email, task: task.Title})
	return f.err
}

type taskFixture struct {
	users    *UserService
	tasks    *TaskService
	notifier *fakeNotifier
	admin    *models.User
	worker   *models.User
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	gdb := newTestDB(t)
	userRepo := repo.NewUserRepository(gdb)
	taskRepo := repo.NewTaskRepository(gdb)
	users := NewUserService(userRepo)
	notifier := &fakeNotifier{}
	tasks := NewTaskService(taskRepo, userRepo, notifier)

	admin, err := users.Create("admin", "admin@example.com", "admin123", true)
	require.NoError(t, err)
	worker, err := users.Create("worker", "worker@example.com", "secret1", false)
	require.NoError(t, err)

	return &taskFixture{users: users, tasks: tasks, notifier: notifier, admin: admin, worker: worker}
}

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

func TestAssignNotifiesOwner(t *testing.T) {
	f := newTaskFixture(t)

	task, err := f.tasks.Assign("Write report", "quarterly numbers", date(t, "2024-06-01"), f.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, f.worker.ID, task.UserID)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "worker@example.com", f.notifier.sent[0].to)
	assert.Equal(t, "Write report", f.notifier.sent[0].task)
}

func TestAssignRequiresExistingOwner(t *testing.T) {
	f := newTaskFixture(t)

	_, err := f.tasks.Assign("Write report", "", nil, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, f.notifier.sent)
}

func TestAssignSurvivesNotificationFailure(t *testing.T) {
	f := newTaskFixture(t)
	f.notifier.err = assert.AnError

	task, err := f.tasks.Assign("Write report", "", nil, f.worker.ID)
	require.NoError(t, err, "a failed notification never rolls back the creation")

	rows, err := f.tasks.ListFor(f.worker.ID, models.RoleUser)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, task.ID, rows[0].ID)
}

func TestListScopesToOwner(t *testing.T) {
	f := newTaskFixture(t)
	_, err := f.tasks.Assign("mine", "", nil, f.worker.ID)
	require.NoError(t, err)
	_, err = f.tasks.Assign("admins own", "", nil, f.admin.ID)
	require.NoError(t, err)

	own, err := f.tasks.ListFor(f.worker.ID, models.RoleUser)
	require.NoError(t, err)
	require.Len(t, own, 1)
	for _, row := range own {
		assert.Equal(t, f.worker.ID, row.UserID)
	}

	all, err := f.tasks.ListFor(f.admin.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "worker", own[0].Username, "owner info joins into the row")
}

func TestListOrdering(t *testing.T) {
	f := newTaskFixture(t)

	first, err := f.tasks.Assign("later deadline", "", date(t, "2024-03-10"), f.worker.ID)
	require.NoError(t, err)
	second, err := f.tasks.Assign("early deadline", "", date(t, "2024-03-05"), f.worker.ID)
	require.NoError(t, err)
	third, err := f.tasks.Assign("no deadline", "", nil, f.worker.ID)
	require.NoError(t, err)
	fourth, err := f.tasks.Assign("early deadline newer", "", date(t, "2024-03-05"), f.worker.ID)
	require.NoError(t, err)

	rows, err := f.tasks.ListFor(f.worker.ID, models.RoleUser)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	var got []uint
	for _, row := range rows {
		got = append(got, row.ID)
	}
	// deadline ascending, undated last, newest id first within a day
	assert.Equal(t, []uint{fourth.ID, second.ID, first.ID, third.ID}, got)
}

func TestUpdateStatusOwnership(t *testing.T) {
	f := newTaskFixture(t)
	task, err := f.tasks.Assign("mine", "", nil, f.worker.ID)
	require.NoError(t, err)
	other, err := f.users.Create("other", "other@example.com", "secret1", false)
	require.NoError(t, err)

	err = f.tasks.UpdateStatus(task.ID, models.StatusCompleted, other.ID, models.RoleUser)
	assert.ErrorIs(t, err, ErrTaskAccess)

	assert.NoError(t, f.tasks.UpdateStatus(task.ID, models.StatusInProgress, f.worker.ID, models.RoleUser))
	assert.NoError(t, f.tasks.UpdateStatus(task.ID, models.StatusCompleted, f.admin.ID, models.RoleAdmin))
}

func TestUpdateStatusIdempotent(t *testing.T) {
	f := newTaskFixture(t)
	task, err := f.tasks.Assign("mine", "", nil, f.worker.ID)
	require.NoError(t, err)

	require.NoError(t, f.tasks.UpdateStatus(task.ID, models.StatusCompleted, f.worker.ID, models.RoleUser))
	require.NoError(t, f.tasks.UpdateStatus(task.ID, models.StatusCompleted, f.worker.ID, models.RoleUser))

	rows, err := f.tasks.ListFor(f.worker.ID, models.RoleUser)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusCompleted, rows[0].Status)
}

func TestUpdateStatusMissingTask(t *testing.T) {
	f := newTaskFixture(t)
	err := f.tasks.UpdateStatus(9999, models.StatusCompleted, f.admin.ID, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrTaskAccess)
}

func TestEditReplacesAllFields(t *testing.T) {
	f := newTaskFixture(t)
	task, err := f.tasks.Assign("drafted", "old", date(t, "2024-01-01"), f.worker.ID)
	require.NoError(t, err)

	err = f.tasks.Edit(task.ID, "final", "new text", date(t, "2024-02-02"), f.admin.ID, models.StatusInProgress)
	require.NoError(t, err)

	rows, err := f.tasks.ListFor(f.admin.ID, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "final", row.Title)
	assert.Equal(t, "new text", row.Description)
	assert.Equal(t, models.StatusInProgress, row.Status)
	assert.Equal(t, f.admin.ID, row.UserID)
	require.NotNil(t, row.Deadline)
	assert.Equal(t, "2024-02-02", row.Deadline.Format("2006-01-02"))
}

func TestEditValidatesTaskAndOwner(t *testing.T) {
	f := newTaskFixture(t)
	task, err := f.tasks.Assign("drafted", "", nil, f.worker.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, f.tasks.Edit(9999, "x", "", nil, f.worker.ID, models.StatusPending), ErrTaskNotFound)
	assert.ErrorIs(t, f.tasks.Edit(task.ID, "x", "", nil, 9999, models.StatusPending), ErrUserNotFound)
}

func TestDeleteTask(t *testing.T) {
	f := newTaskFixture(t)
	task, err := f.tasks.Assign("doomed", "", nil, f.worker.ID)
	require.NoError(t, err)

	require.NoError(t, f.tasks.Delete(task.ID))
	assert.ErrorIs(t, f.tasks.Delete(task.ID), ErrTaskNotFound)

	rows, err := f.tasks.ListFor(f.worker.ID, models.RoleUser)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
