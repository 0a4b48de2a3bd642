package controllers

import (
	"net/http"

	"github.com/20225587/Tasker/app/dto"
	"github.com/20225587/Tasker/app/middleware"
	"github.com/20225587/Tasker/app/models"
	"github.com/20225587/Tasker/app/services"
	"github.com/20225587/Tasker/app/validate"
)

type TaskController struct{ Tasks *services.TaskService }

func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{Tasks: tasks}
}

func (c *TaskController) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	ident := middleware.GetIdentity(r.Context())
	tasks, err := c.Tasks.ListFor(ident.UserID, ident.Role)
	if err != nil {
		failFromService(w, "list tasks", err)
		return
	}
	rows := make([]dto.TaskRow, 0, len(tasks))
	for _, t := range tasks {
		value, formatted := dto.DeadlineStrings(t.Deadline)
		rows = append(rows, dto.TaskRow{
			ID:                t.ID,
			Title:             t.Title,
			Description:       t.Description,
			Status:            t.Status,
			Deadline:          value,
			DeadlineFormatted: formatted,
			UserID:            t.UserID,
			Username:          t.Username,
			Email:             t.Email,
			StatusBadgeClass:  dto.StatusBadgeClass(t.Status),
		})
	}
	ok(w, "Tasks retrieved successfully", rows)
}

func (c *TaskController) Assign(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	title := validate.Trim(r.PostFormValue("title"))
	description := validate.Trim(r.PostFormValue("description"))
	userID := formID(r, "user_id")

	if title == "" || userID == 0 {
		fail(w, http.StatusBadRequest, "Title and user are required")
		return
	}
	deadline, err := validate.Deadline(validate.Trim(r.PostFormValue("deadline")))
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := c.Tasks.Assign(title, description, deadline, userID); err != nil {
		failFromService(w, "assign task", err)
		return
	}
	ok(w, "Task assigned successfully and notification sent", nil)
}

func (c *TaskController) Edit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	taskID := formID(r, "task_id")
	title := validate.Trim(r.PostFormValue("title"))
	description := validate.Trim(r.PostFormValue("description"))
	userID := formID(r, "user_id")
	status := models.Status(validate.Trim(r.PostFormValue("status")))

	if taskID == 0 || title == "" || userID == 0 {
		fail(w, http.StatusBadRequest, "Task ID, title, and user are required")
		return
	}
	if !status.Valid() {
		fail(w, http.StatusBadRequest, validate.ErrStatus.Error())
		return
	}
	deadline, err := validate.Deadline(validate.Trim(r.PostFormValue("deadline")))
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.Tasks.Edit(taskID, title, description, deadline, userID, status); err != nil {
		failFromService(w, "edit task", err)
		return
	}
	ok(w, "Task updated successfully", nil)
}

func (c *TaskController) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	taskID := formID(r, "task_id")
	if taskID == 0 {
		fail(w, http.StatusBadRequest, "Valid task ID is required")
		return
	}
	if err := c.Tasks.Delete(taskID); err != nil {
		failFromService(w, "delete task", err)
		return
	}
	ok(w, "Task deleted successfully", nil)
}

func (c *TaskController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	taskID := formID(r, "task_id")
	status := models.Status(validate.Trim(r.PostFormValue("status")))

	if taskID == 0 || status == "" {
		fail(w, http.StatusBadRequest, "Task ID and status are required")
		return
	}
	if !status.Valid() {
		fail(w, http.StatusBadRequest, validate.ErrStatus.Error())
		return
	}

	ident := middleware.GetIdentity(r.Context())
	if err := c.Tasks.UpdateStatus(taskID, status, ident.UserID, ident.Role); err != nil {
		failFromService(w, "update task status", err)
		return
	}
	ok(w, "Task status updated successfully", nil)
}
