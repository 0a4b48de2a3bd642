// Package notify delivers the assignment notification mail. Delivery is
// best-effort: a failed send is logged by the caller and never rolls back
// or blocks the task creation it announces.
package notify

import (
	"fmt"

	"github.com/20225587/Tasker/app/models"
)

type Notifier interface {
	TaskAssigned(to models.User, task models.Task) error
}

// Noop is the disabled notifier (smtp.enabled: false).
type Noop struct{}

func (Noop) TaskAssigned(models.User, models.Task) error { return nil }

func assignmentSubject(task models.Task) string {
	return "New Task Assigned: " + task.Title
}

func assignmentBody(to models.User, task models.Task) string {
	description := task.Description
	if description == "" {
		description = "No description provided"
	}
	deadline := "No deadline"
	if task.Deadline != nil {
		deadline = task.Deadline.Format("Jan 02, 2006")
	}
	return fmt.Sprintf(`<html>
<body>
<h2>New Task Assigned</h2>
<p>Hello %s,</p>
<p>A new task has been assigned to you:</p>
<ul>
<li><strong>Title:</strong> %s</li>
<li><strong>Description:</strong> %s</li>
<li><strong>Deadline:</strong> %s</li>
</ul>
<p>Please log in to the task management system to view and manage your tasks.</p>
<p>Best regards,<br>Task Management System</p>
</body>
</html>`, to.Username, task.Title, description, deadline)
}
