package dto

import (
	"time"

	"github.com/20225587/Tasker/app/models"
)

const (
	deadlineLayout        = "2006-01-02"
	deadlineDisplayLayout = "Jan 02, 2006"
)

// TaskRow is the task-list row consumed by the dashboards. Owner fields
// are filled from the join; deadline_formatted and the badge class are
// precomputed so the client renders rows verbatim.
type TaskRow struct {
	ID                uint          `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Status            models.Status `json:"status"`
	Deadline          string        `json:"deadline"`
	DeadlineFormatted string        `json:"deadline_formatted"`
	UserID            uint          `json:"user_id"`
	Username          string        `json:"username"`
	Email             string        `json:"email"`
	StatusBadgeClass  string        `json:"status_badge_class"`
}

// DeadlineStrings renders a deadline both as the ISO value the edit form
// round-trips and as the display form the dashboards show.
func DeadlineStrings(d *time.Time) (value, formatted string) {
	if d == nil {
		return "", "No deadline"
	}
	return d.Format(deadlineLayout), d.Format(deadlineDisplayLayout)
}

func StatusBadgeClass(s models.Status) string {
	switch s {
	case models.StatusPending:
		return "badge-warning"
	case models.StatusInProgress:
		return "badge-info"
	case models.StatusCompleted:
		return "badge-success"
	}
	return "badge-secondary"
}
