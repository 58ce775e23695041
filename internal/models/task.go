package models

import "time"

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusPending    TaskStatus = "pending"
	StatusOnHold     TaskStatus = "on_hold"
	StatusCancelled  TaskStatus = "cancelled"
	StatusRejected   TaskStatus = "rejected"
	StatusArchived   TaskStatus = "archived"
	StatusUntaken    TaskStatus = "untaken"
	StatusTaken      TaskStatus = "taken"
)

var taskStatuses = map[TaskStatus]struct{}{
	StatusNotStarted: {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusPending:    {},
	StatusOnHold:     {},
	StatusCancelled:  {},
	StatusRejected:   {},
	StatusArchived:   {},
	StatusUntaken:    {},
	StatusTaken:      {},
}

func (s TaskStatus) Valid() bool {
	_, ok := taskStatuses[s]
	return ok
}

// Priority is an urgency/importance combination (Eisenhower quadrant).
type Priority string

const (
	PriorityUrgentImportant       Priority = "urgent_important"
	PriorityUrgentNotImportant    Priority = "urgent_not_important"
	PriorityNotUrgentImportant    Priority = "not_urgent_important"
	PriorityNotUrgentNotImportant Priority = "not_urgent_not_important"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgentImportant, PriorityUrgentNotImportant,
		PriorityNotUrgentImportant, PriorityNotUrgentNotImportant:
		return true
	}
	return false
}

type Attachment struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
	Path string `json:"path,omitempty"`
}

type Task struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Priority      Priority     `json:"priority,omitempty"`
	Status        TaskStatus   `json:"status"`
	ProjectID     string       `json:"project_id,omitempty"`
	StartDate     *time.Time   `json:"start_date,omitempty"`
	DueDate       *time.Time   `json:"due_date,omitempty"`
	DueTime       string       `json:"due_time,omitempty"`
	Assignees     []string     `json:"assignees,omitempty"`
	Collaborators []string     `json:"collaborators,omitempty"`
	Attachments   []Attachment `json:"attachments,omitempty"`
	CreatedBy     string       `json:"created_by,omitempty"`
	CreatedAt     *time.Time   `json:"created_at,omitempty"`
}

type TaskStats struct {
	Total      int `json:"total"`
	NotStarted int `json:"not_started"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	OnHold     int `json:"on_hold"`
	Cancelled  int `json:"cancelled"`
	Overdue    int `json:"overdue"`
}

// ComputeTaskStats tallies one pass over the list. Overdue counts open
// tasks whose due date is before now.
func ComputeTaskStats(tasks []Task, now time.Time) TaskStats {
	var stats TaskStats
	stats.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case StatusNotStarted, StatusUntaken:
			stats.NotStarted++
		case StatusInProgress, StatusTaken:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		case StatusPending:
			stats.Pending++
		case StatusOnHold:
			stats.OnHold++
		case StatusCancelled, StatusRejected:
			stats.Cancelled++
		}
		if t.DueDate != nil && t.DueDate.Before(now) &&
			t.Status != StatusCompleted && t.Status != StatusCancelled && t.Status != StatusArchived {
			stats.Overdue++
		}
	}
	return stats
}
