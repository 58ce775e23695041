package service

import (
	"strings"
	"time"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

// Filters are pure and idempotent: applying the same filter twice yields
// the same result, and a zero filter is the identity.

type TaskFilter struct {
	Status   models.TaskStatus
	Priority models.Priority
	Query    string
}

func (f TaskFilter) matches(t models.Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	return matchesQuery(f.Query, t.Title, t.Description)
}

func FilterTasks(tasks []models.Task, f TaskFilter) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

type ProjectFilter struct {
	Status   models.TaskStatus
	Priority models.Priority
	Query    string
}

func FilterProjects(projects []models.Project, f ProjectFilter) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Priority != "" && p.Priority != f.Priority {
			continue
		}
		if !matchesQuery(f.Query, p.Name, p.Description) {
			continue
		}
		out = append(out, p)
	}
	return out
}

type MeetingFilter struct {
	Scope models.MeetingScope
	Type  models.MeetingType
	Query string
}

func FilterMeetings(meetings []models.Meeting, f MeetingFilter) []models.Meeting {
	out := make([]models.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if f.Scope != "" && m.Scope != f.Scope {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if !matchesQuery(f.Query, m.Title, m.Description) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// EventFilter keeps events overlapping the [From, To) window. Zero bounds
// are open-ended.
type EventFilter struct {
	From  time.Time
	To    time.Time
	Query string
}

func FilterEvents(events []models.Event, f EventFilter) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !f.From.IsZero() && e.EndTime.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !e.StartTime.Before(f.To) {
			continue
		}
		if !matchesQuery(f.Query, e.Title, e.Description) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
