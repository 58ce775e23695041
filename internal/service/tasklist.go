package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yashsurani047/workmanagement1-sub000/internal/client"
	"github.com/yashsurani047/workmanagement1-sub000/internal/logging"
	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

// SyncState tracks each item's position in the optimistic update cycle.
type SyncState string

const (
	// StateSynced: local copy matches the last server response.
	StateSynced SyncState = "synced"
	// StatePending: a local change has been applied and the confirming
	// request is in flight.
	StatePending SyncState = "pending"
	// StateReconciling: the confirming request failed and the failed
	// reload left the local copy unverified.
	StateReconciling SyncState = "reconciling"
)

type TaskItem struct {
	Task  models.Task
	State SyncState
}

// TaskList holds a superset of fetched tasks and runs status changes as an
// explicit state machine: optimistic write, backend call, and on failure a
// reload so the final state equals a fresh server fetch.
type TaskList struct {
	api       client.TaskAPI
	projectID string // empty for the personal list
	items     []TaskItem
	stats     models.TaskStats
}

func NewPersonalTaskList(api client.TaskAPI) *TaskList {
	return &TaskList{api: api}
}

func NewProjectTaskList(api client.TaskAPI, projectID string) *TaskList {
	return &TaskList{api: api, projectID: projectID}
}

func (l *TaskList) Items() []TaskItem {
	return l.items
}

func (l *TaskList) Stats() models.TaskStats {
	return l.stats
}

// Filtered applies f to the current local state.
func (l *TaskList) Filtered(f TaskFilter) []models.Task {
	tasks := make([]models.Task, 0, len(l.items))
	for _, item := range l.items {
		tasks = append(tasks, item.Task)
	}
	return FilterTasks(tasks, f)
}

// Reload replaces local state with a fresh server fetch. Every item comes
// back synced.
func (l *TaskList) Reload(ctx context.Context) error {
	var tasks []models.Task
	var err error
	if l.projectID == "" {
		tasks, l.stats, err = l.api.FetchPersonalTasks(ctx)
	} else {
		tasks, err = l.api.FetchProjectTasks(ctx, l.projectID)
		if err == nil {
			l.stats = models.ComputeTaskStats(tasks, time.Now())
		}
	}
	if err != nil {
		return err
	}

	items := make([]TaskItem, len(tasks))
	for i, t := range tasks {
		items[i] = TaskItem{Task: t, State: StateSynced}
	}
	l.items = items
	return nil
}

// UpdateStatus applies the new status optimistically, confirms it with the
// backend, and reconciles by reload when the call fails. The returned error
// reports the update failure; a reload failure on top of it leaves the item
// in StateReconciling.
func (l *TaskList) UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) error {
	idx := l.indexOf(taskID)
	if idx < 0 {
		return fmt.Errorf("task %s is not in the list", taskID)
	}

	previous := l.items[idx].Task.Status
	l.items[idx].Task.Status = status
	l.items[idx].State = StatePending

	updated, err := l.api.UpdateTaskStatus(ctx, taskID, status)
	if err == nil {
		if updated != nil {
			l.items[idx].Task = *updated
		}
		l.items[idx].State = StateSynced
		l.refreshStats()
		return nil
	}

	logging.Logger.WithError(err).WithField("task", taskID).
		Warn("status update failed, reconciling from server")
	l.items[idx].State = StateReconciling

	if reloadErr := l.Reload(ctx); reloadErr != nil {
		// Keep the item marked reconciling so callers can surface it;
		// the optimistic value is rolled back to avoid lying harder.
		if idx < len(l.items) && l.indexOf(taskID) == idx {
			l.items[idx].Task.Status = previous
		}
		return fmt.Errorf("update task status: %w (reload also failed: %v)", err, reloadErr)
	}
	return fmt.Errorf("update task status: %w", err)
}

// Delete removes the task locally only after the server confirms.
func (l *TaskList) Delete(ctx context.Context, taskID string) error {
	idx := l.indexOf(taskID)
	if idx < 0 {
		return fmt.Errorf("task %s is not in the list", taskID)
	}

	if err := l.api.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	l.refreshStats()
	return nil
}

// Reconciling lists task ids still awaiting a successful reload.
func (l *TaskList) Reconciling() []string {
	var ids []string
	for _, item := range l.items {
		if item.State == StateReconciling {
			ids = append(ids, item.Task.ID)
		}
	}
	return ids
}

func (l *TaskList) indexOf(taskID string) int {
	for i, item := range l.items {
		if item.Task.ID == taskID {
			return i
		}
	}
	return -1
}

func (l *TaskList) refreshStats() {
	tasks := make([]models.Task, len(l.items))
	for i, item := range l.items {
		tasks[i] = item.Task
	}
	l.stats = models.ComputeTaskStats(tasks, time.Now())
}
