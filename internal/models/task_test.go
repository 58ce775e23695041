package models

import (
	"testing"
	"time"
)

func TestComputeTaskStats(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tasks := []Task{
		{ID: "1", Status: StatusNotStarted, DueDate: &future},
		{ID: "2", Status: StatusInProgress, DueDate: &past},
		{ID: "3", Status: StatusCompleted, DueDate: &past},
		{ID: "4", Status: StatusPending},
		{ID: "5", Status: StatusRejected},
		{ID: "6", Status: StatusTaken},
	}

	stats := ComputeTaskStats(tasks, now)
	if stats.Total != 6 {
		t.Errorf("total: got %d", stats.Total)
	}
	if stats.NotStarted != 1 || stats.InProgress != 2 || stats.Completed != 1 ||
		stats.Pending != 1 || stats.Cancelled != 1 {
		t.Errorf("unexpected buckets %+v", stats)
	}
	// Only task 2 is overdue: task 3 is past due but completed.
	if stats.Overdue != 1 {
		t.Errorf("overdue: got %d", stats.Overdue)
	}
}

func TestStatusAndPriorityValidation(t *testing.T) {
	t.Parallel()

	for _, s := range []TaskStatus{StatusNotStarted, StatusOnHold, StatusUntaken, StatusArchived} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if TaskStatus("done").Valid() {
		t.Error("unknown status accepted")
	}

	if !PriorityUrgentImportant.Valid() || !PriorityNotUrgentNotImportant.Valid() {
		t.Error("known priorities rejected")
	}
	if Priority("high").Valid() {
		t.Error("unknown priority accepted")
	}
}
