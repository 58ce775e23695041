package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

type fakeCountsAPI struct {
	stats        models.TaskStats
	meetings     []models.Meeting
	events       []models.Event
	meetingsFail bool
}

func (f *fakeCountsAPI) FetchPersonalTasks(ctx context.Context) ([]models.Task, models.TaskStats, error) {
	return nil, f.stats, nil
}

func (f *fakeCountsAPI) FetchMeetings(ctx context.Context) ([]models.Meeting, error) {
	if f.meetingsFail {
		return nil, errors.New("meetings down")
	}
	return f.meetings, nil
}

func (f *fakeCountsAPI) FetchUserEvents(ctx context.Context) ([]models.Event, error) {
	return f.events, nil
}

func TestFetchCounts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	api := &fakeCountsAPI{
		stats: models.TaskStats{NotStarted: 2, InProgress: 1, Completed: 5},
		meetings: []models.Meeting{
			{ID: "m1", StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
			{ID: "m2", StartTime: now.Add(48 * time.Hour), EndTime: now.Add(49 * time.Hour)},
		},
		events: []models.Event{
			{ID: "e1", StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
			{ID: "e2", StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
		},
	}

	counts := FetchCounts(context.Background(), api, now)
	if counts.OpenTasks != 3 {
		t.Errorf("open tasks: got %d", counts.OpenTasks)
	}
	if counts.MeetingsToday != 1 {
		t.Errorf("meetings today: got %d", counts.MeetingsToday)
	}
	if counts.UpcomingEvents != 1 {
		t.Errorf("upcoming events: got %d", counts.UpcomingEvents)
	}
}

func TestFetchCountsToleratesPartialFailure(t *testing.T) {
	t.Parallel()

	now := time.Now()
	api := &fakeCountsAPI{
		stats:        models.TaskStats{Pending: 4},
		meetingsFail: true,
		events:       []models.Event{{ID: "e1", StartTime: now, EndTime: now.Add(time.Hour)}},
	}

	counts := FetchCounts(context.Background(), api, now)
	if counts.OpenTasks != 4 {
		t.Errorf("open tasks: got %d", counts.OpenTasks)
	}
	if counts.MeetingsToday != 0 {
		t.Errorf("failed lookup must contribute zero, got %d", counts.MeetingsToday)
	}
	if counts.UpcomingEvents != 1 {
		t.Errorf("upcoming events: got %d", counts.UpcomingEvents)
	}
}
