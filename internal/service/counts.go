package service

import (
	"context"
	"sync"
	"time"

	"github.com/yashsurani047/workmanagement1-sub000/internal/logging"
	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

// CountsAPI is the slice of the client the badge counter needs.
type CountsAPI interface {
	FetchPersonalTasks(ctx context.Context) ([]models.Task, models.TaskStats, error)
	FetchMeetings(ctx context.Context) ([]models.Meeting, error)
	FetchUserEvents(ctx context.Context) ([]models.Event, error)
}

// Counts are the badge numbers shown by the polling surface.
type Counts struct {
	OpenTasks      int
	MeetingsToday  int
	UpcomingEvents int
}

// FetchCounts fans the three lookups out concurrently. A failed lookup
// contributes zero and is logged; the other counts still come back.
func FetchCounts(ctx context.Context, api CountsAPI, now time.Time) Counts {
	var counts Counts
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		_, stats, err := api.FetchPersonalTasks(ctx)
		if err != nil {
			logging.Logger.WithError(err).Warn("count fetch: personal tasks")
			return
		}
		counts.OpenTasks = stats.NotStarted + stats.InProgress + stats.Pending + stats.OnHold
	}()
	go func() {
		defer wg.Done()
		meetings, err := api.FetchMeetings(ctx)
		if err != nil {
			logging.Logger.WithError(err).Warn("count fetch: meetings")
			return
		}
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		dayEnd := dayStart.Add(24 * time.Hour)
		for _, m := range meetings {
			if m.StartTime.Before(dayEnd) && m.EndTime.After(dayStart) {
				counts.MeetingsToday++
			}
		}
	}()
	go func() {
		defer wg.Done()
		events, err := api.FetchUserEvents(ctx)
		if err != nil {
			logging.Logger.WithError(err).Warn("count fetch: user events")
			return
		}
		for _, e := range events {
			if e.EndTime.After(now) {
				counts.UpcomingEvents++
			}
		}
	}()

	wg.Wait()
	return counts
}
