package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yashsurani047/workmanagement1-sub000/internal/service"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll badge counts until interrupted",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Duration("interval", 30*time.Second, "Poll interval")
}

func runWatch(cmd *cobra.Command, args []string) error {
	interval, _ := cmd.Flags().GetDuration("interval")
	if interval < time.Second {
		return fmt.Errorf("--interval must be at least 1s")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	printCounts := func() {
		counts := service.FetchCounts(ctx, app.api, time.Now())
		fmt.Printf("[%s] open tasks: %d  meetings today: %d  upcoming events: %d\n",
			time.Now().Format("15:04:05"), counts.OpenTasks, counts.MeetingsToday, counts.UpcomingEvents)
	}

	printCounts()
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopped.")
			return nil
		case <-ticker.C:
			printCounts()
		}
	}
}
