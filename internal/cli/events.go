package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
	"github.com/yashsurani047/workmanagement1-sub000/internal/service"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List and manage events",
	RunE:  runEventsList,
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event",
	RunE:  runEventsCreate,
}

var eventsDeleteCmd = &cobra.Command{
	Use:   "delete [event-id]",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsDelete,
}

func init() {
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsDeleteCmd)

	eventsCmd.Flags().Bool("mine", false, "Only events scoped to the signed-in user")
	eventsCmd.Flags().String("search", "", "Filter by title/description substring")
	eventsCmd.Flags().Bool("upcoming", false, "Only events that have not ended")

	eventsCreateCmd.Flags().String("title", "", "Event title (required)")
	eventsCreateCmd.Flags().String("description", "", "Event description")
	eventsCreateCmd.Flags().String("start", "", "Start time (RFC3339)")
	eventsCreateCmd.Flags().String("end", "", "End time (RFC3339)")
}

func runEventsList(cmd *cobra.Command, args []string) error {
	mine, _ := cmd.Flags().GetBool("mine")
	search, _ := cmd.Flags().GetString("search")
	upcoming, _ := cmd.Flags().GetBool("upcoming")

	var events []models.Event
	var err error
	if mine {
		events, err = app.api.FetchUserEvents(cmd.Context())
	} else {
		events, err = app.api.FetchOrgEvents(cmd.Context())
	}
	if err != nil {
		return err
	}

	filter := service.EventFilter{Query: search}
	if upcoming {
		filter.From = time.Now()
	}
	events = service.FilterEvents(events, filter)

	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}

	w := newTable("ID", "TITLE", "START", "END")
	for _, e := range events {
		start, end := e.StartTime, e.EndTime
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.ID, truncate(e.Title, 40), relativeTime(&start), relativeTime(&end))
	}
	return w.Flush()
}

func runEventsCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return fmt.Errorf("parse --start: %w", err)
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return fmt.Errorf("parse --end: %w", err)
	}

	created, err := app.api.CreateEvent(cmd.Context(), models.Event{
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created event %s: %s\n", created.ID, created.Title)
	return nil
}

func runEventsDelete(cmd *cobra.Command, args []string) error {
	if err := app.api.DeleteEvent(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted event %s\n", args[0])
	return nil
}
