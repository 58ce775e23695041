package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
	"github.com/yashsurani047/workmanagement1-sub000/internal/service"
)

var meetingsCmd = &cobra.Command{
	Use:   "meetings",
	Short: "List and manage meetings",
	RunE:  runMeetingsList,
}

var meetingsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a meeting",
	RunE:  runMeetingsCreate,
}

var meetingsDeleteCmd = &cobra.Command{
	Use:   "delete [meeting-id]",
	Short: "Delete a meeting",
	Args:  cobra.ExactArgs(1),
	RunE:  runMeetingsDelete,
}

func init() {
	meetingsCmd.AddCommand(meetingsCreateCmd)
	meetingsCmd.AddCommand(meetingsDeleteCmd)

	meetingsCmd.Flags().String("scope", "", "Filter by scope (internal/external)")
	meetingsCmd.Flags().String("type", "", "Filter by type (virtual/in_person/hybrid)")
	meetingsCmd.Flags().String("search", "", "Filter by title/description substring")

	meetingsCreateCmd.Flags().String("title", "", "Meeting title (required)")
	meetingsCreateCmd.Flags().String("description", "", "Meeting description")
	meetingsCreateCmd.Flags().String("scope", string(models.ScopeInternal), "Scope (internal/external)")
	meetingsCreateCmd.Flags().String("type", string(models.MeetingVirtual), "Type (virtual/in_person/hybrid)")
	meetingsCreateCmd.Flags().String("url", "", "Meeting url (virtual/hybrid)")
	meetingsCreateCmd.Flags().String("location", "", "Meeting location (in_person/hybrid)")
	meetingsCreateCmd.Flags().String("start", "", "Start time (RFC3339)")
	meetingsCreateCmd.Flags().String("end", "", "End time (RFC3339)")
	meetingsCreateCmd.Flags().StringSlice("participant", nil, "Participant user id (repeatable)")
	meetingsCreateCmd.Flags().StringSlice("agenda", nil, "Agenda item title, in order (repeatable)")
}

func runMeetingsList(cmd *cobra.Command, args []string) error {
	scope, _ := cmd.Flags().GetString("scope")
	meetingType, _ := cmd.Flags().GetString("type")
	search, _ := cmd.Flags().GetString("search")

	meetings, err := app.api.FetchMeetings(cmd.Context())
	if err != nil {
		return err
	}
	meetings = service.FilterMeetings(meetings, service.MeetingFilter{
		Scope: models.MeetingScope(scope),
		Type:  models.MeetingType(meetingType),
		Query: search,
	})

	if len(meetings) == 0 {
		fmt.Println("No meetings.")
		return nil
	}

	w := newTable("ID", "TITLE", "TYPE", "START", "WHERE")
	for _, m := range meetings {
		where := m.Location
		if m.Type == models.MeetingVirtual {
			where = m.URL
		}
		start := m.StartTime
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.ID, truncate(m.Title, 40), m.Type, relativeTime(&start), truncate(where, 32))
	}
	return w.Flush()
}

func runMeetingsCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	scope, _ := cmd.Flags().GetString("scope")
	meetingType, _ := cmd.Flags().GetString("type")
	url, _ := cmd.Flags().GetString("url")
	location, _ := cmd.Flags().GetString("location")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	participants, _ := cmd.Flags().GetStringSlice("participant")
	agenda, _ := cmd.Flags().GetStringSlice("agenda")

	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return fmt.Errorf("parse --start: %w", err)
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return fmt.Errorf("parse --end: %w", err)
	}

	meeting := models.Meeting{
		Title:        title,
		Description:  description,
		Scope:        models.MeetingScope(scope),
		Type:         models.MeetingType(meetingType),
		URL:          url,
		Location:     location,
		StartTime:    startTime,
		EndTime:      endTime,
		Participants: participants,
	}
	for _, item := range agenda {
		meeting.Agenda = append(meeting.Agenda, models.AgendaItem{Title: item})
	}

	created, err := app.api.CreateMeeting(cmd.Context(), meeting)
	if err != nil {
		return err
	}
	fmt.Printf("Created meeting %s: %s\n", created.ID, created.Title)
	return nil
}

func runMeetingsDelete(cmd *cobra.Command, args []string) error {
	if err := app.api.DeleteMeeting(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted meeting %s\n", args[0])
	return nil
}
