package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

type meetingListResponse struct {
	Meetings []models.Meeting `json:"meetings"`
}

type meetingResponse struct {
	Meeting *models.Meeting `json:"meeting"`
}

// FetchMeetings lists organization meetings, trying the known route shapes
// in order.
func (c *Client) FetchMeetings(ctx context.Context) ([]models.Meeting, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	candidates := []string{
		fmt.Sprintf("organizations/%s/meetings/", c.session.OrganizationID),
		fmt.Sprintf("meetings/%s/", c.session.OrganizationID),
	}
	var resp meetingListResponse
	if err := c.getFirst(ctx, candidates, &resp); err != nil {
		return nil, fmt.Errorf("fetch meetings: %w", err)
	}
	if resp.Meetings == nil {
		resp.Meetings = []models.Meeting{}
	}
	return resp.Meetings, nil
}

func (c *Client) validateMeeting(m models.Meeting) error {
	if m.Title == "" {
		return &ValidationError{Field: "title", Message: "meeting title is required"}
	}
	if !m.EndTime.After(m.StartTime) {
		return &ValidationError{Field: "end_time", Message: "meeting must end after it starts"}
	}
	switch m.Type {
	case models.MeetingVirtual:
		if m.URL == "" {
			return &ValidationError{Field: "url", Message: "virtual meetings need a url"}
		}
	case models.MeetingInPerson:
		if m.Location == "" {
			return &ValidationError{Field: "location", Message: "in-person meetings need a location"}
		}
	case models.MeetingHybrid:
		if m.URL == "" || m.Location == "" {
			return &ValidationError{Field: "type", Message: "hybrid meetings need both a url and a location"}
		}
	default:
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown meeting type %q", m.Type)}
	}
	return nil
}

func (c *Client) CreateMeeting(ctx context.Context, meeting models.Meeting) (*models.Meeting, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	if err := c.validateMeeting(meeting); err != nil {
		return nil, err
	}
	meeting.CreatedBy = c.session.UserID

	path := fmt.Sprintf("organizations/%s/meetings/", c.session.OrganizationID)
	var resp meetingResponse
	if err := c.doJSON(ctx, http.MethodPost, path, meeting, &resp); err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}
	if resp.Meeting == nil {
		return nil, fmt.Errorf("create meeting: backend returned no meeting body")
	}
	return resp.Meeting, nil
}

func (c *Client) UpdateMeeting(ctx context.Context, meeting models.Meeting) (*models.Meeting, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	if meeting.ID == "" {
		return nil, &ValidationError{Field: "id", Message: "meeting id is required for update"}
	}
	if err := c.validateMeeting(meeting); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("organizations/%s/meetings/%s/", c.session.OrganizationID, meeting.ID)
	var resp meetingResponse
	if err := c.doJSON(ctx, http.MethodPut, path, meeting, &resp); err != nil {
		return nil, fmt.Errorf("update meeting %s: %w", meeting.ID, err)
	}
	if resp.Meeting == nil {
		return &meeting, nil
	}
	return resp.Meeting, nil
}

func (c *Client) DeleteMeeting(ctx context.Context, meetingID string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	path := fmt.Sprintf("organizations/%s/meetings/%s/", c.session.OrganizationID, meetingID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	return nil
}
