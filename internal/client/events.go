package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

type eventListResponse struct {
	Events []models.Event `json:"events"`
}

type eventResponse struct {
	Event *models.Event `json:"event"`
}

func (c *Client) FetchOrgEvents(ctx context.Context) ([]models.Event, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("organizations/%s/events/", c.session.OrganizationID)
	var resp eventListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	if resp.Events == nil {
		resp.Events = []models.Event{}
	}
	return resp.Events, nil
}

// FetchUserEvents lists events scoped to the signed-in user. The user-event
// route has drifted across backend releases; the candidates cover every
// shape seen in the wild.
func (c *Client) FetchUserEvents(ctx context.Context) ([]models.Event, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	candidates := []string{
		fmt.Sprintf("organizations/%s/user-events/%s/", c.session.OrganizationID, c.session.UserID),
		fmt.Sprintf("organizations/%s/users/%s/events/", c.session.OrganizationID, c.session.UserID),
		fmt.Sprintf("user-events/%s/%s/", c.session.OrganizationID, c.session.UserID),
	}
	var resp eventListResponse
	if err := c.getFirst(ctx, candidates, &resp); err != nil {
		return nil, fmt.Errorf("fetch user events: %w", err)
	}
	if resp.Events == nil {
		resp.Events = []models.Event{}
	}
	return resp.Events, nil
}

func (c *Client) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	if event.Title == "" {
		return nil, &ValidationError{Field: "title", Message: "event title is required"}
	}
	if !event.EndTime.After(event.StartTime) {
		return nil, &ValidationError{Field: "end_time", Message: "event must end after it starts"}
	}
	event.OrganizationID = c.session.OrganizationID
	event.UserID = c.session.UserID

	path := fmt.Sprintf("organizations/%s/events/create/", c.session.OrganizationID)
	var resp eventResponse
	if err := c.doJSON(ctx, http.MethodPost, path, event, &resp); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	if resp.Event == nil {
		return nil, fmt.Errorf("create event: backend returned no event body")
	}
	return resp.Event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	path := fmt.Sprintf("events/delete/%s/", eventID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
