package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

// ProjectDraft is the full-form project payload. Edits resubmit the whole
// form; assignees, links and documents sync through dedicated calls.
type ProjectDraft struct {
	Name          string
	Description   string
	Status        models.TaskStatus
	Priority      models.Priority
	Color         string
	StartDate     *time.Time
	EndDate       *time.Time
	DueTime       string
	Members       []models.ProjectMember
	Links         []models.Link
	DocumentPaths []string
}

type projectListResponse struct {
	Projects []models.Project `json:"projects"`
}

type projectResponse struct {
	Project *models.Project `json:"project"`
}

// FetchProjects lists the signed-in user's projects. The backend has grown
// several route shapes for this lookup; try them in order.
func (c *Client) FetchProjects(ctx context.Context) ([]models.Project, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	candidates := []string{
		fmt.Sprintf("organizations/%s/user/%s/", c.session.OrganizationID, c.session.UserID),
		fmt.Sprintf("organizations/%s/users/%s/projects/", c.session.OrganizationID, c.session.UserID),
	}
	var resp projectListResponse
	if err := c.getFirst(ctx, candidates, &resp); err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	if resp.Projects == nil {
		resp.Projects = []models.Project{}
	}
	return resp.Projects, nil
}

func (c *Client) FetchProject(ctx context.Context, projectID string) (*models.Project, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("organizations/%s/projects/%s/", c.session.OrganizationID, projectID)
	var resp projectResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch project %s: %w", projectID, err)
	}
	if resp.Project == nil {
		return nil, fmt.Errorf("fetch project %s: backend returned no project body", projectID)
	}
	return resp.Project, nil
}

func (c *Client) projectPayload(draft ProjectDraft) map[string]any {
	payload := map[string]any{
		"name":        draft.Name,
		"description": draft.Description,
		"created_by":  c.session.UserID,
	}
	if draft.Status != "" {
		payload["status"] = string(draft.Status)
	}
	if draft.Priority != "" {
		payload["priority"] = string(draft.Priority)
	}
	if draft.Color != "" {
		payload["color"] = draft.Color
	}
	if draft.StartDate != nil {
		payload["start_date"] = formatDate(draft.StartDate)
	}
	if draft.EndDate != nil {
		payload["end_date"] = formatDate(draft.EndDate)
	}
	if draft.DueTime != "" {
		payload["due_time"] = draft.DueTime
	}
	return payload
}

func (c *Client) CreateProject(ctx context.Context, draft ProjectDraft) (*models.Project, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	if draft.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "project name is required"}
	}

	path := fmt.Sprintf("organizations/%s/create-project/", c.session.OrganizationID)
	var resp projectResponse
	if err := c.doJSON(ctx, http.MethodPost, path, c.projectPayload(draft), &resp); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	if resp.Project == nil {
		return nil, fmt.Errorf("create project: backend returned no project body")
	}
	return resp.Project, nil
}

func (c *Client) UpdateProject(ctx context.Context, projectID string, draft ProjectDraft) (*models.Project, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	if draft.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "project name is required"}
	}

	path := fmt.Sprintf("organizations/%s/projects/%s/update/", c.session.OrganizationID, projectID)
	var resp projectResponse
	if err := c.doJSON(ctx, http.MethodPut, path, c.projectPayload(draft), &resp); err != nil {
		return nil, fmt.Errorf("update project %s: %w", projectID, err)
	}
	if resp.Project == nil {
		return &models.Project{ID: projectID, Name: draft.Name}, nil
	}
	return resp.Project, nil
}

func (c *Client) AddAssignees(ctx context.Context, projectID string, members []models.ProjectMember) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}

	payload := map[string]any{
		"members":     members,
		"assigned_by": c.session.UserID,
	}
	path := fmt.Sprintf("projects/%s/assignees/add/", projectID)
	if err := c.doJSON(ctx, http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("add assignees to project %s: %w", projectID, err)
	}
	return nil
}

func (c *Client) RemoveAssignee(ctx context.Context, projectID, userID string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}

	payload := map[string]string{"user_id": userID}
	path := fmt.Sprintf("projects/%s/assignees/remove/", projectID)
	if err := c.doJSON(ctx, http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("remove assignee %s from project %s: %w", userID, projectID, err)
	}
	return nil
}

func (c *Client) AddLink(ctx context.Context, projectID string, link models.Link) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	if link.URL == "" {
		return &ValidationError{Field: "url", Message: "link url is required"}
	}

	path := fmt.Sprintf("projects/%s/links/add/", projectID)
	if err := c.doJSON(ctx, http.MethodPost, path, link, nil); err != nil {
		return fmt.Errorf("add link to project %s: %w", projectID, err)
	}
	return nil
}

func (c *Client) UploadDocument(ctx context.Context, projectID string, doc models.Attachment) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	if doc.Path == "" {
		return &ValidationError{Field: "path", Message: "document path is required"}
	}

	fields := url.Values{}
	fields.Set("uploaded_by", c.session.UserID)
	files := []filePart{{field: "document", name: doc.Name, path: doc.Path}}

	path := fmt.Sprintf("projects/%s/documents/upload/", projectID)
	if err := c.doMultipart(ctx, http.MethodPost, path, fields, files, nil); err != nil {
		return fmt.Errorf("upload document to project %s: %w", projectID, err)
	}
	return nil
}

func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	path := fmt.Sprintf("projects/delete/%s/", projectID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
