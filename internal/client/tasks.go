package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

// TaskDraft is the client-side shape of a task create form.
type TaskDraft struct {
	Title           string
	Description     string
	Priority        models.Priority
	Status          models.TaskStatus
	ProjectID       string
	StartDate       *time.Time
	DueDate         *time.Time
	DueTime         string
	Assignees       []string
	Collaborators   []string
	AttachmentPaths []string
}

type taskListResponse struct {
	Tasks []models.Task `json:"tasks"`
}

type taskResponse struct {
	Task *models.Task `json:"task"`
}

// FetchPersonalTasks returns the signed-in user's tasks plus aggregate
// stats. Without a resolvable user id it returns an empty list and all-zero
// stats without touching the network.
func (c *Client) FetchPersonalTasks(ctx context.Context) ([]models.Task, models.TaskStats, error) {
	if c.session == nil || c.session.UserID == "" || c.session.OrganizationID == "" {
		c.log.Warn("fetch personal tasks skipped: no resolvable identity")
		return []models.Task{}, models.TaskStats{}, nil
	}

	path := fmt.Sprintf("organizations/%s/user-tasks/%s/", c.session.OrganizationID, c.session.UserID)
	var resp taskListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, models.TaskStats{}, fmt.Errorf("fetch personal tasks: %w", err)
	}
	if resp.Tasks == nil {
		resp.Tasks = []models.Task{}
	}
	return resp.Tasks, models.ComputeTaskStats(resp.Tasks, time.Now()), nil
}

func (c *Client) FetchProjectTasks(ctx context.Context, projectID string) ([]models.Task, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("organizations/%s/projects/%s/tasks/", c.session.OrganizationID, projectID)
	var resp taskListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch project tasks: %w", err)
	}
	if resp.Tasks == nil {
		resp.Tasks = []models.Task{}
	}
	return resp.Tasks, nil
}

// CreateTask submits the draft as multipart form data so attachments ride
// along in the same request.
func (c *Client) CreateTask(ctx context.Context, draft TaskDraft) (*models.Task, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	if draft.Title == "" {
		return nil, &ValidationError{Field: "title", Message: "task title is required"}
	}
	if draft.Status != "" && !draft.Status.Valid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown task status %q", draft.Status)}
	}
	if draft.Priority != "" && !draft.Priority.Valid() {
		return nil, &ValidationError{Field: "priority", Message: fmt.Sprintf("unknown priority %q", draft.Priority)}
	}

	fields := url.Values{}
	fields.Set("title", draft.Title)
	fields.Set("description", draft.Description)
	fields.Set("created_by", c.session.UserID)
	fields.Set("assigned_by", c.session.UserID)
	if draft.Status != "" {
		fields.Set("status", string(draft.Status))
	}
	if draft.Priority != "" {
		fields.Set("priority", string(draft.Priority))
	}
	if draft.ProjectID != "" {
		fields.Set("project_id", draft.ProjectID)
	}
	if draft.StartDate != nil {
		fields.Set("start_date", formatDate(draft.StartDate))
	}
	if draft.DueDate != nil {
		fields.Set("due_date", formatDate(draft.DueDate))
	}
	if draft.DueTime != "" {
		fields.Set("due_time", draft.DueTime)
	}
	for _, id := range draft.Assignees {
		fields.Add("assignees", id)
	}
	for _, id := range draft.Collaborators {
		fields.Add("collaborators", id)
	}

	files := make([]filePart, 0, len(draft.AttachmentPaths))
	for _, p := range draft.AttachmentPaths {
		files = append(files, filePart{field: "attachments", path: p})
	}

	path := fmt.Sprintf("organizations/%s/create-task/", c.session.OrganizationID)
	var resp taskResponse
	if err := c.doMultipart(ctx, http.MethodPost, path, fields, files, &resp); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	if resp.Task == nil {
		return nil, fmt.Errorf("create task: backend returned no task body")
	}
	return resp.Task, nil
}

// UpdateTaskStatus PATCHes the dedicated status endpoint and returns the
// task from the response body, or nil when the backend acknowledges without
// one.
func (c *Client) UpdateTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) (*models.Task, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown task status %q", status)}
	}

	payload := map[string]string{
		"status":     string(status),
		"updated_by": c.session.UserID,
	}
	path := fmt.Sprintf("tasks/update-status/%s/%s/", c.session.OrganizationID, taskID)

	var resp taskResponse
	if err := c.doJSON(ctx, http.MethodPatch, path, payload, &resp); err != nil {
		return nil, err
	}
	if resp.Task == nil {
		// Some deployments answer with a bare acknowledgement body. Return
		// no task rather than a synthesized one so callers keep their local
		// copy instead of overwriting it with empty fields.
		return nil, nil
	}
	return resp.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	path := fmt.Sprintf("tasks/delete/%s/", taskID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
