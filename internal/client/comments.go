package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

// CommentDraft covers both top-level comments and threaded replies. A
// non-empty ParentID makes it a reply; replies may carry attachments.
type CommentDraft struct {
	TaskID          string
	Type            models.CommentType
	Body            string
	Mentions        []string
	ParentID        string
	AttachmentPaths []string
}

type commentListResponse struct {
	Comments []models.Comment `json:"comments"`
}

type commentResponse struct {
	Comment *models.Comment `json:"comment"`
}

func (c *Client) FetchComments(ctx context.Context, taskID string) ([]models.Comment, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("comments/task/%s/", taskID)
	var resp commentListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch comments for task %s: %w", taskID, err)
	}
	if resp.Comments == nil {
		resp.Comments = []models.Comment{}
	}
	return resp.Comments, nil
}

func (c *Client) validateComment(draft CommentDraft) error {
	if draft.TaskID == "" {
		return &ValidationError{Field: "task_id", Message: "comment needs a task id"}
	}
	if draft.Body == "" {
		return &ValidationError{Field: "body", Message: "comment body is required"}
	}
	if draft.Type != models.CommentText && draft.Type != models.CommentCode {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown comment type %q", draft.Type)}
	}
	return nil
}

func (c *Client) AddComment(ctx context.Context, draft CommentDraft) (*models.Comment, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	if err := c.validateComment(draft); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"task_id":    draft.TaskID,
		"type":       string(draft.Type),
		"body":       draft.Body,
		"mentions":   draft.Mentions,
		"created_by": c.session.UserID,
	}
	var resp commentResponse
	if err := c.doJSON(ctx, http.MethodPost, "comments/add/", payload, &resp); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	if resp.Comment == nil {
		return nil, fmt.Errorf("add comment: backend returned no comment body")
	}
	return resp.Comment, nil
}

// ReplyComment posts a threaded reply as multipart form data so reply
// attachments upload in the same request.
func (c *Client) ReplyComment(ctx context.Context, draft CommentDraft) (*models.Comment, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}
	if draft.ParentID == "" {
		return nil, &ValidationError{Field: "parent_id", Message: "reply needs a parent comment id"}
	}
	if err := c.validateComment(draft); err != nil {
		return nil, err
	}

	fields := url.Values{}
	fields.Set("task_id", draft.TaskID)
	fields.Set("parent_id", draft.ParentID)
	fields.Set("type", string(draft.Type))
	fields.Set("body", draft.Body)
	fields.Set("created_by", c.session.UserID)
	for _, id := range draft.Mentions {
		fields.Add("mentions", id)
	}

	files := make([]filePart, 0, len(draft.AttachmentPaths))
	for _, p := range draft.AttachmentPaths {
		files = append(files, filePart{field: "attachments", path: p})
	}

	var resp commentResponse
	if err := c.doMultipart(ctx, http.MethodPost, "comments/reply/", fields, files, &resp); err != nil {
		return nil, fmt.Errorf("reply to comment %s: %w", draft.ParentID, err)
	}
	if resp.Comment == nil {
		return nil, fmt.Errorf("reply to comment: backend returned no comment body")
	}
	return resp.Comment, nil
}

func (c *Client) React(ctx context.Context, commentID, emoji string) error {
	return c.react(ctx, "comments/react/", commentID, emoji)
}

func (c *Client) Unreact(ctx context.Context, commentID, emoji string) error {
	return c.react(ctx, "comments/unreact/", commentID, emoji)
}

func (c *Client) react(ctx context.Context, path, commentID, emoji string) error {
	if err := c.requireIdentity(); err != nil {
		return err
	}
	if emoji == "" {
		return &ValidationError{Field: "emoji", Message: "emoji is required"}
	}

	payload := map[string]string{
		"comment_id": commentID,
		"emoji":      emoji,
		"user_id":    c.session.UserID,
	}
	if err := c.doJSON(ctx, http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("react to comment %s: %w", commentID, err)
	}
	return nil
}
