package models

import "time"

type CommentType string

const (
	CommentText CommentType = "text"
	CommentCode CommentType = "code"
)

type Reaction struct {
	Emoji  string `json:"emoji"`
	UserID string `json:"user_id"`
}

type Comment struct {
	ID          string       `json:"id"`
	TaskID      string       `json:"task_id"`
	Type        CommentType  `json:"type"`
	Body        string       `json:"body"`
	Mentions    []string     `json:"mentions,omitempty"`
	ParentID    string       `json:"parent_id,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Reactions   []Reaction   `json:"reactions,omitempty"`
	CreatedBy   string       `json:"created_by,omitempty"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`
}
