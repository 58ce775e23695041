package models

import "time"

type ProjectMember struct {
	UserID        string `json:"user_id"`
	Department    string `json:"department,omitempty"`
	SubDepartment string `json:"sub_department,omitempty"`
}

type Link struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      TaskStatus      `json:"status"`
	Priority    Priority        `json:"priority,omitempty"`
	Color       string          `json:"color,omitempty"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	DueTime     string          `json:"due_time,omitempty"`
	Members     []ProjectMember `json:"members,omitempty"`
	Links       []Link          `json:"links,omitempty"`
	Documents   []Attachment    `json:"documents,omitempty"`
	CreatedBy   string          `json:"created_by,omitempty"`
}
