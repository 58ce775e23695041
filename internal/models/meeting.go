package models

import "time"

type MeetingScope string

const (
	ScopeInternal MeetingScope = "internal"
	ScopeExternal MeetingScope = "external"
)

type MeetingType string

const (
	MeetingVirtual  MeetingType = "virtual"
	MeetingInPerson MeetingType = "in_person"
	MeetingHybrid   MeetingType = "hybrid"
)

// AgendaItem order is positional: the slice index is the agenda order.
type AgendaItem struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

type Meeting struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Scope        MeetingScope `json:"scope"`
	Type         MeetingType  `json:"type"`
	URL          string       `json:"url,omitempty"`
	Location     string       `json:"location,omitempty"`
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	Participants []string     `json:"participants,omitempty"`
	Agenda       []AgendaItem `json:"agenda,omitempty"`
	CreatedBy    string       `json:"created_by,omitempty"`
}
