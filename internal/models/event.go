package models

// Event is a calendar entry scoped to either a team or a project.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
	ScopeID     string `json:"scope_id"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// EventInput is the payload for creating an event.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Color       string `json:"color"`
}

// EventUpdate carries a partial event update; empty fields are omitted.
type EventUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Color       string `json:"color,omitempty"`
}
