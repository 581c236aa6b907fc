package models

type Subtask struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Card struct {
	ID               string    `json:"id"`
	ColumnID         string    `json:"column_id"`
	ProjectID        string    `json:"project_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Priority         string    `json:"priority"`
	Color            string    `json:"color"`
	DueDate          string    `json:"due_date,omitempty"`
	Assignees        []string  `json:"assignees"`
	EstimatedMinutes int       `json:"estimated_minutes,omitempty"`
	ActualMinutes    int       `json:"actual_minutes,omitempty"`
	Subtasks         []Subtask `json:"subtasks"`
	Position         int       `json:"position"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

type Column struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Position  int    `json:"position"`
	Cards     []Card `json:"cards,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Board is the full column/card layout of a project.
type Board struct {
	ProjectID string   `json:"project_id"`
	Columns   []Column `json:"columns"`
}

// ColumnPosition acknowledges a column reorder.
type ColumnPosition struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// CardInput is the payload for creating a card in a column.
type CardInput struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Priority         string   `json:"priority"`
	Color            string   `json:"color"`
	DueDate          string   `json:"due_date,omitempty"`
	Assignees        []string `json:"assignees"`
	EstimatedMinutes int      `json:"estimated_minutes,omitempty"`
	ActualMinutes    int      `json:"actual_minutes,omitempty"`
}

// CardUpdate carries a partial card update; zero fields are omitted.
type CardUpdate struct {
	Title            string    `json:"title,omitempty"`
	Description      string    `json:"description,omitempty"`
	Priority         string    `json:"priority,omitempty"`
	Color            string    `json:"color,omitempty"`
	DueDate          string    `json:"due_date,omitempty"`
	Assignees        []string  `json:"assignees,omitempty"`
	Subtasks         []Subtask `json:"subtasks,omitempty"`
	EstimatedMinutes int       `json:"estimated_minutes,omitempty"`
	ActualMinutes    int       `json:"actual_minutes,omitempty"`
}
