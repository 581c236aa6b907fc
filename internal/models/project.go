package models

type Project struct {
	ID          string `json:"id"`
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Visibility  string `json:"visibility,omitempty"`
	IsPublic    bool   `json:"is_public"`
	IsArchived  bool   `json:"is_archived"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ProjectMember struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	ProjectID string   `json:"project_id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	RoleFlags RoleFlag `json:"role_flags"`
	RoleName  string   `json:"role_name"`
	AddedAt   string   `json:"added_at"`
}

// ProjectUpdate carries a partial project update; empty fields are omitted.
type ProjectUpdate struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

type Whiteboard struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Data      string `json:"data"`
	UpdatedAt string `json:"updated_at"`
}
