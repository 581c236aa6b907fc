package models

type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	ProjectID string `json:"project_id"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type Doc struct {
	ID        string `json:"id"`
	TeamID    string `json:"team_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// DocUpdate carries a partial doc update; empty fields are omitted.
type DocUpdate struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// FileItem is a file or folder node in a user, team or project tree.
// Type is "folder" for folders.
type FileItem struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id,omitempty"`
	TeamID     string `json:"team_id,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	ParentID   string `json:"parent_id,omitempty"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	SizeBytes  int64  `json:"size_bytes"`
	StorageURL string `json:"storage_url"`
	CreatedBy  string `json:"created_by"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type Webhook struct {
	ID            string `json:"id"`
	ProjectID     string `json:"project_id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	Active        bool   `json:"active,omitempty"`
	LastTriggered string `json:"last_triggered,omitempty"`
	CreatedBy     string `json:"created_by"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// WebhookInput is the payload for creating or partially updating a webhook.
type WebhookInput struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
	Type string `json:"type,omitempty"`
}

type ChatMessage struct {
	ID        string `json:"id"`
	TeamID    string `json:"team_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Content   string `json:"content"`
	ReplyTo   string `json:"reply_to,omitempty"`
	EditedAt  string `json:"edited_at,omitempty"`
	Deleted   bool   `json:"deleted,omitempty"`
	CreatedAt string `json:"created_at"`
}

type APIKey struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Scopes    []string `json:"scopes"`
	Prefix    string   `json:"prefix"`
	LastUsed  string   `json:"last_used,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// APIKeyCreated is returned only once, when a key is first created;
// Key holds the raw secret and is never shown again.
type APIKeyCreated struct {
	APIKey
	Key string `json:"key"`
}
