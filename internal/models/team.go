package models

type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	WorkspaceID string   `json:"workspace_id"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	BannerURL   string   `json:"banner_url,omitempty"`
	MemberCount int      `json:"member_count"`
	RoleFlags   RoleFlag `json:"role_flags"`
	RoleName    string   `json:"role_name"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type TeamMember struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	TeamID    string   `json:"team_id,omitempty"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	RoleFlags RoleFlag `json:"role_flags"`
	RoleName  string   `json:"role_name"`
	JoinedAt  string   `json:"joined_at"`
}

// InviteResult is returned when a member is invited by email.
type InviteResult struct {
	Message string     `json:"message"`
	Member  TeamMember `json:"member"`
}

// MemberRole is the acknowledgement returned by a member role update.
type MemberRole struct {
	UserID    string   `json:"user_id"`
	RoleFlags RoleFlag `json:"role_flags"`
	RoleName  string   `json:"role_name"`
}
