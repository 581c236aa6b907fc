// Package models defines the typed entities exchanged with the Crewdeck
// backend. All records are server-owned: the client never constructs or
// mutates them locally except through request/response round trips, and
// relationships are encoded by id references rather than object graphs.
package models

// User is the authenticated account's identity and profile.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UserSummary is the trimmed shape returned by the user search endpoint.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserUpdate carries a partial profile update. Empty fields are omitted
// from the request and left unchanged by the server.
type UserUpdate struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
