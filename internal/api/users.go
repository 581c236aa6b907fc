package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/crewdeck/crewdeck/internal/models"
)

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type createFolderRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe applies a partial profile update.
func (c *Client) UpdateMe(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodPut, "/users/me", nil, upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword replaces the account password.
func (c *Client) ChangePassword(ctx context.Context, current, updated string) error {
	return c.doJSON(ctx, http.MethodPut, "/users/me/password", nil, changePasswordRequest{CurrentPassword: current, NewPassword: updated}, nil)
}

// SearchUsers looks up users by name or email fragment.
func (c *Client) SearchUsers(ctx context.Context, q string) ([]models.UserSummary, error) {
	query := url.Values{}
	query.Set("q", q)
	var out []models.UserSummary
	if err := c.doJSON(ctx, http.MethodGet, "/users/search", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyFiles lists the user's personal files under parentID
// ("" for the root).
func (c *Client) ListMyFiles(ctx context.Context, parentID string) ([]models.FileItem, error) {
	query := url.Values{}
	if parentID != "" {
		query.Set("parent_id", parentID)
	}
	var out []models.FileItem
	if err := c.doJSON(ctx, http.MethodGet, "/users/me/files", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMyFolder creates a personal folder under parentID ("" for the root).
func (c *Client) CreateMyFolder(ctx context.Context, name, parentID string) (*models.FileItem, error) {
	var out models.FileItem
	if err := c.doJSON(ctx, http.MethodPost, "/users/me/files/folder", nil, createFolderRequest{Name: name, ParentID: parentID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadMyFile uploads content as a personal file named fileName.
func (c *Client) UploadMyFile(ctx context.Context, fileName string, content []byte, parentID string) (*models.FileItem, error) {
	var out models.FileItem
	if err := c.doUpload(ctx, "/users/me/files/upload", fileName, content, parentID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadMyAvatar replaces the user's avatar image.
func (c *Client) UploadMyAvatar(ctx context.Context, fileName string, content []byte) (*models.User, error) {
	var out models.User
	if err := c.doUpload(ctx, "/users/me/avatar", fileName, content, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAPIKeys lists the user's API keys. Raw secrets are never returned.
func (c *Client) ListAPIKeys(ctx context.Context) ([]models.APIKey, error) {
	var out []models.APIKey
	if err := c.doJSON(ctx, http.MethodGet, "/users/me/api-keys", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type createAPIKeyRequest struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
}

// CreateAPIKey mints a new API key. The returned Key field is shown once
// and cannot be retrieved again.
func (c *Client) CreateAPIKey(ctx context.Context, name string, scopes []string) (*models.APIKeyCreated, error) {
	var out models.APIKeyCreated
	if err := c.doJSON(ctx, http.MethodPost, "/users/me/api-keys", nil, createAPIKeyRequest{Name: name, Scopes: scopes}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeAPIKey permanently disables an API key.
func (c *Client) RevokeAPIKey(ctx context.Context, keyID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/me/api-keys/%s", keyID), nil, nil, nil)
}
