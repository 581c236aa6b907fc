package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/crewdeck/crewdeck/internal/models"
)

type addMemberRequest struct {
	UserID    string          `json:"user_id"`
	RoleFlags models.RoleFlag `json:"role_flags"`
}

type whiteboardRequest struct {
	Data string `json:"data"`
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePersonalProject creates a project owned by the current user
// rather than a team.
func (c *Client) CreatePersonalProject(ctx context.Context, name, description string) (*models.Project, error) {
	var out models.Project
	if err := c.doJSON(ctx, http.MethodPost, "/projects", nil, createProjectRequest{Name: name, Description: description}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	var out models.Project
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/projects/%s", projectID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, projectID string, in models.ProjectUpdate) (*models.Project, error) {
	var out models.Project
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/projects/%s", projectID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ArchiveProject toggles the archived state and returns the updated project.
func (c *Client) ArchiveProject(ctx context.Context, projectID string) (*models.Project, error) {
	var out models.Project
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/projects/%s/archive", projectID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/projects/%s", projectID), nil, nil, nil)
}

func (c *Client) ListProjectMembers(ctx context.Context, projectID string) ([]models.ProjectMember, error) {
	var out []models.ProjectMember
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/members", projectID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddProjectMember(ctx context.Context, projectID, userID string, roleFlags models.RoleFlag) (*models.ProjectMember, error) {
	var out models.ProjectMember
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/members", projectID), nil, addMemberRequest{UserID: userID, RoleFlags: roleFlags}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProjectMemberRole(ctx context.Context, projectID, userID string, roleFlags models.RoleFlag) (*models.MemberRole, error) {
	var out models.MemberRole
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/projects/%s/members/%s", projectID, userID), nil, memberRoleRequest{RoleFlags: roleFlags}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveProjectMember(ctx context.Context, projectID, userID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/projects/%s/members/%s", projectID, userID), nil, nil, nil)
}

func (c *Client) ListProjectEvents(ctx context.Context, projectID string) ([]models.Event, error) {
	var out []models.Event
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/events", projectID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProjectEvent(ctx context.Context, projectID string, in models.EventInput) (*models.Event, error) {
	var out models.Event
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/events", projectID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProjectFiles(ctx context.Context, projectID, parentID string) ([]models.FileItem, error) {
	query := url.Values{}
	if parentID != "" {
		query.Set("parent_id", parentID)
	}
	var out []models.FileItem
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/files", projectID), query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProjectFolder(ctx context.Context, projectID, name, parentID string) (*models.FileItem, error) {
	var out models.FileItem
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/files/folder", projectID), nil, createFolderRequest{Name: name, ParentID: parentID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadProjectFile(ctx context.Context, projectID, fileName string, content []byte, parentID string) (*models.FileItem, error) {
	var out models.FileItem
	if err := c.doUpload(ctx, fmt.Sprintf("/projects/%s/files/upload", projectID), fileName, content, parentID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListWebhooks(ctx context.Context, projectID string) ([]models.Webhook, error) {
	var out []models.Webhook
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/webhooks", projectID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateWebhook(ctx context.Context, projectID string, in models.WebhookInput) (*models.Webhook, error) {
	var out models.Webhook
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/webhooks", projectID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWhiteboard(ctx context.Context, projectID string) (*models.Whiteboard, error) {
	var out models.Whiteboard
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/whiteboard", projectID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveWhiteboard stores the serialized scene payload as an opaque string.
func (c *Client) SaveWhiteboard(ctx context.Context, projectID, data string) (*models.Whiteboard, error) {
	var out models.Whiteboard
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/projects/%s/whiteboard", projectID), nil, whiteboardRequest{Data: data}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
