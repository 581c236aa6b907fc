package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/crewdeck/crewdeck/internal/models"
)

type createTeamRequest struct {
	Name string `json:"name"`
}

type inviteMemberRequest struct {
	Email     string          `json:"email"`
	RoleFlags models.RoleFlag `json:"role_flags"`
}

type memberRoleRequest struct {
	RoleFlags models.RoleFlag `json:"role_flags"`
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type createDocRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *Client) ListTeams(ctx context.Context) ([]models.Team, error) {
	var out []models.Team
	if err := c.doJSON(ctx, http.MethodGet, "/teams", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTeam(ctx context.Context, name string) (*models.Team, error) {
	var out models.Team
	if err := c.doJSON(ctx, http.MethodPost, "/teams", nil, createTeamRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTeam(ctx context.Context, teamID string) (*models.Team, error) {
	var out models.Team
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%s", teamID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTeam(ctx context.Context, teamID, name string) (*models.Team, error) {
	var out models.Team
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/teams/%s", teamID), nil, createTeamRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTeam(ctx context.Context, teamID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/teams/%s", teamID), nil, nil, nil)
}

func (c *Client) ListTeamMembers(ctx context.Context, teamID string) ([]models.TeamMember, error) {
	var out []models.TeamMember
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%s/members", teamID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InviteTeamMember invites a user by email with the given role flags.
func (c *Client) InviteTeamMember(ctx context.Context, teamID, email string, roleFlags models.RoleFlag) (*models.InviteResult, error) {
	var out models.InviteResult
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/teams/%s/members/invite", teamID), nil, inviteMemberRequest{Email: email, RoleFlags: roleFlags}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTeamMemberRole(ctx context.Context, teamID, userID string, roleFlags models.RoleFlag) (*models.MemberRole, error) {
	var out models.MemberRole
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/teams/%s/members/%s", teamID, userID), nil, memberRoleRequest{RoleFlags: roleFlags}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/teams/%s/members/%s", teamID, userID), nil, nil, nil)
}

func (c *Client) ListTeamProjects(ctx context.Context, teamID string) ([]models.Project, error) {
	var out []models.Project
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%s/projects", teamID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTeamProject(ctx context.Context, teamID, name, description string) (*models.Project, error) {
	var out models.Project
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/teams/%s/projects", teamID), nil, createProjectRequest{Name: name, Description: description}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTeamEvents(ctx context.Context, teamID string) ([]models.Event, error) {
	var out []models.Event
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%s/events", teamID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTeamEvent(ctx context.Context, teamID string, in models.EventInput) (*models.Event, error) {
	var out models.Event
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/teams/%s/events", teamID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTeamDocs(ctx context.Context, teamID string) ([]models.Doc, error) {
	var out []models.Doc
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%s/docs", teamID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTeamDoc(ctx context.Context, teamID, title, content string) (*models.Doc, error) {
	var out models.Doc
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/teams/%s/docs", teamID), nil, createDocRequest{Title: title, Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTeamFiles(ctx context.Context, teamID, parentID string) ([]models.FileItem, error) {
	query := url.Values{}
	if parentID != "" {
		query.Set("parent_id", parentID)
	}
	var out []models.FileItem
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%s/files", teamID), query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTeamFolder(ctx context.Context, teamID, name, parentID string) (*models.FileItem, error) {
	var out models.FileItem
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/teams/%s/files/folder", teamID), nil, createFolderRequest{Name: name, ParentID: parentID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadTeamFile(ctx context.Context, teamID, fileName string, content []byte, parentID string) (*models.FileItem, error) {
	var out models.FileItem
	if err := c.doUpload(ctx, fmt.Sprintf("/teams/%s/files/upload", teamID), fileName, content, parentID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadTeamAvatar(ctx context.Context, teamID, fileName string, content []byte) (*models.Team, error) {
	var out models.Team
	if err := c.doUpload(ctx, fmt.Sprintf("/teams/%s/avatar", teamID), fileName, content, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadTeamBanner(ctx context.Context, teamID, fileName string, content []byte) (*models.Team, error) {
	var out models.Team
	if err := c.doUpload(ctx, fmt.Sprintf("/teams/%s/banner", teamID), fileName, content, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTeamChat returns chat history, newest first. A non-empty before
// cursor pages further back.
func (c *Client) ListTeamChat(ctx context.Context, teamID, before string) ([]models.ChatMessage, error) {
	query := url.Values{}
	if before != "" {
		query.Set("before", before)
	}
	var out []models.ChatMessage
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%s/chat", teamID), query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
