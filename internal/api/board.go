package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crewdeck/crewdeck/internal/models"
)

type columnTitleRequest struct {
	Title string `json:"title"`
}

type columnPositionRequest struct {
	Position int `json:"position"`
}

type moveCardRequest struct {
	ColumnID string `json:"column_id"`
	Position int    `json:"position"`
}

// GetBoard returns the project board with columns and their cards,
// ordered by position.
func (c *Client) GetBoard(ctx context.Context, projectID string) (*models.Board, error) {
	var out models.Board
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/board", projectID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateColumn(ctx context.Context, projectID, title string) (*models.Column, error) {
	var out models.Column
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/columns", projectID), nil, columnTitleRequest{Title: title}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateColumn(ctx context.Context, projectID, columnID, title string) (*models.Column, error) {
	var out models.Column
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/projects/%s/columns/%s", projectID, columnID), nil, columnTitleRequest{Title: title}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReorderColumn(ctx context.Context, projectID, columnID string, position int) (*models.ColumnPosition, error) {
	var out models.ColumnPosition
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/projects/%s/columns/%s/position", projectID, columnID), nil, columnPositionRequest{Position: position}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteColumn(ctx context.Context, projectID, columnID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/projects/%s/columns/%s", projectID, columnID), nil, nil, nil)
}

func (c *Client) CreateCard(ctx context.Context, projectID, columnID string, in models.CardInput) (*models.Card, error) {
	var out models.Card
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/columns/%s/cards", projectID, columnID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCard(ctx context.Context, cardID string, in models.CardUpdate) (*models.Card, error) {
	var out models.Card
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/cards/%s", cardID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MoveCard places the card into a column at the given position.
func (c *Client) MoveCard(ctx context.Context, cardID, columnID string, position int) (*models.Card, error) {
	var out models.Card
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/cards/%s/move", cardID), nil, moveCardRequest{ColumnID: columnID, Position: position}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/cards/%s", cardID), nil, nil, nil)
}
