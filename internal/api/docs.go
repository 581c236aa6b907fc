package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crewdeck/crewdeck/internal/models"
)

func (c *Client) GetDoc(ctx context.Context, docID string) (*models.Doc, error) {
	var out models.Doc
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/docs/%s", docID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDoc(ctx context.Context, docID string, in models.DocUpdate) (*models.Doc, error) {
	var out models.Doc
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/docs/%s", docID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDoc(ctx context.Context, docID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/docs/%s", docID), nil, nil, nil)
}
