package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crewdeck/crewdeck/internal/models"
)

func (c *Client) UpdateEvent(ctx context.Context, eventID string, in models.EventUpdate) (*models.Event, error) {
	var out models.Event
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/events/%s", eventID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/events/%s", eventID), nil, nil, nil)
}
