package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crewdeck/crewdeck/internal/models"
)

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/notifications", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) (*models.Notification, error) {
	var out models.Notification
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/notifications/%s/read", notificationID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPut, "/notifications/read-all", nil, nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, notificationID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%s", notificationID), nil, nil, nil)
}
