package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crewdeck/crewdeck/internal/models"
)

func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, in models.WebhookInput) (*models.Webhook, error) {
	var out models.Webhook
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/webhooks/%s", webhookID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleWebhook flips the active flag and returns the updated webhook.
func (c *Client) ToggleWebhook(ctx context.Context, webhookID string) (*models.Webhook, error) {
	var out models.Webhook
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/webhooks/%s/toggle", webhookID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/webhooks/%s", webhookID), nil, nil, nil)
}
