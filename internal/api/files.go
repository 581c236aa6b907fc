package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/files/%s", fileID), nil, nil, nil)
}

// DownloadFile streams the file content into w. The download endpoint is
// hit directly with the current access token and no refresh retry, so a
// stale token surfaces as ErrUnauthorized immediately.
func (c *Client) DownloadFile(ctx context.Context, fileID string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(fmt.Sprintf("/files/%s/download", fileID), nil), http.NoBody)
	if err != nil {
		return err
	}
	if tok := c.tokens.AccessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrUnauthorized
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download file: %w", err)
	}
	return nil
}
