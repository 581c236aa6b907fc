package cli

import (
	"context"
	"fmt"
)

func (a *App) listNotifications(ctx context.Context) error {
	items, err := a.api.ListNotifications(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return nil
	}
	for _, n := range items {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s\n", marker, n.ID, n.Message)
	}
	return nil
}

func (a *App) markAllRead(ctx context.Context) error {
	if err := a.api.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All notifications marked as read")
	return nil
}
