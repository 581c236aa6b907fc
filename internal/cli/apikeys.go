package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) listAPIKeys(ctx context.Context) error {
	keys, err := a.api.ListAPIKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(a.out, "No API keys")
		return nil
	}
	for _, k := range keys {
		fmt.Fprintf(a.out, "%s  %s (%s...)  scopes: %s\n", k.ID, k.Name, k.Prefix, strings.Join(k.Scopes, ","))
	}
	return nil
}

func (a *App) createAPIKey(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter key name", a.out)
	if err != nil {
		return err
	}
	scopesLine, err := getSimpleText(a.reader, "Enter scopes (comma-separated)", a.out)
	if err != nil {
		return err
	}

	var scopes []string
	for _, s := range strings.Split(scopesLine, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}

	created, err := a.api.CreateAPIKey(ctx, name, scopes)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s\n", created.Name)
	fmt.Fprintf(a.out, "Secret (shown only once): %s\n", created.Key)
	return nil
}

func (a *App) revokeAPIKey(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: revokekey <key-id>")
		return nil
	}
	if err := a.api.RevokeAPIKey(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Revoked")
	return nil
}
