package cli

import (
	"context"
	"fmt"
)

func (a *App) listProjects(ctx context.Context) error {
	projects, err := a.api.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects")
		return nil
	}
	for _, p := range projects {
		marker := ""
		if p.IsArchived {
			marker = " [archived]"
		}
		fmt.Fprintf(a.out, "%s  %s%s\n", p.ID, p.Name, marker)
	}
	return nil
}

func (a *App) archiveProject(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: archive <project-id>")
		return nil
	}
	p, err := a.api.ArchiveProject(ctx, args[0])
	if err != nil {
		return err
	}
	if p.IsArchived {
		fmt.Fprintf(a.out, "Archived %s\n", p.Name)
	} else {
		fmt.Fprintf(a.out, "Restored %s\n", p.Name)
	}
	return nil
}
