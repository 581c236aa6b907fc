package cli

import (
	"context"
	"fmt"

	"github.com/crewdeck/crewdeck/internal/fileref"
	"github.com/crewdeck/crewdeck/internal/models"
)

func (a *App) listDocs(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: docs <team-id>")
		return nil
	}
	docs, err := a.api.ListTeamDocs(ctx, args[0])
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "No docs")
		return nil
	}
	for _, d := range docs {
		fmt.Fprintf(a.out, "%s  %s\n", d.ID, d.Title)
	}
	return nil
}

// showDoc prints a doc with its file references resolved against the
// owning team's file tree.
func (a *App) showDoc(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: doc <doc-id>")
		return nil
	}
	doc, err := a.api.GetDoc(ctx, args[0])
	if err != nil {
		return err
	}

	var files []models.FileItem
	if doc.TeamID != "" {
		files, err = a.api.ListTeamFiles(ctx, doc.TeamID, "")
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "# %s\n\n", doc.Title)
	fmt.Fprintln(a.out, fileref.Resolve(doc.Content, files))
	return nil
}
