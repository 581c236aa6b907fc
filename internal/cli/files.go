package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

func (a *App) listFiles(ctx context.Context, args []string) error {
	parentID := ""
	if len(args) > 0 {
		parentID = args[0]
	}
	files, err := a.api.ListMyFiles(ctx, parentID)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files")
		return nil
	}
	for _, f := range files {
		if f.Type == "folder" {
			fmt.Fprintf(a.out, "%s  %s/\n", f.ID, f.Name)
		} else {
			fmt.Fprintf(a.out, "%s  %s (%d bytes)\n", f.ID, f.Name, f.SizeBytes)
		}
	}
	return nil
}

func (a *App) uploadFile(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: upload <path> [parent-id]")
		return nil
	}
	parentID := ""
	if len(args) > 1 {
		parentID = args[1]
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	item, err := a.api.UploadMyFile(ctx, filepath.Base(args[0]), content, parentID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %s (id %s)\n", item.Name, item.ID)
	return nil
}

func (a *App) downloadFile(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: download <file-id> <destination>")
		return nil
	}

	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer f.Close()

	if err := a.api.DownloadFile(ctx, args[0], f); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved to %s\n", args[1])
	return nil
}
