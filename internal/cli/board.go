package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) showBoard(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: board <project-id>")
		return nil
	}
	board, err := a.api.GetBoard(ctx, args[0])
	if err != nil {
		return err
	}
	for _, col := range board.Columns {
		fmt.Fprintf(a.out, "== %s (%s)\n", col.Title, col.ID)
		for _, card := range col.Cards {
			fmt.Fprintf(a.out, "   %s  %s\n", card.ID, card.Title)
		}
	}
	return nil
}

func (a *App) moveCard(ctx context.Context, args []string) error {
	if len(args) < 3 {
		fmt.Fprintln(a.out, "Usage: movecard <card-id> <column-id> <position>")
		return nil
	}
	pos, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid position %q: %w", args[2], err)
	}
	card, err := a.api.MoveCard(ctx, args[0], args[1], pos)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Moved %s to column %s\n", card.Title, card.ColumnID)
	return nil
}
