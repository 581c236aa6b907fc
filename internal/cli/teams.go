package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/crewdeck/crewdeck/internal/models"
)

func (a *App) listTeams(ctx context.Context) error {
	teams, err := a.api.ListTeams(ctx)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		fmt.Fprintln(a.out, "No teams")
		return nil
	}
	for _, t := range teams {
		fmt.Fprintf(a.out, "%s  %s\n", t.ID, t.Name)
	}
	return nil
}

func (a *App) listTeamMembers(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: members <team-id>")
		return nil
	}
	members, err := a.api.ListTeamMembers(ctx, args[0])
	if err != nil {
		return err
	}
	for _, m := range members {
		fmt.Fprintf(a.out, "%s  %s <%s>  %s\n", m.UserID, m.Name, m.Email, m.RoleFlags.String())
	}
	return nil
}

func (a *App) inviteMember(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: invite <team-id> [email] [role-flags]")
		return nil
	}
	teamID := args[0]

	email := ""
	if len(args) > 1 {
		email = args[1]
	} else {
		var err error
		email, err = getSimpleText(a.reader, "Enter email to invite", a.out)
		if err != nil {
			return err
		}
	}

	flags := models.RoleViewer
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid role flags %q: %w", args[2], err)
		}
		flags = models.RoleFlag(n)
	}

	res, err := a.api.InviteTeamMember(ctx, teamID, email, flags)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, res.Message)
	return nil
}

func (a *App) showChat(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: chat <team-id> [before-message-id]")
		return nil
	}
	before := ""
	if len(args) > 1 {
		before = args[1]
	}
	messages, err := a.api.ListTeamChat(ctx, args[0], before)
	if err != nil {
		return err
	}
	for _, m := range messages {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", m.CreatedAt, m.UserName, m.Content)
	}
	return nil
}
