package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to Crewdeck CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "crewdeck %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		err = a.dispatch(ctx, cmd, args)
		if errors.Is(err, errExit) {
			return
		}
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
		}
	}
}

var errExit = errors.New("exit")

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.printHelp()
		return nil
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return errExit
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "teams":
		return a.listTeams(ctx)
	case "members":
		return a.listTeamMembers(ctx, args)
	case "invite":
		return a.inviteMember(ctx, args)
	case "chat":
		return a.showChat(ctx, args)
	case "projects":
		return a.listProjects(ctx)
	case "archive":
		return a.archiveProject(ctx, args)
	case "board":
		return a.showBoard(ctx, args)
	case "movecard":
		return a.moveCard(ctx, args)
	case "files":
		return a.listFiles(ctx, args)
	case "upload":
		return a.uploadFile(ctx, args)
	case "download":
		return a.downloadFile(ctx, args)
	case "notifications":
		return a.listNotifications(ctx)
	case "readall":
		return a.markAllRead(ctx)
	case "apikeys":
		return a.listAPIKeys(ctx)
	case "newkey":
		return a.createAPIKey(ctx)
	case "revokekey":
		return a.revokeAPIKey(ctx, args)
	case "docs":
		return a.listDocs(ctx, args)
	case "doc":
		return a.showDoc(ctx, args)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: whoami, teams, members, invite, chat,")
		fmt.Fprintln(a.out, "  projects, archive, board, movecard, files, upload, download,")
		fmt.Fprintln(a.out, "  notifications, readall, apikeys, newkey, revokekey, docs, doc,")
		fmt.Fprintln(a.out, "  logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}
