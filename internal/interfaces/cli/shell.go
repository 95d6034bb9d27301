package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/team-editor/internal/usecase"
	"github.com/spf13/cobra"
)

const shellHelp = `commands:
  open <path>                       open a game database
  teams                             list the displayed teams
  search [text]                     filter teams (no text clears the filter)
  select <team-id>                  select a team and show it
  show                              show the selected team
  set <field> <value>               stage a change on the selected team
  save [team-id]                    validate, confirm and write staged changes
  discard [team-id]                 drop staged changes
  pending                           list teams with staged changes
  staff [team-id]                   list staff of a team
  staff-edit <id> <fame> <ability> <name>
                                    edit a staff member
  logo [image]                      show the logo, or replace it with image
  demo <path>                       create a sample database
  status                            show session state
  help                              show this help
  quit                              leave the shell`

func (rt *runtime) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive editing session",
		Long: `Start an interactive session. Field changes stay staged in the session
until 'save', so several fields can be edited and reviewed before writing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.runShell(cmd.Context())
		},
	}
}

func (rt *runtime) runShell(ctx context.Context) error {
	out := rt.streams.Out
	fmt.Fprintln(out, "teameditor shell, type 'help' for commands")

	if rt.cfg.DBPath != "" {
		if err := rt.session.OpenDatabase(ctx, rt.cfg.DBPath); err != nil {
			rt.out.errorLine(err)
		}
	}

	for {
		fmt.Fprint(out, rt.prompt())

		line, readErr := rt.in.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			quit, err := rt.dispatch(ctx, line)
			if err != nil {
				rt.logger.Debug("shell command failed", "command", line, "error", err)
				rt.out.errorLine(err)
			}
			if quit {
				return nil
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return readErr
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (rt *runtime) prompt() string {
	if !rt.session.IsOpen() {
		return "teameditor> "
	}
	marker := ""
	if len(rt.session.PendingTeams()) > 0 {
		marker = "*"
	}
	return fmt.Sprintf("teameditor[%s%s]> ", filepath.Base(rt.session.DatabasePath()), marker)
}

func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	head, tail, _ := strings.Cut(s, " ")
	return head, strings.TrimSpace(tail)
}

func (rt *runtime) currentTeamID() (string, error) {
	view, ok := rt.session.CurrentTeam()
	if !ok {
		return "", usecase.ErrNoSelection
	}
	return view.ID, nil
}

func (rt *runtime) dispatch(ctx context.Context, line string) (bool, error) {
	name, rest := splitWord(line)
	session := rt.session

	switch strings.ToLower(name) {
	case "quit", "exit":
		if pending := session.PendingTeams(); len(pending) > 0 {
			fmt.Fprintf(rt.streams.Out, "discarding unsaved edits for teams %s\n", strings.Join(pending, ", "))
		}
		return true, nil

	case "help", "?":
		fmt.Fprintln(rt.streams.Out, shellHelp)
		return false, nil

	case "open":
		if rest == "" {
			return false, fmt.Errorf("%w: usage: open <path>", usecase.ErrInvalidInput)
		}
		if err := session.OpenDatabase(ctx, rest); err != nil {
			return false, err
		}
		list, err := session.ListDisplayedTeams()
		if err != nil {
			return false, err
		}
		return false, rt.out.teamList(list)

	case "teams", "list":
		list, err := session.ListDisplayedTeams()
		if err != nil {
			return false, err
		}
		return false, rt.out.teamList(list)

	case "search":
		list, err := session.Search(ctx, rest)
		if err != nil {
			return false, err
		}
		return false, rt.out.teamList(list)

	case "select":
		if rest == "" {
			return false, fmt.Errorf("%w: usage: select <team-id>", usecase.ErrInvalidInput)
		}
		view, err := session.SelectTeam(ctx, rest)
		if err != nil {
			return false, err
		}
		return false, rt.out.teamView(view)

	case "show":
		id, err := rt.currentTeamID()
		if err != nil {
			return false, err
		}
		view, err := session.SelectTeam(ctx, id)
		if err != nil {
			return false, err
		}
		return false, rt.out.teamView(view)

	case "set":
		fieldName, value := splitWord(rest)
		if fieldName == "" {
			return false, fmt.Errorf("%w: usage: set <field> <value>", usecase.ErrInvalidInput)
		}
		field, ok := resolveField(fieldName)
		if !ok {
			return false, fmt.Errorf("%w: unknown field %q", apperr.ErrValidation, fieldName)
		}
		id, err := rt.currentTeamID()
		if err != nil {
			return false, err
		}
		return false, session.SetTeamField(ctx, id, field, value)

	case "save":
		result, err := session.SaveTeamEdits(ctx, rest)
		if err != nil {
			return false, err
		}
		return false, rt.out.saveResult(result)

	case "discard":
		id := rest
		if id == "" {
			var err error
			if id, err = rt.currentTeamID(); err != nil {
				return false, err
			}
		}
		session.DiscardTeamEdits(id)
		rt.out.message("discarded edits for team " + id)
		return false, nil

	case "pending":
		pending := session.PendingTeams()
		if len(pending) == 0 {
			fmt.Fprintln(rt.streams.Out, "no unsaved edits")
			return false, nil
		}
		fmt.Fprintln(rt.streams.Out, "unsaved edits: "+strings.Join(pending, ", "))
		return false, nil

	case "staff":
		id := rest
		if id == "" {
			var err error
			if id, err = rt.currentTeamID(); err != nil {
				return false, err
			}
		}
		items, err := session.ListStaffForTeam(id)
		if err != nil {
			return false, err
		}
		return false, rt.out.staff(items)

	case "staff-edit":
		return false, rt.shellStaffEdit(ctx, rest)

	case "logo":
		id, err := rt.currentTeamID()
		if err != nil {
			return false, err
		}
		if rest == "" {
			img, err := session.LoadLogo(ctx, id)
			if err != nil {
				return false, err
			}
			return false, rt.out.logo(id, img)
		}
		img, err := session.ReplaceLogo(ctx, id, rest)
		if err != nil {
			return false, err
		}
		return false, rt.out.logo(id, img)

	case "demo":
		if rest == "" {
			return false, fmt.Errorf("%w: usage: demo <path>", usecase.ErrInvalidInput)
		}
		if err := sqlite.CreateDemo(ctx, rest); err != nil {
			return false, err
		}
		rt.out.message("created demo database " + rest)
		return false, nil

	case "status":
		rt.printStatus()
		return false, nil

	default:
		return false, fmt.Errorf("%w: unknown command %q, try 'help'", usecase.ErrInvalidInput, name)
	}
}

func (rt *runtime) shellStaffEdit(ctx context.Context, args string) error {
	id, rest := splitWord(args)
	if id == "" {
		return fmt.Errorf("%w: usage: staff-edit <id> <fame> <ability> <name>", usecase.ErrInvalidInput)
	}

	member, err := rt.session.StaffMember(id)
	if err != nil {
		return err
	}

	input := usecase.EditStaffInput{ID: member.ID}
	if rest == "" {
		if !rt.interactive {
			return fmt.Errorf("%w: usage: staff-edit <id> <fame> <ability> <name>", usecase.ErrInvalidInput)
		}
		form, err := runStaffForm(ctx, member)
		if err != nil {
			return err
		}
		input.Name, input.Fame, input.Ability = form.Name, form.Fame, form.Ability
	} else {
		fame, rest := splitWord(rest)
		ability, name := splitWord(rest)
		input.Fame, input.Ability, input.Name = fame, ability, name
	}

	view, err := rt.session.EditStaff(ctx, input)
	if err != nil {
		return err
	}
	return rt.out.staff([]usecase.StaffView{view})
}

func (rt *runtime) printStatus() {
	s := rt.session
	out := rt.streams.Out

	if !s.IsOpen() {
		fmt.Fprintln(out, "no database open")
		return
	}

	selected := "none"
	if view, ok := s.CurrentTeam(); ok {
		selected = view.ID
	}
	fmt.Fprintf(out, "database: %s\n", s.DatabasePath())
	fmt.Fprintf(out, "search:   %s\n", strconv.Quote(s.SearchTerm()))
	fmt.Fprintf(out, "selected: %s\n", selected)
	fmt.Fprintf(out, "state:    %s\n", s.State())
	fmt.Fprintf(out, "pending:  %d team(s)\n", len(s.PendingTeams()))
}
