package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/riskibarqy/team-editor/internal/usecase"
)

// huhConfirmer asks on the terminal with a yes/no prompt. Aborting the
// prompt counts as declining.
func huhConfirmer() usecase.Confirmer {
	return usecase.ConfirmFunc(func(ctx context.Context, req usecase.SaveRequest) (bool, error) {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Save changes to team %s?", req.TeamID)).
				Description(describeChanges(req.Changes)).
				Affirmative("Save").
				Negative("Cancel").
				Value(&confirmed),
		))

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return false, nil
			}
			return false, err
		}
		return confirmed, nil
	})
}

// lineConfirmer asks on plain streams, for pipes and scripts. Only an
// explicit yes confirms.
func lineConfirmer(in *bufio.Reader, out io.Writer) usecase.Confirmer {
	return usecase.ConfirmFunc(func(_ context.Context, req usecase.SaveRequest) (bool, error) {
		fmt.Fprintf(out, "Save changes to team %s?\n%s\n[y/N]: ", req.TeamID, describeChanges(req.Changes))

		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	})
}

type staffForm struct {
	Name    string
	Fame    string
	Ability string
}

// runStaffForm lets the user edit a staff member in place, prefilled with
// the stored values.
func runStaffForm(ctx context.Context, member usecase.StaffView) (staffForm, error) {
	form := staffForm{
		Name:    member.Name,
		Fame:    member.Fame,
		Ability: fmt.Sprintf("%d", member.RawAbility),
	}

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&form.Name),
		huh.NewInput().Title("Fame").Value(&form.Fame),
		huh.NewInput().Title("Ability").Value(&form.Ability),
	)).RunWithContext(ctx)
	if err != nil {
		return staffForm{}, err
	}
	return form, nil
}
