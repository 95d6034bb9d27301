package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/team-editor/internal/usecase"
	"github.com/spf13/cobra"
)

func (rt *runtime) teamsCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List teams",
		Long: `List the teams of the game database, optionally filtered.

The search matches any column text, ignoring case.

Example:
  teameditor teams --db game.db
  teameditor teams --db game.db --search jakarta --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := rt.requireDatabase(ctx); err != nil {
				return err
			}

			list, err := rt.session.Search(ctx, search)
			if err != nil {
				return err
			}
			return rt.out.teamList(list)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "only list teams containing this text")

	return cmd
}

func (rt *runtime) teamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show or edit a single team",
	}

	show := &cobra.Command{
		Use:   "show <team-id>",
		Short: "Show a team with its staff and logo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := rt.requireDatabase(ctx); err != nil {
				return err
			}

			view, err := rt.session.SelectTeam(ctx, args[0])
			if err != nil {
				return err
			}
			return rt.out.teamView(view)
		},
	}

	var sets []string
	edit := &cobra.Command{
		Use:   "edit <team-id> --set Field=value...",
		Short: "Change team fields and save them",
		Long: `Change one or more editable team fields and save them in one update.

Editable fields: TeamName, TeamWealth, TeamFoundYear, TeamLocation,
SupporterCount, StadiumName, Nickname. Field names are case-insensitive.

Example:
  teameditor team edit 1 --db game.db --set TeamWealth=150 --set nickname="The Tigers"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sets) == 0 {
				return fmt.Errorf("%w: at least one --set Field=value is required", usecase.ErrInvalidInput)
			}

			ctx := cmd.Context()
			if err := rt.requireDatabase(ctx); err != nil {
				return err
			}

			id := args[0]
			if _, err := rt.session.SelectTeam(ctx, id); err != nil {
				return err
			}
			for _, set := range sets {
				field, value, err := parseAssignment(set)
				if err != nil {
					return err
				}
				if err := rt.session.SetTeamField(ctx, id, field, value); err != nil {
					return err
				}
			}

			result, err := rt.session.SaveTeamEdits(ctx, id)
			if err != nil {
				return err
			}
			return rt.out.saveResult(result)
		},
	}
	edit.Flags().StringArrayVar(&sets, "set", nil, "field assignment Field=value (repeatable)")

	cmd.AddCommand(show, edit)
	return cmd
}

func parseAssignment(raw string) (string, string, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok {
		return "", "", fmt.Errorf("%w: expected Field=value, got %q", usecase.ErrInvalidInput, raw)
	}
	field, ok := resolveField(name)
	if !ok {
		return "", "", fmt.Errorf("%w: unknown field %q", apperr.ErrValidation, strings.TrimSpace(name))
	}
	return field, value, nil
}

func (rt *runtime) staffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "List or edit staff",
	}

	list := &cobra.Command{
		Use:   "list <team-id>",
		Short: "List the staff employed by a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireDatabase(cmd.Context()); err != nil {
				return err
			}

			items, err := rt.session.ListStaffForTeam(args[0])
			if err != nil {
				return err
			}
			return rt.out.staff(items)
		},
	}

	var name, fame string
	var ability int64
	edit := &cobra.Command{
		Use:   "edit <staff-id> [--name N] [--fame F] [--ability A]",
		Short: "Edit a staff member's name, fame and ability",
		Long: `Edit a staff member. Flags that are not given keep their stored value.
On a terminal without flags an input form is shown instead.

Example:
  teameditor staff edit 12 --db game.db --fame 70 --ability 155`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := rt.requireDatabase(ctx); err != nil {
				return err
			}

			member, err := rt.session.StaffMember(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditStaffInput{
				ID:      member.ID,
				Name:    member.Name,
				Fame:    member.Fame,
				Ability: strconv.FormatInt(member.RawAbility, 10),
			}

			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("fame") && !flags.Changed("ability") && rt.interactive {
				form, err := runStaffForm(ctx, member)
				if err != nil {
					return err
				}
				input.Name, input.Fame, input.Ability = form.Name, form.Fame, form.Ability
			}
			if flags.Changed("name") {
				input.Name = name
			}
			if flags.Changed("fame") {
				input.Fame = fame
			}
			if flags.Changed("ability") {
				input.Ability = strconv.FormatInt(ability, 10)
			}

			view, err := rt.session.EditStaff(ctx, input)
			if err != nil {
				return err
			}
			return rt.out.staff([]usecase.StaffView{view})
		},
	}
	edit.Flags().StringVar(&name, "name", "", "new name")
	edit.Flags().StringVar(&fame, "fame", "", "new fame (number)")
	edit.Flags().Int64Var(&ability, "ability", 0, "new rawAbility (integer)")

	cmd.AddCommand(list, edit)
	return cmd
}

func (rt *runtime) logoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logo",
		Short: "Show or replace team logos",
	}

	show := &cobra.Command{
		Use:   "show <team-id>",
		Short: "Report whether a team has a logo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := rt.requireDatabase(ctx); err != nil {
				return err
			}

			img, err := rt.session.LoadLogo(ctx, args[0])
			if err != nil {
				return err
			}
			return rt.out.logo(args[0], img)
		},
	}

	replace := &cobra.Command{
		Use:   "replace <team-id> <image>",
		Short: "Replace a team logo with a PNG, JPEG, GIF or BMP image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := rt.requireDatabase(ctx); err != nil {
				return err
			}

			img, err := rt.session.ReplaceLogo(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return rt.out.logo(args[0], img)
		},
	}

	cmd.AddCommand(show, replace)
	return cmd
}

func (rt *runtime) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo <path>",
		Short: "Create a sample game database to try the editor on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sqlite.CreateDemo(cmd.Context(), args[0]); err != nil {
				return err
			}
			rt.out.message("created demo database " + args[0])
			return nil
		},
	}
}
