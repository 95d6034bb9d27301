package cli

import (
	"fmt"
	"image"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/riskibarqy/team-editor/internal/domain/team"
	"github.com/riskibarqy/team-editor/internal/usecase"
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	pending lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	faint   lipgloss.Style
}

// newStyles builds styles bound to w so colour is only emitted on terminals.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Width(16),
		pending: r.NewStyle().Foreground(lipgloss.Color("11")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		faint:   r.NewStyle().Faint(true),
	}
}

type printer struct {
	w      io.Writer
	json   bool
	styles styles
}

func newPrinter(w io.Writer, jsonOutput bool) *printer {
	return &printer{w: w, json: jsonOutput, styles: newStyles(w)}
}

func (p *printer) writeJSON(v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(out))
	return err
}

type teamListItemJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	League   string `json:"league"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

func (p *printer) teamList(list usecase.TeamList) error {
	if p.json {
		out := make([]teamListItemJSON, 0, len(list.Items))
		for i, item := range list.Items {
			out = append(out, teamListItemJSON{
				ID:       item.ID,
				Name:     item.Name,
				League:   item.LeagueName,
				Label:    item.Label,
				Selected: i == list.Selected,
			})
		}
		return p.writeJSON(out)
	}

	if len(list.Items) == 0 {
		fmt.Fprintln(p.w, p.styles.faint.Render("no teams match"))
		return nil
	}
	for i, item := range list.Items {
		marker := "  "
		if i == list.Selected {
			marker = "> "
		}
		fmt.Fprintln(p.w, marker+item.Label)
	}
	return nil
}

type staffJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Fame       string `json:"fame"`
	RawAbility int64  `json:"rawAbility"`
}

type logoJSON struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type teamJSON struct {
	ID      string            `json:"id"`
	League  string            `json:"league"`
	Fields  map[string]string `json:"fields"`
	Pending []string          `json:"pending"`
	Staff   []staffJSON       `json:"staff"`
	Logo    *logoJSON         `json:"logo"`
}

func toStaffJSON(items []usecase.StaffView) []staffJSON {
	out := make([]staffJSON, 0, len(items))
	for _, item := range items {
		out = append(out, staffJSON{ID: item.ID, Name: item.Name, Fame: item.Fame, RawAbility: item.RawAbility})
	}
	return out
}

func toLogoJSON(img image.Image) *logoJSON {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	return &logoJSON{Width: b.Dx(), Height: b.Dy()}
}

func (p *printer) teamView(view usecase.TeamView) error {
	if p.json {
		return p.writeJSON(teamJSON{
			ID:      view.ID,
			League:  view.LeagueName,
			Fields:  view.Values,
			Pending: view.Pending,
			Staff:   toStaffJSON(view.Staff),
			Logo:    toLogoJSON(view.Logo),
		})
	}

	pending := make(map[string]bool, len(view.Pending))
	for _, field := range view.Pending {
		pending[field] = true
	}

	fmt.Fprintln(p.w, p.styles.title.Render(fmt.Sprintf("%s (%s)", view.Value(team.FieldName), view.ID)))
	fmt.Fprintln(p.w, p.styles.label.Render("League")+view.LeagueName)
	for _, field := range team.EditableFields {
		value := view.Value(field)
		if pending[field] {
			value = p.styles.pending.Render(value + " *")
		}
		fmt.Fprintln(p.w, p.styles.label.Render(field)+value)
	}
	fmt.Fprintln(p.w, p.styles.label.Render("Logo")+logoText(view.Logo))

	fmt.Fprintln(p.w)
	return p.staffTable(view.Staff)
}

func logoText(img image.Image) string {
	if img == nil {
		return "none"
	}
	b := img.Bounds()
	return fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
}

func (p *printer) staff(items []usecase.StaffView) error {
	if p.json {
		return p.writeJSON(toStaffJSON(items))
	}
	return p.staffTable(items)
}

func (p *printer) staffTable(items []usecase.StaffView) error {
	if len(items) == 0 {
		fmt.Fprintln(p.w, p.styles.faint.Render("no staff"))
		return nil
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFAME\tABILITY")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", item.ID, item.Name, item.Fame, item.RawAbility)
	}
	return tw.Flush()
}

type saveJSON struct {
	Outcome string `json:"outcome"`
	TeamID  string `json:"teamId"`
	Index   int    `json:"index"`
	Visible bool   `json:"visible"`
}

func (p *printer) saveResult(result usecase.SaveResult) error {
	if p.json {
		return p.writeJSON(saveJSON{
			Outcome: result.Outcome.String(),
			TeamID:  result.Team.ID,
			Index:   result.Index,
			Visible: result.Found,
		})
	}

	switch result.Outcome {
	case usecase.SaveApplied:
		msg := fmt.Sprintf("saved team %s", result.Team.ID)
		if !result.Found {
			msg += " (hidden by the current search)"
		}
		fmt.Fprintln(p.w, p.styles.ok.Render(msg))
	case usecase.SaveCancelled:
		fmt.Fprintln(p.w, p.styles.warn.Render("save cancelled, edits kept"))
	}
	return nil
}

func (p *printer) logo(teamID string, img image.Image) error {
	if p.json {
		return p.writeJSON(map[string]any{"teamId": teamID, "logo": toLogoJSON(img)})
	}
	fmt.Fprintf(p.w, "logo for team %s: %s\n", teamID, logoText(img))
	return nil
}

func (p *printer) message(msg string) {
	fmt.Fprintln(p.w, p.styles.ok.Render(msg))
}

func (p *printer) errorLine(err error) {
	mapped := mapError(err)
	fmt.Fprintln(p.w, p.styles.err.Render("error:")+" "+mapped.Message)
}

func describeChanges(changes []usecase.FieldChange) string {
	if len(changes) == 0 {
		return "no field changes"
	}
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, fmt.Sprintf("%s: %s -> %s", c.Field, c.From, c.To))
	}
	return strings.Join(lines, "\n")
}

// resolveField maps user input to a Teams column name, ignoring case.
func resolveField(name string) (string, bool) {
	for _, field := range team.AllFields {
		if strings.EqualFold(field, strings.TrimSpace(name)) {
			return field, true
		}
	}
	return "", false
}
