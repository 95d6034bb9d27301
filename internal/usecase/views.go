package usecase

import (
	"fmt"
	"image"

	"github.com/riskibarqy/team-editor/internal/domain/staff"
	"github.com/riskibarqy/team-editor/internal/domain/team"
)

const UnknownLeague = "Unknown league"

type TeamListItem struct {
	ID         string
	Name       string
	LeagueName string
	Label      string
}

// TeamList is the displayed set plus where the current team sits in it.
type TeamList struct {
	Items []TeamListItem
	// Selected is -1 when no team is selected or the selection is hidden.
	Selected int
}

type StaffView struct {
	ID         string
	Name       string
	Fame       string
	RawAbility int64
}

type TeamView struct {
	ID         string
	LeagueID   string
	LeagueName string
	// Values holds every column as text, pending edits applied.
	Values  map[string]string
	Pending []string
	Staff   []StaffView
	Logo    image.Image
}

// Value returns the displayed text of a column.
func (v TeamView) Value(field string) string {
	return v.Values[field]
}

func listLabel(item team.Team, leagues map[string]string) string {
	label := fmt.Sprintf("%s (%s)", item.Name, item.ID)
	if name, ok := leagues[item.LeagueID]; ok {
		label += " - " + name
	}
	return label
}

func leagueName(leagues map[string]string, id string) string {
	if name, ok := leagues[id]; ok {
		return name
	}
	return UnknownLeague
}

func toStaffViews(items []staff.Staff) []StaffView {
	out := make([]StaffView, 0, len(items))
	for _, item := range items {
		out = append(out, StaffView{
			ID:         item.ID,
			Name:       item.Name,
			Fame:       item.Fame.String(),
			RawAbility: item.RawAbility(),
		})
	}
	return out
}
