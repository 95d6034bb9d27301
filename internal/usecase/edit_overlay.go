package usecase

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/team"
)

// EditOverlay keeps unsaved field values per team. It never talks to
// storage; the cached record stays authoritative until a save commits.
type EditOverlay struct {
	entries map[string]map[string]string
}

func NewEditOverlay() *EditOverlay {
	return &EditOverlay{entries: make(map[string]map[string]string)}
}

// Get returns a copy of the pending fields for teamID.
func (o *EditOverlay) Get(teamID string) (map[string]string, bool) {
	entry, ok := o.entries[teamID]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(entry))
	for k, v := range entry {
		out[k] = v
	}
	return out, true
}

func (o *EditOverlay) SetField(teamID, field, value string) error {
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", apperr.ErrValidation)
	}
	if !team.IsEditable(field) {
		return fmt.Errorf("%w: field %s is not editable", apperr.ErrValidation, field)
	}

	entry, ok := o.entries[teamID]
	if !ok {
		entry = make(map[string]string)
		o.entries[teamID] = entry
	}
	entry[field] = value
	return nil
}

// Commit drops the entry once its values are in storage.
func (o *EditOverlay) Commit(teamID string) {
	delete(o.entries, teamID)
}

func (o *EditOverlay) Discard(teamID string) {
	delete(o.entries, teamID)
}

// Pending lists the team ids holding unsaved edits.
func (o *EditOverlay) Pending() []string {
	out := make([]string, 0, len(o.entries))
	for id := range o.entries {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (o *EditOverlay) Reset() {
	o.entries = make(map[string]map[string]string)
}

// Resolve renders cached with pending values laid over it, field by field.
func (o *EditOverlay) Resolve(cached team.Team) map[string]string {
	out := make(map[string]string, len(team.AllFields))
	for _, name := range team.AllFields {
		v, _ := cached.Field(name)
		out[name] = v
	}
	for k, v := range o.entries[cached.ID] {
		out[k] = v
	}
	return out
}
