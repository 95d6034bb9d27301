package usecase

import (
	"github.com/riskibarqy/team-editor/internal/domain/record"
	"github.com/riskibarqy/team-editor/internal/domain/team"
)

// Relocate finds teamID in the displayed list, comparing normalized ids.
// It reports false when the team is filtered out or gone.
func Relocate(teamID string, displayed []team.Team) (int, bool) {
	key := record.NormalizeID(teamID)
	if key == "" {
		return -1, false
	}
	for i, item := range displayed {
		if item.ID == key {
			return i, true
		}
	}
	return -1, false
}
