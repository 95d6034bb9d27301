package usecase

import (
	"context"

	"github.com/riskibarqy/team-editor/internal/domain/team"
)

// SaveState tracks where the session is in the team save cycle.
type SaveState int

const (
	SaveIdle SaveState = iota
	SaveEditing
	SaveValidating
	SaveConfirmPending
	SavePersisting
)

func (s SaveState) String() string {
	switch s {
	case SaveIdle:
		return "idle"
	case SaveEditing:
		return "editing"
	case SaveValidating:
		return "validating"
	case SaveConfirmPending:
		return "confirm_pending"
	case SavePersisting:
		return "persisting"
	default:
		return "unknown"
	}
}

type SaveOutcome int

const (
	SaveApplied SaveOutcome = iota + 1
	SaveCancelled
)

func (o SaveOutcome) String() string {
	switch o {
	case SaveApplied:
		return "applied"
	case SaveCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// FieldChange is one column whose text differs between the stored record
// and the record about to be written.
type FieldChange struct {
	Field string
	From  string
	To    string
}

// SaveRequest is what the user is asked to confirm.
type SaveRequest struct {
	TeamID  string
	Before  team.Team
	After   team.Team
	Changes []FieldChange
}

// Confirmer asks the user whether a validated save should be written.
type Confirmer interface {
	ConfirmSave(ctx context.Context, req SaveRequest) (bool, error)
}

type ConfirmFunc func(ctx context.Context, req SaveRequest) (bool, error)

func (f ConfirmFunc) ConfirmSave(ctx context.Context, req SaveRequest) (bool, error) {
	return f(ctx, req)
}

// AlwaysConfirm accepts every save without asking.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, SaveRequest) (bool, error) {
	return true, nil
})

type SaveResult struct {
	Outcome SaveOutcome
	Team    team.Team
	// Index is the team's position in the displayed list after the save,
	// -1 when the current search hides it.
	Index int
	Found bool
}

func diffTeams(before, after team.Team) []FieldChange {
	out := make([]FieldChange, 0, len(team.EditableFields))
	for _, field := range team.EditableFields {
		from, _ := before.Field(field)
		to, _ := after.Field(field)
		if from != to {
			out = append(out, FieldChange{Field: field, From: from, To: to})
		}
	}
	return out
}
