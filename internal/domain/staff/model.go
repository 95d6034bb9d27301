package staff

import "github.com/riskibarqy/team-editor/internal/domain/record"

// Staff is one row of the Staff table.
type Staff struct {
	ID string
	// Key is the ID value as storage returned it.
	Key         any
	Name        string
	AbilityJSON string
	Fame        record.Number
	// EmployedTeamID is kept as read from storage; the column holds
	// integers in some files and text in others.
	EmployedTeamID any
}

// EmployedBy reports whether s works for teamID, comparing both ids as text.
func (s Staff) EmployedBy(teamID any) bool {
	return record.NormalizeID(s.EmployedTeamID) == record.NormalizeID(teamID)
}

// RawAbility decodes the rawAbility score, zero when the blob is unreadable.
func (s Staff) RawAbility() int64 {
	return RawAbility(s.AbilityJSON)
}

// Update carries the three editable Staff columns.
type Update struct {
	ID string
	// Key, when set, is matched instead of ID.
	Key         any
	Name        string
	Fame        record.Number
	AbilityJSON string
}
