package team

import (
	"fmt"

	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/record"
)

// Column names of the Teams table. They double as edit field keys.
const (
	FieldID             = "ID"
	FieldName           = "TeamName"
	FieldWealth         = "TeamWealth"
	FieldFoundYear      = "TeamFoundYear"
	FieldLocation       = "TeamLocation"
	FieldSupporterCount = "SupporterCount"
	FieldStadiumName    = "StadiumName"
	FieldNickname       = "Nickname"
	FieldLeague         = "BelongingLeague"
)

// EditableFields lists the user-editable columns in storage order.
var EditableFields = []string{
	FieldName,
	FieldWealth,
	FieldFoundYear,
	FieldLocation,
	FieldSupporterCount,
	FieldStadiumName,
	FieldNickname,
}

// AllFields lists every Teams column in storage order.
var AllFields = []string{
	FieldID,
	FieldName,
	FieldWealth,
	FieldFoundYear,
	FieldLocation,
	FieldSupporterCount,
	FieldStadiumName,
	FieldNickname,
	FieldLeague,
}

var numericFields = map[string]struct{}{
	FieldWealth:         {},
	FieldFoundYear:      {},
	FieldSupporterCount: {},
}

func IsEditable(field string) bool {
	for _, f := range EditableFields {
		if f == field {
			return true
		}
	}
	return false
}

func IsNumeric(field string) bool {
	_, ok := numericFields[field]
	return ok
}

// Team is one row of the Teams table.
type Team struct {
	ID string
	// Key is the ID value as storage returned it, nil when the team was not
	// read from storage. Updates match on it.
	Key            any
	Name           string
	Wealth         record.Number
	FoundYear      record.Number
	Location       string
	SupporterCount record.Number
	StadiumName    string
	Nickname       string
	LeagueID       string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}

	return nil
}

// Field returns the text form of a column value.
func (t Team) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return t.ID, true
	case FieldName:
		return t.Name, true
	case FieldWealth:
		return t.Wealth.String(), true
	case FieldFoundYear:
		return t.FoundYear.String(), true
	case FieldLocation:
		return t.Location, true
	case FieldSupporterCount:
		return t.SupporterCount.String(), true
	case FieldStadiumName:
		return t.StadiumName, true
	case FieldNickname:
		return t.Nickname, true
	case FieldLeague:
		return t.LeagueID, true
	default:
		return "", false
	}
}

// Columns returns every column in storage order as text.
func (t Team) Columns() []string {
	return []string{
		t.ID,
		t.Name,
		t.Wealth.String(),
		t.FoundYear.String(),
		t.Location,
		t.SupporterCount.String(),
		t.StadiumName,
		t.Nickname,
		t.LeagueID,
	}
}

// Apply returns a copy of t with the given editable fields replaced.
// Numeric fields are parsed in EditableFields order and the first failure
// is returned as an *apperr.FieldError; t is never modified.
func (t Team) Apply(values map[string]string) (Team, error) {
	out := t
	for _, field := range EditableFields {
		raw, ok := values[field]
		if !ok {
			continue
		}

		if IsNumeric(field) {
			n, err := record.ParseNumber(raw)
			if err != nil {
				return t, &apperr.FieldError{Field: field, Value: raw, Err: err}
			}
			switch field {
			case FieldWealth:
				out.Wealth = n
			case FieldFoundYear:
				out.FoundYear = n
			case FieldSupporterCount:
				out.SupporterCount = n
			}
			continue
		}

		switch field {
		case FieldName:
			out.Name = raw
		case FieldLocation:
			out.Location = raw
		case FieldStadiumName:
			out.StadiumName = raw
		case FieldNickname:
			out.Nickname = raw
		}
	}

	return out, nil
}
