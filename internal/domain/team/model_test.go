package team

import (
	"errors"
	"testing"

	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/record"
)

func sampleTeam() Team {
	return Team{
		ID:             "1",
		Name:           "Alpha",
		Wealth:         record.Int(100),
		FoundYear:      record.Int(1901),
		Location:       "North",
		SupporterCount: record.Int(5000),
		StadiumName:    "Alpha Park",
		Nickname:       "The As",
		LeagueID:       "10",
	}
}

func TestTeam_Apply(t *testing.T) {
	base := sampleTeam()

	got, err := base.Apply(map[string]string{
		FieldWealth:   "150",
		FieldNickname: "Reds",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Wealth.String() != "150" {
		t.Fatalf("unexpected wealth: %s", got.Wealth)
	}
	if got.Nickname != "Reds" {
		t.Fatalf("unexpected nickname: %s", got.Nickname)
	}
	if got.Name != base.Name || got.FoundYear != base.FoundYear {
		t.Fatalf("fields without values must fall back to the base record")
	}
	if base.Wealth.String() != "100" {
		t.Fatalf("apply must not modify the receiver")
	}
}

func TestTeam_Apply_ReportsFirstBadNumericField(t *testing.T) {
	_, err := sampleTeam().Apply(map[string]string{
		FieldWealth:         "lots",
		FieldSupporterCount: "many",
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	var fieldErr *apperr.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != FieldWealth {
		t.Fatalf("expected TeamWealth to fail first, got %v", err)
	}
}

func TestTeam_FieldAndColumns(t *testing.T) {
	item := sampleTeam()
	if v, ok := item.Field(FieldSupporterCount); !ok || v != "5000" {
		t.Fatalf("unexpected supporter count: %q ok=%v", v, ok)
	}
	if _, ok := item.Field("Unknown"); ok {
		t.Fatalf("expected unknown field to be rejected")
	}

	cols := item.Columns()
	if len(cols) != 9 || cols[0] != "1" || cols[8] != "10" {
		t.Fatalf("unexpected columns: %v", cols)
	}
}

func TestIsEditable(t *testing.T) {
	if IsEditable(FieldID) || IsEditable(FieldLeague) {
		t.Fatalf("ID and BelongingLeague must not be editable")
	}
	if !IsEditable(FieldStadiumName) {
		t.Fatalf("StadiumName must be editable")
	}
	if !IsNumeric(FieldFoundYear) || IsNumeric(FieldName) {
		t.Fatalf("unexpected numeric classification")
	}
}
