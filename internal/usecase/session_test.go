package usecase

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/league"
	"github.com/riskibarqy/team-editor/internal/domain/record"
	"github.com/riskibarqy/team-editor/internal/domain/staff"
	"github.com/riskibarqy/team-editor/internal/domain/team"
	"github.com/riskibarqy/team-editor/internal/infrastructure/repository/memory"
	leaguemock "github.com/riskibarqy/team-editor/internal/mocks/domain/league"
	staffmock "github.com/riskibarqy/team-editor/internal/mocks/domain/staff"
	teammock "github.com/riskibarqy/team-editor/internal/mocks/domain/team"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

const testDBPath = "/games/save/game.db"

type fakeLogoStore struct {
	images     map[string]image.Image
	loadErr    error
	replaceErr error
	replaced   []string
	dirs       []string
}

func newFakeLogoStore() *fakeLogoStore {
	return &fakeLogoStore{images: map[string]image.Image{}}
}

func (f *fakeLogoStore) Load(_ context.Context, teamID, dir string) (image.Image, error) {
	f.dirs = append(f.dirs, dir)
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.images[teamID], nil
}

func (f *fakeLogoStore) Replace(_ context.Context, teamID, dir, source string) error {
	f.dirs = append(f.dirs, dir)
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = append(f.replaced, teamID+"<-"+source)
	f.images[teamID] = image.NewRGBA(image.Rect(0, 0, 128, 128))
	return nil
}

type stubDatabase struct {
	leagues league.Repository
	teams   team.Repository
	staff   staff.Repository
	closes  int
}

func (d *stubDatabase) Leagues() league.Repository { return d.leagues }
func (d *stubDatabase) Teams() team.Repository     { return d.teams }
func (d *stubDatabase) Staff() staff.Repository    { return d.staff }
func (d *stubDatabase) Close() error {
	d.closes++
	return nil
}

func openerFor(db Database) Opener {
	return func(context.Context, string) (Database, error) {
		return db, nil
	}
}

func newMemorySession(t *testing.T, opts SessionOptions) (*Session, *memory.Database) {
	t.Helper()

	db := memory.NewSeededDatabase()
	opts.Opener = openerFor(db)
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	session := NewSession(opts)
	if err := session.OpenDatabase(context.Background(), testDBPath); err != nil {
		t.Fatalf("open database: %v", err)
	}
	return session, db
}

func TestSession_OperationsRequireDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := NewSession(SessionOptions{Logger: logging.NewNop()})

	if _, err := session.ListDisplayedTeams(); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("list: expected ErrNoDatabase, got %v", err)
	}
	if _, err := session.Search(ctx, "x"); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("search: expected ErrNoDatabase, got %v", err)
	}
	if _, err := session.SelectTeam(ctx, "1"); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("select: expected ErrNoDatabase, got %v", err)
	}
	if err := session.SetTeamField(ctx, "1", team.FieldName, "x"); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("set field: expected ErrNoDatabase, got %v", err)
	}
	if _, err := session.SaveTeamEdits(ctx, "1"); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("save: expected ErrNoDatabase, got %v", err)
	}
	if _, err := session.ListStaffForTeam("1"); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("staff: expected ErrNoDatabase, got %v", err)
	}
	if _, err := session.EditStaff(ctx, EditStaffInput{ID: "1", Name: "x", Fame: "1", Ability: "1"}); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("edit staff: expected ErrNoDatabase, got %v", err)
	}
	if _, err := session.ReplaceLogo(ctx, "1", "/tmp/x.png"); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("replace logo: expected ErrNoDatabase, got %v", err)
	}
}

func TestSession_OpenDatabaseListsTeamsWithLeagueLabels(t *testing.T) {
	t.Parallel()

	session, _ := newMemorySession(t, SessionOptions{})

	list, err := session.ListDisplayedTeams()
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(list.Items) != 5 {
		t.Fatalf("unexpected team count: got=%d want=5", len(list.Items))
	}
	if list.Selected != -1 {
		t.Fatalf("expected no selection after open, got %d", list.Selected)
	}
	if got := list.Items[0].Label; got != "Persija Jakarta (1) - Liga 1 Indonesia" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := list.Items[4].Label; got != "Free Agents XI (5)" {
		t.Fatalf("unknown league should have no suffix, got %q", got)
	}
	if got := list.Items[4].LeagueName; got != UnknownLeague {
		t.Fatalf("unexpected league name: %q", got)
	}
}

func TestSession_OpenDatabaseFailureIsConnectionError(t *testing.T) {
	t.Parallel()

	session := NewSession(SessionOptions{
		Logger: logging.NewNop(),
		Opener: func(context.Context, string) (Database, error) {
			return nil, errors.New("file is not a database")
		},
	})

	err := session.OpenDatabase(context.Background(), "/tmp/broken.db")
	if !errors.Is(err, apperr.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
	if session.IsOpen() {
		t.Fatalf("session must stay closed after a failed open")
	}
}

func TestSession_OpenDatabaseLoadFailureClosesConnection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("List", mock.Anything).Return(nil, errors.New("no such table: League")).Once()
	db := &stubDatabase{leagues: leagueRepo}

	session := NewSession(SessionOptions{Logger: logging.NewNop(), Opener: openerFor(db)})
	if err := session.OpenDatabase(ctx, testDBPath); !errors.Is(err, apperr.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
	if db.closes != 1 {
		t.Fatalf("expected connection closed once, got %d", db.closes)
	}
}

func TestSession_OpenDatabaseClosesPreviousAndResetsState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first := memory.NewSeededDatabase()
	second := memory.NewSeededDatabase()
	dbs := []*memory.Database{first, second}

	session := NewSession(SessionOptions{
		Logger: logging.NewNop(),
		Opener: func(context.Context, string) (Database, error) {
			db := dbs[0]
			dbs = dbs[1:]
			return db, nil
		},
	})

	if err := session.OpenDatabase(ctx, "/a/one.db"); err != nil {
		t.Fatalf("open first: %v", err)
	}
	if _, err := session.SelectTeam(ctx, "2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := session.SetTeamField(ctx, "2", team.FieldName, "Renamed"); err != nil {
		t.Fatalf("set field: %v", err)
	}
	if _, err := session.Search(ctx, "persib"); err != nil {
		t.Fatalf("search: %v", err)
	}

	if err := session.OpenDatabase(ctx, "/b/two.db"); err != nil {
		t.Fatalf("open second: %v", err)
	}
	if !first.Closed() {
		t.Fatalf("expected first database closed")
	}
	if second.Closed() {
		t.Fatalf("second database must stay open")
	}
	if len(session.PendingTeams()) != 0 || session.SearchTerm() != "" {
		t.Fatalf("expected overlay and search reset, pending=%v term=%q", session.PendingTeams(), session.SearchTerm())
	}
	if _, ok := session.CurrentTeam(); ok {
		t.Fatalf("expected selection reset")
	}
	if session.DatabasePath() != "/b/two.db" {
		t.Fatalf("unexpected path %q", session.DatabasePath())
	}
}

func TestSession_SelectTeamBuildsView(t *testing.T) {
	t.Parallel()

	logos := newFakeLogoStore()
	logos.images["4"] = image.NewRGBA(image.Rect(0, 0, 128, 128))
	session, _ := newMemorySession(t, SessionOptions{Logos: logos})

	view, err := session.SelectTeam(context.Background(), "4")
	if err != nil {
		t.Fatalf("select team: %v", err)
	}
	if view.Value(team.FieldName) != "Liverpool" || view.LeagueName != "Premier League" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if len(view.Staff) != 2 {
		t.Fatalf("expected 2 staff for team 4, got %+v", view.Staff)
	}
	if view.Staff[0].RawAbility != 169 || view.Staff[1].RawAbility != 0 {
		t.Fatalf("unexpected abilities: %+v", view.Staff)
	}
	if view.Logo == nil {
		t.Fatalf("expected logo")
	}
	if logos.dirs[0] != filepath.Dir(testDBPath) {
		t.Fatalf("logos should be read next to the database, got %q", logos.dirs[0])
	}

	list, _ := session.ListDisplayedTeams()
	if list.Selected != 3 {
		t.Fatalf("expected selected index 3, got %d", list.Selected)
	}
}

func TestSession_SelectTeamToleratesBrokenLogo(t *testing.T) {
	t.Parallel()

	logos := newFakeLogoStore()
	logos.loadErr = apperr.ErrAsset
	session, _ := newMemorySession(t, SessionOptions{Logos: logos, AssetDir: "/assets"})

	view, err := session.SelectTeam(context.Background(), "1")
	if err != nil {
		t.Fatalf("select team: %v", err)
	}
	if view.Logo != nil {
		t.Fatalf("expected no logo")
	}
	if logos.dirs[0] != "/assets" {
		t.Fatalf("asset dir override ignored, got %q", logos.dirs[0])
	}
}

func TestSession_SelectUnknownTeam(t *testing.T) {
	t.Parallel()

	session, _ := newMemorySession(t, SessionOptions{})
	if _, err := session.SelectTeam(context.Background(), "404"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSession_SetTeamFieldShadowsCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session, db := newMemorySession(t, SessionOptions{})

	if _, err := session.SelectTeam(ctx, "1"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := session.SetTeamField(ctx, "1", team.FieldNickname, "Oranye"); err != nil {
		t.Fatalf("set field: %v", err)
	}
	if session.State() != SaveEditing {
		t.Fatalf("expected editing state, got %s", session.State())
	}

	view, ok := session.CurrentTeam()
	if !ok || view.Value(team.FieldNickname) != "Oranye" {
		t.Fatalf("expected overlay value in view, got %+v", view)
	}
	if len(view.Pending) != 1 || view.Pending[0] != team.FieldNickname {
		t.Fatalf("unexpected pending fields: %v", view.Pending)
	}
	if len(db.TeamRepo.Updates()) != 0 {
		t.Fatalf("editing must not write to storage")
	}

	if err := session.SetTeamField(ctx, "1", team.FieldLeague, "2"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected league edit rejected, got %v", err)
	}

	session.DiscardTeamEdits("1")
	view, _ = session.CurrentTeam()
	if view.Value(team.FieldNickname) != "Macan Kemayoran" {
		t.Fatalf("expected cached value after discard, got %q", view.Value(team.FieldNickname))
	}
}

func TestSession_SaveTeamEditsPersistsAndRelocates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var asked SaveRequest
	session, db := newMemorySession(t, SessionOptions{
		Confirmer: ConfirmFunc(func(_ context.Context, req SaveRequest) (bool, error) {
			asked = req
			return true, nil
		}),
	})

	if _, err := session.SelectTeam(ctx, "1"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := session.SetTeamField(ctx, "1", team.FieldWealth, "150"); err != nil {
		t.Fatalf("set field: %v", err)
	}

	result, err := session.SaveTeamEdits(ctx, "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if result.Outcome != SaveApplied || !result.Found || result.Index != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Team.Wealth.Int64() != 150 {
		t.Fatalf("unexpected saved wealth: %s", result.Team.Wealth)
	}

	updates := db.TeamRepo.Updates()
	if len(updates) != 1 || updates[0].ID != "1" || updates[0].Wealth.Int64() != 150 {
		t.Fatalf("unexpected updates: %+v", updates)
	}
	if updates[0].Name != "Persija Jakarta" {
		t.Fatalf("untouched fields must be written from the cache, got %q", updates[0].Name)
	}

	if len(asked.Changes) != 1 || asked.Changes[0] != (FieldChange{Field: team.FieldWealth, From: "1200", To: "150"}) {
		t.Fatalf("unexpected confirm changes: %+v", asked.Changes)
	}
	if len(session.PendingTeams()) != 0 {
		t.Fatalf("overlay should be committed, pending=%v", session.PendingTeams())
	}
	if session.State() != SaveIdle {
		t.Fatalf("expected idle state, got %s", session.State())
	}
	if db.TeamRepo.ListCalls() != 2 {
		t.Fatalf("expected team cache refreshed once after save, list calls=%d", db.TeamRepo.ListCalls())
	}
}

func TestSession_SaveTeamEditsHiddenBySearch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session, _ := newMemorySession(t, SessionOptions{})

	list, err := session.Search(ctx, "ARSENAL")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].ID != "3" {
		t.Fatalf("unexpected search result: %+v", list.Items)
	}
	if _, err := session.SelectTeam(ctx, "3"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := session.SetTeamField(ctx, "3", team.FieldName, "Woolwich"); err != nil {
		t.Fatalf("set field: %v", err)
	}

	result, err := session.SaveTeamEdits(ctx, "3")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if result.Found || result.Index != -1 {
		t.Fatalf("renamed team should drop out of the search, got %+v", result)
	}
	list, _ = session.ListDisplayedTeams()
	if len(list.Items) != 0 || list.Selected != -1 {
		t.Fatalf("unexpected list after save: %+v", list)
	}
	if view, ok := session.CurrentTeam(); !ok || view.Value(team.FieldName) != "Woolwich" {
		t.Fatalf("current team should still be the saved one, got %+v", view)
	}
}

func TestSession_SaveTeamEditsValidationNeverWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	staffRepo := staffmock.NewRepository(t)

	leagueRepo.On("List", mock.Anything).Return([]league.League{{ID: "7", Name: "Serie A"}}, nil).Once()
	teamRepo.On("List", mock.Anything).Return([]team.Team{
		{ID: "1", Name: "Alpha", Wealth: record.Int(100), FoundYear: record.Int(1900), SupporterCount: record.Int(5), LeagueID: "7"},
	}, nil).Once()
	staffRepo.On("List", mock.Anything).Return([]staff.Staff{}, nil).Once()

	confirmCalls := 0
	session := NewSession(SessionOptions{
		Logger: logging.NewNop(),
		Opener: openerFor(&stubDatabase{leagues: leagueRepo, teams: teamRepo, staff: staffRepo}),
		Confirmer: ConfirmFunc(func(context.Context, SaveRequest) (bool, error) {
			confirmCalls++
			return true, nil
		}),
	})
	if err := session.OpenDatabase(ctx, testDBPath); err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := session.SetTeamField(ctx, "1", team.FieldWealth, "abc"); err != nil {
		t.Fatalf("set wealth: %v", err)
	}
	if err := session.SetTeamField(ctx, "1", team.FieldSupporterCount, "lots"); err != nil {
		t.Fatalf("set supporters: %v", err)
	}

	_, err := session.SaveTeamEdits(ctx, "1")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var fieldErr *apperr.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != team.FieldWealth {
		t.Fatalf("expected first failing field TeamWealth, got %v", err)
	}

	teamRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	if confirmCalls != 0 {
		t.Fatalf("confirmation must not be requested for invalid input")
	}
	if session.State() != SaveEditing {
		t.Fatalf("expected editing state, got %s", session.State())
	}
	if entry, ok := session.overlay.Get("1"); !ok || entry[team.FieldWealth] != "abc" {
		t.Fatalf("overlay must survive a failed validation, got %+v", entry)
	}
}

func TestSession_SaveTeamEditsDeclined(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session, db := newMemorySession(t, SessionOptions{
		Confirmer: ConfirmFunc(func(context.Context, SaveRequest) (bool, error) {
			return false, nil
		}),
	})

	if err := session.SetTeamField(ctx, "2", team.FieldWealth, "9000"); err != nil {
		t.Fatalf("set field: %v", err)
	}
	if _, err := session.SelectTeam(ctx, "2"); err != nil {
		t.Fatalf("select: %v", err)
	}

	result, err := session.SaveTeamEdits(ctx, "2")
	if err != nil {
		t.Fatalf("declined save is not an error: %v", err)
	}
	if result.Outcome != SaveCancelled {
		t.Fatalf("expected cancelled outcome, got %s", result.Outcome)
	}
	if len(db.TeamRepo.Updates()) != 0 {
		t.Fatalf("declined save must not write")
	}
	if session.State() != SaveEditing {
		t.Fatalf("expected editing state, got %s", session.State())
	}
	if got := session.PendingTeams(); len(got) != 1 || got[0] != "2" {
		t.Fatalf("overlay must be kept after decline, got %v", got)
	}
}

func TestSession_SaveTeamEditsStorageFailureKeepsOverlay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session, db := newMemorySession(t, SessionOptions{})
	db.TeamRepo.FailUpdatesWith(errors.New("database is locked"))

	if err := session.SetTeamField(ctx, "1", team.FieldName, "Persija"); err != nil {
		t.Fatalf("set field: %v", err)
	}
	_, err := session.SaveTeamEdits(ctx, "1")
	if !errors.Is(err, apperr.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if got := session.PendingTeams(); len(got) != 1 {
		t.Fatalf("overlay must be kept after failed write, got %v", got)
	}
}

func TestSession_SaveTeamEditsWithoutSelection(t *testing.T) {
	t.Parallel()

	session, _ := newMemorySession(t, SessionOptions{})
	if _, err := session.SaveTeamEdits(context.Background(), ""); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestSession_ListStaffForTeam(t *testing.T) {
	t.Parallel()

	session, _ := newMemorySession(t, SessionOptions{})

	got, err := session.ListStaffForTeam("2")
	if err != nil {
		t.Fatalf("list staff: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Bojan Hodak" || got[0].RawAbility != 138 {
		t.Fatalf("unexpected staff: %+v", got)
	}

	member, err := session.StaffMember("2")
	if err != nil || member.Fame != "58" {
		t.Fatalf("unexpected staff member: %+v err=%v", member, err)
	}
	if _, err := session.StaffMember("99"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSession_EditStaffMergesAbility(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session, db := newMemorySession(t, SessionOptions{})

	view, err := session.EditStaff(ctx, EditStaffInput{ID: "1", Name: "Thomas Doll", Fame: "65", Ability: "150"})
	if err != nil {
		t.Fatalf("edit staff: %v", err)
	}
	if view.RawAbility != 150 || view.Fame != "65" {
		t.Fatalf("unexpected view: %+v", view)
	}

	updates := db.StaffRepo.Updates()
	if len(updates) != 1 {
		t.Fatalf("expected one staff update, got %d", len(updates))
	}
	if updates[0].AbilityJSON != `{"potential":150,"rawAbility":150}` {
		t.Fatalf("unexpected ability blob: %s", updates[0].AbilityJSON)
	}
}

func TestSession_EditStaffValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session, db := newMemorySession(t, SessionOptions{})

	_, err := session.EditStaff(ctx, EditStaffInput{ID: "1", Name: "X", Fame: "famous", Ability: "10"})
	var fieldErr *apperr.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "Fame" {
		t.Fatalf("expected Fame field error, got %v", err)
	}

	_, err = session.EditStaff(ctx, EditStaffInput{ID: "1", Name: "X", Fame: "1", Ability: "1.5"})
	if !errors.As(err, &fieldErr) || fieldErr.Field != staff.RawAbilityKey {
		t.Fatalf("expected rawAbility field error, got %v", err)
	}

	_, err = session.EditStaff(ctx, EditStaffInput{ID: "1", Fame: "1", Ability: "1"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected missing name rejected, got %v", err)
	}

	_, err = session.EditStaff(ctx, EditStaffInput{ID: "404", Name: "X", Fame: "1", Ability: "1"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if len(db.StaffRepo.Updates()) != 0 {
		t.Fatalf("rejected edits must not write")
	}
}

func TestSession_ReplaceLogo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logos := newFakeLogoStore()
	session, _ := newMemorySession(t, SessionOptions{Logos: logos})

	img, err := session.ReplaceLogo(ctx, "3", "/tmp/crest.jpg")
	if err != nil {
		t.Fatalf("replace logo: %v", err)
	}
	if img == nil || img.Bounds().Dx() != 128 {
		t.Fatalf("expected reloaded logo, got %v", img)
	}
	if len(logos.replaced) != 1 || logos.replaced[0] != "3<-/tmp/crest.jpg" {
		t.Fatalf("unexpected replace calls: %v", logos.replaced)
	}

	if _, err := session.ReplaceLogo(ctx, "404", "/tmp/crest.jpg"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	logos.replaceErr = apperr.ErrAsset
	if _, err := session.ReplaceLogo(ctx, "3", "/tmp/notes.txt"); !errors.Is(err, apperr.ErrAsset) {
		t.Fatalf("expected ErrAsset, got %v", err)
	}
}

func TestSession_Close(t *testing.T) {
	t.Parallel()

	session, db := newMemorySession(t, SessionOptions{})
	if err := session.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !db.Closed() || session.IsOpen() {
		t.Fatalf("expected database closed")
	}
	if _, err := session.ListDisplayedTeams(); !errors.Is(err, ErrNoDatabase) {
		t.Fatalf("expected ErrNoDatabase after close, got %v", err)
	}
}
