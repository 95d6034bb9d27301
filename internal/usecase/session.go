package usecase

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/domain/league"
	"github.com/riskibarqy/team-editor/internal/domain/record"
	"github.com/riskibarqy/team-editor/internal/domain/staff"
	"github.com/riskibarqy/team-editor/internal/domain/team"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
)

// Database is one open game file.
type Database interface {
	Leagues() league.Repository
	Teams() team.Repository
	Staff() staff.Repository
	Close() error
}

// Opener connects to the database file at path.
type Opener func(ctx context.Context, path string) (Database, error)

// LogoStore reads and writes team logos stored as files.
type LogoStore interface {
	Load(ctx context.Context, teamID, dir string) (image.Image, error)
	Replace(ctx context.Context, teamID, dir, source string) error
}

type SessionOptions struct {
	Opener    Opener
	Logos     LogoStore
	Confirmer Confirmer
	// AssetDir overrides the logo directory; empty means next to the
	// database file.
	AssetDir string
	Logger   *logging.Logger
}

// Session is one editing session over at most one open database. It is not
// safe for concurrent use.
type Session struct {
	open      Opener
	logos     LogoStore
	confirmer Confirmer
	assetDir  string
	logger    *logging.Logger
	validate  *validator.Validate

	db         Database
	dbPath     string
	leagues    map[string]string
	cache      *RecordCache
	overlay    *EditOverlay
	searchTerm string
	displayed  []team.Team
	currentID  string
	state      SaveState
}

func NewSession(opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	confirmer := opts.Confirmer
	if confirmer == nil {
		confirmer = AlwaysConfirm
	}

	return &Session{
		open:      opts.Opener,
		logos:     opts.Logos,
		confirmer: confirmer,
		assetDir:  strings.TrimSpace(opts.AssetDir),
		logger:    logger,
		validate:  validator.New(),
		leagues:   map[string]string{},
		cache:     NewRecordCache(),
		overlay:   NewEditOverlay(),
	}
}

// OpenDatabase closes the current database, if any, and loads path. Pending
// edits, the search term and the selection are reset since ids from the old
// file mean nothing in the new one.
func (s *Session) OpenDatabase(ctx context.Context, path string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.OpenDatabase")
	defer span.End()

	if s.open == nil {
		return fmt.Errorf("%w: no database opener configured", ErrInvalidInput)
	}

	if err := s.closeCurrent(ctx); err != nil {
		s.logger.WarnContext(ctx, "close previous database failed", "path", s.dbPath, "error", err)
	}
	s.reset()

	db, err := s.open(ctx, path)
	if err != nil {
		if !errors.Is(err, apperr.ErrConnection) {
			err = fmt.Errorf("%w: %w", apperr.ErrConnection, err)
		}
		return err
	}

	leagues, err := db.Leagues().List(ctx)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: load leagues: %w", apperr.ErrConnection, err)
	}

	cache := NewRecordCache()
	if err := cache.RefreshTeams(ctx, db.Teams()); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %w", apperr.ErrConnection, err)
	}
	if err := cache.RefreshStaff(ctx, db.Staff()); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %w", apperr.ErrConnection, err)
	}

	s.db = db
	s.dbPath = path
	s.leagues = league.Names(leagues)
	s.cache = cache
	s.applySearch()

	s.logger.InfoContext(ctx, "database loaded",
		"path", path,
		"teams", len(cache.teams),
		"staff", len(cache.staff),
		"leagues", len(leagues),
	)
	return nil
}

// Close releases the open database. The session can open another one
// afterwards.
func (s *Session) Close() error {
	err := s.closeCurrent(context.Background())
	s.reset()
	return err
}

func (s *Session) closeCurrent(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	db := s.db
	s.db = nil
	if err := db.Close(); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "database closed", "path", s.dbPath)
	return nil
}

func (s *Session) reset() {
	s.dbPath = ""
	s.leagues = map[string]string{}
	s.cache = NewRecordCache()
	s.overlay.Reset()
	s.searchTerm = ""
	s.displayed = nil
	s.currentID = ""
	s.state = SaveIdle
}

func (s *Session) IsOpen() bool {
	return s.db != nil
}

func (s *Session) DatabasePath() string {
	return s.dbPath
}

func (s *Session) SearchTerm() string {
	return s.searchTerm
}

func (s *Session) State() SaveState {
	return s.state
}

// CurrentTeam returns the selected team with pending edits applied.
func (s *Session) CurrentTeam() (TeamView, bool) {
	if s.db == nil || s.currentID == "" {
		return TeamView{}, false
	}
	cached, ok := s.cache.Team(s.currentID)
	if !ok {
		return TeamView{}, false
	}
	return s.teamView(cached), true
}

// PendingTeams lists the ids of teams with unsaved edits.
func (s *Session) PendingTeams() []string {
	return s.overlay.Pending()
}

// ListDisplayedTeams returns the teams matching the current search.
func (s *Session) ListDisplayedTeams() (TeamList, error) {
	if s.db == nil {
		return TeamList{}, ErrNoDatabase
	}
	return s.teamList(), nil
}

// Search replaces the search term and rebuilds the displayed list.
func (s *Session) Search(ctx context.Context, term string) (TeamList, error) {
	_, span := startUsecaseSpan(ctx, "usecase.Session.Search")
	defer span.End()

	if s.db == nil {
		return TeamList{}, ErrNoDatabase
	}

	s.searchTerm = term
	s.applySearch()
	return s.teamList(), nil
}

func (s *Session) applySearch() {
	s.displayed = ApplySearch(s.searchTerm, s.cache.teams)
}

func (s *Session) teamList() TeamList {
	items := make([]TeamListItem, 0, len(s.displayed))
	for _, item := range s.displayed {
		items = append(items, TeamListItem{
			ID:         item.ID,
			Name:       item.Name,
			LeagueName: leagueName(s.leagues, item.LeagueID),
			Label:      listLabel(item, s.leagues),
		})
	}

	selected, _ := Relocate(s.currentID, s.displayed)
	return TeamList{Items: items, Selected: selected}
}

// SelectTeam makes id the current team and returns its detail view.
func (s *Session) SelectTeam(ctx context.Context, id string) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.SelectTeam")
	defer span.End()

	if s.db == nil {
		return TeamView{}, ErrNoDatabase
	}

	cached, ok := s.cache.Team(id)
	if !ok {
		return TeamView{}, fmt.Errorf("%w: team %s", apperr.ErrNotFound, id)
	}

	s.currentID = cached.ID
	if _, pending := s.overlay.Get(cached.ID); pending {
		s.state = SaveEditing
	} else {
		s.state = SaveIdle
	}

	view := s.teamView(cached)
	view.Logo = s.loadLogo(ctx, cached.ID)
	return view, nil
}

func (s *Session) teamView(cached team.Team) TeamView {
	values := s.overlay.Resolve(cached)
	pending := make([]string, 0)
	if entry, ok := s.overlay.Get(cached.ID); ok {
		for _, field := range team.EditableFields {
			if _, set := entry[field]; set {
				pending = append(pending, field)
			}
		}
	}

	return TeamView{
		ID:         cached.ID,
		LeagueID:   cached.LeagueID,
		LeagueName: leagueName(s.leagues, cached.LeagueID),
		Values:     values,
		Pending:    pending,
		Staff:      toStaffViews(s.cache.StaffFor(cached.ID)),
	}
}

// SetTeamField stores a pending value for one editable field. Nothing is
// written until SaveTeamEdits.
func (s *Session) SetTeamField(ctx context.Context, id, field, value string) error {
	_, span := startUsecaseSpan(ctx, "usecase.Session.SetTeamField")
	defer span.End()

	if s.db == nil {
		return ErrNoDatabase
	}

	cached, ok := s.cache.Team(id)
	if !ok {
		return fmt.Errorf("%w: team %s", apperr.ErrNotFound, id)
	}
	if err := s.overlay.SetField(cached.ID, field, value); err != nil {
		return err
	}

	if cached.ID == s.currentID {
		s.state = SaveEditing
	}
	return nil
}

// DiscardTeamEdits drops the pending values for id.
func (s *Session) DiscardTeamEdits(id string) {
	key := record.NormalizeID(id)
	s.overlay.Discard(key)
	if key == s.currentID {
		s.state = SaveIdle
	}
}

// SaveTeamEdits validates, confirms and writes the pending edits of id, or
// of the current team when id is empty. A declined confirmation is reported
// as SaveCancelled with the edits kept.
func (s *Session) SaveTeamEdits(ctx context.Context, id string) (SaveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.SaveTeamEdits")
	defer span.End()

	if s.db == nil {
		return SaveResult{}, ErrNoDatabase
	}

	if strings.TrimSpace(id) == "" {
		id = s.currentID
	}
	if id == "" {
		return SaveResult{}, ErrNoSelection
	}

	cached, ok := s.cache.Team(id)
	if !ok {
		return SaveResult{}, fmt.Errorf("%w: team %s", apperr.ErrNotFound, id)
	}
	entry, _ := s.overlay.Get(cached.ID)

	s.state = SaveValidating
	updated, err := cached.Apply(entry)
	if err != nil {
		s.state = SaveEditing
		return SaveResult{}, err
	}

	s.state = SaveConfirmPending
	confirmed, err := s.confirmer.ConfirmSave(ctx, SaveRequest{
		TeamID:  cached.ID,
		Before:  cached,
		After:   updated,
		Changes: diffTeams(cached, updated),
	})
	if err != nil {
		s.state = SaveEditing
		return SaveResult{}, fmt.Errorf("confirm save: %w", err)
	}
	if !confirmed {
		s.state = SaveEditing
		s.logger.InfoContext(ctx, "team save cancelled", "team_id", cached.ID)
		return SaveResult{Outcome: SaveCancelled, Team: cached, Index: -1}, nil
	}

	s.state = SavePersisting
	if err := s.db.Teams().Update(ctx, updated); err != nil {
		s.state = SaveEditing
		return SaveResult{}, storageFailure(err)
	}

	s.overlay.Commit(cached.ID)
	s.currentID = cached.ID
	s.state = SaveIdle

	if err := s.cache.RefreshTeams(ctx, s.db.Teams()); err != nil {
		return SaveResult{}, fmt.Errorf("%w: team %s saved but reload failed: %w", apperr.ErrStorage, cached.ID, err)
	}
	s.applySearch()

	saved, _ := s.cache.Team(cached.ID)
	idx, found := Relocate(cached.ID, s.displayed)
	s.logger.InfoContext(ctx, "team saved", "team_id", cached.ID, "visible", found)

	return SaveResult{
		Outcome: SaveApplied,
		Team:    saved,
		Index:   idx,
		Found:   found,
	}, nil
}

// ListStaffForTeam returns the staff employed by id.
func (s *Session) ListStaffForTeam(id string) ([]StaffView, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return toStaffViews(s.cache.StaffFor(id)), nil
}

// StaffMember returns one cached staff member.
func (s *Session) StaffMember(id string) (StaffView, error) {
	if s.db == nil {
		return StaffView{}, ErrNoDatabase
	}
	member, ok := s.cache.StaffMember(id)
	if !ok {
		return StaffView{}, fmt.Errorf("%w: staff %s", apperr.ErrNotFound, id)
	}
	return toStaffViews([]staff.Staff{member})[0], nil
}

// EditStaffInput is the raw text entered for a staff edit.
type EditStaffInput struct {
	ID      string `validate:"required"`
	Name    string `validate:"required"`
	Fame    string `validate:"required"`
	Ability string `validate:"required"`
}

// EditStaff writes a staff member's name, fame and rawAbility. The ability
// value is merged into the existing blob so its other keys survive.
func (s *Session) EditStaff(ctx context.Context, input EditStaffInput) (StaffView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.EditStaff")
	defer span.End()

	if s.db == nil {
		return StaffView{}, ErrNoDatabase
	}

	input.ID = strings.TrimSpace(input.ID)
	if err := s.validate.Struct(input); err != nil {
		return StaffView{}, staffInputError(err)
	}

	fame, err := record.ParseNumber(input.Fame)
	if err != nil {
		return StaffView{}, &apperr.FieldError{Field: "Fame", Value: input.Fame, Err: err}
	}
	ability, err := strconv.ParseInt(strings.TrimSpace(input.Ability), 10, 64)
	if err != nil {
		return StaffView{}, &apperr.FieldError{Field: staff.RawAbilityKey, Value: input.Ability, Err: err}
	}

	member, ok := s.cache.StaffMember(input.ID)
	if !ok {
		return StaffView{}, fmt.Errorf("%w: staff %s", apperr.ErrNotFound, input.ID)
	}

	blob, err := staff.WithRawAbility(member.AbilityJSON, ability)
	if err != nil {
		return StaffView{}, fmt.Errorf("%w: encode ability for staff %s: %w", apperr.ErrStorage, member.ID, err)
	}

	if err := s.db.Staff().Update(ctx, staff.Update{
		ID:          member.ID,
		Key:         member.Key,
		Name:        input.Name,
		Fame:        fame,
		AbilityJSON: blob,
	}); err != nil {
		return StaffView{}, storageFailure(err)
	}

	if err := s.cache.RefreshStaff(ctx, s.db.Staff()); err != nil {
		return StaffView{}, fmt.Errorf("%w: staff %s saved but reload failed: %w", apperr.ErrStorage, member.ID, err)
	}

	updated, _ := s.cache.StaffMember(member.ID)
	s.logger.InfoContext(ctx, "staff saved", "staff_id", member.ID)
	return toStaffViews([]staff.Staff{updated})[0], nil
}

func staffInputError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s is required", apperr.ErrValidation, verrs[0].Field())
	}
	return fmt.Errorf("%w: %w", apperr.ErrValidation, err)
}

// ReplaceLogo stores the image at sourcePath as the logo of team id and
// returns the reloaded, scaled logo.
func (s *Session) ReplaceLogo(ctx context.Context, id, sourcePath string) (image.Image, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.ReplaceLogo")
	defer span.End()

	if s.db == nil {
		return nil, ErrNoDatabase
	}
	if s.logos == nil {
		return nil, fmt.Errorf("%w: no logo store configured", apperr.ErrAsset)
	}

	cached, ok := s.cache.Team(id)
	if !ok {
		return nil, fmt.Errorf("%w: team %s", apperr.ErrNotFound, id)
	}

	if err := s.logos.Replace(ctx, cached.ID, s.logoDir(), sourcePath); err != nil {
		return nil, err
	}
	return s.logos.Load(ctx, cached.ID, s.logoDir())
}

// LoadLogo returns the scaled logo of team id, nil when it has none.
func (s *Session) LoadLogo(ctx context.Context, id string) (image.Image, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	if s.logos == nil {
		return nil, nil
	}
	return s.logos.Load(ctx, record.NormalizeID(id), s.logoDir())
}

// loadLogo is the lenient variant used while selecting: a broken logo file
// must not block editing the team.
func (s *Session) loadLogo(ctx context.Context, teamID string) image.Image {
	if s.logos == nil {
		return nil
	}
	img, err := s.logos.Load(ctx, teamID, s.logoDir())
	if err != nil {
		s.logger.WarnContext(ctx, "load logo failed", "team_id", teamID, "error", err)
		return nil
	}
	return img
}

func (s *Session) logoDir() string {
	if s.assetDir != "" {
		return s.assetDir
	}
	return filepath.Dir(s.dbPath)
}

func storageFailure(err error) error {
	if errors.Is(err, apperr.ErrNotFound) ||
		errors.Is(err, apperr.ErrValidation) ||
		errors.Is(err, apperr.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", apperr.ErrStorage, err)
}
