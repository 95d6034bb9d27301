package sqlite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/team-editor/internal/domain/apperr"
)

const maxLoggedQueryLength = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

func formatQueryForLog(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxLoggedQueryLength {
		return normalized
	}

	return normalized[:maxLoggedQueryLength] + "..."
}

// bindKey binds the id value exactly as it was read, so text ids in untyped
// or TEXT columns match too. Without one it falls back to bindID.
func bindKey(key any, id string) any {
	if key != nil {
		return key
	}
	return bindID(id)
}

// bindID binds integer-looking ids as integers so they hit INTEGER PRIMARY KEY
// lookups directly; anything else is bound as text.
func bindID(id string) any {
	if v, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64); err == nil {
		return v
	}
	return id
}

func storageError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", apperr.ErrStorage, crerr.Wrapf(err, format, args...))
}

func readError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", apperr.ErrRead, crerr.Wrapf(err, format, args...))
}

func connectionError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", apperr.ErrConnection, crerr.Wrapf(err, format, args...))
}
