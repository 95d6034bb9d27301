package usecase

import (
	"strings"

	"github.com/riskibarqy/team-editor/internal/domain/team"
	"github.com/valyala/bytebufferpool"
)

// ApplySearch keeps the teams whose concatenated column text contains term,
// ignoring case. Order is preserved and an empty term keeps everything.
func ApplySearch(term string, teams []team.Team) []team.Team {
	out := make([]team.Team, 0, len(teams))
	if term == "" {
		return append(out, teams...)
	}

	needle := strings.ToLower(term)
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, item := range teams {
		buf.Reset()
		writeSearchText(buf, item)
		if strings.Contains(strings.ToLower(buf.String()), needle) {
			out = append(out, item)
		}
	}
	return out
}

func writeSearchText(buf *bytebufferpool.ByteBuffer, item team.Team) {
	for _, col := range item.Columns() {
		_, _ = buf.WriteString(col)
	}
}
