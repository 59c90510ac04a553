package formatter

import (
	"fmt"
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
)

// FormatStudyList renders the history table.
func FormatStudyList(studies []*domain.Study) string {
	if len(studies) == 0 {
		return Dim("Nenhum estudo salvo ainda. Use \"resolvai analyze\" para começar.") + "\n"
	}

	headers := []string{"ID", "MÉTODO", "TÍTULO", "DATA"}
	rows := make([][]string, len(studies))
	for i, s := range studies {
		rows[i] = []string{
			TruncID(s.ID),
			MethodBadge(s.Method),
			truncate(s.Title, 48),
			HumanTimestamp(s.Date),
		}
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Histórico - %d estudo(s)", len(studies))))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatStudyDetail renders one study with its full analysis text.
func FormatStudyDetail(s *domain.Study) string {
	meta := fmt.Sprintf("%s  %s  %s",
		MethodBadge(s.Method),
		Dim(s.DisplayID()),
		Dim(HumanDate(s.Date)),
	)
	content := meta + "\n\n" + s.Data.AnalysisText()
	return RenderBox(s.Title, content)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
