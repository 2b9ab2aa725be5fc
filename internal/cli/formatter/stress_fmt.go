package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/cooked/internal/app"
	"github.com/alexanderramin/cooked/internal/domain"
)

// FormatStress renders the status panel for a stress result.
func FormatStress(result *domain.StressResult) string {
	if result == nil {
		return Dim("Add your first assignment to get started!")
	}

	content := fmt.Sprintf("%s\n%s\n%s",
		StressIndicator(result.Level),
		StyleFg.Render(result.Message),
		Dim(fmt.Sprintf("score %.1f", result.Score)),
	)
	return RenderBox("Status: "+result.Level.Label(), content, StressColor(result.Level).GetForeground())
}

// FormatStressBreakdown renders the panel followed by each assignment's
// share of the score, largest first.
func FormatStressBreakdown(resp *app.StressResponse) string {
	var b strings.Builder
	b.WriteString(FormatStress(resp.Result))
	b.WriteString("\n")

	if len(resp.Contributions) == 0 {
		return b.String()
	}

	rows := make([]app.AssignmentStress, len(resp.Contributions))
	copy(rows, resp.Contributions)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Contribution > rows[j].Contribution
	})

	b.WriteString("\n")
	b.WriteString(Header("Where the heat comes from"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %6.1f  %s\n", r.Contribution, r.AssignmentName))
	}
	return b.String()
}
