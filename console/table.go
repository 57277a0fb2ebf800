package console

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	taskpkg "github.com/taskforge-dev/taskforge/task"
)

const tableWidth = 100

// Glamour renderer is expensive to build; create it once.
var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
)

func getRenderer() *glamour.TermRenderer {
	rendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(tableWidth),
		)
		if err == nil {
			renderer = r
		}
	})
	return renderer
}

// renderTable formats tasks as a terminal table. The table is built as
// markdown and run through glamour; when rendering fails the raw markdown
// is still perfectly readable, so it is returned as-is.
func renderTable(tasks []*taskpkg.Task) string {
	md := markdownTable(tasks)

	r := getRenderer()
	if r == nil {
		return md
	}
	rendered, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n")
}

// markdownTable builds the markdown source for the task table. Absent due
// dates render as "-".
func markdownTable(tasks []*taskpkg.Task) string {
	var b strings.Builder
	b.WriteString("| ID | Title | Priority | Due Date | Status |\n")
	b.WriteString("|----|-------|----------|----------|--------|\n")
	for _, t := range tasks {
		due := t.DueText()
		if due == "" {
			due = "-"
		}
		b.WriteString("| ")
		b.WriteString(escapeCell(t.ID))
		b.WriteString(" | ")
		b.WriteString(escapeCell(t.Title))
		b.WriteString(" | ")
		b.WriteString(string(t.Priority))
		b.WriteString(" | ")
		b.WriteString(due)
		b.WriteString(" | ")
		b.WriteString(string(t.Status))
		b.WriteString(" |\n")
	}
	return b.String()
}

// escapeCell keeps operator text from breaking the table syntax.
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	return strings.ReplaceAll(text, "\n", " ")
}
