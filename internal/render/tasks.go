package render

import (
	"strings"

	"github.com/teemow/clickup-mcp/internal/document"
)

// TaskPage is the input of Tasks.
type TaskPage struct {
	// ListID is echoed in the empty-list sentence.
	ListID string

	// Tasks is the /list/{id}/task response.
	Tasks document.Value

	// List is the /list/{id} response used for the heading. ListErr is set
	// when that lookup failed.
	List    document.Value
	ListErr error

	// Limit caps the number of rendered tasks. Zero renders all of them.
	Limit int
}

// ListName returns the list name for the heading, or "Unknown List" when
// the lookup failed or carried no name.
func (p TaskPage) ListName() string {
	if p.ListErr != nil {
		return "Unknown List"
	}
	return text(p.List, "name", "Unknown List")
}

// Tasks renders a page of tasks. Tasks are numbered in response order.
func Tasks(p TaskPage) string {
	tasks := p.Tasks.Get("tasks").Items()
	if len(tasks) == 0 {
		return "No tasks found in list " + p.ListID
	}

	shown := tasks
	if p.Limit > 0 && p.Limit < len(shown) {
		shown = shown[:p.Limit]
	}

	var w writer
	w.line("# Tasks from: %s", p.ListName())
	w.blank()
	w.line("**Showing %d of %d tasks**", len(shown), len(tasks))
	w.blank()

	for i, task := range shown {
		w.line("## %d. %s", i+1, text(task, "name", "Unnamed Task"))
		w.line("- **Task ID**: %s", id(task))
		w.line("- **Status**: %s", text(task.Get("status"), "status", "No Status"))
		w.line("- **Created**: %s", text(task, "date_created", "N/A"))

		if priority := task.Get("priority"); priority.Truthy() {
			w.line("- **Priority**: %s", text(priority, "priority", "N/A"))
		}
		if due := task.Get("due_date"); due.Truthy() {
			w.line("- **Due Date**: %s", inline(due))
		}

		if assignees := task.Get("assignees").Items(); len(assignees) > 0 {
			if len(assignees) > maxAssignees {
				assignees = assignees[:maxAssignees]
			}
			names := make([]string, 0, len(assignees))
			for _, a := range assignees {
				names = append(names, text(a, "username", "N/A"))
			}
			w.line("- **Assignees**: %s", strings.Join(names, ", "))
		}

		if fields := task.Get("custom_fields").Items(); len(fields) > 0 {
			if len(fields) > maxFieldsShown {
				fields = fields[:maxFieldsShown]
			}
			w.line("- **Custom Fields**:")
			for _, f := range fields {
				w.line("  - %s: %s", text(f, "name", "Unknown"), summarize(f.Get("value")))
			}
		}

		if desc := task.Get("description"); desc.Truthy() {
			w.line("- **Description**: %s", preview(desc.Str("")))
		}
		w.blank()
	}

	return w.String()
}
