package render

import "github.com/teemow/clickup-mcp/internal/document"

// FolderlessLists renders the lists that live directly in a space.
func FolderlessLists(doc document.Value) string {
	lists := doc.Get("lists").Items()
	if len(lists) == 0 {
		return "No folderless lists found in this space."
	}

	var w writer
	w.line("# Folderless Lists (%d total)", len(lists))
	w.blank()

	for _, list := range lists {
		w.line("## %s", text(list, "name", "Unnamed List"))
		w.line("- **ID**: %s (use with get_list_custom_fields)", id(list))
		w.line("- **Archived**: %s", flag(list, "archived"))
		w.line("- **Task Count**: %s", count(list, "task_count"))
		if list.Has("status") {
			w.line("- **Status**: %s", text(list.Get("status"), "status", "N/A"))
		}
		w.blank()
	}

	return w.String()
}

// ListDetails renders a list together with its custom fields. The fields
// come from a second request; when that request failed, fieldsErr is set
// and the list is rendered with a notice instead of the fields section.
func ListDetails(list, fields document.Value, fieldsErr error) string {
	var w writer
	w.line("# List: %s", text(list, "name", "Unnamed"))
	w.blank()
	w.line("**ID**: %s", id(list))
	w.line("**Archived**: %s", flag(list, "archived"))
	w.line("**Task Count**: %s", count(list, "task_count"))
	if list.Has("folder") {
		folder := list.Get("folder")
		w.line("**Folder**: %s (ID: %s)", text(folder, "name", "N/A"), id(folder))
	}
	if list.Has("space") {
		space := list.Get("space")
		w.line("**Space**: %s (ID: %s)", text(space, "name", "N/A"), id(space))
	}
	w.blank()

	if list.Has("statuses") {
		statuses := list.Get("statuses")
		w.line("## Statuses (%d total)", statuses.Len())
		w.blank()
		writeStatuses(&w, statuses, "N/A")
		w.blank()
	}

	if priority := list.Get("priority"); priority.Truthy() {
		w.line("## Priority")
		w.blank()
		w.line("**Enabled**: %s", flag(priority, "enabled"))
		for _, p := range priority.Get("priorities").Items() {
			w.line("- %s (Color: %s)", text(p, "priority", "N/A"), text(p, "color", "N/A"))
		}
		w.blank()
	}

	if list.Has("due_date_time") {
		w.line("**Due Dates**: %s", flag(list, "due_date_time"))
	}

	if assignees := list.Get("assignees").Items(); len(assignees) > 0 {
		w.blank()
		w.line("## Assignees (%d total)", len(assignees))
		w.blank()
		for _, a := range assignees {
			w.line("- %s (ID: %s)", text(a, "username", "N/A"), id(a))
		}
		w.blank()
	}

	if fieldsErr != nil {
		w.blank()
		w.line("*Custom fields: Unable to retrieve*")
		return w.String()
	}

	if items := fields.Get("fields").Items(); len(items) > 0 {
		w.line("## Custom Fields (%d total)", len(items))
		w.blank()
		for _, field := range items {
			w.line("### %s", text(field, "name", "Unnamed"))
			w.line("- **ID**: %s", id(field))
			w.line("- **Type**: %s", text(field, "type", "unknown"))
			w.line("- **Required**: %s", flag(field, "required"))
			if cfg := field.Get("type_config"); cfg.Kind() == document.Object && cfg.Len() > 0 {
				w.line("- **Config**:")
				entries := cfg.Fields()
				if len(entries) > maxConfigShown {
					entries = entries[:maxConfigShown]
				}
				for _, entry := range entries {
					w.line("  - %s: %s", entry.Key, inline(entry.Value))
				}
			}
			w.blank()
		}
	}

	return w.String()
}
