package render

import "github.com/teemow/clickup-mcp/internal/document"

// Spaces renders the spaces of a workspace.
func Spaces(doc document.Value) string {
	spaces := doc.Get("spaces").Items()
	if len(spaces) == 0 {
		return "No spaces found in this workspace."
	}

	var w writer
	w.line("# Spaces (%d total)", len(spaces))
	w.blank()

	for _, space := range spaces {
		w.line("## %s", text(space, "name", "Unnamed Space"))
		w.line("- **ID**: %s", id(space))
		w.line("- **Private**: %s", flag(space, "private"))
		w.line("- **Archived**: %s", flag(space, "archived"))
		if space.Has("statuses") {
			w.line("- **Statuses**: %d status(es)", space.Get("statuses").Len())
		}
		if space.Has("features") {
			w.line("- **Due Dates Enabled**: %s", flag(space.Path("features", "due_dates"), "enabled"))
		}
		w.blank()
	}

	return w.String()
}

// SpaceDetails renders a single space with its statuses, folders (and
// their lists) and folderless lists.
func SpaceDetails(space document.Value) string {
	var w writer
	w.line("# Space: %s", text(space, "name", "Unnamed"))
	w.blank()
	w.line("**ID**: %s", id(space))
	w.line("**Private**: %s", flag(space, "private"))
	w.line("**Archived**: %s", flag(space, "archived"))
	w.blank()

	if space.Has("statuses") {
		w.line("## Statuses")
		w.blank()
		writeStatuses(&w, space.Get("statuses"), "")
		w.blank()
	}

	if space.Has("folders") {
		folders := space.Get("folders").Items()
		w.line("## Folders (%d total)", len(folders))
		w.blank()
		for _, folder := range folders {
			w.line("### %s", text(folder, "name", "Unnamed Folder"))
			w.line("- **ID**: %s", id(folder))
			w.line("- **Hidden**: %s", flag(folder, "hidden"))
			if folder.Has("lists") {
				lists := folder.Get("lists").Items()
				w.line("- **Lists**: %d", len(lists))
				for _, list := range lists {
					w.line("  - %s (ID: %s)", text(list, "name", "Unnamed List"), id(list))
				}
			}
			w.blank()
		}
	}

	if space.Has("lists") {
		lists := space.Get("lists").Items()
		w.line("## Lists (%d folderless)", len(lists))
		w.blank()
		for _, list := range lists {
			w.line("- **%s** (ID: %s)", text(list, "name", "Unnamed List"), id(list))
		}
	}

	return w.String()
}

// writeStatuses renders one bullet per status. missing is used for absent
// type and color values.
func writeStatuses(w *writer, statuses document.Value, missing string) {
	for _, status := range statuses.Items() {
		w.line("- **%s** (Type: %s, Color: %s)",
			text(status, "status", "Unknown"),
			text(status, "type", missing),
			text(status, "color", missing))
	}
}
