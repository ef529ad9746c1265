package render

import "github.com/teemow/clickup-mcp/internal/document"

// Views renders the views of a space grouped by view type. Groups appear in
// the order their type is first seen.
func Views(doc document.Value) string {
	views := doc.Get("views").Items()
	if len(views) == 0 {
		return "No views found in this space."
	}

	var order []string
	groups := make(map[string][]document.Value)
	for _, view := range views {
		kind := text(view, "type", "unknown")
		if _, seen := groups[kind]; !seen {
			order = append(order, kind)
		}
		groups[kind] = append(groups[kind], view)
	}

	var w writer
	w.line("# Views (%d total)", len(views))
	w.blank()

	for _, kind := range order {
		group := groups[kind]
		w.line("## %s Views (%d)", titleCase(kind), len(group))
		w.blank()

		for _, view := range group {
			w.line("### %s", text(view, "name", "Unnamed View"))
			w.line("- **View ID**: %s", id(view))
			w.line("- **Type**: %s", kind)
			if view.Has("protected") {
				w.line("- **Protected**: %s", flag(view, "protected"))
			}
			if view.Has("parent") {
				parent := view.Get("parent")
				w.line("- **Parent**: %s (ID: %s)", text(parent, "name", "N/A"), id(parent))
			}
			if view.Get("settings").Truthy() {
				w.line("- **Configured**: Yes")
			}
			w.blank()
		}
	}

	return w.String()
}
