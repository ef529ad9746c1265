package render

import "github.com/teemow/clickup-mcp/internal/document"

// CustomFields renders the /list/{id}/field response.
func CustomFields(doc document.Value) string {
	fields := doc.Get("fields").Items()
	if len(fields) == 0 {
		return "No custom fields found for this list."
	}

	var w writer
	w.line("# Custom Fields (%d total)", len(fields))
	w.blank()

	for _, field := range fields {
		w.line("## %s", text(field, "name", "Unnamed Field"))
		w.line("- **ID**: %s", id(field))
		w.line("- **Type**: %s", text(field, "type", "unknown"))
		w.line("- **Required**: %s", flag(field, "required"))
		w.line("- **Hidden from guests**: %s", flag(field, "hide_from_guests"))

		if cfg := field.Get("type_config"); cfg.Kind() == document.Object && cfg.Len() > 0 {
			w.line("- **Configuration**:")
			for _, entry := range cfg.Fields() {
				w.line("  - %s: %s", entry.Key, inline(entry.Value))
			}
		}
		w.blank()
	}

	return w.String()
}
