package render

import "github.com/teemow/clickup-mcp/internal/document"

// Folders renders the folder hierarchy of a space with per-list task counts
// and a closing summary line.
func Folders(doc document.Value) string {
	folders := doc.Get("folders").Items()
	if len(folders) == 0 {
		return "No folders found in this space."
	}

	var w writer
	w.line("# Folders (%d total)", len(folders))
	w.blank()

	var totalLists int
	var totalTasks int64
	for _, folder := range folders {
		w.line("## 📁 %s", text(folder, "name", "Unnamed Folder"))
		w.line("- **Folder ID**: %s", id(folder))
		w.line("- **Hidden**: %s", flag(folder, "hidden"))

		lists := folder.Get("lists").Items()
		if len(lists) == 0 {
			w.line("- **Lists**: None")
			w.blank()
			continue
		}

		w.line("- **Lists**: %d", len(lists))
		w.blank()
		for _, list := range lists {
			totalLists++
			totalTasks += list.Get("task_count").Int(0)

			w.line("   📋 **%s**", text(list, "name", "Unnamed List"))
			w.line("      - List ID: %s", id(list))
			w.line("      - Tasks: %s", count(list, "task_count"))
			w.line("      - Archived: %s", flag(list, "archived"))
			if list.Has("folder") {
				w.line("      - Folder: %s", text(list.Get("folder"), "name", "N/A"))
			}
			w.blank()
		}
	}

	w.blank()
	w.line("---")
	w.line("**Summary**: %d folders, %d lists, %d total tasks", len(folders), totalLists, totalTasks)

	return w.String()
}
