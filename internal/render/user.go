package render

import "github.com/teemow/clickup-mcp/internal/document"

// UserProfile renders the /user response, including the workspaces (teams)
// whose IDs feed get_spaces.
func UserProfile(doc document.Value) string {
	user := doc.Get("user")

	var w writer
	w.line("# ClickUp User Profile")
	w.blank()
	w.line("**Name**: %s", text(user, "username", "N/A"))
	w.line("**Email**: %s", text(user, "email", "N/A"))
	w.line("**ID**: %s", id(user))
	w.line("**Color**: %s", text(user, "color", "N/A"))
	w.blank()

	teams := user.Get("teams").Items()
	if len(teams) > 0 {
		w.line("## Workspaces (%d total)", len(teams))
		w.blank()
		for _, team := range teams {
			w.line("### %s", text(team, "name", "Unnamed Workspace"))
			w.line("- **ID**: %s (use this for get_spaces)", id(team))
			w.line("- **Color**: %s", text(team, "color", "N/A"))
			w.line("- **Avatar**: %s", text(team, "avatar", "None"))
			w.blank()
		}
	}

	return w.String()
}
