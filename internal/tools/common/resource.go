package common

import "github.com/spf13/cast"

// resourceArgs lists the identifier arguments in order of preference.
var resourceArgs = []string{"list_id", "space_id", "team_id"}

// ResourceIDFromArgs returns the most specific ClickUp identifier in the
// request arguments, or "" when the tool takes none.
func ResourceIDFromArgs(args map[string]any) string {
	for _, name := range resourceArgs {
		v, ok := args[name]
		if !ok || v == nil {
			continue
		}
		if id := cast.ToString(v); id != "" {
			return id
		}
	}
	return ""
}
