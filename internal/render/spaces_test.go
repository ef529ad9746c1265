package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var spacesDoc = mustParse(`{
	"spaces": [
		{
			"id": "90120012345",
			"name": "Engineering",
			"private": true,
			"statuses": [{"status": "open"}, {"status": "closed"}],
			"features": {"due_dates": {"enabled": true}}
		},
		{"id": "90120012346"}
	]
}`)

func TestSpaces(t *testing.T) {
	want := "# Spaces (2 total)\n\n" +
		"## Engineering\n" +
		"- **ID**: `90120012345`\n" +
		"- **Private**: true\n" +
		"- **Archived**: false\n" +
		"- **Statuses**: 2 status(es)\n" +
		"- **Due Dates Enabled**: true\n\n" +
		"## Unnamed Space\n" +
		"- **ID**: `90120012346`\n" +
		"- **Private**: false\n" +
		"- **Archived**: false\n\n"

	assert.Equal(t, want, Spaces(spacesDoc))
}

func TestSpaces_Empty(t *testing.T) {
	for _, raw := range []string{`{"spaces": []}`, `{}`, `{"spaces": null}`, `[]`} {
		assert.Equal(t, "No spaces found in this workspace.", Spaces(mustParse(raw)), raw)
	}
}

func TestSpaces_FeaturesWithoutDueDates(t *testing.T) {
	out := Spaces(mustParse(`{"spaces":[{"id":"1","name":"S","features":{}}]}`))
	assert.Contains(t, out, "- **Due Dates Enabled**: false\n")
}

func TestSpaceDetails(t *testing.T) {
	space := mustParse(`{
		"id": "777",
		"name": "Sales",
		"statuses": [{"status": "to do", "type": "open", "color": "#d3d3d3"}, {"status": "done"}],
		"folders": [
			{"id": "f1", "name": "Pipeline", "hidden": false, "lists": [{"id": "l1", "name": "Leads"}, {"id": "l2"}]},
			{"id": "f2"}
		],
		"lists": [{"id": "l9", "name": "Inbox"}]
	}`)

	out := SpaceDetails(space)

	assert.Contains(t, out, "# Space: Sales\n\n**ID**: `777`\n**Private**: false\n**Archived**: false\n\n")
	assert.Contains(t, out, "## Statuses\n\n- **to do** (Type: open, Color: #d3d3d3)\n- **done** (Type: , Color: )\n\n")
	assert.Contains(t, out, "## Folders (2 total)\n\n### Pipeline\n- **ID**: `f1`\n- **Hidden**: false\n- **Lists**: 2\n")
	assert.Contains(t, out, "  - Leads (ID: `l1`)\n")
	assert.Contains(t, out, "  - Unnamed List (ID: `l2`)\n")
	assert.Contains(t, out, "### Unnamed Folder\n- **ID**: `f2`\n- **Hidden**: false\n\n")
	assert.Contains(t, out, "## Lists (1 folderless)\n\n- **Inbox** (ID: `l9`)\n")
}

func TestSpaceDetails_Minimal(t *testing.T) {
	out := SpaceDetails(mustParse(`{}`))

	assert.Equal(t, "# Space: Unnamed\n\n**ID**: `N/A`\n**Private**: false\n**Archived**: false\n\n", out)
}
