package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFolders(t *testing.T) {
	doc := mustParse(`{
		"folders": [
			{
				"id": "f1",
				"name": "Clients",
				"lists": [
					{"id": "l1", "name": "Acme", "task_count": 4, "folder": {"name": "Clients"}},
					{"id": "l2", "name": "Globex", "task_count": "6", "archived": true}
				]
			},
			{"id": "f2", "name": "Empty", "hidden": true, "lists": []}
		]
	}`)

	out := Folders(doc)

	assert.True(t, strings.HasPrefix(out, "# Folders (2 total)\n\n## 📁 Clients\n- **Folder ID**: `f1`\n- **Hidden**: false\n- **Lists**: 2\n\n"))
	assert.Contains(t, out, "   📋 **Acme**\n      - List ID: `l1`\n      - Tasks: 4\n      - Archived: false\n      - Folder: Clients\n\n")
	assert.Contains(t, out, "   📋 **Globex**\n      - List ID: `l2`\n      - Tasks: 6\n      - Archived: true\n\n")
	assert.Contains(t, out, "## 📁 Empty\n- **Folder ID**: `f2`\n- **Hidden**: true\n- **Lists**: None\n\n")
	assert.True(t, strings.HasSuffix(out, "\n---\n**Summary**: 2 folders, 2 lists, 10 total tasks\n"))
}

func TestFolders_Empty(t *testing.T) {
	assert.Equal(t, "No folders found in this space.", Folders(mustParse(`{"folders":[]}`)))
}
