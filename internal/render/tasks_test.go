package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teemow/clickup-mcp/internal/document"
)

func taskDoc(n int) document.Value {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"id":"t%d","name":"Task %d"}`, i+1, i+1)
	}
	return mustParse(`{"tasks":[` + strings.Join(items, ",") + `]}`)
}

func TestTasks_Numbering(t *testing.T) {
	out := Tasks(TaskPage{
		ListID: "L1",
		Tasks:  taskDoc(3),
		List:   mustParse(`{"name":"Lead Tracker"}`),
		Limit:  10,
	})

	assert.True(t, strings.HasPrefix(out, "# Tasks from: Lead Tracker\n\n**Showing 3 of 3 tasks**\n\n"))
	first := strings.Index(out, "## 1. Task 1\n")
	second := strings.Index(out, "## 2. Task 2\n")
	third := strings.Index(out, "## 3. Task 3\n")
	assert.True(t, first >= 0 && first < second && second < third, "sections must follow response order")
	assert.Contains(t, out, "## 1. Task 1\n- **Task ID**: `t1`\n- **Status**: No Status\n- **Created**: N/A\n\n")
}

func TestTasks_Limit(t *testing.T) {
	out := Tasks(TaskPage{ListID: "L1", Tasks: taskDoc(5), List: mustParse(`{"name":"L"}`), Limit: 2})

	assert.Contains(t, out, "**Showing 2 of 5 tasks**")
	assert.Contains(t, out, "## 2. Task 2")
	assert.NotContains(t, out, "## 3.")
}

func TestTasks_Empty(t *testing.T) {
	assert.Equal(t, "No tasks found in list L1", Tasks(TaskPage{ListID: "L1", Tasks: mustParse(`{"tasks":[]}`)}))
}

func TestTasks_ListLookupFailed(t *testing.T) {
	out := Tasks(TaskPage{ListID: "L1", Tasks: taskDoc(1), ListErr: errors.New("timeout"), Limit: 10})

	assert.True(t, strings.HasPrefix(out, "# Tasks from: Unknown List\n"))
}

func TestTasks_Details(t *testing.T) {
	doc := mustParse(`{
		"tasks": [{
			"id": "abc",
			"name": "Call Acme",
			"status": {"status": "in progress"},
			"date_created": "1700000000000",
			"priority": {"priority": "high"},
			"due_date": "1700003600000",
			"assignees": [{"username": "a"}, {"username": "b"}, {"username": "c"}, {"username": "d"}],
			"custom_fields": [
				{"name": "Stage", "value": "qualified"},
				{"name": "Tags", "value": ["x", "y"]},
				{"name": "Contact", "value": {"email": "ops@acme.example"}},
				{"name": "Budget"},
				{"name": "Score", "value": 9},
				{"name": "Hidden sixth", "value": "nope"}
			],
			"description": "First line\nsecond line"
		}]
	}`)

	out := Tasks(TaskPage{ListID: "L1", Tasks: doc, List: mustParse(`{"name":"CRM"}`), Limit: 10})

	assert.Contains(t, out, "- **Status**: in progress\n- **Created**: 1700000000000\n- **Priority**: high\n- **Due Date**: 1700003600000\n")
	assert.Contains(t, out, "- **Assignees**: a, b, c\n")
	assert.Contains(t, out, "- **Custom Fields**:\n  - Stage: qualified\n  - Tags: [2 items]\n  - Contact: {\"email\":\"ops@acme.example\"}\n  - Budget: Empty\n  - Score: 9\n")
	assert.NotContains(t, out, "Hidden sixth")
	assert.Contains(t, out, "- **Description**: First line second line...\n")
}

func TestTasks_NullPriorityAndDueDateOmitted(t *testing.T) {
	doc := mustParse(`{"tasks":[{"id":"1","name":"x","priority":null,"due_date":null,"description":""}]}`)

	out := Tasks(TaskPage{ListID: "L1", Tasks: doc, List: mustParse(`{"name":"L"}`), Limit: 10})

	assert.NotContains(t, out, "Priority")
	assert.NotContains(t, out, "Due Date")
	assert.NotContains(t, out, "Description")
}
