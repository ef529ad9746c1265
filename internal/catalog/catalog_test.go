package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, Executor, Args) (string, error) { return "", nil }

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []Descriptor
		wantErr     string
	}{
		{
			name:        "valid",
			descriptors: []Descriptor{{Name: "a", Run: noop}, {Name: "b", Run: noop}},
		},
		{
			name:        "empty name",
			descriptors: []Descriptor{{Run: noop}},
			wantErr:     "without a name",
		},
		{
			name:        "duplicate",
			descriptors: []Descriptor{{Name: "a", Run: noop}, {Name: "a", Run: noop}},
			wantErr:     `duplicate tool "a"`,
		},
		{
			name:        "missing run",
			descriptors: []Descriptor{{Name: "a"}},
			wantErr:     "no run function",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.descriptors...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.descriptors), c.Len())
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(Descriptor{Name: "x"}) })
}

func TestCatalogIsImmutable(t *testing.T) {
	params := []Param{{Name: "id", Type: TypeString}}
	c := MustNew(Descriptor{Name: "a", Params: params, Run: noop})

	params[0].Name = "changed"
	d, ok := c.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "id", d.Params[0].Name)

	names := c.Names()
	names[0] = "changed"
	assert.Equal(t, []string{"a"}, c.Names())
}

func TestBuiltin(t *testing.T) {
	c := Builtin()

	assert.Equal(t, []string{
		"get_authorized_user",
		"get_spaces",
		"get_space_details",
		"get_list_custom_fields",
		"get_folderless_lists",
		"get_folders",
		"get_list_details",
		"get_tasks",
		"get_views",
	}, c.Names())

	for _, d := range c.Descriptors() {
		assert.True(t, d.ReadOnly, d.Name)
		assert.NotEmpty(t, d.Description, d.Name)
		assert.NotEmpty(t, d.Action, d.Name)
		assert.NotEmpty(t, d.Endpoints, d.Name)
	}

	tasks, ok := c.Lookup("get_tasks")
	require.True(t, ok)
	limit, ok := tasks.Param("limit")
	require.True(t, ok)
	assert.Equal(t, TypeInteger, limit.Type)
	assert.Equal(t, 10, limit.Default)
	assert.Equal(t, 1, limit.Min)
	assert.Equal(t, 100, limit.Max)

	spaces, _ := c.Lookup("get_spaces")
	teamID, ok := spaces.Param("team_id")
	require.True(t, ok)
	assert.True(t, teamID.Required)
	archived, _ := spaces.Param("archived")
	assert.Equal(t, false, archived.Default)

	_, ok = c.Lookup("create_task")
	assert.False(t, ok)
}

func TestParamTypeString(t *testing.T) {
	assert.Equal(t, "string", TypeString.String())
	assert.Equal(t, "boolean", TypeBool.String())
	assert.Equal(t, "integer", TypeInteger.String())
}
