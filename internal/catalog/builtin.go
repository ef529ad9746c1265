package catalog

import (
	"context"
	"net/url"
	"strconv"

	"github.com/teemow/clickup-mcp/internal/clickup"
	"github.com/teemow/clickup-mcp/internal/document"
	"github.com/teemow/clickup-mcp/internal/render"
)

// Endpoint templates of the ClickUp v2 API.
const (
	PathUser            = "/user"
	PathTeamSpaces      = "/team/{team_id}/space"
	PathSpace           = "/space/{space_id}"
	PathSpaceLists      = "/space/{space_id}/list"
	PathSpaceFolders    = "/space/{space_id}/folder"
	PathSpaceViews      = "/space/{space_id}/view"
	PathList            = "/list/{list_id}"
	PathListFields      = "/list/{list_id}/field"
	PathListTasks       = "/list/{list_id}/task"
	defaultTaskPageSize = 10
	maxTaskPageSize     = 100
)

var (
	teamIDParam = Param{
		Name:        "team_id",
		Description: "The workspace (team) ID. Get this from get_authorized_user. Example: \"9012345678\"",
		Type:        TypeString,
		Required:    true,
	}
	spaceIDParam = Param{
		Name:        "space_id",
		Description: "The space ID. Get this from get_spaces. Example: \"90120012345\"",
		Type:        TypeString,
		Required:    true,
	}
	listIDParam = Param{
		Name:        "list_id",
		Description: "The list ID. Get this from get_folders, get_folderless_lists or get_space_details. Example: \"901200567890\"",
		Type:        TypeString,
		Required:    true,
	}
)

func archivedParam(what string) Param {
	return Param{
		Name:        "archived",
		Description: "Include archived " + what + " in results",
		Type:        TypeBool,
		Default:     false,
	}
}

// Builtin returns the catalog of read-only ClickUp tools.
func Builtin() *Catalog {
	return MustNew(
		Descriptor{
			Name: "get_authorized_user",
			Description: "Get the currently authenticated ClickUp user, including the workspaces (teams) they belong to. " +
				"Use it to verify the API token and to find team IDs for get_spaces.",
			Action:    "getting user information",
			Endpoints: []string{PathUser},
			ReadOnly:  true,
			Run: func(ctx context.Context, api Executor, _ Args) (string, error) {
				doc, err := api.Do(ctx, clickup.Get(PathUser, nil))
				if err != nil {
					return "", err
				}
				return render.UserProfile(doc), nil
			},
		},
		Descriptor{
			Name: "get_spaces",
			Description: "List the spaces of a ClickUp workspace with their IDs, privacy, archive state and status count. " +
				"Spaces are the top-level containers for folders, lists and tasks.",
			Action:    "getting spaces",
			Params:    []Param{teamIDParam, archivedParam("spaces")},
			Endpoints: []string{PathTeamSpaces},
			ReadOnly:  true,
			Run: func(ctx context.Context, api Executor, args Args) (string, error) {
				doc, err := api.Do(ctx, clickup.Get(PathTeamSpaces, ids("team_id", args)).WithQuery(archivedQuery(args)))
				if err != nil {
					return "", err
				}
				return render.Spaces(doc), nil
			},
		},
		Descriptor{
			Name: "get_space_details",
			Description: "Get one space in detail: statuses, folders with their lists, and folderless lists. " +
				"Use it to explore the structure of a space and find list IDs.",
			Action:    "getting space details",
			Params:    []Param{spaceIDParam},
			Endpoints: []string{PathSpace},
			ReadOnly:  true,
			Run: func(ctx context.Context, api Executor, args Args) (string, error) {
				doc, err := api.Do(ctx, clickup.Get(PathSpace, ids("space_id", args)))
				if err != nil {
					return "", err
				}
				return render.SpaceDetails(doc), nil
			},
		},
		Descriptor{
			Name: "get_list_custom_fields",
			Description: "Get the custom fields (columns) configured on a list, with type, required flag and type-specific configuration. " +
				"Field types include text, number, currency, drop_down, labels, date, checkbox, email, phone, url, users and tasks.",
			Action:    "getting custom fields",
			Params:    []Param{listIDParam},
			Endpoints: []string{PathListFields},
			ReadOnly:  true,
			Run: func(ctx context.Context, api Executor, args Args) (string, error) {
				doc, err := api.Do(ctx, clickup.Get(PathListFields, ids("list_id", args)))
				if err != nil {
					return "", err
				}
				return render.CustomFields(doc), nil
			},
		},
		Descriptor{
			Name:        "get_folderless_lists",
			Description: "Get the lists that live directly in a space rather than inside a folder, with task counts.",
			Action:      "getting folderless lists",
			Params:      []Param{spaceIDParam, archivedParam("lists")},
			Endpoints:   []string{PathSpaceLists},
			ReadOnly:    true,
			Run: func(ctx context.Context, api Executor, args Args) (string, error) {
				doc, err := api.Do(ctx, clickup.Get(PathSpaceLists, ids("space_id", args)).WithQuery(archivedQuery(args)))
				if err != nil {
					return "", err
				}
				return render.FolderlessLists(doc), nil
			},
		},
		Descriptor{
			Name: "get_folders",
			Description: "Get all folders of a space with their lists, list IDs and task counts, followed by a summary. " +
				"This is the main tool for auditing workspace structure.",
			Action:    "getting folders",
			Params:    []Param{spaceIDParam, archivedParam("folders")},
			Endpoints: []string{PathSpaceFolders},
			ReadOnly:  true,
			Run: func(ctx context.Context, api Executor, args Args) (string, error) {
				doc, err := api.Do(ctx, clickup.Get(PathSpaceFolders, ids("space_id", args)).WithQuery(archivedQuery(args)))
				if err != nil {
					return "", err
				}
				return render.Folders(doc), nil
			},
		},
		Descriptor{
			Name: "get_list_details",
			Description: "Get a list in detail: folder and space context, statuses, priorities, assignees and custom fields. " +
				"If the custom fields cannot be loaded the list is still returned.",
			Action:    "getting list details",
			Params:    []Param{listIDParam},
			Endpoints: []string{PathList, PathListFields},
			ReadOnly:  true,
			Run:       runListDetails,
		},
		Descriptor{
			Name: "get_tasks",
			Description: "Get sample tasks from a list, newest first, including closed tasks but not subtasks. " +
				"Shows status, priority, assignees, custom field values and a description preview.",
			Action: "getting tasks",
			Params: []Param{
				listIDParam,
				{
					Name:        "page",
					Description: "Page number for pagination (0-indexed)",
					Type:        TypeInteger,
					Default:     0,
				},
				{
					Name:        "limit",
					Description: "Number of tasks to show (1-100)",
					Type:        TypeInteger,
					Default:     defaultTaskPageSize,
					Min:         1,
					Max:         maxTaskPageSize,
				},
			},
			Endpoints: []string{PathListTasks, PathList},
			ReadOnly:  true,
			Run:       runTasks,
		},
		Descriptor{
			Name:        "get_views",
			Description: "Get all views of a space (board, list, calendar, gantt, dashboard and others), grouped by view type.",
			Action:      "getting views",
			Params:      []Param{spaceIDParam},
			Endpoints:   []string{PathSpaceViews},
			ReadOnly:    true,
			Run: func(ctx context.Context, api Executor, args Args) (string, error) {
				doc, err := api.Do(ctx, clickup.Get(PathSpaceViews, ids("space_id", args)))
				if err != nil {
					return "", err
				}
				return render.Views(doc), nil
			},
		},
	)
}

// runListDetails loads the list, then its custom fields. Only the first
// request can fail the tool.
func runListDetails(ctx context.Context, api Executor, args Args) (string, error) {
	params := ids("list_id", args)
	list, err := api.Do(ctx, clickup.Get(PathList, params))
	if err != nil {
		return "", err
	}
	fields, fieldsErr := api.Do(ctx, clickup.Get(PathListFields, params))
	return render.ListDetails(list, fields, fieldsErr), nil
}

// runTasks loads a page of tasks and, if there are any, the list name for
// the heading.
func runTasks(ctx context.Context, api Executor, args Args) (string, error) {
	params := ids("list_id", args)
	query := url.Values{
		"page":           {strconv.Itoa(args.Int("page"))},
		"order_by":       {"created"},
		"reverse":        {"true"},
		"subtasks":       {"false"},
		"include_closed": {"true"},
	}

	tasks, err := api.Do(ctx, clickup.Get(PathListTasks, params).WithQuery(query))
	if err != nil {
		return "", err
	}

	page := render.TaskPage{
		ListID: args.String("list_id"),
		Tasks:  tasks,
		Limit:  args.Int("limit"),
	}
	if tasks.Get("tasks").Len() > 0 {
		var list document.Value
		list, page.ListErr = api.Do(ctx, clickup.Get(PathList, params))
		page.List = list
	}
	return render.Tasks(page), nil
}

func ids(name string, args Args) map[string]string {
	return map[string]string{name: args.String(name)}
}

func archivedQuery(args Args) url.Values {
	return url.Values{"archived": {strconv.FormatBool(args.Bool("archived"))}}
}
