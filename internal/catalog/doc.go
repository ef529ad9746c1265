// Package catalog defines the ClickUp tools and the dispatcher that runs
// them.
//
// A Catalog is built once at startup and never modified. The Dispatcher is
// the error boundary of the server: whatever happens inside a tool, the
// caller receives text.
//
//	d := catalog.NewDispatcher(catalog.Builtin(), client)
//	out := d.Invoke(ctx, "get_spaces", map[string]any{"team_id": "9012345678"})
package catalog
