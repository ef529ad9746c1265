// Package clickup is a small client for the ClickUp v2 REST API.
//
// It injects the personal API token into every request, joins endpoint
// templates onto the API root and normalizes failures into a fixed set of
// error kinds:
//
//	v, err := client.Do(ctx, clickup.Get("/list/{list_id}", map[string]string{"list_id": id}))
//	if clickup.KindOf(err) == clickup.KindNotFound {
//		// ...
//	}
//
// Successful responses are returned as a document.Value without any schema
// validation. Nothing is retried or cached.
package clickup
