package clickup

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
)

// Request describes a single ClickUp API call.
//
// Path is an endpoint template such as "/list/{list_id}/task". Placeholders
// are filled from Params and percent-escaped, so identifiers supplied by the
// calling agent cannot change the shape of the path. The template itself is
// used as the metric and span label.
type Request struct {
	Method string
	Path   string
	Params map[string]string
	Query  url.Values

	// Body is marshalled as JSON and sent as-is.
	Body any
}

// Get builds a GET request for a template.
func Get(path string, params map[string]string) Request {
	return Request{Method: http.MethodGet, Path: path, Params: params}
}

// WithQuery returns a copy of r with q as its query string.
func (r Request) WithQuery(q url.Values) Request {
	r.Query = q
	return r
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// Endpoint expands the template. The result always starts with "/".
func (r Request) Endpoint() (string, error) {
	tmpl := r.Path
	if !strings.HasPrefix(tmpl, "/") {
		tmpl = "/" + tmpl
	}

	var b strings.Builder
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			break
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			return "", errors.Errorf("unterminated placeholder in %q", r.Path)
		}
		name := tmpl[open+1 : open+end]
		value, ok := r.Params[name]
		if !ok || value == "" {
			return "", errors.Errorf("missing path parameter %q", name)
		}
		if value == "." || value == ".." {
			return "", errors.Errorf("invalid path parameter %q", name)
		}
		b.WriteString(tmpl[:open])
		b.WriteString(url.PathEscape(value))
		tmpl = tmpl[open+end+1:]
	}

	out := b.String()
	for _, seg := range strings.Split(out, "/") {
		if seg == ".." {
			return "", errors.Errorf("relative segment in endpoint %q", out)
		}
	}
	return out, nil
}
