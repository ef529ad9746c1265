package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/teemow/clickup-mcp/internal/clickup"
	"github.com/teemow/clickup-mcp/internal/document"
)

// Executor performs one ClickUp request. *clickup.Client implements it.
type Executor interface {
	Do(ctx context.Context, req clickup.Request) (document.Value, error)
}

// RunFunc performs the requests of one tool and renders the result. It
// receives arguments that were already validated and defaulted.
type RunFunc func(ctx context.Context, api Executor, args Args) (string, error)

// ParamType is the JSON type of a tool parameter.
type ParamType int

const (
	TypeString ParamType = iota
	TypeBool
	TypeInteger
)

func (t ParamType) String() string {
	switch t {
	case TypeBool:
		return "boolean"
	case TypeInteger:
		return "integer"
	default:
		return "string"
	}
}

// Param declares one tool argument.
type Param struct {
	Name        string
	Description string
	Type        ParamType
	Required    bool

	// Default applies when an optional argument is omitted. Its dynamic type
	// must match Type (string, bool or int).
	Default any

	// Min and Max clamp integer arguments. Max == 0 means unbounded.
	Min int
	Max int
}

// Descriptor fully describes a tool.
type Descriptor struct {
	Name        string
	Description string

	// Action completes the phrase "Error <Action>: ..." on failure, for
	// example "getting spaces".
	Action string

	Params []Param

	// Endpoints lists the endpoint templates the tool calls, primary first.
	Endpoints []string

	ReadOnly bool
	Run      RunFunc
}

// Param returns the named parameter.
func (d Descriptor) Param(name string) (Param, bool) {
	i := slices.IndexFunc(d.Params, func(p Param) bool { return p.Name == name })
	if i < 0 {
		return Param{}, false
	}
	return d.Params[i], true
}

// Catalog is an immutable, ordered set of tool descriptors. It is safe for
// concurrent use.
type Catalog struct {
	order  []string
	byName map[string]Descriptor
}

// New builds a catalog. Names must be unique and every descriptor needs a
// Run function.
func New(descriptors ...Descriptor) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("tool descriptor without a name")
		}
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate tool %q", d.Name)
		}
		if d.Run == nil {
			return nil, fmt.Errorf("tool %q has no run function", d.Name)
		}
		d.Params = slices.Clone(d.Params)
		d.Endpoints = slices.Clone(d.Endpoints)
		c.byName[d.Name] = d
		c.order = append(c.order, d.Name)
	}
	return c, nil
}

// MustNew is like New but panics on an invalid descriptor set.
func MustNew(descriptors ...Descriptor) *Catalog {
	c, err := New(descriptors...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Names returns tool names in registration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}

// Descriptors returns all descriptors in registration order.
func (c *Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.order)
}
