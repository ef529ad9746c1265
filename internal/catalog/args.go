package catalog

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Args holds normalized tool arguments. Every declared parameter is present
// after normalization except omitted optional parameters without a default.
type Args struct {
	values map[string]any
}

// String returns a string argument, or "" when absent.
func (a Args) String(name string) string {
	s, _ := a.values[name].(string)
	return s
}

// Bool returns a boolean argument, or false when absent.
func (a Args) Bool(name string) bool {
	b, _ := a.values[name].(bool)
	return b
}

// Int returns an integer argument, or 0 when absent.
func (a Args) Int(name string) int {
	n, _ := a.values[name].(int)
	return n
}

// Has reports whether the argument is set.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// ArgumentError reports an argument that is missing or has the wrong type.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Param + " " + e.Reason
}

// normalize validates raw arguments against params, applies defaults and
// clamps integers. Unknown arguments are ignored. Values are coerced with
// cast, so "10", 10 and 10.0 are all accepted for an integer and "true" for
// a boolean.
func normalize(params []Param, raw map[string]any) (Args, error) {
	out := Args{values: make(map[string]any, len(params))}

	for _, p := range params {
		v, present := raw[p.Name]
		if present && v == nil {
			present = false
		}

		if !present {
			if p.Required {
				return Args{}, &ArgumentError{Param: p.Name, Reason: "is required"}
			}
			if p.Default != nil {
				out.values[p.Name] = p.Default
			}
			continue
		}

		switch p.Type {
		case TypeString:
			s, err := cast.ToStringE(v)
			if err != nil {
				return Args{}, &ArgumentError{Param: p.Name, Reason: "must be a string"}
			}
			s = strings.TrimSpace(s)
			if s == "" {
				if p.Required {
					return Args{}, &ArgumentError{Param: p.Name, Reason: "is required"}
				}
				if p.Default != nil {
					out.values[p.Name] = p.Default
				}
				continue
			}
			out.values[p.Name] = s

		case TypeBool:
			b, err := cast.ToBoolE(v)
			if err != nil {
				return Args{}, &ArgumentError{Param: p.Name, Reason: "must be a boolean"}
			}
			out.values[p.Name] = b

		case TypeInteger:
			n, err := cast.ToIntE(v)
			if err != nil {
				return Args{}, &ArgumentError{Param: p.Name, Reason: "must be an integer"}
			}
			out.values[p.Name] = clamp(n, p.Min, p.Max)

		default:
			return Args{}, fmt.Errorf("parameter %s has unsupported type %d", p.Name, p.Type)
		}
	}

	return out, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		n = lo
	}
	if hi > 0 && n > hi {
		n = hi
	}
	return n
}
