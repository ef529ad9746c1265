package document

import (
	"bytes"
	"io"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Kind identifies the JSON type held by a Value.
type Kind uint8

const (
	// Missing is the zero Kind. It is returned for absent object keys and
	// out-of-range indexes, and behaves like null for every accessor.
	Missing Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "missing"
	}
}

// Field is a single key/value pair of an object, in document order.
type Field struct {
	Key   string
	Value Value
}

// Value is an immutable, weakly-typed JSON value.
//
// Numbers keep their original text so that identifiers such as 9012345678
// round-trip exactly. Objects keep their key order.
type Value struct {
	kind   Kind
	b      bool
	s      string
	items  []Value
	fields []Field
}

// Parse decodes a single JSON document. Empty input decodes to null and
// anything but whitespace after the document is an error.
func Parse(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Value{kind: Null}, nil
	}
	d := jx.DecodeBytes(data)
	v, err := decode(d)
	if err != nil {
		return Value{}, errors.Wrap(err, "decode json")
	}
	if err := d.Skip(); err != io.EOF {
		return Value{}, errors.New("decode json: unexpected data after document")
	}
	return v, nil
}

func decode(d *jx.Decoder) (Value, error) {
	switch d.Next() {
	case jx.Null:
		if err := d.Null(); err != nil {
			return Value{}, err
		}
		return Value{kind: Null}, nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return Value{}, err
		}
		return Value{kind: Bool, b: b}, nil
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return Value{}, err
		}
		return Value{kind: Number, s: n.String()}, nil
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return Value{}, err
		}
		return Value{kind: String, s: s}, nil
	case jx.Array:
		v := Value{kind: Array, items: []Value{}}
		err := d.Arr(func(d *jx.Decoder) error {
			item, err := decode(d)
			if err != nil {
				return err
			}
			v.items = append(v.items, item)
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		return v, nil
	case jx.Object:
		v := Value{kind: Object, fields: []Field{}}
		err := d.Obj(func(d *jx.Decoder, key string) error {
			item, err := decode(d)
			if err != nil {
				return errors.Wrapf(err, "field %q", key)
			}
			v.fields = append(v.fields, Field{Key: key, Value: item})
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		return v, nil
	default:
		return Value{}, errors.Errorf("unexpected token %s", d.Next())
	}
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind { return v.kind }

// Exists reports whether the value was present in the document (null counts
// as present).
func (v Value) Exists() bool { return v.kind != Missing }

// IsNull reports whether the value is null or missing.
func (v Value) IsNull() bool { return v.kind == Missing || v.kind == Null }

// Has reports whether an object carries the given key.
func (v Value) Has(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// Lookup returns the value stored under key. The second result is false when
// v is not an object or the key is absent.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Get returns the value stored under key, or a Missing value.
func (v Value) Get(key string) Value {
	out, _ := v.Lookup(key)
	return out
}

// Path walks nested objects: v.Path("user", "teams").
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, k := range keys {
		cur = cur.Get(k)
	}
	return cur
}

// Index returns the i-th array element, or a Missing value.
func (v Value) Index(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.items) {
		return Value{}
	}
	return v.items[i]
}

// Items returns the elements of an array. Non-arrays yield nil.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.items
}

// Fields returns the entries of an object in document order. Non-objects
// yield nil.
func (v Value) Fields() []Field {
	if v.kind != Object {
		return nil
	}
	return v.fields
}

// Len returns the number of array elements or object entries.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.fields)
	default:
		return 0
	}
}

// Str returns a textual form of a scalar. Strings are returned as-is, numbers
// in their original spelling and booleans as true/false. Null, missing and
// container values yield def.
func (v Value) Str(def string) string {
	switch v.kind {
	case String:
		return v.s
	case Number:
		return v.s
	case Bool:
		return strconv.FormatBool(v.b)
	default:
		return def
	}
}

// Bool returns the boolean held by v, or def for any other kind.
func (v Value) Bool(def bool) bool {
	if v.kind != Bool {
		return def
	}
	return v.b
}

// Int returns the integer held by v. Numeric strings are accepted since the
// upstream API is inconsistent about quoting counts. Anything else yields def.
func (v Value) Int(def int64) int64 {
	switch v.kind {
	case Number, String:
		if n, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(v.s, 64); err == nil {
			return int64(f)
		}
	}
	return def
}

// Truthy mirrors the loose truthiness used when deciding whether to render an
// optional attribute: null, missing, false, 0, "" and empty containers are
// falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		f, err := strconv.ParseFloat(v.s, 64)
		return err != nil || f != 0
	case String:
		return v.s != ""
	case Array:
		return len(v.items) > 0
	case Object:
		return len(v.fields) > 0
	default:
		return false
	}
}

// JSON returns the compact JSON encoding of v. Missing encodes as null.
func (v Value) JSON() string {
	var e jx.Encoder
	v.encode(&e)
	return e.String()
}

func (v Value) encode(e *jx.Encoder) {
	switch v.kind {
	case Bool:
		e.Bool(v.b)
	case Number:
		e.Num(jx.Num(v.s))
	case String:
		e.Str(v.s)
	case Array:
		e.Arr(func(e *jx.Encoder) {
			for _, item := range v.items {
				item.encode(e)
			}
		})
	case Object:
		e.Obj(func(e *jx.Encoder) {
			for _, f := range v.fields {
				e.Field(f.Key, f.Value.encode)
			}
		})
	default:
		e.Null()
	}
}
