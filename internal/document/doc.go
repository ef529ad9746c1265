// Package document provides a weakly-typed, order-preserving JSON value.
//
// Upstream API responses are loosely shaped: fields may be absent, null or
// of an unexpected type. Value lets callers read them with explicit
// defaults instead of assuming a schema:
//
//	v, err := document.Parse(body)
//	name := v.Get("name").Str("Unnamed Space")
//	archived := v.Get("archived").Bool(false)
//	for _, folder := range v.Get("folders").Items() {
//	    ...
//	}
//
// Lookups never fail. Absent keys yield a Missing value whose accessors
// return the supplied default.
package document
