// Package models holds the shared value model for JSON documents and the
// signature types the extractor and comparer exchange.
package models

import "strings"

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, object, or array.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// Undefined marks a slot that is declared but carries no value, as distinct
// from an explicit null. JSON text never decodes to it; callers building
// trees programmatically can use it for a missing-but-addressable field.
type Undefined struct{}

// Document holds one parsed JSON document ready for signature extraction.
type Document struct {
	Root        JSONValue
	RootIsArray bool // True if the root of the JSON is an array vs an object
}

// Kind is the value category of a JSON node. KindDate is a refinement of
// KindString, recognized when the string value looks like a calendar
// date/time.
type Kind string

const (
	KindObject    Kind = "object"
	KindArray     Kind = "array"
	KindString    Kind = "string"
	KindDate      Kind = "date"
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindNull      Kind = "null"
	KindUndefined Kind = "undefined"
)

// Unknown reports whether the kind is null or undefined, i.e. the node is
// present at its path but carries no concrete value.
func (k Kind) Unknown() bool {
	return k == KindNull || k == KindUndefined
}

// Signature identifies one node in a JSON tree: where it sits and what
// category of value it holds. The zero Kind marks a bare path, produced by
// reconciliation when a null/undefined node is coarsened so it can match any
// concrete value at the same path on the other side.
type Signature struct {
	Path string
	Kind Kind
}

// String renders the signature in its display form "<path>-<kind>",
// or just the path for a bare signature.
func (s Signature) String() string {
	if s.Kind == "" {
		return s.Path
	}
	return s.Path + "-" + string(s.Kind)
}

// ParseSignature splits a display-form signature back into its parts.
// Kinds never contain '-' but paths may (a property can be named "foo-bar"),
// so the split is anchored on the last dash.
func ParseSignature(s string) Signature {
	i := strings.LastIndex(s, "-")
	if i < 0 {
		return Signature{Path: s}
	}
	return Signature{Path: s[:i], Kind: Kind(s[i+1:])}
}

// Result is the outcome of one schema comparison. OnlyInActual and
// OnlyInExpected hold the signatures present on one side but not the other,
// in extraction order.
type Result struct {
	Matched        bool
	OnlyInActual   []Signature
	OnlyInExpected []Signature
}
