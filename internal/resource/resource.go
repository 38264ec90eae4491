package resource

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Kind describes how a payload field is coerced before storage.
type Kind int

const (
	String Kind = iota
	Float
	Date
	ObjectID
)

// Field declares one payload field of a resource.
type Field struct {
	Name string
	Kind Kind
	// Rule is an optional validator/v10 tag checked after coercion,
	// e.g. "email".
	Rule string
	// Optional fields are not part of the required-field check. Absent
	// optional string fields default to the empty string on create.
	Optional bool
}

// Reference declares a field holding the identifier of a document in
// another collection. The referenced document's display field is joined
// into responses under As.
type Reference struct {
	Field        string
	Collection   string
	DisplayField string
	As           string
	// Label is the display name used in error messages, e.g. "Employee".
	Label string
}

// NotFoundMessage returns the 404 body for an unresolved reference.
func (r Reference) NotFoundMessage() string {
	return r.Label + " not found"
}

// Definition declares everything the pipeline needs to serve one resource
// family. Resources differ only by their definition, never by control flow.
type Definition struct {
	// Name is the route segment and collection name, e.g. "employees".
	Name string
	// Label is the display name used in error messages, e.g. "Employee".
	Label string
	// Fields are the payload fields validated and coerced on POST and PUT.
	Fields []Field
	// Reference, when set, is resolved before every write.
	Reference *Reference
	// JoinOnList and JoinOnGet control whether reads attach the referenced
	// display field via an aggregation lookup.
	JoinOnList bool
	JoinOnGet  bool
	// Omit lists stored fields that are never returned to callers.
	Omit []string
	// Transform, when set, rewrites the coerced document before it is
	// written, e.g. replacing a plaintext password with its hash.
	Transform func(doc bson.M) error
	// MissingMessage is the 400 body used when a required field is absent.
	MissingMessage string
}

// NotFoundMessage returns the 404 body for this resource.
func (d Definition) NotFoundMessage() string {
	return d.Label + " not found"
}

// Omits reports whether a stored field is projected out of responses.
func (d Definition) Omits(name string) bool {
	for _, o := range d.Omit {
		if o == name {
			return true
		}
	}
	return false
}

// FindField returns the declared field with the given name.
func (d Definition) FindField(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
