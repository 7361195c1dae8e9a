// Package trigger decodes Firestore document events and routes them to the
// application layer.
package trigger

import (
	"strings"
	"time"
)

// Event is the Firestore trigger envelope as delivered by the Cloud Functions
// infrastructure. A document creation carries an empty OldValue.
type Event struct {
	OldValue   Value      `json:"oldValue"`
	Value      Value      `json:"value"`
	UpdateMask UpdateMask `json:"updateMask"`
}

// UpdateMask lists the changed field paths on updates.
type UpdateMask struct {
	FieldPaths []string `json:"fieldPaths"`
}

// Value is a document snapshot inside a trigger envelope. Name is the full
// resource path: projects/{p}/databases/{db}/documents/{collection}/{id}.
type Value struct {
	CreateTime time.Time             `json:"createTime"`
	UpdateTime time.Time             `json:"updateTime"`
	Name       string                `json:"name"`
	Fields     map[string]FieldValue `json:"fields"`
}

// FieldValue is the typed value wrapper Firestore uses on the wire. Exactly
// one member is set per field.
type FieldValue struct {
	StringValue    *string     `json:"stringValue,omitempty"`
	BooleanValue   *bool       `json:"booleanValue,omitempty"`
	IntegerValue   *string     `json:"integerValue,omitempty"`
	TimestampValue *time.Time  `json:"timestampValue,omitempty"`
	ArrayValue     *ArrayValue `json:"arrayValue,omitempty"`
	MapValue       *MapValue   `json:"mapValue,omitempty"`
}

// ArrayValue wraps list fields.
type ArrayValue struct {
	Values []FieldValue `json:"values"`
}

// MapValue wraps nested map fields.
type MapValue struct {
	Fields map[string]FieldValue `json:"fields"`
}

// IsCreate reports whether the envelope describes a document creation.
func (e *Event) IsCreate() bool {
	return e.OldValue.Name == "" && e.Value.Name != ""
}

// pathSegments returns the document path segments after "/documents/".
func (v *Value) pathSegments() []string {
	_, path, ok := strings.Cut(v.Name, "/documents/")
	if !ok || path == "" {
		return nil
	}

	return strings.Split(path, "/")
}

// Collection returns the top-level collection of the document, or "".
func (v *Value) Collection() string {
	segments := v.pathSegments()
	if len(segments) < 2 {
		return ""
	}

	return segments[0]
}

// DocumentID returns the document's own ID, or "".
func (v *Value) DocumentID() string {
	segments := v.pathSegments()
	if len(segments) < 2 || len(segments)%2 != 0 {
		return ""
	}

	return segments[len(segments)-1]
}

// String returns the string field value, or "" when the field is absent or
// not a string.
func (v *Value) String(field string) string {
	fv, ok := v.Fields[field]
	if !ok || fv.StringValue == nil {
		return ""
	}

	return *fv.StringValue
}

// StringSlice returns the string elements of a list field. Absent fields,
// non-list fields and non-string elements decode as empty, never as an error.
func (v *Value) StringSlice(field string) []string {
	fv, ok := v.Fields[field]
	if !ok || fv.ArrayValue == nil {
		return nil
	}

	out := make([]string, 0, len(fv.ArrayValue.Values))
	for _, item := range fv.ArrayValue.Values {
		if item.StringValue == nil {
			continue
		}
		out = append(out, *item.StringValue)
	}

	return out
}
