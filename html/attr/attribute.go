// Package attr is the typed vocabulary of HTML attribute values. Every
// attribute is its own named type backed by a string or a bool, and answers
// its lowercase HTML attribute name from the zero value.
//
// https://html.spec.whatwg.org/multipage/indices.html#attributes-3
package attr

import (
	"strconv"
	"strings"

	"github.com/heathj/htmlspec/html/webidl"
)

// Named is implemented by every attribute and element type. Name must be a
// constant: the same for every value of the type, including the zero value.
type Named interface {
	Name() string
}

// Attribute is a named value with a textual rendering.
type Attribute interface {
	Named
	String() string
}

// StringValue is satisfied by attributes whose payload is a string.
// Conversion T(raw) stores raw verbatim and never fails.
type StringValue interface {
	~string
	Attribute
}

// BoolValue is satisfied by attributes whose payload is a bool.
type BoolValue interface {
	~bool
	Attribute
}

// NameOf returns the attribute or element name of T without needing a value.
func NameOf[T Named]() string {
	var zero T
	return zero.Name()
}

// New is the explicit string-backed constructor; it is the same as T(raw).
func New[T StringValue](raw string) T { return T(raw) }

// NewBool is the explicit boolean-backed constructor; it is the same as T(v).
func NewBool[T BoolValue](v bool) T { return T(v) }

// Values lists every value of a boolean-backed attribute: true, then false.
func Values[T BoolValue]() []T { return []T{T(true), T(false)} }

// Ptr returns a pointer to v, for filling optional element fields.
func Ptr[T any](v T) *T { return &v }

// Len is the byte length of the payload.
func Len[T StringValue](v T) int { return len(v) }

// IsEmpty reports whether the payload is the empty string.
func IsEmpty[T StringValue](v T) bool { return len(v) == 0 }

// Tokens splits a space-separated attribute (class, part, rel, itemprop...)
// into its tokens.
func Tokens[T StringValue](v T) webidl.DOMTokenList { return webidl.ParseTokenList(string(v)) }

// Bool returns the payload of a boolean-backed attribute.
func Bool[T BoolValue](v T) bool { return bool(v) }

func joinTokens(tokens []string) string { return strings.Join(tokens, " ") }

func renderBool(b bool) string { return strconv.FormatBool(b) }

func formatInt(n int) string { return strconv.Itoa(n) }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
