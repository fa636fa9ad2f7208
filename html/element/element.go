// Package element declares HTML elements as plain structs of optional
// attribute fields. A nil field is an attribute that is not present.
// Children and content are not modeled.
//
// https://html.spec.whatwg.org/multipage/indices.html#elements-3
package element

import (
	"reflect"

	"github.com/heathj/htmlspec/html/attr"
)

// Element is implemented by every element type. Name is the lowercase tag
// name and does not depend on the value.
type Element interface {
	attr.Named
	Attributes() []attr.Attribute
}

// TagOf returns the tag name of T without needing a value. T must be a
// struct type, not a pointer.
func TagOf[T Element]() string {
	var zero T
	return zero.Name()
}

// Declared returns the zero value of every attribute type e can carry, in
// field order. Fields are inspected by type, so e may be empty.
func Declared(e Element) []attr.Attribute {
	var out []attr.Attribute
	walk(reflect.ValueOf(e), func(f reflect.Value) {
		if z, ok := reflect.Zero(f.Type().Elem()).Interface().(attr.Attribute); ok {
			out = append(out, z)
		}
	})
	return out
}

// attributesOf collects the present attributes of an element struct,
// descending into embedded bundles such as Global.
func attributesOf(e Element) []attr.Attribute {
	var out []attr.Attribute
	walk(reflect.ValueOf(e), func(f reflect.Value) {
		if f.IsNil() {
			return
		}
		if a, ok := f.Elem().Interface().(attr.Attribute); ok {
			out = append(out, a)
		}
	})
	return out
}

func walk(v reflect.Value, fn func(reflect.Value)) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v = reflect.Zero(v.Type().Elem())
			break
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		f := v.Field(i)
		switch {
		case sf.Anonymous && f.Kind() == reflect.Struct:
			walk(f, fn)
		case !sf.IsExported():
		case f.Kind() == reflect.Pointer:
			fn(f)
		}
	}
}
