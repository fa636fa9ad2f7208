// Package catalog indexes the element vocabulary: which tags exist, which
// attributes each one declares and what kind of value every attribute takes.
// It is derived from the element types themselves.
package catalog

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/heathj/htmlspec/html/attr"
	"github.com/heathj/htmlspec/html/element"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrUnknownElement is returned by Lookup for a tag that is not registered.
var ErrUnknownElement = errors.New("unknown element")

// Kind is the shape of value an attribute takes.
type Kind string

const (
	KindString     Kind = "string"
	KindBoolean    Kind = "boolean"
	KindEnumerated Kind = "enumerated"
)

// AttributeInfo describes one attribute an element declares. Values lists the
// keywords of enumerated and boolean attributes.
type AttributeInfo struct {
	Name   string   `json:"name" yaml:"name"`
	Kind   Kind     `json:"kind" yaml:"kind"`
	Type   string   `json:"type" yaml:"type"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// ElementInfo describes an element type and its attributes in field order.
type ElementInfo struct {
	Tag        string          `json:"tag" yaml:"tag"`
	Type       string          `json:"type" yaml:"type"`
	Attributes []AttributeInfo `json:"attributes" yaml:"attributes"`
}

// Allows reports whether the element declares an attribute called name.
func (e ElementInfo) Allows(name string) bool {
	for _, a := range e.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Catalog is read-only once built and safe for concurrent use.
type Catalog struct {
	elements []ElementInfo
	byTag    map[string]int
}

// Builtin returns the empty value of every element in the vocabulary.
func Builtin() []element.Element {
	tags := element.Tags()
	elems := make([]element.Element, 0, len(tags))
	for _, tag := range tags {
		if e, ok := element.New(tag); ok {
			elems = append(elems, e)
		}
	}
	return elems
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default is the catalog of Builtin, built on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(Builtin()...)
	})
	return defaultCatalog
}

// New builds a catalog logging to the standard logrus logger.
func New(elems ...element.Element) *Catalog {
	return NewWithLogger(logrus.StandardLogger(), elems...)
}

// NewWithLogger builds a catalog of elems in the given order. A tag seen
// twice keeps its first registration.
func NewWithLogger(log logrus.FieldLogger, elems ...element.Element) *Catalog {
	c := &Catalog{byTag: make(map[string]int, len(elems))}
	for _, e := range elems {
		info := describe(e)
		if _, ok := c.byTag[info.Tag]; ok {
			log.WithFields(logrus.Fields{
				"tag":  info.Tag,
				"type": info.Type,
			}).Warn("duplicate element ignored")
			continue
		}
		c.byTag[info.Tag] = len(c.elements)
		c.elements = append(c.elements, info)
		log.WithFields(logrus.Fields{
			"tag":        info.Tag,
			"attributes": len(info.Attributes),
		}).Debug("registered element")
	}
	return c
}

func describe(e element.Element) ElementInfo {
	declared := element.Declared(e)
	info := ElementInfo{
		Tag:        e.Name(),
		Type:       typeName(e),
		Attributes: make([]AttributeInfo, 0, len(declared)),
	}
	for _, a := range declared {
		info.Attributes = append(info.Attributes, describeAttribute(a))
	}
	return info
}

func describeAttribute(a attr.Attribute) AttributeInfo {
	info := AttributeInfo{Name: a.Name(), Type: typeName(a), Kind: KindString}
	if en, ok := a.(attr.Enumerated); ok {
		info.Kind = KindEnumerated
		info.Values = en.Keywords()
	} else if reflect.TypeOf(a).Kind() == reflect.Bool {
		info.Kind = KindBoolean
		info.Values = []string{"true", "false"}
	}
	return info
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// Lookup finds an element by tag name, ignoring ASCII case.
func (c *Catalog) Lookup(tag string) (ElementInfo, error) {
	i, ok := c.byTag[strings.ToLower(tag)]
	if !ok {
		return ElementInfo{}, errors.Wrapf(ErrUnknownElement, "<%s>", tag)
	}
	return c.elements[i], nil
}

// Len is the number of registered elements.
func (c *Catalog) Len() int { return len(c.elements) }

// Elements returns the elements in registration order.
func (c *Catalog) Elements() []ElementInfo {
	return append([]ElementInfo(nil), c.elements...)
}

// Tags returns the registered tag names, sorted.
func (c *Catalog) Tags() []string {
	tags := make([]string, 0, len(c.elements))
	for _, e := range c.elements {
		tags = append(tags, e.Tag)
	}
	sort.Strings(tags)
	return tags
}

// AttributeNames returns every attribute name declared by any element,
// sorted and without duplicates.
func (c *Catalog) AttributeNames() []string {
	seen := map[string]struct{}{}
	for _, e := range c.elements {
		for _, a := range e.Attributes {
			seen[a.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Allows reports whether tag is registered and declares the attribute name.
func (c *Catalog) Allows(tag, name string) bool {
	e, err := c.Lookup(tag)
	if err != nil {
		return false
	}
	return e.Allows(strings.ToLower(name))
}

// Subset returns a catalog of just the given tags, in the order given.
func (c *Catalog) Subset(tags ...string) (*Catalog, error) {
	sub := &Catalog{byTag: make(map[string]int, len(tags))}
	for _, tag := range tags {
		e, err := c.Lookup(tag)
		if err != nil {
			return nil, err
		}
		if _, ok := sub.byTag[e.Tag]; ok {
			continue
		}
		sub.byTag[e.Tag] = len(sub.elements)
		sub.elements = append(sub.elements, e)
	}
	return sub, nil
}
