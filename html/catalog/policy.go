package catalog

import "github.com/microcosm-cc/bluemonday"

// unsafeElements are catalogued but never allowed by Policy.
var unsafeElements = map[string]struct{}{
	"script": {},
	"style":  {},
}

// Policy returns a bluemonday allow-list of the catalogued elements with the
// attributes they declare. Script is left out even when catalogued, so
// <script> is dropped together with its content. URL attributes (href, src,
// cite) must parse and be relative or use http, https or mailto; any other
// scheme removes the attribute. Other attribute values are not filtered.
func (c *Catalog) Policy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("mailto", "http", "https")

	for _, e := range c.elements {
		if _, ok := unsafeElements[e.Tag]; ok {
			continue
		}
		p.AllowElements(e.Tag)
		names := make([]string, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			names = append(names, a.Name)
		}
		if len(names) > 0 {
			p.AllowAttrs(names...).OnElements(e.Tag)
		}
	}
	return p
}
