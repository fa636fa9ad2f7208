package attr

import (
	"net/url"
	"strings"
)

// URL-valued attributes take the serialized form of a parsed URL.
// https://url.spec.whatwg.org/#concept-url-serializer

func HrefFromURL(u *url.URL) Href             { return Href(u.String()) }
func SrcFromURL(u *url.URL) Src               { return Src(u.String()) }
func ActionFromURL(u *url.URL) Action         { return Action(u.String()) }
func FormActionFromURL(u *url.URL) FormAction { return FormAction(u.String()) }
func CiteFromURL(u *url.URL) Cite             { return Cite(u.String()) }
func ItemIDFromURL(u *url.URL) ItemID         { return ItemID(u.String()) }

// ItemTypeFromURLs joins vocabulary URLs into one itemtype value.
func ItemTypeFromURLs(urls ...*url.URL) ItemType {
	parts := make([]string, len(urls))
	for i, u := range urls {
		parts[i] = u.String()
	}
	return ItemType(joinTokens(parts))
}

// ClassOf joins class names, skipping empty ones.
func ClassOf(names ...string) Class {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			kept = append(kept, n)
		}
	}
	return Class(joinTokens(kept))
}

func RelOf(types ...string) Rel           { return Rel(joinTokens(types)) }
func PartOf(names ...string) Part         { return Part(joinTokens(names)) }
func ItemPropOf(names ...string) ItemProp { return ItemProp(joinTokens(names)) }
