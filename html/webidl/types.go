package webidl

import "strings"

// https://heycam.github.io/webidl/#idl-DOMString
type DOMString string

// https://heycam.github.io/webidl/#idl-USVString
type USVString string

// https://dom.spec.whatwg.org/#interface-domtokenlist
type DOMTokenList []DOMString

// ParseTokenList splits s on ASCII whitespace the way the ordered set parser
// does, dropping empty tokens and duplicates while keeping first-seen order.
// https://dom.spec.whatwg.org/#concept-ordered-set-parser
func ParseTokenList(s string) DOMTokenList {
	fields := strings.FieldsFunc(s, isASCIIWhitespace)
	list := make(DOMTokenList, 0, len(fields))
	for _, f := range fields {
		if list.Contains(DOMString(f)) {
			continue
		}
		list = append(list, DOMString(f))
	}
	return list
}

// https://infra.spec.whatwg.org/#ascii-whitespace
func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func (l DOMTokenList) Len() int { return len(l) }

func (l DOMTokenList) Contains(token DOMString) bool {
	for _, t := range l {
		if t == token {
			return true
		}
	}
	return false
}

// https://dom.spec.whatwg.org/#concept-ordered-set-serializer
func (l DOMTokenList) String() string {
	parts := make([]string, len(l))
	for i, t := range l {
		parts[i] = string(t)
	}
	return strings.Join(parts, " ")
}
