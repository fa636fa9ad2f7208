package attr

import "github.com/heathj/htmlspec/html/webidl"

type Async bool

func (Async) Name() string     { return "async" }
func (a Async) String() string { return renderBool(bool(a)) }

// Charset declares the character encoding of the document. utf-8 is the
// only conforming value.
// https://html.spec.whatwg.org/multipage/semantics.html#attr-meta-charset
type Charset string

const (
	CharsetUTF8 Charset = "utf-8"
)

func (Charset) Name() string     { return "charset" }
func (c Charset) String() string { return string(c) }

type Content webidl.DOMString

func (Content) Name() string     { return "content" }
func (c Content) String() string { return string(c) }

type Defer bool

func (Defer) Name() string     { return "defer" }
func (d Defer) String() string { return renderBool(bool(d)) }

// HTTPEquiv turns a meta element into a pragma directive.
// https://html.spec.whatwg.org/multipage/semantics.html#pragma-directives
type HTTPEquiv string

const (
	HTTPEquivContentLanguage       HTTPEquiv = "content-language"
	HTTPEquivContentType           HTTPEquiv = "content-type"
	HTTPEquivDefaultStyle          HTTPEquiv = "default-style"
	HTTPEquivRefresh               HTTPEquiv = "refresh"
	HTTPEquivSetCookie             HTTPEquiv = "set-cookie"
	HTTPEquivXUACompatible         HTTPEquiv = "x-ua-compatible"
	HTTPEquivContentSecurityPolicy HTTPEquiv = "content-security-policy"
)

func (HTTPEquiv) Name() string       { return "http-equiv" }
func (h HTTPEquiv) String() string   { return string(h) }
func (HTTPEquiv) Keywords() []string { return keywords(HTTPEquivValues()) }

// HTTPEquivValues lists every http-equiv keyword.
func HTTPEquivValues() []HTTPEquiv {
	return []HTTPEquiv{HTTPEquivContentLanguage, HTTPEquivContentType, HTTPEquivDefaultStyle, HTTPEquivRefresh, HTTPEquivSetCookie, HTTPEquivXUACompatible, HTTPEquivContentSecurityPolicy}
}

func ParseHTTPEquiv(raw string) (HTTPEquiv, error) { return parseEnum(raw, HTTPEquivValues()) }

type Integrity string

func (Integrity) Name() string     { return "integrity" }
func (i Integrity) String() string { return string(i) }

// Media is the media query the resource applies to.
type Media webidl.DOMString

func (Media) Name() string     { return "media" }
func (m Media) String() string { return string(m) }

// MetaName is the name of a metadata pair in a meta element.
// https://html.spec.whatwg.org/multipage/semantics.html#standard-metadata-names
type MetaName webidl.DOMString

const (
	MetaNameApplicationName MetaName = "application-name"
	MetaNameAuthor          MetaName = "author"
	MetaNameColorScheme     MetaName = "color-scheme"
	MetaNameDescription     MetaName = "description"
	MetaNameGenerator       MetaName = "generator"
	MetaNameKeywords        MetaName = "keywords"
	MetaNameReferrer        MetaName = "referrer"
	MetaNameThemeColor      MetaName = "theme-color"
	MetaNameViewport        MetaName = "viewport"
)

func (MetaName) Name() string     { return "name" }
func (m MetaName) String() string { return string(m) }
