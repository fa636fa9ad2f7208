package attr

import "github.com/heathj/htmlspec/html/webidl"

// Alt is the replacement text of an image.
type Alt webidl.DOMString

func (Alt) Name() string     { return "alt" }
func (a Alt) String() string { return string(a) }

// Cite is the URL of the source of a quotation.
// https://html.spec.whatwg.org/multipage/grouping-content.html#attr-blockquote-cite
type Cite webidl.USVString

func (Cite) Name() string     { return "cite" }
func (c Cite) String() string { return string(c) }

// https://html.spec.whatwg.org/multipage/urls-and-fetching.html#cors-settings-attributes
type CrossOrigin string

const (
	CrossOriginAnonymous      CrossOrigin = "anonymous"
	CrossOriginEmpty          CrossOrigin = ""
	CrossOriginUseCredentials CrossOrigin = "use-credentials"
)

func (CrossOrigin) Name() string       { return "crossorigin" }
func (c CrossOrigin) String() string   { return string(c) }
func (CrossOrigin) Keywords() []string { return keywords(CrossOriginValues()) }

// CrossOriginValues lists every crossorigin keyword.
func CrossOriginValues() []CrossOrigin {
	return []CrossOrigin{CrossOriginAnonymous, CrossOriginEmpty, CrossOriginUseCredentials}
}

func ParseCrossOrigin(raw string) (CrossOrigin, error) { return parseEnum(raw, CrossOriginValues()) }

// DateTime is the machine-readable value of a time element: a date, time,
// global date and time, or duration.
// https://html.spec.whatwg.org/multipage/text-level-semantics.html#attr-time-datetime
type DateTime string

func (DateTime) Name() string     { return "datetime" }
func (d DateTime) String() string { return string(d) }

type Decoding string

const (
	DecodingSync  Decoding = "sync"
	DecodingAsync Decoding = "async"
	DecodingAuto  Decoding = "auto"
)

func (Decoding) Name() string       { return "decoding" }
func (d Decoding) String() string   { return string(d) }
func (Decoding) Keywords() []string { return keywords(DecodingValues()) }

// DecodingValues lists every decoding keyword.
func DecodingValues() []Decoding {
	return []Decoding{DecodingSync, DecodingAsync, DecodingAuto}
}

func ParseDecoding(raw string) (Decoding, error) { return parseEnum(raw, DecodingValues()) }

// Download asks for the link target to be downloaded, suggesting the
// filename when not empty.
type Download webidl.DOMString

func (Download) Name() string     { return "download" }
func (d Download) String() string { return string(d) }

type Height string

func (Height) Name() string     { return "height" }
func (h Height) String() string { return string(h) }
func HeightInt(n int) Height    { return Height(formatInt(n)) }

// Href is the URL of a hyperlink or linked resource.
// https://html.spec.whatwg.org/multipage/links.html#attr-hyperlink-href
type Href webidl.USVString

func (Href) Name() string     { return "href" }
func (h Href) String() string { return string(h) }

type HrefLang webidl.DOMString

func (HrefLang) Name() string     { return "hreflang" }
func (h HrefLang) String() string { return string(h) }

// https://html.spec.whatwg.org/multipage/urls-and-fetching.html#lazy-loading-attributes
type Loading string

const (
	LoadingEager Loading = "eager"
	LoadingLazy  Loading = "lazy"
)

func (Loading) Name() string       { return "loading" }
func (l Loading) String() string   { return string(l) }
func (Loading) Keywords() []string { return keywords(LoadingValues()) }

// LoadingValues lists every loading keyword.
func LoadingValues() []Loading {
	return []Loading{LoadingEager, LoadingLazy}
}

func ParseLoading(raw string) (Loading, error) { return parseEnum(raw, LoadingValues()) }

// MIMEType is the type attribute of link, script and source elements.
type MIMEType webidl.DOMString

func (MIMEType) Name() string     { return "type" }
func (m MIMEType) String() string { return string(m) }

// https://w3c.github.io/webappsec-referrer-policy/#referrer-policies
type ReferrerPolicy string

const (
	ReferrerPolicyEmpty                       ReferrerPolicy = ""
	ReferrerPolicyNoReferrer                  ReferrerPolicy = "no-referrer"
	ReferrerPolicyNoReferrerWhenDowngrade     ReferrerPolicy = "no-referrer-when-downgrade"
	ReferrerPolicySameOrigin                  ReferrerPolicy = "same-origin"
	ReferrerPolicyOrigin                      ReferrerPolicy = "origin"
	ReferrerPolicyStrictOrigin                ReferrerPolicy = "strict-origin"
	ReferrerPolicyOriginWhenCrossOrigin       ReferrerPolicy = "origin-when-cross-origin"
	ReferrerPolicyStrictOriginWhenCrossOrigin ReferrerPolicy = "strict-origin-when-cross-origin"
	ReferrerPolicyUnsafeURL                   ReferrerPolicy = "unsafe-url"
)

func (ReferrerPolicy) Name() string       { return "referrerpolicy" }
func (r ReferrerPolicy) String() string   { return string(r) }
func (ReferrerPolicy) Keywords() []string { return keywords(ReferrerPolicyValues()) }

// ReferrerPolicyValues lists every referrerpolicy keyword.
func ReferrerPolicyValues() []ReferrerPolicy {
	return []ReferrerPolicy{ReferrerPolicyEmpty, ReferrerPolicyNoReferrer, ReferrerPolicyNoReferrerWhenDowngrade, ReferrerPolicySameOrigin, ReferrerPolicyOrigin, ReferrerPolicyStrictOrigin, ReferrerPolicyOriginWhenCrossOrigin, ReferrerPolicyStrictOriginWhenCrossOrigin, ReferrerPolicyUnsafeURL}
}

func ParseReferrerPolicy(raw string) (ReferrerPolicy, error) { return parseEnum(raw, ReferrerPolicyValues()) }

// Rel is the space-separated list of link types.
// https://html.spec.whatwg.org/multipage/links.html#linkTypes
type Rel webidl.DOMString

func (Rel) Name() string     { return "rel" }
func (r Rel) String() string { return string(r) }

type Src webidl.USVString

func (Src) Name() string     { return "src" }
func (s Src) String() string { return string(s) }

type Width string

func (Width) Name() string     { return "width" }
func (w Width) String() string { return string(w) }
func WidthInt(n int) Width     { return Width(formatInt(n)) }
