package element

import "github.com/heathj/htmlspec/html/attr"

// HTML is the root of a document.
// https://html.spec.whatwg.org/multipage/semantics.html#the-html-element
type HTML struct {
	Global
}

func (HTML) Name() string                   { return "html" }
func (h HTML) Attributes() []attr.Attribute { return attributesOf(h) }

// https://html.spec.whatwg.org/multipage/semantics.html#the-head-element
type Head struct {
	Global
}

func (Head) Name() string                   { return "head" }
func (h Head) Attributes() []attr.Attribute { return attributesOf(h) }

// https://html.spec.whatwg.org/multipage/sections.html#the-body-element
type Body struct {
	Global
}

func (Body) Name() string                   { return "body" }
func (b Body) Attributes() []attr.Attribute { return attributesOf(b) }

// https://html.spec.whatwg.org/multipage/semantics.html#the-title-element
type Title struct {
	Global
}

func (Title) Name() string                   { return "title" }
func (t Title) Attributes() []attr.Attribute { return attributesOf(t) }

// Div has no meaning of its own and groups its children for styling or
// scripting.
// https://html.spec.whatwg.org/multipage/grouping-content.html#the-div-element
type Div struct {
	Global
}

func (Div) Name() string                   { return "div" }
func (d Div) Attributes() []attr.Attribute { return attributesOf(d) }

// https://html.spec.whatwg.org/multipage/text-level-semantics.html#the-span-element
type Span struct {
	Global
}

func (Span) Name() string                   { return "span" }
func (s Span) Attributes() []attr.Attribute { return attributesOf(s) }

// P is a paragraph.
// https://html.spec.whatwg.org/multipage/grouping-content.html#the-p-element
type P struct {
	Global
}

func (P) Name() string                   { return "p" }
func (p P) Attributes() []attr.Attribute { return attributesOf(p) }

// https://html.spec.whatwg.org/multipage/sections.html#the-section-element
type Section struct {
	Global
}

func (Section) Name() string                   { return "section" }
func (s Section) Attributes() []attr.Attribute { return attributesOf(s) }

// Search holds the controls used to search or filter.
// https://html.spec.whatwg.org/multipage/grouping-content.html#the-search-element
type Search struct {
	Global
}

func (Search) Name() string                   { return "search" }
func (s Search) Attributes() []attr.Attribute { return attributesOf(s) }

// https://html.spec.whatwg.org/multipage/sections.html#the-article-element
type Article struct {
	Global
}

func (Article) Name() string                   { return "article" }
func (a Article) Attributes() []attr.Attribute { return attributesOf(a) }

// https://html.spec.whatwg.org/multipage/sections.html#the-header-element
type Header struct {
	Global
}

func (Header) Name() string                   { return "header" }
func (h Header) Attributes() []attr.Attribute { return attributesOf(h) }

// https://html.spec.whatwg.org/multipage/sections.html#the-footer-element
type Footer struct {
	Global
}

func (Footer) Name() string                   { return "footer" }
func (f Footer) Attributes() []attr.Attribute { return attributesOf(f) }

// https://html.spec.whatwg.org/multipage/grouping-content.html#the-main-element
type Main struct {
	Global
}

func (Main) Name() string                   { return "main" }
func (m Main) Attributes() []attr.Attribute { return attributesOf(m) }

// https://html.spec.whatwg.org/multipage/sections.html#the-nav-element
type Nav struct {
	Global
}

func (Nav) Name() string                   { return "nav" }
func (n Nav) Attributes() []attr.Attribute { return attributesOf(n) }

// https://html.spec.whatwg.org/multipage/sections.html#the-aside-element
type Aside struct {
	Global
}

func (Aside) Name() string                   { return "aside" }
func (a Aside) Attributes() []attr.Attribute { return attributesOf(a) }

// https://html.spec.whatwg.org/multipage/grouping-content.html#the-ul-element
type UL struct {
	Global
}

func (UL) Name() string                   { return "ul" }
func (u UL) Attributes() []attr.Attribute { return attributesOf(u) }

// https://html.spec.whatwg.org/multipage/grouping-content.html#the-ol-element
type OL struct {
	Global
}

func (OL) Name() string                   { return "ol" }
func (o OL) Attributes() []attr.Attribute { return attributesOf(o) }

// https://html.spec.whatwg.org/multipage/grouping-content.html#the-li-element
type LI struct {
	Global

	Value *attr.Value
}

func (LI) Name() string                   { return "li" }
func (l LI) Attributes() []attr.Attribute { return attributesOf(l) }

func (l *LI) SetValue(v attr.Value) { l.Value = &v }
