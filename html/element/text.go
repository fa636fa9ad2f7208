package element

import "github.com/heathj/htmlspec/html/attr"

// BlockQuote is a section quoted from another source, optionally naming
// the source in Cite.
// https://html.spec.whatwg.org/multipage/grouping-content.html#the-blockquote-element
type BlockQuote struct {
	Global

	Cite *attr.Cite
}

func (BlockQuote) Name() string                   { return "blockquote" }
func (b BlockQuote) Attributes() []attr.Attribute { return attributesOf(b) }

func (b *BlockQuote) SetCite(v attr.Cite) { b.Cite = &v }

// https://html.spec.whatwg.org/multipage/text-level-semantics.html#the-q-element
type Q struct {
	Global

	Cite *attr.Cite
}

func (Q) Name() string                   { return "q" }
func (q Q) Attributes() []attr.Attribute { return attributesOf(q) }

func (q *Q) SetCite(v attr.Cite) { q.Cite = &v }

// Time represents its contents along with a machine-readable form in
// DateTime.
// https://html.spec.whatwg.org/multipage/text-level-semantics.html#the-time-element
type Time struct {
	Global

	DateTime *attr.DateTime
}

func (Time) Name() string                   { return "time" }
func (t Time) Attributes() []attr.Attribute { return attributesOf(t) }

func (t *Time) SetDateTime(v attr.DateTime) { t.DateTime = &v }

// A is a hyperlink when Href is set, otherwise a placeholder link.
// https://html.spec.whatwg.org/multipage/text-level-semantics.html#the-a-element
type A struct {
	Global

	Href           *attr.Href
	Target         *attr.Target
	Download       *attr.Download
	Rel            *attr.Rel
	HrefLang       *attr.HrefLang
	Type           *attr.MIMEType
	ReferrerPolicy *attr.ReferrerPolicy
}

func (A) Name() string                   { return "a" }
func (a A) Attributes() []attr.Attribute { return attributesOf(a) }

func (a *A) SetHref(v attr.Href)         { a.Href = &v }
func (a *A) SetTarget(v attr.Target)     { a.Target = &v }
func (a *A) SetDownload(v attr.Download) { a.Download = &v }
func (a *A) SetRel(v attr.Rel)           { a.Rel = &v }
