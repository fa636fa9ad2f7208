package element

import "github.com/heathj/htmlspec/html/attr"

// Meta is metadata that no other element covers. Exactly one of MetaName,
// HTTPEquiv, Charset or ItemProp is expected to be set; that is not checked.
// https://html.spec.whatwg.org/multipage/semantics.html#the-meta-element
type Meta struct {
	Global

	Charset   *attr.Charset
	Content   *attr.Content
	HTTPEquiv *attr.HTTPEquiv
	Media     *attr.Media
	MetaName  *attr.MetaName
}

func (Meta) Name() string                   { return "meta" }
func (m Meta) Attributes() []attr.Attribute { return attributesOf(m) }

func (m *Meta) SetCharset(v attr.Charset)     { m.Charset = &v }
func (m *Meta) SetContent(v attr.Content)     { m.Content = &v }
func (m *Meta) SetHTTPEquiv(v attr.HTTPEquiv) { m.HTTPEquiv = &v }
func (m *Meta) SetMetaName(v attr.MetaName)   { m.MetaName = &v }

// https://html.spec.whatwg.org/multipage/semantics.html#the-link-element
type Link struct {
	Global

	Href           *attr.Href
	Rel            *attr.Rel
	Media          *attr.Media
	HrefLang       *attr.HrefLang
	Type           *attr.MIMEType
	CrossOrigin    *attr.CrossOrigin
	Integrity      *attr.Integrity
	ReferrerPolicy *attr.ReferrerPolicy
}

func (Link) Name() string                   { return "link" }
func (l Link) Attributes() []attr.Attribute { return attributesOf(l) }

// https://html.spec.whatwg.org/multipage/scripting.html#the-script-element
type Script struct {
	Global

	Src            *attr.Src
	Type           *attr.MIMEType
	Async          *attr.Async
	Defer          *attr.Defer
	CrossOrigin    *attr.CrossOrigin
	Integrity      *attr.Integrity
	ReferrerPolicy *attr.ReferrerPolicy
}

func (Script) Name() string                   { return "script" }
func (s Script) Attributes() []attr.Attribute { return attributesOf(s) }
