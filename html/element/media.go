package element

import "github.com/heathj/htmlspec/html/attr"

// https://html.spec.whatwg.org/multipage/embedded-content.html#the-img-element
type Img struct {
	Global

	Alt            *attr.Alt
	Src            *attr.Src
	Width          *attr.Width
	Height         *attr.Height
	Loading        *attr.Loading
	Decoding       *attr.Decoding
	CrossOrigin    *attr.CrossOrigin
	ReferrerPolicy *attr.ReferrerPolicy
}

func (Img) Name() string                   { return "img" }
func (i Img) Attributes() []attr.Attribute { return attributesOf(i) }

func (i *Img) SetAlt(v attr.Alt)         { i.Alt = &v }
func (i *Img) SetSrc(v attr.Src)         { i.Src = &v }
func (i *Img) SetWidth(v attr.Width)     { i.Width = &v }
func (i *Img) SetHeight(v attr.Height)   { i.Height = &v }
func (i *Img) SetLoading(v attr.Loading) { i.Loading = &v }
