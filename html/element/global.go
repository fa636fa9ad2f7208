package element

import "github.com/heathj/htmlspec/html/attr"

// Global holds the attributes every HTML element accepts. It is embedded
// first in each element struct.
// https://html.spec.whatwg.org/multipage/dom.html#global-attributes
type Global struct {
	AccessKey             *attr.AccessKey
	Autocapitalize        *attr.Autocapitalize
	Autocorrect           *attr.Autocorrect
	Autofocus             *attr.Autofocus
	Class                 *attr.Class
	ContentEditable       *attr.ContentEditable
	Dir                   *attr.Dir
	Draggable             *attr.Draggable
	EnterKeyHint          *attr.EnterKeyHint
	Hidden                *attr.Hidden
	ID                    *attr.ID
	Inert                 *attr.Inert
	InputMode             *attr.InputMode
	ItemID                *attr.ItemID
	ItemProp              *attr.ItemProp
	ItemRef               *attr.ItemRef
	ItemScope             *attr.ItemScope
	ItemType              *attr.ItemType
	Lang                  *attr.Lang
	Nonce                 *attr.Nonce
	Part                  *attr.Part
	Popover               *attr.Popover
	Slot                  *attr.Slot
	Spellcheck            *attr.Spellcheck
	Style                 *attr.Style
	TabIndex              *attr.TabIndex
	Title                 *attr.Title
	Translate             *attr.Translate
	VirtualKeyboardPolicy *attr.VirtualKeyboardPolicy
	WritingSuggestions    *attr.WritingSuggestions
}

func (g *Global) SetID(v attr.ID)         { g.ID = &v }
func (g *Global) SetClass(v attr.Class)   { g.Class = &v }
func (g *Global) SetStyle(v attr.Style)   { g.Style = &v }
func (g *Global) SetLang(v attr.Lang)     { g.Lang = &v }
func (g *Global) SetTitle(v attr.Title)   { g.Title = &v }
func (g *Global) SetDir(v attr.Dir)       { g.Dir = &v }
func (g *Global) SetHidden(v attr.Hidden) { g.Hidden = &v }
func (g *Global) SetNonce(v attr.Nonce)   { g.Nonce = &v }

// FormOverrides are the submit button attributes that replace the ones of
// the form being submitted. Combinations are not checked.
// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#form-submission-attributes
type FormOverrides struct {
	FormAction     *attr.FormAction
	FormEncType    *attr.FormEncType
	FormMethod     *attr.FormMethod
	FormNoValidate *attr.FormNoValidate
	FormTarget     *attr.FormTarget
}

func (o *FormOverrides) SetFormAction(v attr.FormAction)         { o.FormAction = &v }
func (o *FormOverrides) SetFormEncType(v attr.FormEncType)       { o.FormEncType = &v }
func (o *FormOverrides) SetFormMethod(v attr.FormMethod)         { o.FormMethod = &v }
func (o *FormOverrides) SetFormNoValidate(v attr.FormNoValidate) { o.FormNoValidate = &v }
func (o *FormOverrides) SetFormTarget(v attr.FormTarget)         { o.FormTarget = &v }
