package element

import "github.com/heathj/htmlspec/html/attr"

// https://html.spec.whatwg.org/multipage/forms.html#the-form-element
type Form struct {
	Global

	Action       *attr.Action
	Autocomplete *attr.Autocomplete
	EncType      *attr.EncType
	Method       *attr.Method
	ControlName  *attr.ControlName
	NoValidate   *attr.NoValidate
	Target       *attr.Target
}

func (Form) Name() string                   { return "form" }
func (f Form) Attributes() []attr.Attribute { return attributesOf(f) }

func (f *Form) SetAction(v attr.Action)         { f.Action = &v }
func (f *Form) SetEncType(v attr.EncType)       { f.EncType = &v }
func (f *Form) SetMethod(v attr.Method)         { f.Method = &v }
func (f *Form) SetNoValidate(v attr.NoValidate) { f.NoValidate = &v }
func (f *Form) SetTarget(v attr.Target)         { f.Target = &v }

// Input is a typed data field. Which attributes apply depends on Type; a
// field that does not apply is still carried as given.
// https://html.spec.whatwg.org/multipage/input.html#the-input-element
type Input struct {
	Global
	FormOverrides

	Accept       *attr.Accept
	Alt          *attr.Alt
	Autocomplete *attr.Autocomplete
	Checked      *attr.Checked
	Disabled     *attr.Disabled
	Form         *attr.Form
	Height       *attr.Height
	List         *attr.List
	Max          *attr.Max
	MaxLength    *attr.MaxLength
	Min          *attr.Min
	MinLength    *attr.MinLength
	Multiple     *attr.Multiple
	ControlName  *attr.ControlName
	Pattern      *attr.Pattern
	Placeholder  *attr.Placeholder
	ReadOnly     *attr.ReadOnly
	Required     *attr.Required
	Size         *attr.Size
	Src          *attr.Src
	Step         *attr.Step
	Type         *attr.InputType
	Value        *attr.Value
	Width        *attr.Width
}

func (Input) Name() string                   { return "input" }
func (i Input) Attributes() []attr.Attribute { return attributesOf(i) }

func (i *Input) SetType(v attr.InputType)          { i.Type = &v }
func (i *Input) SetControlName(v attr.ControlName) { i.ControlName = &v }
func (i *Input) SetValue(v attr.Value)             { i.Value = &v }
func (i *Input) SetMin(v attr.Min)                 { i.Min = &v }
func (i *Input) SetMax(v attr.Max)                 { i.Max = &v }
func (i *Input) SetStep(v attr.Step)               { i.Step = &v }
func (i *Input) SetPlaceholder(v attr.Placeholder) { i.Placeholder = &v }
func (i *Input) SetRequired(v attr.Required)       { i.Required = &v }
func (i *Input) SetDisabled(v attr.Disabled)       { i.Disabled = &v }
func (i *Input) SetChecked(v attr.Checked)         { i.Checked = &v }

// https://html.spec.whatwg.org/multipage/form-elements.html#the-button-element
type Button struct {
	Global
	FormOverrides

	Disabled    *attr.Disabled
	Form        *attr.Form
	ControlName *attr.ControlName
	Type        *attr.ButtonType
	Value       *attr.Value
}

func (Button) Name() string                   { return "button" }
func (b Button) Attributes() []attr.Attribute { return attributesOf(b) }

func (b *Button) SetType(v attr.ButtonType)         { b.Type = &v }
func (b *Button) SetControlName(v attr.ControlName) { b.ControlName = &v }
func (b *Button) SetValue(v attr.Value)             { b.Value = &v }
func (b *Button) SetDisabled(v attr.Disabled)       { b.Disabled = &v }

// https://html.spec.whatwg.org/multipage/forms.html#the-label-element
type Label struct {
	Global

	For  *attr.For
	Form *attr.Form
}

func (Label) Name() string                   { return "label" }
func (l Label) Attributes() []attr.Attribute { return attributesOf(l) }

func (l *Label) SetFor(v attr.For) { l.For = &v }

// https://html.spec.whatwg.org/multipage/form-elements.html#the-textarea-element
type TextArea struct {
	Global

	Autocomplete *attr.Autocomplete
	Cols         *attr.Cols
	Disabled     *attr.Disabled
	Form         *attr.Form
	MaxLength    *attr.MaxLength
	MinLength    *attr.MinLength
	ControlName  *attr.ControlName
	Placeholder  *attr.Placeholder
	ReadOnly     *attr.ReadOnly
	Required     *attr.Required
	Rows         *attr.Rows
	Wrap         *attr.Wrap
}

func (TextArea) Name() string                   { return "textarea" }
func (t TextArea) Attributes() []attr.Attribute { return attributesOf(t) }

// https://html.spec.whatwg.org/multipage/form-elements.html#the-select-element
type Select struct {
	Global

	Autocomplete *attr.Autocomplete
	Disabled     *attr.Disabled
	Form         *attr.Form
	Multiple     *attr.Multiple
	ControlName  *attr.ControlName
	Required     *attr.Required
	Size         *attr.Size
}

func (Select) Name() string                   { return "select" }
func (s Select) Attributes() []attr.Attribute { return attributesOf(s) }

// https://html.spec.whatwg.org/multipage/form-elements.html#the-option-element
type Option struct {
	Global

	Disabled *attr.Disabled
	Label    *attr.Label
	Selected *attr.Selected
	Value    *attr.Value
}

func (Option) Name() string                   { return "option" }
func (o Option) Attributes() []attr.Attribute { return attributesOf(o) }

func (o *Option) SetValue(v attr.Value)       { o.Value = &v }
func (o *Option) SetSelected(v attr.Selected) { o.Selected = &v }
