package attr

import "github.com/heathj/htmlspec/html/webidl"

// Accept lists the file types a file upload control takes, comma separated.
type Accept string

func (Accept) Name() string     { return "accept" }
func (a Accept) String() string { return string(a) }

// Action is the URL a form submits to.
// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#attr-fs-action
type Action webidl.USVString

func (Action) Name() string     { return "action" }
func (a Action) String() string { return string(a) }

// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#attr-fe-autocomplete
type Autocomplete webidl.DOMString

const (
	AutocompleteOn  Autocomplete = "on"
	AutocompleteOff Autocomplete = "off"
)

func (Autocomplete) Name() string     { return "autocomplete" }
func (a Autocomplete) String() string { return string(a) }

type Checked bool

func (Checked) Name() string     { return "checked" }
func (c Checked) String() string { return renderBool(bool(c)) }

type Cols string

func (Cols) Name() string     { return "cols" }
func (c Cols) String() string { return string(c) }
func ColsInt(n int) Cols      { return Cols(formatInt(n)) }

// ControlName is the name of a form control, used in the form data set.
// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#attr-fe-name
type ControlName webidl.DOMString

func (ControlName) Name() string     { return "name" }
func (c ControlName) String() string { return string(c) }

type Disabled bool

func (Disabled) Name() string     { return "disabled" }
func (d Disabled) String() string { return renderBool(bool(d)) }

// EncType is the MIME type a form is encoded with on submission.
// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#attr-fs-enctype
type EncType string

const (
	EncTypeURLEncoded EncType = "application/x-www-form-urlencoded"
	EncTypeMultipart  EncType = "multipart/form-data"
	EncTypeTextPlain  EncType = "text/plain"
)

func (EncType) Name() string       { return "enctype" }
func (e EncType) String() string   { return string(e) }
func (EncType) Keywords() []string { return keywords(EncTypeValues()) }

// EncTypeValues lists every enctype keyword.
func EncTypeValues() []EncType {
	return []EncType{EncTypeURLEncoded, EncTypeMultipart, EncTypeTextPlain}
}

func ParseEncType(raw string) (EncType, error) { return parseEnum(raw, EncTypeValues()) }

// For is the ID of the labeled control.
type For webidl.DOMString

func (For) Name() string     { return "for" }
func (f For) String() string { return string(f) }

// Form associates a control with the form of that ID.
type Form webidl.DOMString

func (Form) Name() string     { return "form" }
func (f Form) String() string { return string(f) }

// FormAction overrides the action of the button's form.
// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#attr-fs-formaction
type FormAction webidl.USVString

func (FormAction) Name() string     { return "formaction" }
func (f FormAction) String() string { return string(f) }

// FormEncType overrides the enctype of the button's form.
// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#attr-fs-formenctype
type FormEncType string

const (
	FormEncTypeURLEncoded FormEncType = "application/x-www-form-urlencoded"
	FormEncTypeMultipart  FormEncType = "multipart/form-data"
	FormEncTypeTextPlain  FormEncType = "text/plain"
)

func (FormEncType) Name() string       { return "formenctype" }
func (f FormEncType) String() string   { return string(f) }
func (FormEncType) Keywords() []string { return keywords(FormEncTypeValues()) }

// FormEncTypeValues lists every formenctype keyword.
func FormEncTypeValues() []FormEncType {
	return []FormEncType{FormEncTypeURLEncoded, FormEncTypeMultipart, FormEncTypeTextPlain}
}

func ParseFormEncType(raw string) (FormEncType, error) { return parseEnum(raw, FormEncTypeValues()) }

// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#attr-fs-formmethod
type FormMethod string

const (
	FormMethodGet    FormMethod = "get"
	FormMethodPost   FormMethod = "post"
	FormMethodDialog FormMethod = "dialog"
)

func (FormMethod) Name() string       { return "formmethod" }
func (f FormMethod) String() string   { return string(f) }
func (FormMethod) Keywords() []string { return keywords(FormMethodValues()) }

// FormMethodValues lists every formmethod keyword.
func FormMethodValues() []FormMethod {
	return []FormMethod{FormMethodGet, FormMethodPost, FormMethodDialog}
}

func ParseFormMethod(raw string) (FormMethod, error) { return parseEnum(raw, FormMethodValues()) }

// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#attr-fs-formnovalidate
type FormNoValidate bool

func (FormNoValidate) Name() string     { return "formnovalidate" }
func (f FormNoValidate) String() string { return renderBool(bool(f)) }

// FormTarget overrides the navigable the button's form submits into.
type FormTarget webidl.DOMString

const (
	FormTargetSelf   FormTarget = "_self"
	FormTargetBlank  FormTarget = "_blank"
	FormTargetParent FormTarget = "_parent"
	FormTargetTop    FormTarget = "_top"
)

func (FormTarget) Name() string     { return "formtarget" }
func (f FormTarget) String() string { return string(f) }

// InputType is the type of an input element. It decides which of the
// other input attributes apply.
// https://html.spec.whatwg.org/multipage/input.html#attr-input-type
type InputType string

const (
	InputTypeHidden        InputType = "hidden"
	InputTypeText          InputType = "text"
	InputTypeSearch        InputType = "search"
	InputTypeTel           InputType = "tel"
	InputTypeURL           InputType = "url"
	InputTypeEmail         InputType = "email"
	InputTypePassword      InputType = "password"
	InputTypeDate          InputType = "date"
	InputTypeMonth         InputType = "month"
	InputTypeWeek          InputType = "week"
	InputTypeTime          InputType = "time"
	InputTypeDateTimeLocal InputType = "datetime-local"
	InputTypeNumber        InputType = "number"
	InputTypeRange         InputType = "range"
	InputTypeColor         InputType = "color"
	InputTypeCheckbox      InputType = "checkbox"
	InputTypeRadio         InputType = "radio"
	InputTypeFile          InputType = "file"
	InputTypeSubmit        InputType = "submit"
	InputTypeImage         InputType = "image"
	InputTypeReset         InputType = "reset"
	InputTypeButton        InputType = "button"
)

func (InputType) Name() string       { return "type" }
func (i InputType) String() string   { return string(i) }
func (InputType) Keywords() []string { return keywords(InputTypeValues()) }

// InputTypeValues lists every type keyword.
func InputTypeValues() []InputType {
	return []InputType{InputTypeHidden, InputTypeText, InputTypeSearch, InputTypeTel, InputTypeURL, InputTypeEmail, InputTypePassword, InputTypeDate, InputTypeMonth, InputTypeWeek, InputTypeTime, InputTypeDateTimeLocal, InputTypeNumber, InputTypeRange, InputTypeColor, InputTypeCheckbox, InputTypeRadio, InputTypeFile, InputTypeSubmit, InputTypeImage, InputTypeReset, InputTypeButton}
}

func ParseInputType(raw string) (InputType, error) { return parseEnum(raw, InputTypeValues()) }

// https://html.spec.whatwg.org/multipage/form-elements.html#attr-button-type
type ButtonType string

const (
	ButtonTypeSubmit ButtonType = "submit"
	ButtonTypeReset  ButtonType = "reset"
	ButtonTypeButton ButtonType = "button"
)

func (ButtonType) Name() string       { return "type" }
func (b ButtonType) String() string   { return string(b) }
func (ButtonType) Keywords() []string { return keywords(ButtonTypeValues()) }

// ButtonTypeValues lists every type keyword.
func ButtonTypeValues() []ButtonType {
	return []ButtonType{ButtonTypeSubmit, ButtonTypeReset, ButtonTypeButton}
}

func ParseButtonType(raw string) (ButtonType, error) { return parseEnum(raw, ButtonTypeValues()) }

type Label webidl.DOMString

func (Label) Name() string     { return "label" }
func (l Label) String() string { return string(l) }

// List is the ID of a datalist of suggestions.
type List webidl.DOMString

func (List) Name() string     { return "list" }
func (l List) String() string { return string(l) }

// Max is the upper bound of a range, number or date-like input.
// https://html.spec.whatwg.org/multipage/input.html#attr-input-max
type Max string

func (Max) Name() string     { return "max" }
func (m Max) String() string { return string(m) }
func MaxInt(n int) Max       { return Max(formatInt(n)) }
func MaxFloat(f float64) Max { return Max(formatFloat(f)) }

type MaxLength string

func (MaxLength) Name() string     { return "maxlength" }
func (m MaxLength) String() string { return string(m) }
func MaxLengthInt(n int) MaxLength { return MaxLength(formatInt(n)) }

// https://html.spec.whatwg.org/multipage/form-control-infrastructure.html#attr-fs-method
type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodDialog Method = "dialog"
)

func (Method) Name() string       { return "method" }
func (m Method) String() string   { return string(m) }
func (Method) Keywords() []string { return keywords(MethodValues()) }

// MethodValues lists every method keyword.
func MethodValues() []Method {
	return []Method{MethodGet, MethodPost, MethodDialog}
}

func ParseMethod(raw string) (Method, error) { return parseEnum(raw, MethodValues()) }

// Min is the lower bound of a range, number or date-like input.
// https://html.spec.whatwg.org/multipage/input.html#attr-input-min
type Min string

func (Min) Name() string     { return "min" }
func (m Min) String() string { return string(m) }
func MinInt(n int) Min       { return Min(formatInt(n)) }
func MinFloat(f float64) Min { return Min(formatFloat(f)) }

type MinLength string

func (MinLength) Name() string     { return "minlength" }
func (m MinLength) String() string { return string(m) }
func MinLengthInt(n int) MinLength { return MinLength(formatInt(n)) }

type Multiple bool

func (Multiple) Name() string     { return "multiple" }
func (m Multiple) String() string { return renderBool(bool(m)) }

// NoValidate skips constraint validation when the form is submitted.
type NoValidate bool

func (NoValidate) Name() string     { return "novalidate" }
func (n NoValidate) String() string { return renderBool(bool(n)) }

// Pattern is a regular expression the control's value must match. It is
// stored as written.
type Pattern string

func (Pattern) Name() string     { return "pattern" }
func (p Pattern) String() string { return string(p) }

type Placeholder webidl.DOMString

func (Placeholder) Name() string     { return "placeholder" }
func (p Placeholder) String() string { return string(p) }

type ReadOnly bool

func (ReadOnly) Name() string     { return "readonly" }
func (r ReadOnly) String() string { return renderBool(bool(r)) }

type Required bool

func (Required) Name() string     { return "required" }
func (r Required) String() string { return renderBool(bool(r)) }

type Rows string

func (Rows) Name() string     { return "rows" }
func (r Rows) String() string { return string(r) }
func RowsInt(n int) Rows      { return Rows(formatInt(n)) }

type Selected bool

func (Selected) Name() string     { return "selected" }
func (s Selected) String() string { return renderBool(bool(s)) }

type Size string

func (Size) Name() string     { return "size" }
func (s Size) String() string { return string(s) }
func SizeInt(n int) Size      { return Size(formatInt(n)) }

// Step is the granularity of allowed values, or "any".
type Step string

const (
	StepAny Step = "any"
)

func (Step) Name() string      { return "step" }
func (s Step) String() string  { return string(s) }
func StepInt(n int) Step       { return Step(formatInt(n)) }
func StepFloat(f float64) Step { return Step(formatFloat(f)) }

// Target names the navigable a link or form opens into.
// https://html.spec.whatwg.org/multipage/document-sequences.html#valid-navigable-target-name-or-keyword
type Target webidl.DOMString

const (
	TargetSelf   Target = "_self"
	TargetBlank  Target = "_blank"
	TargetParent Target = "_parent"
	TargetTop    Target = "_top"
)

func (Target) Name() string     { return "target" }
func (t Target) String() string { return string(t) }

// Value is the value of a form control or option.
type Value string

func (Value) Name() string       { return "value" }
func (v Value) String() string   { return string(v) }
func ValueInt(n int) Value       { return Value(formatInt(n)) }
func ValueFloat(f float64) Value { return Value(formatFloat(f)) }

type Wrap string

const (
	WrapSoft Wrap = "soft"
	WrapHard Wrap = "hard"
)

func (Wrap) Name() string       { return "wrap" }
func (w Wrap) String() string   { return string(w) }
func (Wrap) Keywords() []string { return keywords(WrapValues()) }

// WrapValues lists every wrap keyword.
func WrapValues() []Wrap {
	return []Wrap{WrapSoft, WrapHard}
}

func ParseWrap(raw string) (Wrap, error) { return parseEnum(raw, WrapValues()) }
