package attr

import "github.com/heathj/htmlspec/html/webidl"

// AccessKey is a space-separated list of keyboard shortcuts that activate
// or focus the element.
// https://html.spec.whatwg.org/multipage/interaction.html#the-accesskey-attribute
type AccessKey webidl.DOMString

func (AccessKey) Name() string     { return "accesskey" }
func (a AccessKey) String() string { return string(a) }

// Autocapitalize controls how text typed on a virtual keyboard is capitalized.
// https://html.spec.whatwg.org/multipage/interaction.html#attr-autocapitalize
type Autocapitalize string

const (
	AutocapitalizeOff        Autocapitalize = "off"
	AutocapitalizeNone       Autocapitalize = "none"
	AutocapitalizeOn         Autocapitalize = "on"
	AutocapitalizeSentences  Autocapitalize = "sentences"
	AutocapitalizeWords      Autocapitalize = "words"
	AutocapitalizeCharacters Autocapitalize = "characters"
)

func (Autocapitalize) Name() string       { return "autocapitalize" }
func (a Autocapitalize) String() string   { return string(a) }
func (Autocapitalize) Keywords() []string { return keywords(AutocapitalizeValues()) }

// AutocapitalizeValues lists every autocapitalize keyword.
func AutocapitalizeValues() []Autocapitalize {
	return []Autocapitalize{AutocapitalizeOff, AutocapitalizeNone, AutocapitalizeOn, AutocapitalizeSentences, AutocapitalizeWords, AutocapitalizeCharacters}
}

func ParseAutocapitalize(raw string) (Autocapitalize, error) { return parseEnum(raw, AutocapitalizeValues()) }

// https://html.spec.whatwg.org/multipage/interaction.html#attr-autocorrect
type Autocorrect string

const (
	AutocorrectOn  Autocorrect = "on"
	AutocorrectOff Autocorrect = "off"
)

func (Autocorrect) Name() string       { return "autocorrect" }
func (a Autocorrect) String() string   { return string(a) }
func (Autocorrect) Keywords() []string { return keywords(AutocorrectValues()) }

// AutocorrectValues lists every autocorrect keyword.
func AutocorrectValues() []Autocorrect {
	return []Autocorrect{AutocorrectOn, AutocorrectOff}
}

func ParseAutocorrect(raw string) (Autocorrect, error) { return parseEnum(raw, AutocorrectValues()) }

// Autofocus marks the element to be focused when the page loads or, inside a
// dialog or popover, when that is shown.
type Autofocus bool

func (Autofocus) Name() string     { return "autofocus" }
func (a Autofocus) String() string { return renderBool(bool(a)) }

// Class is the space-separated list of classes of the element.
// https://html.spec.whatwg.org/multipage/dom.html#classes
type Class webidl.DOMString

func (Class) Name() string     { return "class" }
func (c Class) String() string { return string(c) }

// ContentEditable makes the element editable by the user. The empty keyword
// means the same as true; inherit is the state of an element without the
// attribute.
// https://html.spec.whatwg.org/multipage/interaction.html#attr-contenteditable
type ContentEditable string

const (
	ContentEditableTrue          ContentEditable = "true"
	ContentEditableEmpty         ContentEditable = ""
	ContentEditableFalse         ContentEditable = "false"
	ContentEditablePlaintextOnly ContentEditable = "plaintext-only"
	ContentEditableInherit       ContentEditable = "inherit"
)

func (ContentEditable) Name() string       { return "contenteditable" }
func (c ContentEditable) String() string   { return string(c) }
func (ContentEditable) Keywords() []string { return keywords(ContentEditableValues()) }

// ContentEditableValues lists every contenteditable keyword.
func ContentEditableValues() []ContentEditable {
	return []ContentEditable{ContentEditableTrue, ContentEditableEmpty, ContentEditableFalse, ContentEditablePlaintextOnly, ContentEditableInherit}
}

func ParseContentEditable(raw string) (ContentEditable, error) { return parseEnum(raw, ContentEditableValues()) }

// Dir is the text directionality of the element's content.
// https://html.spec.whatwg.org/multipage/dom.html#the-dir-attribute
type Dir string

const (
	DirLTR  Dir = "ltr"
	DirRTL  Dir = "rtl"
	DirAuto Dir = "auto"
)

func (Dir) Name() string       { return "dir" }
func (d Dir) String() string   { return string(d) }
func (Dir) Keywords() []string { return keywords(DirValues()) }

// DirValues lists every dir keyword.
func DirValues() []Dir {
	return []Dir{DirLTR, DirRTL, DirAuto}
}

func ParseDir(raw string) (Dir, error) { return parseEnum(raw, DirValues()) }

// https://html.spec.whatwg.org/multipage/dnd.html#the-draggable-attribute
type Draggable string

const (
	DraggableTrue  Draggable = "true"
	DraggableFalse Draggable = "false"
)

func (Draggable) Name() string       { return "draggable" }
func (d Draggable) String() string   { return string(d) }
func (Draggable) Keywords() []string { return keywords(DraggableValues()) }

// DraggableValues lists every draggable keyword.
func DraggableValues() []Draggable {
	return []Draggable{DraggableTrue, DraggableFalse}
}

func ParseDraggable(raw string) (Draggable, error) { return parseEnum(raw, DraggableValues()) }

// EnterKeyHint picks the label of the enter key on virtual keyboards.
// https://html.spec.whatwg.org/multipage/interaction.html#attr-enterkeyhint
type EnterKeyHint string

const (
	EnterKeyHintEnter    EnterKeyHint = "enter"
	EnterKeyHintDone     EnterKeyHint = "done"
	EnterKeyHintGo       EnterKeyHint = "go"
	EnterKeyHintNext     EnterKeyHint = "next"
	EnterKeyHintPrevious EnterKeyHint = "previous"
	EnterKeyHintSearch   EnterKeyHint = "search"
	EnterKeyHintSend     EnterKeyHint = "send"
)

func (EnterKeyHint) Name() string       { return "enterkeyhint" }
func (e EnterKeyHint) String() string   { return string(e) }
func (EnterKeyHint) Keywords() []string { return keywords(EnterKeyHintValues()) }

// EnterKeyHintValues lists every enterkeyhint keyword.
func EnterKeyHintValues() []EnterKeyHint {
	return []EnterKeyHint{EnterKeyHintEnter, EnterKeyHintDone, EnterKeyHintGo, EnterKeyHintNext, EnterKeyHintPrevious, EnterKeyHintSearch, EnterKeyHintSend}
}

func ParseEnterKeyHint(raw string) (EnterKeyHint, error) { return parseEnum(raw, EnterKeyHintValues()) }

// https://html.spec.whatwg.org/multipage/interaction.html#the-hidden-attribute
type Hidden bool

func (Hidden) Name() string     { return "hidden" }
func (h Hidden) String() string { return renderBool(bool(h)) }

// ID is the element's unique identifier within its tree.
// https://html.spec.whatwg.org/multipage/dom.html#the-id-attribute
type ID webidl.DOMString

func (ID) Name() string     { return "id" }
func (i ID) String() string { return string(i) }

// https://html.spec.whatwg.org/multipage/interaction.html#the-inert-attribute
type Inert bool

func (Inert) Name() string     { return "inert" }
func (i Inert) String() string { return renderBool(bool(i)) }

// InputMode hints which virtual keyboard to show while editing the element.
// https://html.spec.whatwg.org/multipage/interaction.html#attr-inputmode
type InputMode string

const (
	InputModeNone    InputMode = "none"
	InputModeText    InputMode = "text"
	InputModeTel     InputMode = "tel"
	InputModeURL     InputMode = "url"
	InputModeEmail   InputMode = "email"
	InputModeNumeric InputMode = "numeric"
	InputModeDecimal InputMode = "decimal"
	InputModeSearch  InputMode = "search"
)

func (InputMode) Name() string       { return "inputmode" }
func (i InputMode) String() string   { return string(i) }
func (InputMode) Keywords() []string { return keywords(InputModeValues()) }

// InputModeValues lists every inputmode keyword.
func InputModeValues() []InputMode {
	return []InputMode{InputModeNone, InputModeText, InputModeTel, InputModeURL, InputModeEmail, InputModeNumeric, InputModeDecimal, InputModeSearch}
}

func ParseInputMode(raw string) (InputMode, error) { return parseEnum(raw, InputModeValues()) }

// Lang is a BCP 47 language tag, or empty for unknown.
// https://html.spec.whatwg.org/multipage/dom.html#attr-lang
type Lang webidl.DOMString

func (Lang) Name() string     { return "lang" }
func (l Lang) String() string { return string(l) }

// Nonce is the cryptographic nonce checked by a Content Security Policy.
// https://html.spec.whatwg.org/multipage/urls-and-fetching.html#attr-nonce
type Nonce webidl.DOMString

func (Nonce) Name() string     { return "nonce" }
func (n Nonce) String() string { return string(n) }

// Part is the space-separated list of shadow part names of the element.
// https://drafts.csswg.org/css-shadow-parts/#part-attr
type Part webidl.DOMString

func (Part) Name() string     { return "part" }
func (p Part) String() string { return string(p) }

// https://html.spec.whatwg.org/multipage/popover.html#attr-popover
type Popover string

const (
	PopoverAuto   Popover = "auto"
	PopoverEmpty  Popover = ""
	PopoverManual Popover = "manual"
)

func (Popover) Name() string       { return "popover" }
func (p Popover) String() string   { return string(p) }
func (Popover) Keywords() []string { return keywords(PopoverValues()) }

// PopoverValues lists every popover keyword.
func PopoverValues() []Popover {
	return []Popover{PopoverAuto, PopoverEmpty, PopoverManual}
}

func ParsePopover(raw string) (Popover, error) { return parseEnum(raw, PopoverValues()) }

// https://dom.spec.whatwg.org/#dom-element-slot
type Slot webidl.DOMString

func (Slot) Name() string     { return "slot" }
func (s Slot) String() string { return string(s) }

// Spellcheck turns spelling and grammar checking on or off for editable text.
// https://html.spec.whatwg.org/multipage/interaction.html#attr-spellcheck
type Spellcheck bool

func (Spellcheck) Name() string     { return "spellcheck" }
func (s Spellcheck) String() string { return renderBool(bool(s)) }

// Style holds CSS declarations applied to the element. The text is not
// checked.
// https://html.spec.whatwg.org/multipage/dom.html#the-style-attribute
type Style webidl.DOMString

func (Style) Name() string     { return "style" }
func (s Style) String() string { return string(s) }

// TabIndex sets the element's position in sequential focus navigation.
// https://html.spec.whatwg.org/multipage/interaction.html#attr-tabindex
type TabIndex string

func (TabIndex) Name() string     { return "tabindex" }
func (t TabIndex) String() string { return string(t) }
func TabIndexInt(n int) TabIndex  { return TabIndex(formatInt(n)) }

// Title is advisory information for the element, typically shown as a
// tooltip.
type Title webidl.DOMString

func (Title) Name() string     { return "title" }
func (t Title) String() string { return string(t) }

// https://html.spec.whatwg.org/multipage/dom.html#attr-translate
type Translate string

const (
	TranslateYes Translate = "yes"
	TranslateNo  Translate = "no"
)

func (Translate) Name() string       { return "translate" }
func (t Translate) String() string   { return string(t) }
func (Translate) Keywords() []string { return keywords(TranslateValues()) }

// TranslateValues lists every translate keyword.
func TranslateValues() []Translate {
	return []Translate{TranslateYes, TranslateNo}
}

func ParseTranslate(raw string) (Translate, error) { return parseEnum(raw, TranslateValues()) }

// VirtualKeyboardPolicy controls whether the virtual keyboard is shown
// automatically on focus of editable content.
// https://w3c.github.io/virtual-keyboard/#the-virtualkeyboardpolicy-attribute
type VirtualKeyboardPolicy string

const (
	VirtualKeyboardPolicyAuto   VirtualKeyboardPolicy = "auto"
	VirtualKeyboardPolicyManual VirtualKeyboardPolicy = "manual"
)

func (VirtualKeyboardPolicy) Name() string       { return "virtualkeyboardpolicy" }
func (v VirtualKeyboardPolicy) String() string   { return string(v) }
func (VirtualKeyboardPolicy) Keywords() []string { return keywords(VirtualKeyboardPolicyValues()) }

// VirtualKeyboardPolicyValues lists every virtualkeyboardpolicy keyword.
func VirtualKeyboardPolicyValues() []VirtualKeyboardPolicy {
	return []VirtualKeyboardPolicy{VirtualKeyboardPolicyAuto, VirtualKeyboardPolicyManual}
}

func ParseVirtualKeyboardPolicy(raw string) (VirtualKeyboardPolicy, error) { return parseEnum(raw, VirtualKeyboardPolicyValues()) }

// https://html.spec.whatwg.org/multipage/interaction.html#attr-writingsuggestions
type WritingSuggestions string

const (
	WritingSuggestionsTrue  WritingSuggestions = "true"
	WritingSuggestionsFalse WritingSuggestions = "false"
	WritingSuggestionsEmpty WritingSuggestions = ""
)

func (WritingSuggestions) Name() string       { return "writingsuggestions" }
func (w WritingSuggestions) String() string   { return string(w) }
func (WritingSuggestions) Keywords() []string { return keywords(WritingSuggestionsValues()) }

// WritingSuggestionsValues lists every writingsuggestions keyword.
func WritingSuggestionsValues() []WritingSuggestions {
	return []WritingSuggestions{WritingSuggestionsTrue, WritingSuggestionsFalse, WritingSuggestionsEmpty}
}

func ParseWritingSuggestions(raw string) (WritingSuggestions, error) { return parseEnum(raw, WritingSuggestionsValues()) }
