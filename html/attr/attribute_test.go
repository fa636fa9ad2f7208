package attr

import (
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/heathj/htmlspec/html/webidl"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roundTripInputs = []string{
	"",
	" ",
	"3",
	"  padded  ",
	"héllo wörld",
	"<b>&amp;\"quoted\"</b>",
	"line\nbreak",
	"\x00",
}

func TestStringRoundTrip(t *testing.T) {
	for _, in := range roundTripInputs {
		assert.Equal(t, in, New[Min](in).String())
		assert.Equal(t, in, New[FormAction](in).String())
		assert.Equal(t, in, New[Class](in).String())
		assert.Equal(t, in, New[Style](in).String())
		assert.Equal(t, in, New[Nonce](in).String())
		assert.Equal(t, in, New[ItemID](in).String())
		assert.Equal(t, in, Min(in).String())
	}
}

func TestBoolRoundTrip(t *testing.T) {
	assert.Equal(t, "true", NewBool[Disabled](true).String())
	assert.Equal(t, "false", NewBool[Disabled](false).String())
	assert.Equal(t, "true", Spellcheck(true).String())
	assert.Equal(t, "false", ItemScope(false).String())
	assert.True(t, Bool(Required(true)))
	assert.False(t, Bool(Required(false)))
}

func TestValues(t *testing.T) {
	values := Values[Spellcheck]()
	require.Len(t, values, 2)
	assert.Equal(t, Spellcheck(true), values[0])
	assert.Equal(t, Spellcheck(false), values[1])
	assert.NotEqual(t, values[0], values[1])

	for _, v := range Values[FormNoValidate]() {
		assert.Equal(t, "formnovalidate", v.Name())
	}
}

var nameTests = []struct {
	attr     Named
	expected string
}{
	{FormAction(""), "formaction"},
	{FormEncType(""), "formenctype"},
	{Min(""), "min"},
	{Class(""), "class"},
	{ItemProp(""), "itemprop"},
	{ItemType(""), "itemtype"},
	{ItemID(""), "itemid"},
	{Part(""), "part"},
	{Style(""), "style"},
	{Nonce(""), "nonce"},
	{VirtualKeyboardPolicy(""), "virtualkeyboardpolicy"},
	{WritingSuggestions(""), "writingsuggestions"},
	{ContentEditable(""), "contenteditable"},
	{Autocapitalize(""), "autocapitalize"},
	{Autocorrect(""), "autocorrect"},
	{Draggable(""), "draggable"},
	{InputMode(""), "inputmode"},
	{HTTPEquiv(""), "http-equiv"},
	{ControlName(""), "name"},
	{MetaName(""), "name"},
	{InputType(""), "type"},
	{Spellcheck(false), "spellcheck"},
	{NoValidate(false), "novalidate"},
}

func TestNames(t *testing.T) {
	for _, tt := range nameTests {
		assert.Equal(t, tt.expected, tt.attr.Name())
	}
}

func TestNameInvariance(t *testing.T) {
	assert.Equal(t, "min", NameOf[Min]())
	for _, in := range roundTripInputs {
		assert.Equal(t, NameOf[Min](), Min(in).Name())
		assert.Equal(t, NameOf[Class](), Class(in).Name())
	}
	for _, b := range Values[Hidden]() {
		assert.Equal(t, NameOf[Hidden](), b.Name())
	}
}

func TestLiteralConstruction(t *testing.T) {
	var lit Min = "10"
	assert.Equal(t, New[Min]("10"), lit)
	assert.Equal(t, lit, MinInt(10))
	assert.Equal(t, lit.String(), MinInt(10).String())

	assert.Equal(t, Max("2.5"), MaxFloat(2.5))
	assert.Equal(t, Step("0.01"), StepFloat(0.01))
	assert.Equal(t, Value("-3"), ValueInt(-3))
	assert.Equal(t, TabIndex("-1"), TabIndexInt(-1))

	var on Required = true
	assert.Equal(t, NewBool[Required](true), on)
	assert.Equal(t, on.String(), Required(true).String())
}

var dateTests = []struct {
	got      Attribute
	expected string
}{
	{MinDate(2023, 1, 1), "2023-01-01"},
	{MinWeek(2023, 1), "2023-W01"},
	{MinTime(9, 0), "09:00"},
	{MinMonth(2023, 7), "2023-07"},
	{MinDateTimeLocal(2023, 12, 31, 23, 59), "2023-12-31T23:59"},
	{MaxDate(999, 2, 3), "0999-02-03"},
	{MaxWeek(2024, 52), "2024-W52"},
	{ValueTime(14, 5), "14:05"},
	{DateTimeDate(2011, 11, 18), "2011-11-18"},
	// out of range components are written as given
	{MaxDate(2023, 13, 32), "2023-13-32"},
	{MaxWeek(2023, 54), "2023-W54"},
	{MinTime(25, 61), "25:61"},
}

func TestDateFormatting(t *testing.T) {
	for _, tt := range dateTests {
		assert.Equal(t, tt.expected, tt.got.String())
	}
}

func TestDateFromTime(t *testing.T) {
	ts := time.Date(2021, time.January, 4, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, Min("2021-01-04"), MinDateFromTime(ts))
	assert.Equal(t, Max("2021-W01"), MaxWeekFromTime(ts))
	assert.Equal(t, Min("07:30"), MinTimeFromTime(ts))
	assert.Equal(t, DateTime("2021-01-04T07:30:00Z"), DateTimeFromTime(ts))

	// ISO week-numbering year differs from the calendar year here
	assert.Equal(t, Min("2020-W53"), MinWeekFromTime(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDurationOf(t *testing.T) {
	assert.Equal(t, DateTime("PT0S"), DurationOf(0))
	assert.Equal(t, DateTime("PT1H30M"), DurationOf(90*time.Minute))
	assert.Equal(t, DateTime("PT4H18M3S"), DurationOf(4*time.Hour+18*time.Minute+3*time.Second))
	assert.Equal(t, DateTime("PT45S"), DurationOf(-45*time.Second))
	assert.Equal(t, DurationOf(90*time.Minute), DurationOf(-90*time.Minute))
	assert.Equal(t, DateTime("PT2562047H47M16S"), DurationOf(math.MaxInt64))
	assert.Equal(t, DateTime("PT2562047H47M16S"), DurationOf(math.MinInt64))
}

func TestFormEncType(t *testing.T) {
	assert.Equal(t, "application/x-www-form-urlencoded", NewFormEncType().String())
	assert.Equal(t, "multipart/form-data", FormEncTypeMultipart.String())
	assert.Equal(t, "text/plain", FormEncTypeTextPlain.String())
	assert.Equal(t, "application/x-www-form-urlencoded", NewEncType().String())
	assert.Equal(t, "formenctype", NewFormEncType().Name())
	assert.Equal(t, "enctype", NewEncType().Name())
}

func TestContentEditable(t *testing.T) {
	values := ContentEditableValues()
	require.Len(t, values, 5)
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = v.String()
	}
	assert.Equal(t, []string{"true", "", "false", "plaintext-only", "inherit"}, rendered)
	assert.Equal(t, rendered, ContentEditable("").Keywords())
}

var parseTests = []struct {
	raw     string
	want    Autocapitalize
	wantErr bool
}{
	{"none", AutocapitalizeNone, false},
	{"characters", AutocapitalizeCharacters, false},
	{"off", AutocapitalizeOff, false},
	{"NONE", "", true},
	{"", "", true},
	{"sentence", "", true},
}

func TestParseEnum(t *testing.T) {
	for _, tt := range parseTests {
		got, err := ParseAutocapitalize(tt.raw)
		if tt.wantErr {
			require.Error(t, err, "raw %q", tt.raw)
			assert.Equal(t, ErrUnknownValue, errors.Cause(err))
			assert.Contains(t, err.Error(), "autocapitalize")
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	ce, err := ParseContentEditable("")
	require.NoError(t, err)
	assert.Equal(t, ContentEditableEmpty, ce)

	it, err := ParseInputType("datetime-local")
	require.NoError(t, err)
	assert.Equal(t, InputTypeDateTimeLocal, it)
	assert.Len(t, InputTypeValues(), 22)
}

func TestEnumerated(t *testing.T) {
	var _ Enumerated = Dir("")
	var _ Enumerated = FormMethod("")
	assert.Equal(t, []string{"ltr", "rtl", "auto"}, Dir("").Keywords())
	assert.Equal(t, []string{"get", "post", "dialog"}, NewFormMethod().Keywords())
}

func TestPassThrough(t *testing.T) {
	assert.Equal(t, 0, Len(Class("")))
	assert.True(t, IsEmpty(Class("")))
	assert.Equal(t, 5, Len(Class("a b c")))
	assert.False(t, IsEmpty(Nonce("r4nd0m")))
	assert.Equal(t, webidl.DOMTokenList{"a", "b", "c"}, Tokens(Class(" a  b c ")))
	assert.Equal(t, webidl.DOMTokenList{"name", "title"}, Tokens(ItemPropOf("name", "title")))
	assert.Equal(t, Class("card wide"), ClassOf("card", " ", "wide"))
	assert.Equal(t, Rel("noopener noreferrer"), RelOf("noopener", "noreferrer"))
	assert.Equal(t, Part("label"), PartOf("label"))
}

func TestURLAdapters(t *testing.T) {
	u, err := url.Parse("https://example.com/search?q=go&lang=en#top")
	require.NoError(t, err)
	assert.Equal(t, Href("https://example.com/search?q=go&lang=en#top"), HrefFromURL(u))
	assert.Equal(t, "formaction", FormActionFromURL(u).Name())
	assert.Equal(t, u.String(), SrcFromURL(u).String())
	assert.Equal(t, u.String(), CiteFromURL(u).String())
	assert.Equal(t, u.String(), ActionFromURL(u).String())
	assert.Equal(t, u.String(), ItemIDFromURL(u).String())

	a, _ := url.Parse("https://schema.org/Person")
	b, _ := url.Parse("https://schema.org/Patient")
	assert.Equal(t, ItemType("https://schema.org/Person https://schema.org/Patient"), ItemTypeFromURLs(a, b))
}

func TestPtr(t *testing.T) {
	p := Ptr(Min("1"))
	require.NotNil(t, p)
	assert.Equal(t, Min("1"), *p)
}
