package element

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/heathj/htmlspec/html/attr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tagTests = []struct {
	elem     Element
	expected string
}{
	{HTML{}, "html"},
	{Head{}, "head"},
	{Body{}, "body"},
	{Title{}, "title"},
	{Meta{}, "meta"},
	{Link{}, "link"},
	{Script{}, "script"},
	{Div{}, "div"},
	{Span{}, "span"},
	{P{}, "p"},
	{Section{}, "section"},
	{Search{}, "search"},
	{Article{}, "article"},
	{Header{}, "header"},
	{Footer{}, "footer"},
	{Main{}, "main"},
	{Nav{}, "nav"},
	{Aside{}, "aside"},
	{UL{}, "ul"},
	{OL{}, "ol"},
	{LI{}, "li"},
	{BlockQuote{}, "blockquote"},
	{Q{}, "q"},
	{Time{}, "time"},
	{A{}, "a"},
	{Img{}, "img"},
	{Form{}, "form"},
	{Input{}, "input"},
	{Button{}, "button"},
	{Label{}, "label"},
	{TextArea{}, "textarea"},
	{Select{}, "select"},
	{Option{}, "option"},
}

func TestTagNames(t *testing.T) {
	for _, tt := range tagTests {
		assert.Equal(t, tt.expected, tt.elem.Name())
		assert.Empty(t, tt.elem.Attributes(), "<%s> with nothing set", tt.expected)
	}
	assert.Equal(t, "blockquote", TagOf[BlockQuote]())
	assert.Equal(t, "input", TagOf[Input]())
}

func TestTagNameInvariance(t *testing.T) {
	a := Div{Global: Global{ID: attr.Ptr(attr.ID("x"))}}
	b := Div{Global: Global{Class: attr.Ptr(attr.Class("y"))}}
	assert.Equal(t, a.Name(), b.Name())
	assert.Equal(t, TagOf[Div](), a.Name())
}

func TestAttributesInFieldOrder(t *testing.T) {
	in := Input{
		Global: Global{
			ID:    attr.Ptr(attr.ID("start")),
			Class: attr.Ptr(attr.ClassOf("field", "field--date")),
		},
		Type:     attr.Ptr(attr.InputTypeDate),
		Min:      attr.Ptr(attr.MinDate(2023, 1, 1)),
		Required: attr.Ptr(attr.Required(true)),
	}

	want := []attr.Attribute{
		attr.Class("field field--date"),
		attr.ID("start"),
		attr.Min("2023-01-01"),
		attr.Required(true),
		attr.InputTypeDate,
	}
	if diff := cmp.Diff(want, in.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}

	rendered := map[string]string{}
	for _, a := range in.Attributes() {
		rendered[a.Name()] = a.String()
	}
	assert.Equal(t, map[string]string{
		"class":    "field field--date",
		"id":       "start",
		"min":      "2023-01-01",
		"required": "true",
		"type":     "date",
	}, rendered)
}

func TestSetters(t *testing.T) {
	var in Input
	in.SetType(attr.InputTypeNumber)
	in.SetMin(attr.MinInt(0))
	in.SetMax(attr.MaxInt(10))
	in.SetStep(attr.StepAny)
	in.SetID("qty")
	in.SetControlName("qty")
	require.NotNil(t, in.Type)
	assert.Equal(t, attr.InputTypeNumber, *in.Type)
	assert.Len(t, in.Attributes(), 6)

	in.SetMax(attr.MaxInt(20))
	assert.Equal(t, attr.Max("20"), *in.Max)
	assert.Len(t, in.Attributes(), 6)

	var m Meta
	m.SetCharset(attr.CharsetUTF8)
	assert.Equal(t, []attr.Attribute{attr.Charset("utf-8")}, m.Attributes())

	var tm Time
	tm.SetDateTime(attr.DateTimeWeek(2023, 1))
	assert.Equal(t, []attr.Attribute{attr.DateTime("2023-W01")}, tm.Attributes())
}

func TestFormOverrides(t *testing.T) {
	b := Button{Type: attr.Ptr(attr.ButtonTypeSubmit)}
	b.SetFormAction("/upload")
	b.SetFormEncType(attr.FormEncTypeMultipart)
	b.SetFormMethod(attr.FormMethodPost)
	// formnovalidate is kept next to a get method: combinations are not checked
	b.SetFormNoValidate(true)
	b.SetFormMethod(attr.FormMethodGet)

	names := []string{}
	for _, a := range b.Attributes() {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{"formaction", "formenctype", "formmethod", "formnovalidate", "type"}, names)
	assert.Equal(t, "get", b.FormMethod.String())
}

func TestDeclared(t *testing.T) {
	names := func(e Element) []string {
		var out []string
		for _, a := range Declared(e) {
			out = append(out, a.Name())
		}
		return out
	}

	global := names(Div{})
	assert.Len(t, global, 30)
	assert.Contains(t, global, "contenteditable")
	assert.Contains(t, global, "virtualkeyboardpolicy")
	assert.Equal(t, global, names(&Div{}))
	assert.Equal(t, global, names((*Div)(nil)))

	bq := names(BlockQuote{})
	assert.Equal(t, "cite", bq[len(bq)-1])

	in := Declared(Input{})
	require.NotEmpty(t, in)
	for _, a := range in {
		assert.NotEmpty(t, a.Name())
	}
	assert.Contains(t, names(Input{}), "formenctype")
	assert.Contains(t, names(Input{}), "min")
	assert.NotContains(t, names(Div{}), "min")
}

func TestPointerElement(t *testing.T) {
	a := &A{}
	a.SetHref("https://example.com")
	a.SetRel(attr.RelOf("noopener"))
	var e Element = a
	assert.Equal(t, "a", e.Name())
	assert.Equal(t, []attr.Attribute{attr.Href("https://example.com"), attr.Rel("noopener")}, e.Attributes())
}

func TestNew(t *testing.T) {
	for _, tt := range tagTests {
		e, ok := New(tt.expected)
		require.True(t, ok, tt.expected)
		assert.Equal(t, tt.elem, e)
	}
	e, ok := New("BlockQuote")
	require.True(t, ok)
	assert.Equal(t, BlockQuote{}, e)

	_, ok = New("marquee")
	assert.False(t, ok)
	assert.Len(t, Tags(), len(tagTests))
}
