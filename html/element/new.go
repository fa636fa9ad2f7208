package element

import "strings"

// New returns the empty element for a tag name, ignoring ASCII case. The
// second result is false for tags outside the vocabulary.
func New(tag string) (Element, bool) {
	switch strings.ToLower(tag) {
	case "html":
		return HTML{}, true
	case "head":
		return Head{}, true
	case "body":
		return Body{}, true
	case "title":
		return Title{}, true
	case "meta":
		return Meta{}, true
	case "link":
		return Link{}, true
	case "script":
		return Script{}, true
	case "div":
		return Div{}, true
	case "span":
		return Span{}, true
	case "p":
		return P{}, true
	case "section":
		return Section{}, true
	case "search":
		return Search{}, true
	case "article":
		return Article{}, true
	case "header":
		return Header{}, true
	case "footer":
		return Footer{}, true
	case "main":
		return Main{}, true
	case "nav":
		return Nav{}, true
	case "aside":
		return Aside{}, true
	case "ul":
		return UL{}, true
	case "ol":
		return OL{}, true
	case "li":
		return LI{}, true
	case "blockquote":
		return BlockQuote{}, true
	case "q":
		return Q{}, true
	case "time":
		return Time{}, true
	case "a":
		return A{}, true
	case "img":
		return Img{}, true
	case "form":
		return Form{}, true
	case "input":
		return Input{}, true
	case "button":
		return Button{}, true
	case "label":
		return Label{}, true
	case "textarea":
		return TextArea{}, true
	case "select":
		return Select{}, true
	case "option":
		return Option{}, true
	}
	return nil, false
}

// Tags lists every tag name New accepts.
func Tags() []string {
	return []string{
		"html", "head", "body", "title", "meta", "link", "script", "div", "span",
		"p", "section", "search", "article", "header", "footer", "main", "nav",
		"aside", "ul", "ol", "li", "blockquote", "q", "time", "a", "img", "form",
		"input", "button", "label", "textarea", "select", "option",
	}
}
