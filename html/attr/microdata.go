package attr

import "github.com/heathj/htmlspec/html/webidl"

// ItemID is the global identifier of a microdata item, a URL.
// https://html.spec.whatwg.org/multipage/microdata.html#attr-itemid
type ItemID webidl.USVString

func (ItemID) Name() string     { return "itemid" }
func (i ItemID) String() string { return string(i) }

// ItemProp is the space-separated list of property names the element adds
// to its item.
// https://html.spec.whatwg.org/multipage/microdata.html#names:-the-itemprop-attribute
type ItemProp webidl.DOMString

func (ItemProp) Name() string     { return "itemprop" }
func (i ItemProp) String() string { return string(i) }

// https://html.spec.whatwg.org/multipage/microdata.html#attr-itemref
type ItemRef webidl.DOMString

func (ItemRef) Name() string     { return "itemref" }
func (i ItemRef) String() string { return string(i) }

// ItemScope creates a new microdata item.
// https://html.spec.whatwg.org/multipage/microdata.html#attr-itemscope
type ItemScope bool

func (ItemScope) Name() string     { return "itemscope" }
func (i ItemScope) String() string { return renderBool(bool(i)) }

// ItemType is the space-separated list of vocabulary URLs of an item.
// https://html.spec.whatwg.org/multipage/microdata.html#attr-itemtype
type ItemType webidl.USVString

func (ItemType) Name() string     { return "itemtype" }
func (i ItemType) String() string { return string(i) }
