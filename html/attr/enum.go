package attr

import "github.com/pkg/errors"

// ErrUnknownValue is the cause of every Parse* failure: the raw string is
// not one of the keywords of an enumerated attribute.
var ErrUnknownValue = errors.New("unknown attribute value")

// parseEnum matches raw exactly against values. Keyword matching is case
// sensitive here; callers wanting the HTML ASCII case-insensitive match
// lowercase first.
func parseEnum[T StringValue](raw string, values []T) (T, error) {
	for _, v := range values {
		if string(v) == raw {
			return v, nil
		}
	}
	var zero T
	return zero, errors.Wrapf(ErrUnknownValue, "%s=%q", zero.Name(), raw)
}

func keywords[T StringValue](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Enumerated is implemented by attributes with a closed set of keywords.
type Enumerated interface {
	Attribute
	Keywords() []string
}

// NewEncType returns the enctype used when the attribute is missing.
func NewEncType() EncType { return EncTypeURLEncoded }

// NewFormEncType returns application/x-www-form-urlencoded, the missing
// value default of formenctype.
func NewFormEncType() FormEncType { return FormEncTypeURLEncoded }

// NewMethod returns get, the missing value default of method.
func NewMethod() Method { return MethodGet }

// NewFormMethod returns get. A button with no formmethod submits with its
// form's method instead; get is that method's own default.
func NewFormMethod() FormMethod { return FormMethodGet }
