package catalog

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.elements)
}

func (c *Catalog) MarshalYAML() (interface{}, error) {
	return c.elements, nil
}

func (c *Catalog) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(c.elements), "encode catalog as json")
}

func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.elements); err != nil {
		return errors.Wrap(err, "encode catalog as yaml")
	}
	return errors.Wrap(enc.Close(), "encode catalog as yaml")
}

// WriteText writes one block per element: the tag line followed by an
// indented row per attribute with its kind and keywords.
func (c *Catalog) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range c.elements {
		fmt.Fprintf(tw, "<%s>\t%s\t\n", e.Tag, e.Type)
		for _, a := range e.Attributes {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", a.Name, a.Kind, quoteAll(a.Values))
		}
	}
	return errors.Wrap(tw.Flush(), "write catalog text")
}

func quoteAll(values []string) string {
	if len(values) == 0 {
		return ""
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, " ")
}
