package schema

import (
	"fmt"
	"io"
	"strings"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/appconf/internal/textutil"
)

// WriteHelp renders the class parameter help: a header, the class
// description, then one entry per trait in declaration order, each as
// "Class.trait : type" with its indented help text and default value.
func (c *Class) WriteHelp(w io.Writer) {
	header := c.Name + " options"
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))
	if c.Description != "" {
		fmt.Fprintln(w, textutil.WrapIndent(c.Description, 0))
	}
	for _, trait := range c.Traits {
		fmt.Fprintf(w, "%s.%s : %s\n", c.Name, trait.Name, trait.Type.FriendlyName())
		if trait.Help != "" {
			fmt.Fprintln(w, textutil.WrapIndent(trait.Help, 4))
		}
		if trait.Default != cty.NilVal {
			fmt.Fprintf(w, "    Default: %s\n", formatValue(trait.Default))
		}
	}
}

// formatValue renders a cty value for help output.
func formatValue(val cty.Value) string {
	buf, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return val.GoString()
	}
	return string(buf)
}
