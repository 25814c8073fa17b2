package cli

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// ParseValue parses a raw command-line value into a typed cty value.
//
// The value is treated as a constant expression: numbers, booleans, quoted
// strings, lists, and objects all work, e.g. `port=9000`, `debug=true`,
// `tags=["a","b"]`. There is no evaluation context, so variables and
// function calls are rejected; a token that does not evaluate as a constant
// expression falls back to a plain string.
func ParseValue(raw string) (cty.Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(raw), "<arg>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.StringVal(raw), nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || val.IsNull() {
		return cty.StringVal(raw), nil
	}
	return val, nil
}
