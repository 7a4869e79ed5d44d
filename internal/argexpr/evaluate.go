// Package argexpr evaluates HCL expressions against a parsed argument
// registry. Expressions see the registry through the `args` variable (flag
// name to last value) and through functions that mirror the typed accessors:
//
//	flag("-debug") && num("-workers", 4) > 2
//	str("-datadir", "/tmp")
//	args["-datadir"]
package argexpr

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/getarg/internal/argreg"
	"github.com/vk/getarg/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"golang.org/x/text/unicode/norm"
)

// exprFilename labels diagnostics for expressions that came from the command line.
const exprFilename = "<eval>"

// Evaluate parses src as an HCL expression and evaluates it against reg.
func Evaluate(ctx context.Context, reg *argreg.Registry, src string) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluating expression.", "expr", src)

	expr, diags := hclsyntax.ParseExpression([]byte(src), exprFilename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse expression %q: %w", src, diags)
	}

	val, diags := expr.Value(NewEvalContext(reg))
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate expression %q: %w", src, diags)
	}

	logger.Debug("Expression evaluated.", "expr", src, "type", val.Type().FriendlyName())
	return val, nil
}

// NewEvalContext builds the HCL evaluation context for reg.
func NewEvalContext(reg *argreg.Registry) *hcl.EvalContext {
	vars := map[string]cty.Value{
		"args": argsVariable(reg),
	}
	return &hcl.EvalContext{
		Variables: vars,
		Functions: Functions(reg),
	}
}

// argsVariable maps every flag name, in NFC form, to its last value. When
// several recorded names normalize to the same key, the last in sorted order wins.
func argsVariable(reg *argreg.Registry) cty.Value {
	names := reg.Names()
	if len(names) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	last := make(map[string]cty.Value, len(names))
	for _, name := range names {
		last[norm.NFC.String(name)] = cty.StringVal(reg.GetString(name, ""))
	}
	return cty.MapVal(last)
}

// Format renders an evaluation result for display. Strings are printed as-is,
// everything else as JSON.
func Format(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	if v.IsKnown() && v.Type() == cty.String {
		return v.AsString()
	}
	out, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return v.GoString()
	}
	return string(out)
}
