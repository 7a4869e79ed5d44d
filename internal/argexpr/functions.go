package argexpr

import (
	"strings"

	"github.com/vk/getarg/internal/argreg"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
	"golang.org/x/text/unicode/norm"
)

// Functions returns the expression functions bound to reg. Each one is a thin
// view over the registry's typed accessors.
func Functions(reg *argreg.Registry) map[string]function.Function {
	return map[string]function.Function{
		"flag":    flagFunc(reg),
		"flag_or": flagOrFunc(reg),
		"str":     strFunc(reg),
		"num":     numFunc(reg),
		"has":     hasFunc(reg),
		"values":  valuesFunc(reg),
	}
}

// lookupName maps a name argument back to the name the registry recorded.
// cty strings are always NFC, while the registry keeps argv bytes as given.
func lookupName(reg *argreg.Registry, arg cty.Value) string {
	name := arg.AsString()
	if reg.Has(name) {
		return name
	}

	names := reg.Names()
	for _, raw := range names {
		if norm.NFC.String(raw) == name {
			return raw
		}
	}
	// Only the negated form may have been passed; GetBool derives it from
	// the positive name, so hand back the positive spelling of that flag.
	negated := "-no" + strings.TrimPrefix(name, "-")
	for _, raw := range names {
		if strings.HasPrefix(raw, "-no") && norm.NFC.String(raw) == negated {
			return "-" + strings.TrimPrefix(raw, "-no")
		}
	}
	return name
}

func nameParam() function.Parameter {
	return function.Parameter{Name: "name", Type: cty.String}
}

func flagFunc(reg *argreg.Registry) function.Function {
	return function.New(&function.Spec{
		Description: "Resolves a flag as a boolean, honouring the -no negation form.",
		Params:      []function.Parameter{nameParam()},
		Type:        function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.BoolVal(reg.GetBool(lookupName(reg, args[0]))), nil
		},
	})
}

func flagOrFunc(reg *argreg.Registry) function.Function {
	return function.New(&function.Spec{
		Description: "Resolves a flag as a boolean with an explicit default.",
		Params: []function.Parameter{
			nameParam(),
			{Name: "default", Type: cty.Bool},
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.BoolVal(reg.GetBoolDefault(lookupName(reg, args[0]), args[1].True())), nil
		},
	})
}

func strFunc(reg *argreg.Registry) function.Function {
	return function.New(&function.Spec{
		Description: "Returns the last value of a flag, or the default when it was never passed.",
		Params: []function.Parameter{
			nameParam(),
			{Name: "default", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.StringVal(reg.GetString(lookupName(reg, args[0]), args[1].AsString())), nil
		},
	})
}

func numFunc(reg *argreg.Registry) function.Function {
	return function.New(&function.Spec{
		Description: "Returns the last value of a flag as an integer; malformed values are 0.",
		Params: []function.Parameter{
			nameParam(),
			{Name: "default", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var def int64
			if err := gocty.FromCtyValue(args[1], &def); err != nil {
				return cty.UnknownVal(cty.Number), function.NewArgError(1, err)
			}
			return cty.NumberIntVal(reg.GetInt(lookupName(reg, args[0]), def)), nil
		},
	})
}

func hasFunc(reg *argreg.Registry) function.Function {
	return function.New(&function.Spec{
		Description: "Reports whether a flag was passed at least once.",
		Params:      []function.Parameter{nameParam()},
		Type:        function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.BoolVal(reg.Has(lookupName(reg, args[0]))), nil
		},
	})
}

func valuesFunc(reg *argreg.Registry) function.Function {
	return function.New(&function.Spec{
		Description: "Returns every value passed for a flag, in argument order.",
		Params:      []function.Parameter{nameParam()},
		Type:        function.StaticReturnType(cty.List(cty.String)),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return stringList(reg.Values(lookupName(reg, args[0]))), nil
		},
	})
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}
