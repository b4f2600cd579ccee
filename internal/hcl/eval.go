package hcl

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext exposes the environment as the `env` object and a small
// set of string and collection functions.
func newEvalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
		Functions: map[string]function.Function{
			"lower":     stdlib.LowerFunc,
			"upper":     stdlib.UpperFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"split":     stdlib.SplitFunc,
			"concat":    stdlib.ConcatFunc,
			"contains":  stdlib.ContainsFunc,
			"coalesce":  stdlib.CoalesceFunc,
		},
	}
}
