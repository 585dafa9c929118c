package c2p

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/c2p-dev/go-c2p/vtree"
)

// ExprCheck builds a validation rule from an expr-lang expression. The
// expression is evaluated against the config converted to plain values
// (object members become variables), and the rule fails when it does not
// compile, does not evaluate, or yields anything but true.
//
//	c2p.ExprCheck("port in range", "port >= 1024 && port < 65536")
func ExprCheck(description, expression string) Rule {
	prg, compileErr := expr.Compile(expression, expr.AllowUndefinedVariables(), expr.AsBool())
	return Rule{
		Description: description,
		Transform: func(config, _ *vtree.Tree, lg Logger) bool {
			if compileErr != nil {
				lg.Error(fmt.Sprintf("check %q: %v", description, compileErr))
				return false
			}
			env, _ := vtree.ToAny(config).(map[string]any)
			if env == nil {
				env = map[string]any{}
			}
			out, err := expr.Run(prg, env)
			if err != nil {
				lg.Error(fmt.Sprintf("check %q: %v", description, err))
				return false
			}
			ok, isBool := out.(bool)
			if !isBool {
				lg.Error(fmt.Sprintf("check %q: expression yielded %T, want bool", description, out))
				return false
			}
			return ok
		},
	}
}
