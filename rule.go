package c2p

import (
	"fmt"

	"github.com/c2p-dev/go-c2p/debug"
	"github.com/c2p-dev/go-c2p/vtree"
)

// Rule is one step of a config-to-param transformation: it reads config
// and writes into param, reporting success. A rule returning false aborts
// the whole transformation.
type Rule struct {
	Description string
	Transform   func(config, param *vtree.Tree, lg Logger) bool
}

// Transform applies rules in order against config, accumulating results in
// a fresh param tree. A rule without a callback is skipped with a warning.
// The first failing rule stops the run: the error names the rule and the
// result is an Empty tree.
func Transform(config *vtree.Tree, rules []Rule, lg Logger) (*vtree.Tree, bool) {
	lg = Or(lg)
	param := vtree.New()
	for _, r := range rules {
		if r.Transform == nil {
			lg.Warning(fmt.Sprintf("skipping rule %q: no transform callback", r.Description))
			continue
		}
		if debug.Rule() {
			debug.Logf("applying rule %q\n", r.Description)
		}
		if !r.Transform(config, param, lg) {
			lg.Error(fmt.Sprintf("rule %q failed", r.Description))
			return vtree.New(), false
		}
	}
	return param, true
}
