package c2p

import (
	"strings"
	"testing"

	"github.com/c2p-dev/go-c2p/vtree"
)

func exprConfig() *vtree.Tree {
	c := vtree.New()
	c.Sub("port").CoerceValue().SetNumber(8080)
	c.Sub("host").CoerceValue().SetString("db1")
	c.Sub("tags").Append(vtree.FromString("a"), vtree.FromString("b"))
	return c
}

func TestExprCheck(t *testing.T) {
	tests := []struct {
		name string
		expr string
		pass bool
	}{
		{"number-range", "port >= 1024 && port < 65536", true},
		{"string-compare", `host == "db1"`, true},
		{"array-membership", `"a" in tags`, true},
		{"failing-check", "port < 100", false},
		{"undefined-variable", "missing == 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := ExprCheck(tt.name, tt.expr)
			_, ok := Transform(exprConfig(), []Rule{rule}, nil)
			if ok != tt.pass {
				t.Errorf("check %q pass = %v, want %v", tt.expr, ok, tt.pass)
			}
		})
	}
}

func TestExprCheckCompileError(t *testing.T) {
	var errs []string
	lg := CallbackLogger{OnError: func(m string) { errs = append(errs, m) }}
	rule := ExprCheck("broken", "port >=")
	if _, ok := Transform(exprConfig(), []Rule{rule}, lg); ok {
		t.Fatal("malformed expression should fail the transform")
	}
	if len(errs) == 0 || !strings.Contains(errs[0], "broken") {
		t.Errorf("errors = %v", errs)
	}
}

func TestExprCheckNonObjectConfig(t *testing.T) {
	rule := ExprCheck("needs env", "true")
	if _, ok := Transform(vtree.FromNumber(1), []Rule{rule}, nil); !ok {
		t.Error("a constant check should pass with an empty environment")
	}
}
