package c2p

import (
	"testing"

	"github.com/c2p-dev/go-c2p/vtree"
)

func TestTransform(t *testing.T) {
	config := vtree.New()
	config.Sub("name").CoerceValue().SetString("svc")
	config.Sub("replicas").CoerceValue().SetNumber(3)

	rules := []Rule{
		{
			Description: "copy name",
			Transform: func(config, param *vtree.Tree, lg Logger) bool {
				s, ok := config.StringAt(vtree.Key("name"))
				if !ok {
					return false
				}
				param.Sub("serviceName").CoerceValue().SetString(s)
				return true
			},
		},
		{
			Description: "double replicas",
			Transform: func(config, param *vtree.Tree, lg Logger) bool {
				n, ok := config.NumberAt(vtree.Key("replicas"))
				if !ok {
					return false
				}
				param.Sub("replicas").CoerceValue().SetNumber(2 * n)
				return true
			},
		},
	}

	param, ok := Transform(config, rules, nil)
	if !ok {
		t.Fatal("transform failed")
	}
	if got, _ := param.StringAt(vtree.Key("serviceName")); got != "svc" {
		t.Errorf("serviceName = %q", got)
	}
	if got, _ := param.NumberAt(vtree.Key("replicas")); got != 6 {
		t.Errorf("replicas = %v", got)
	}
}

func TestTransformSkipsNilCallback(t *testing.T) {
	var warns []string
	lg := CallbackLogger{OnWarning: func(m string) { warns = append(warns, m) }}
	ran := false
	rules := []Rule{
		{Description: "empty rule"},
		{Description: "runs anyway", Transform: func(_, _ *vtree.Tree, _ Logger) bool {
			ran = true
			return true
		}},
	}
	if _, ok := Transform(vtree.New(), rules, lg); !ok {
		t.Fatal("transform should succeed")
	}
	if len(warns) != 1 {
		t.Errorf("warnings = %v", warns)
	}
	if !ran {
		t.Error("rules after a skipped one must still run")
	}
}

func TestTransformStopsOnFailure(t *testing.T) {
	var errs []string
	lg := CallbackLogger{OnError: func(m string) { errs = append(errs, m) }}
	reached := false
	rules := []Rule{
		{Description: "fills param", Transform: func(_, param *vtree.Tree, _ Logger) bool {
			param.Sub("x").CoerceValue().SetNumber(1)
			return true
		}},
		{Description: "fails", Transform: func(_, _ *vtree.Tree, _ Logger) bool {
			return false
		}},
		{Description: "unreachable", Transform: func(_, _ *vtree.Tree, _ Logger) bool {
			reached = true
			return true
		}},
	}
	param, ok := Transform(vtree.New(), rules, lg)
	if ok {
		t.Fatal("transform should fail")
	}
	if !param.IsEmpty() {
		t.Error("failed transform must return an Empty tree")
	}
	if reached {
		t.Error("rules after a failure must not run")
	}
	if len(errs) != 1 {
		t.Errorf("errors = %v", errs)
	}
}
