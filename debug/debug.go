// Package debug provides env-gated logging for development, e.g.
//
//	C2P_DEBUG_CLI=1 c2p convert --from ini config.ini
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	CLI   bool
	Rule  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.CLI = boolEnv("C2P_DEBUG_CLI")
	d.Rule = boolEnv("C2P_DEBUG_RULE")
	d.Patch = boolEnv("C2P_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func CLI() bool {
	return d.CLI
}
func Rule() bool {
	return d.Rule
}
func Patch() bool {
	return d.Patch
}

// Logf writes to stderr. Callers gate on the flag accessors.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
