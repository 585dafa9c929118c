package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/cli"
	"github.com/c2p-dev/go-c2p/json"
	"github.com/c2p-dev/go-c2p/vtree"
)

func diffGroup() cli.CommandGroup {
	return cli.CommandGroup{
		Command:     "diff",
		Description: "Compare two documents structurally, ignoring formatting.",
		FlagArgs: []cli.FlagArgument{
			{Name: "help", ShortName: 'h', Description: "Show this help"},
		},
		ValueArgs: []cli.ValueArgument{
			{Name: "from", ShortName: 'f', Kind: vtree.KindString,
				Default: strScalar("json"), Description: "Input format: json, ini or yaml"},
		},
		MinPositionalArgs:        2,
		MaxPositionalArgs:        2,
		PositionalArgDescription: "file",
	}
}

func runDiff(res *vtree.Tree, lg c2p.Logger, tty bool) error {
	pathA, okA := res.StringAt(vtree.Key("positionalArgs"), vtree.Index(0))
	pathB, okB := res.StringAt(vtree.Key("positionalArgs"), vtree.Index(1))
	if !okA || !okB {
		return errors.New("diff needs two input files")
	}
	format := valueOr(res, "from", "json")
	a, err := loadNormalized(format, pathA, lg)
	if err != nil {
		return err
	}
	b, err := loadNormalized(format, pathB, lg)
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if tty {
		fmt.Print(dmp.DiffPrettyText(diffs))
	} else {
		fmt.Print(renderPlain(diffs))
	}
	return fmt.Errorf("%s and %s differ", pathA, pathB)
}

// loadNormalized parses a file and re-dumps it as pretty JSON so the diff
// sees structure, not whitespace or key order.
func loadNormalized(format, path string, lg c2p.Logger) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	tree, err := parseAs(format, string(data), lg)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return json.Dump(tree, true, 2) + "\n", nil
}

func renderPlain(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
