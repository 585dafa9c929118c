package main

import (
	"fmt"
	"os"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/cli"
	"github.com/c2p-dev/go-c2p/json"
	"github.com/c2p-dev/go-c2p/patch"
	"github.com/c2p-dev/go-c2p/vtree"
)

func patchGroup() cli.CommandGroup {
	return cli.CommandGroup{
		Command:     "patch",
		Description: "Apply a JSON patch to a document and print the result.",
		FlagArgs: []cli.FlagArgument{
			{Name: "help", ShortName: 'h', Description: "Show this help"},
			{Name: "ops", Description: "Treat the patch as an RFC 6902 operation list instead of a merge patch"},
		},
		ValueArgs: []cli.ValueArgument{
			{Name: "from", ShortName: 'f', Kind: vtree.KindString,
				Default: strScalar("json"), Description: "Document format: json, ini or yaml"},
		},
		MinPositionalArgs:        2,
		MaxPositionalArgs:        2,
		PositionalArgDescription: "document patch-file",
	}
}

func runPatch(res *vtree.Tree, lg c2p.Logger) error {
	docPath, okA := res.StringAt(vtree.Key("positionalArgs"), vtree.Index(0))
	patchPath, okB := res.StringAt(vtree.Key("positionalArgs"), vtree.Index(1))
	if !okA || !okB {
		return fmt.Errorf("patch needs a document and a patch file")
	}
	docData, err := os.ReadFile(docPath)
	if err != nil {
		return err
	}
	doc, err := parseAs(valueOr(res, "from", "json"), string(docData), lg)
	if err != nil {
		return fmt.Errorf("%s: %w", docPath, err)
	}
	patchData, err := os.ReadFile(patchPath)
	if err != nil {
		return err
	}
	p, err := parseAs("json", string(patchData), lg)
	if err != nil {
		return fmt.Errorf("%s: %w", patchPath, err)
	}
	var out *vtree.Tree
	if hasFlag(res, "ops") {
		out, err = patch.ApplyOps(doc, p)
	} else {
		out, err = patch.Merge(doc, p)
	}
	if err != nil {
		return err
	}
	fmt.Println(json.Dump(out, true, 2))
	return nil
}
