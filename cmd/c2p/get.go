package main

import (
	"fmt"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/cli"
	"github.com/c2p-dev/go-c2p/json"
	"github.com/c2p-dev/go-c2p/vtree"
)

func getGroup() cli.CommandGroup {
	return cli.CommandGroup{
		Command:     "get",
		Description: "Print the subtree at a path, as pretty JSON.",
		FlagArgs: []cli.FlagArgument{
			{Name: "help", ShortName: 'h', Description: "Show this help"},
		},
		ValueArgs: []cli.ValueArgument{
			{Name: "path", ShortName: 'p', Kind: vtree.KindString, Required: true,
				Description: "Path into the document, e.g. $.servers[0].host"},
			{Name: "from", ShortName: 'f', Kind: vtree.KindString,
				Default: strScalar("json"), Description: "Input format: json, ini or yaml"},
		},
		MinPositionalArgs:        0,
		MaxPositionalArgs:        1,
		PositionalArgDescription: "input-file",
	}
}

func runGet(res *vtree.Tree, lg c2p.Logger) error {
	pathStr, ok := res.StringAt(vtree.Key("valueArgs"), vtree.Key("path"))
	if !ok {
		return fmt.Errorf("missing --path")
	}
	segs, err := vtree.ParsePath(pathStr)
	if err != nil {
		return fmt.Errorf("bad path %q: %w", pathStr, err)
	}
	input, err := readInput(res)
	if err != nil {
		return err
	}
	tree, err := parseAs(valueOr(res, "from", "json"), input, lg)
	if err != nil {
		return err
	}
	sub := tree.At(segs...)
	if sub == nil {
		return fmt.Errorf("no value at %s", pathStr)
	}
	fmt.Println(json.Dump(sub, true, 2))
	return nil
}
