package main

import (
	"fmt"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/cli"
	"github.com/c2p-dev/go-c2p/vtree"
)

func convertGroup() cli.CommandGroup {
	return cli.CommandGroup{
		Command:     "convert",
		Description: "Read a document and write it in another format.",
		FlagArgs: []cli.FlagArgument{
			{Name: "help", ShortName: 'h', Description: "Show this help"},
			{Name: "pretty", ShortName: 'p', Description: "Pretty-print JSON output"},
		},
		ValueArgs: []cli.ValueArgument{
			{Name: "from", ShortName: 'f', Kind: vtree.KindString,
				Default: strScalar("json"), Description: "Input format: json, ini or yaml"},
			{Name: "to", ShortName: 't', Kind: vtree.KindString,
				Default: strScalar("json"), Description: "Output format: json, ini or yaml"},
			{Name: "indent", Kind: vtree.KindNumber,
				Default: numScalar(2), Description: "Indent step for pretty JSON"},
		},
		MinPositionalArgs:        0,
		MaxPositionalArgs:        1,
		PositionalArgDescription: "input-file",
	}
}

func runConvert(res *vtree.Tree, lg c2p.Logger) error {
	input, err := readInput(res)
	if err != nil {
		return err
	}
	tree, err := parseAs(valueOr(res, "from", "json"), input, lg)
	if err != nil {
		return err
	}
	indent := 2.0
	if n, ok := res.NumberAt(vtree.Key("valueArgs"), vtree.Key("indent")); ok {
		indent = n
	}
	out, err := dumpAs(valueOr(res, "to", "json"), tree, hasFlag(res, "pretty"), int(indent))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
