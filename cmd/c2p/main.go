// Command c2p converts, inspects and diffs configuration documents in the
// formats the toolkit speaks (JSON, INI, YAML).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/cli"
	"github.com/c2p-dev/go-c2p/ini"
	"github.com/c2p-dev/go-c2p/json"
	"github.com/c2p-dev/go-c2p/vtree"
	"github.com/c2p-dev/go-c2p/yamlconv"
)

func main() {
	tty := isatty.IsTerminal(os.Stdout.Fd())
	color.NoColor = !tty
	lg := c2p.CallbackLogger{
		OnError:   func(m string) { fmt.Fprintln(os.Stderr, color.RedString("error:"), m) },
		OnWarning: func(m string) { fmt.Fprintln(os.Stderr, color.YellowString("warning:"), m) },
		OnInfo:    func(m string) { fmt.Fprintln(os.Stderr, m) },
	}
	parser, err := cli.NewParser(rootGroup(), lg)
	if err != nil {
		os.Exit(2)
	}
	res := parser.Parse(os.Args, lg)
	if res.IsEmpty() {
		printHelp(parser, nil, tty)
		os.Exit(2)
	}
	if err := run(parser, res, lg, tty); err != nil {
		lg.Error(err.Error())
		os.Exit(1)
	}
}

func rootGroup() cli.CommandGroup {
	return cli.CommandGroup{
		Command:     "c2p",
		Description: "Convert, inspect and diff JSON, INI and YAML configuration.",
		FlagArgs: []cli.FlagArgument{
			{Name: "help", ShortName: 'h', Description: "Show this help"},
		},
		SubCommands: []cli.CommandGroup{
			convertGroup(),
			getGroup(),
			diffGroup(),
			patchGroup(),
		},
	}
}

func run(parser *cli.Parser, res *vtree.Tree, lg c2p.Logger, tty bool) error {
	sub := res.At(vtree.Key("subCommand"))
	if sub == nil {
		return printHelp(parser, nil, tty)
	}
	name, _ := sub.StringAt(vtree.Key("command"))
	if hasFlag(sub, "help") {
		return printHelp(parser, []string{name}, tty)
	}
	switch name {
	case "convert":
		return runConvert(sub, lg)
	case "get":
		return runGet(sub, lg)
	case "diff":
		return runDiff(sub, lg, tty)
	case "patch":
		return runPatch(sub, lg)
	}
	return fmt.Errorf("unknown command %q", name)
}

func printHelp(parser *cli.Parser, path []string, tty bool) error {
	help, err := parser.Help(path, tty)
	if err != nil {
		return err
	}
	fmt.Print(help)
	return nil
}

func hasFlag(res *vtree.Tree, name string) bool {
	node := res.At(vtree.Key("flagArgs"))
	if node == nil {
		return false
	}
	elems, _ := node.Array()
	for _, e := range elems {
		if sc, ok := e.Value(); ok && sc.String() == name {
			return true
		}
	}
	return false
}

func valueOr(res *vtree.Tree, name, fallback string) string {
	if v, ok := res.StringAt(vtree.Key("valueArgs"), vtree.Key(name)); ok {
		return v
	}
	return fallback
}

func strScalar(s string) *vtree.Scalar {
	sc := vtree.StringScalar(s)
	return &sc
}

func numScalar(f float64) *vtree.Scalar {
	sc := vtree.NumberScalar(f)
	return &sc
}

// readInput returns the first positional file's content, or stdin.
func readInput(res *vtree.Tree) (string, error) {
	if path, ok := res.StringAt(vtree.Key("positionalArgs"), vtree.Index(0)); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func parseAs(format, input string, lg c2p.Logger) (*vtree.Tree, error) {
	nerr := 0
	counting := c2p.CallbackLogger{
		OnError:   func(m string) { nerr++; lg.Error(m) },
		OnWarning: lg.Warning,
		OnInfo:    lg.Info,
	}
	var tree *vtree.Tree
	switch format {
	case "json":
		tree = json.Parse(input, counting)
	case "ini":
		tree = ini.Parse(input, counting)
	case "yaml":
		t, err := yamlconv.Parse(input)
		if err != nil {
			return nil, err
		}
		tree = t
	default:
		return nil, fmt.Errorf("unknown format %q (want json, ini or yaml)", format)
	}
	if nerr > 0 {
		return nil, fmt.Errorf("could not parse input as %s", format)
	}
	return tree, nil
}

func dumpAs(format string, tree *vtree.Tree, pretty bool, indent int) (string, error) {
	switch format {
	case "json":
		return json.Dump(tree, pretty, indent), nil
	case "ini":
		out := ini.Dump(tree)
		if out == "" && !tree.IsEmpty() {
			return "", fmt.Errorf("document does not fit the INI shape")
		}
		return out, nil
	case "yaml":
		return yamlconv.Dump(tree)
	default:
		return "", fmt.Errorf("unknown format %q (want json, ini or yaml)", format)
	}
}
