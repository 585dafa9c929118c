// Package cli parses command-line arguments into a value tree. A command
// is described declaratively as a CommandGroup (flags, typed value
// arguments, positional bounds, sub-commands); Parse returns a tree with
// the members command, subCommand, flagArgs, valueArgs and positionalArgs.
package cli

import (
	"fmt"
	"slices"
	"strings"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/vtree"
)

// FlagArgument is a boolean switch: present or absent, no value.
type FlagArgument struct {
	Name        string
	ShortName   byte // 0 for none
	Description string
}

// ValueArgument consumes the following argument and coerces it to Kind
// via json.ParseScalar.
type ValueArgument struct {
	Name        string
	ShortName   byte // 0 for none
	Kind        vtree.Kind
	Default     *vtree.Scalar // nil for no default; kind must match
	Required    bool
	Multiple    bool // repeatable; results collect into an array
	Description string
}

// CommandGroup declares one command: its arguments, how many positional
// arguments it accepts (MaxPositionalArgs < 0 means unlimited), and its
// sub-commands.
type CommandGroup struct {
	Command                  string
	Description              string
	FlagArgs                 []FlagArgument
	ValueArgs                []ValueArgument
	MinPositionalArgs        int
	MaxPositionalArgs        int
	PositionalArgDescription string
	SubCommands              []CommandGroup
}

// Parser is a validated CommandGroup ready to parse arguments.
type Parser struct {
	command      string
	description  string
	flagArgs     []FlagArgument
	flagByName   map[string]*FlagArgument
	flagByShort  map[byte]*FlagArgument
	valueArgs    []ValueArgument
	valueByName  map[string]*ValueArgument
	valueByShort map[byte]*ValueArgument
	minPos       int
	maxPos       int
	posDesc      string
	subs         map[string]*Parser
	subOrder     []string
}

// NewParser validates cg (recursively, sub-commands included) and builds a
// Parser. Validation failures are logged to lg and returned.
func NewParser(cg CommandGroup, lg c2p.Logger) (*Parser, error) {
	lg = c2p.Or(lg)
	p, err := newParser(cg, cg.Command)
	if err != nil {
		lg.Error(err.Error())
		return nil, err
	}
	return p, nil
}

func newParser(cg CommandGroup, path string) (*Parser, error) {
	fail := func(format string, args ...any) (*Parser, error) {
		return nil, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...))
	}
	if cg.Command == "" {
		return nil, fmt.Errorf("command group without a command name")
	}
	if strings.HasPrefix(cg.Command, "-") || strings.ContainsAny(cg.Command, " \t") {
		return fail("invalid command name %q", cg.Command)
	}
	p := &Parser{
		command:      cg.Command,
		description:  cg.Description,
		flagArgs:     slices.Clone(cg.FlagArgs),
		flagByName:   map[string]*FlagArgument{},
		flagByShort:  map[byte]*FlagArgument{},
		valueArgs:    slices.Clone(cg.ValueArgs),
		valueByName:  map[string]*ValueArgument{},
		valueByShort: map[byte]*ValueArgument{},
		minPos:       cg.MinPositionalArgs,
		maxPos:       cg.MaxPositionalArgs,
		posDesc:      cg.PositionalArgDescription,
		subs:         map[string]*Parser{},
	}
	names := map[string]bool{}
	shorts := map[byte]bool{}
	checkName := func(name string) error {
		if name == "" {
			return fmt.Errorf("%s: argument with empty name", path)
		}
		if strings.HasPrefix(name, "-") || strings.ContainsAny(name, " \t=") {
			return fmt.Errorf("%s: invalid argument name %q", path, name)
		}
		if names[name] {
			return fmt.Errorf("%s: duplicate argument name %q", path, name)
		}
		names[name] = true
		return nil
	}
	checkShort := func(c byte) error {
		if !isAlnum(c) {
			return fmt.Errorf("%s: short name %q is not alphanumeric", path, c)
		}
		if shorts[c] {
			return fmt.Errorf("%s: duplicate short name %q", path, c)
		}
		shorts[c] = true
		return nil
	}
	for i := range p.flagArgs {
		fa := &p.flagArgs[i]
		if err := checkName(fa.Name); err != nil {
			return nil, err
		}
		p.flagByName[fa.Name] = fa
		if fa.ShortName != 0 {
			if err := checkShort(fa.ShortName); err != nil {
				return nil, err
			}
			p.flagByShort[fa.ShortName] = fa
		}
	}
	for i := range p.valueArgs {
		va := &p.valueArgs[i]
		if err := checkName(va.Name); err != nil {
			return nil, err
		}
		if va.Kind < vtree.KindNone || va.Kind > vtree.KindString {
			return fail("argument %q has unknown kind %d", va.Name, va.Kind)
		}
		if va.Default != nil && va.Default.Kind() != va.Kind {
			return fail("argument %q: default is %s, want %s", va.Name, va.Default.Kind(), va.Kind)
		}
		if va.Default != nil && va.Required {
			return fail("argument %q is required yet has a default", va.Name)
		}
		p.valueByName[va.Name] = va
		if va.ShortName != 0 {
			if err := checkShort(va.ShortName); err != nil {
				return nil, err
			}
			p.valueByShort[va.ShortName] = va
		}
	}
	if p.minPos < 0 {
		return fail("negative MinPositionalArgs")
	}
	if p.maxPos >= 0 && p.maxPos < p.minPos {
		return fail("MaxPositionalArgs below MinPositionalArgs")
	}
	for _, sub := range cg.SubCommands {
		if _, dup := p.subs[sub.Command]; dup {
			return fail("duplicate sub-command %q", sub.Command)
		}
		sp, err := newParser(sub, path+" "+sub.Command)
		if err != nil {
			return nil, err
		}
		p.subs[sub.Command] = sp
		p.subOrder = append(p.subOrder, sub.Command)
	}
	return p, nil
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
