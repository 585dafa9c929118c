package cli

import (
	"fmt"
	"strings"

	c2p "github.com/c2p-dev/go-c2p"
	"github.com/c2p-dev/go-c2p/debug"
	"github.com/c2p-dev/go-c2p/json"
	"github.com/c2p-dev/go-c2p/vtree"
)

// Parse reads args (args[0] being the program name) into a result tree:
//
//	command:        string, always present
//	subCommand:     the sub-command's own result tree, when one was named
//	flagArgs:       array of flag names, one entry per occurrence
//	valueArgs:      object of coerced values (arrays for Multiple)
//	positionalArgs: array of strings
//
// A bare program name yields just the command member: defaults and
// required checks only apply once any argument is given. Errors go to
// lg.Error and the result is an Empty tree.
func (p *Parser) Parse(args []string, lg c2p.Logger) *vtree.Tree {
	lg = c2p.Or(lg)
	if len(args) == 0 {
		lg.Error("missing program name")
		return vtree.New()
	}
	res := vtree.New()
	res.Sub("command").CoerceValue().SetString(args[0])
	if !p.parseInto(res, args[1:], lg) {
		return vtree.New()
	}
	if debug.CLI() {
		debug.Logf("parsed arguments: %s\n", json.Dump(res, false, 0))
	}
	return res
}

func (p *Parser) parseInto(res *vtree.Tree, args []string, lg c2p.Logger) bool {
	if len(args) == 0 {
		return true
	}
	if sub := p.subs[args[0]]; sub != nil {
		subRes := res.Sub("subCommand")
		subRes.Sub("command").CoerceValue().SetString(args[0])
		return sub.parseInto(subRes, args[1:], lg)
	}

	flags := res.Sub("flagArgs").CoerceArray()
	values := res.Sub("valueArgs").CoerceObject()
	pos := res.Sub("positionalArgs").CoerceArray()

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-" || arg == "--":
			lg.Error(fmt.Sprintf("invalid argument %q", arg))
			return false
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			switch {
			case p.flagByName[name] != nil:
				flags.Append(vtree.FromString(name))
			case p.valueByName[name] != nil:
				if i+1 >= len(args) {
					lg.Error(fmt.Sprintf("missing value after --%s", name))
					return false
				}
				i++
				if !p.storeValue(values, p.valueByName[name], args[i], lg) {
					return false
				}
			default:
				lg.Error(fmt.Sprintf("unknown argument --%s", name))
				return false
			}
		case strings.HasPrefix(arg, "-"):
			shorts := arg[1:]
			if len(shorts) == 1 {
				c := shorts[0]
				switch {
				case p.flagByShort[c] != nil:
					flags.Append(vtree.FromString(p.flagByShort[c].Name))
				case p.valueByShort[c] != nil:
					if i+1 >= len(args) {
						lg.Error(fmt.Sprintf("missing value after -%c", c))
						return false
					}
					i++
					if !p.storeValue(values, p.valueByShort[c], args[i], lg) {
						return false
					}
				default:
					lg.Error(fmt.Sprintf("unknown argument -%c", c))
					return false
				}
				break
			}
			// combined short names may only hold flags
			for j := 0; j < len(shorts); j++ {
				fa := p.flagByShort[shorts[j]]
				if fa == nil {
					lg.Error(fmt.Sprintf("unknown flag -%c in %q", shorts[j], arg))
					return false
				}
				flags.Append(vtree.FromString(fa.Name))
			}
		default:
			pos.Append(vtree.FromString(arg))
		}
	}

	for i := range p.valueArgs {
		va := &p.valueArgs[i]
		if values.At(vtree.Key(va.Name)) != nil {
			continue
		}
		switch {
		case va.Default != nil:
			if va.Multiple {
				values.Sub(va.Name).Append(vtree.FromScalar(*va.Default))
			} else {
				*values.Sub(va.Name).CoerceValue() = *va.Default
			}
		case va.Required:
			lg.Error(fmt.Sprintf("missing required argument --%s", va.Name))
			return false
		}
	}

	if n := pos.Len(); n < p.minPos || (p.maxPos >= 0 && n > p.maxPos) {
		lg.Error(fmt.Sprintf("%s expects %s positional arguments, got %d",
			p.command, p.posBounds(), n))
		return false
	}
	return true
}

func (p *Parser) storeValue(values *vtree.Tree, va *ValueArgument, raw string, lg c2p.Logger) bool {
	sc, ok := json.ParseScalar(va.Kind, raw, lg)
	if !ok {
		lg.Error(fmt.Sprintf("invalid value for --%s", va.Name))
		return false
	}
	if va.Multiple {
		values.Sub(va.Name).Append(vtree.FromScalar(sc))
	} else {
		// last occurrence wins
		*values.Sub(va.Name).CoerceValue() = sc
	}
	return true
}

func (p *Parser) posBounds() string {
	switch {
	case p.maxPos < 0:
		return fmt.Sprintf("at least %d", p.minPos)
	case p.minPos == p.maxPos:
		return fmt.Sprintf("exactly %d", p.minPos)
	default:
		return fmt.Sprintf("%d to %d", p.minPos, p.maxPos)
	}
}
