package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Help renders the help text of the command addressed by path (a chain of
// sub-command names; empty for this command). ANSI styling is applied only
// when ansi is true, regardless of what stdout is connected to.
func (p *Parser) Help(path []string, ansi bool) (string, error) {
	target := p
	invocation := []string{p.command}
	for _, name := range path {
		next := target.subs[name]
		if next == nil {
			return "", fmt.Errorf("unknown sub-command %q under %q",
				name, strings.Join(invocation, " "))
		}
		target = next
		invocation = append(invocation, name)
	}
	return target.help(strings.Join(invocation, " "), ansi), nil
}

func (p *Parser) help(invocation string, ansi bool) string {
	bold := paint(ansi, color.Bold)
	cyan := paint(ansi, color.FgCyan)
	yellow := paint(ansi, color.FgYellow)

	var b strings.Builder
	b.WriteString(bold("Usage:") + "\n")
	b.WriteString("  " + invocation)
	if len(p.subs) > 0 {
		b.WriteString(" [sub-command]")
	}
	if len(p.flagArgs)+len(p.valueArgs) > 0 {
		b.WriteString(" [options]")
	}
	if p.maxPos != 0 {
		desc := p.posDesc
		if desc == "" {
			desc = "arg"
		}
		b.WriteString(fmt.Sprintf(" [%s (%s)]", desc, p.posBounds()))
	}
	b.WriteString("\n")
	if p.description != "" {
		b.WriteString("\n" + p.description + "\n")
	}

	if len(p.subOrder) > 0 {
		b.WriteString("\n" + bold("Sub-commands:") + "\n")
		for _, name := range p.subOrder {
			b.WriteString("  " + cyan(name) + "\n")
			if d := p.subs[name].description; d != "" {
				b.WriteString("        " + d + "\n")
			}
		}
	}

	if len(p.flagArgs) > 0 {
		b.WriteString("\n" + bold("Flags:") + "\n")
		for _, fa := range p.flagArgs {
			b.WriteString("  " + cyan(argForms(fa.Name, fa.ShortName)) + "\n")
			if fa.Description != "" {
				b.WriteString("        " + fa.Description + "\n")
			}
		}
	}

	if len(p.valueArgs) > 0 {
		b.WriteString("\n" + bold("Value arguments:") + "\n")
		for _, va := range p.valueArgs {
			b.WriteString("  " + cyan(argForms(va.Name, va.ShortName)) +
				" " + yellow("<"+va.Kind.String()+">"))
			if va.Default != nil {
				b.WriteString(fmt.Sprintf(" (default: %s)", va.Default.String()))
			}
			if va.Required {
				b.WriteString(" (required)")
			}
			if va.Multiple {
				b.WriteString(" (repeatable)")
			}
			b.WriteString("\n")
			if va.Description != "" {
				b.WriteString("        " + va.Description + "\n")
			}
		}
	}
	return b.String()
}

func argForms(name string, short byte) string {
	if short == 0 {
		return "    --" + name
	}
	return fmt.Sprintf("-%c, --%s", short, name)
}

// paint returns a sprint function with the attributes applied; identity
// when ansi is off. Styling is forced on so it does not depend on the
// global terminal detection.
func paint(ansi bool, attrs ...color.Attribute) func(...any) string {
	if !ansi {
		return fmt.Sprint
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint
}
