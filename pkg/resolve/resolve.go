// Package resolve maps a detected host and a combined operation code to the
// native command(s) that implement it. The support matrix is data: a lookup
// either yields a template, a known-unsupported diagnostic, or nothing.
package resolve

import (
	"strings"

	"pacport/pkg/host"
	"pacport/pkg/request"
)

// Step is one native command invocation. Argv is a structured argument
// vector; it is never joined into a shell string.
type Step struct {
	Argv     []string
	Root     bool // elevate with sudo when not already root
	Optional bool // skip silently when the binary is absent
}

// Template is the command pattern for one (host, operation) pair. Steps run
// in order; placeholder entries are expanded at render time.
type Template struct {
	Steps []Step
}

// Placeholder argv entries understood by Render.
const (
	phPackages = "{pkgs}"
	phToolOpt  = "{opt}"
	phForce    = "{force}"
	phVerbose  = "{verbose}"
)

// Lookup returns the template for the given host and operation code. A
// missing entry is not an error; many operations simply have no equivalent
// on a given host.
func Lookup(kind host.Kind, op string) (Template, bool) {
	ops, ok := commands[kind]
	if !ok {
		return Template{}, false
	}
	tpl, ok := ops[op]
	return tpl, ok
}

// NotImplemented reports whether the combination is known to have no
// equivalent on the host, warranting a diagnostic rather than silence.
func NotImplemented(kind host.Kind, op string) bool {
	return notImplemented[kind][op]
}

// Render substitutes the request's packages and option strings into the
// template and returns concrete argument vectors. Pass-through extras are
// appended to the final step. Empty option strings expand to nothing.
func (t Template) Render(req *request.Request) []Step {
	steps := make([]Step, 0, len(t.Steps))
	for _, s := range t.Steps {
		argv := make([]string, 0, len(s.Argv)+len(req.Packages))
		for _, entry := range s.Argv {
			switch entry {
			case phPackages:
				argv = append(argv, req.Packages...)
			case phToolOpt:
				argv = appendFields(argv, req.ToolOpt)
			case phForce:
				argv = appendFields(argv, req.Force)
			case phVerbose:
				argv = appendFields(argv, req.Verbose)
			default:
				argv = append(argv, entry)
			}
		}
		steps = append(steps, Step{Argv: argv, Root: s.Root, Optional: s.Optional})
	}

	if len(req.Extras) > 0 && len(steps) > 0 {
		last := &steps[len(steps)-1]
		last.Argv = append(last.Argv, req.Extras...)
	}

	return steps
}

// appendFields splits a flag string on whitespace so multi-token values
// ("--force-yes -y") become separate argv entries.
func appendFields(argv []string, value string) []string {
	return append(argv, strings.Fields(value)...)
}
