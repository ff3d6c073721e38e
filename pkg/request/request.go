// Package request parses pacman-style argument vectors into a dispatch
// request for the host's native package manager.
package request

import (
	"fmt"
	"os/exec"
	"strings"

	"pacport/pkg/host"
)

// Request is the parsed form of one invocation. All fields are stack-local
// to a single run; nothing is shared or persisted.
type Request struct {
	Primary   string   // one of "Q", "S", "R", "U"
	Secondary string   // folded modifier code, e.g. "uy", "ccc", "i"
	ToolOpt   string   // host-dependent download-only flag text
	Force     string   // host-dependent force/assume-yes flag text
	Verbose   string   // "-v" when requested
	Packages  []string // positional package names / search terms
	Extras    []string // unrecognized flags, forwarded untouched
	Help      bool     // -h was seen; short-circuits everything else
}

// OpKey returns the combined primary+secondary operation code, e.g. "Suy".
func (r *Request) OpKey() string {
	return r.Primary + r.Secondary
}

// Fold applies one secondary-operation flag to the accumulated code and
// returns the new code. The u/y pair folds order-insensitively into "uy";
// c accumulates up to the "ccc" ceiling; every other modifier overwrites.
func Fold(code string, flag rune) string {
	switch flag {
	case 'u':
		if strings.HasPrefix(code, "y") {
			return "uy"
		}
		return "u"
	case 'y':
		if strings.HasPrefix(code, "u") {
			return "uy"
		}
		return "y"
	case 'c':
		switch {
		case code == "cc" || code == "ccc":
			return "ccc"
		case strings.HasPrefix(code, "c"):
			return "cc"
		default:
			return "c"
		}
	default:
		return string(flag)
	}
}

// DependencyProbe reports whether a companion package is installed on the
// host. It exists so parse-time dependency checks can be faked in tests.
type DependencyProbe func(name string) bool

// rpmHasPackage asks rpm whether the named package is installed.
func rpmHasPackage(name string) bool {
	return exec.Command("rpm", "-q", name).Run() == nil
}

// Parser turns raw arguments into a Request for one detected host.
type Parser struct {
	Host  host.Kind
	Probe DependencyProbe
}

// NewParser returns a Parser for the given host kind.
func NewParser(kind host.Kind) *Parser {
	return &Parser{Host: kind, Probe: rpmHasPackage}
}

const (
	primaryFlags   = "QSRU"
	overwriteFlags = "slipqom"
)

// Parse consumes the argument vector left to right and accumulates a
// Request. Unrecognized flags are not errors; they are preserved in Extras
// and forwarded to the native tool untouched.
func (p *Parser) Parse(args []string) (*Request, error) {
	req := &Request{}

	// Portage never prompts when told up front; its force default is set
	// before any flag is processed and -f clears it instead.
	if p.Host == host.Portage {
		req.Force = "--ask=n"
	}

	positionalOnly := false
	for _, arg := range args {
		switch {
		case positionalOnly || arg == "-" || !strings.HasPrefix(arg, "-"):
			req.Packages = append(req.Packages, arg)
		case arg == "--":
			positionalOnly = true
		case strings.HasPrefix(arg, "--"):
			// Long options are not modeled here; the native tool may
			// understand them.
			req.Extras = append(req.Extras, arg)
		default:
			for _, flag := range arg[1:] {
				done, err := p.apply(req, flag)
				if err != nil {
					return nil, err
				}
				if done {
					return req, nil
				}
			}
		}
	}

	return req, nil
}

// apply folds a single short flag into the request. It returns true when
// parsing should stop immediately (help).
func (p *Parser) apply(req *Request, flag rune) (bool, error) {
	switch {
	case strings.ContainsRune(primaryFlags, flag):
		if req.Primary != "" && req.Primary != string(flag) {
			return false, fmt.Errorf("%w: -%s and -%c", ErrConflictingPrimary, req.Primary, flag)
		}
		req.Primary = string(flag)

	case strings.ContainsRune(overwriteFlags, flag), flag == 'u', flag == 'y', flag == 'c':
		req.Secondary = Fold(req.Secondary, flag)

	case flag == 'w':
		switch p.Host {
		case host.Dpkg:
			req.ToolOpt = "-d"
		case host.Yum:
			if p.Probe != nil && !p.Probe("yum-downloadonly") {
				return false, fmt.Errorf("%w: yum-downloadonly plugin is required for -w", ErrMissingDependency)
			}
			req.ToolOpt = "--downloadonly"
		case host.Portage:
			req.ToolOpt = "--fetchonly"
		}

	case flag == 'f':
		switch p.Host {
		case host.Dpkg:
			req.Force = "--force-yes -y"
		case host.Portage:
			req.Force = ""
		default:
			req.Force = "-y"
		}

	case flag == 'v':
		req.Verbose = "-v"

	case flag == 'h':
		req.Help = true
		return true, nil

	default:
		req.Extras = append(req.Extras, "-"+string(flag))
	}

	return false, nil
}

// wholeSystemOps are sync variants that must not be mixed with package
// names; native tools disagree on what that combination means.
var wholeSystemOps = map[string]bool{
	"Su":  true,
	"Sy":  true,
	"Suy": true,
}

// Validate applies the pre-dispatch rejection rules.
func (r *Request) Validate() error {
	if r.Help {
		return nil
	}
	if r.Primary == "" {
		return ErrNoOperation
	}
	if len(r.Packages) > 0 && wholeSystemOps[r.OpKey()] {
		return fmt.Errorf("%w: run the refresh/upgrade and the package operation as two separate invocations", ErrMixedScope)
	}
	if len(r.Packages) == 0 && r.Secondary == "" && r.Primary != "Q" {
		return fmt.Errorf("%w: -%s needs at least one package argument", ErrMissingArgument, r.Primary)
	}
	return nil
}
