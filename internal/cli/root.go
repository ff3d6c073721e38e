// Package cli implements the command-line interface for pacport.
package cli

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"pacport/internal/config"
	"pacport/internal/executor"
	"pacport/internal/ui"
	"pacport/pkg/host"
	"pacport/pkg/request"
	"pacport/pkg/resolve"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Global state
var (
	cfg    *config.Config
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "pacport",
	})
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Pacman-style flags do not fit pflag's model: short options cluster into
// operation codes (-Suy) and unrecognized flags must survive untouched for
// the native tool. Flag parsing is disabled and raw argv goes to the
// request parser instead.
var rootCmd = &cobra.Command{
	Use:   "pacport",
	Short: "pacman-syntax front end for the host's native package manager",
	Long: `Pacport accepts pacman-style flags (-Q, -S, -R, -U plus modifiers)
and re-dispatches to whichever package manager the host actually runs:
apt/dpkg, yum/rpm, Homebrew, Portage, or pacman itself.

Examples:
  pacport -S vim          # install via the native manager
  pacport -Ss editor      # search package repositories
  pacport -Suy            # refresh databases and upgrade everything
  pacport -R vim          # remove a package`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args)
	},
}

// Execute runs pacport and returns the process exit code: the dispatched
// native command's code, 1 on validation failure, 0 on success or help.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	// The native tool already printed its own diagnostics; only pacport's
	// own errors need a message.
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		ui.ErrorMsg("%v", err)
	}

	return executor.ExitCode(err)
}

// run is the whole pipeline: detect, pass through or parse, validate,
// resolve, dispatch.
func run(ctx context.Context, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)
	if cfg.General.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	kind := detectHost()
	logger.Debug("detected host", "kind", kind)

	p, err := planFor(kind, nil, args)
	if err != nil {
		return err
	}

	if p.passThrough {
		exe := executor.New(cfg.General.DryRun, cfg.General.Verbose)
		return exe.Run(ctx, cfg.General.PacmanBinary, p.steps[0].Argv...)
	}

	if p.help {
		printHelp()
		return nil
	}

	if p.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if p.diag {
		ui.WarningMsg("function not implemented on this system")
		return nil
	}

	return dispatch(ctx, p.steps, p.verbose)
}

// detectHost honors the configuration override before inspecting the
// system.
func detectHost() host.Kind {
	if cfg.General.Host != "" {
		if kind, ok := host.ParseKind(cfg.General.Host); ok {
			logger.Debug("host detection overridden", "kind", kind)
			return kind
		}
		ui.WarningMsg("ignoring unknown host override %q", cfg.General.Host)
	}
	return host.Detect()
}

// plan is one resolved invocation: a verbatim pacman pass-through, help, a
// known-unsupported diagnostic, or zero or more native command steps.
type plan struct {
	passThrough bool
	help        bool
	diag        bool
	verbose     bool
	steps       []resolve.Step
}

// planFor parses, validates, and resolves one invocation without executing
// anything. A nil probe keeps the parser's default dependency check.
func planFor(kind host.Kind, probe request.DependencyProbe, args []string) (*plan, error) {
	// Native pacman systems get the arguments verbatim; no parsing, no
	// validation, no translation.
	if kind == host.Pacman {
		return &plan{passThrough: true, steps: []resolve.Step{{Argv: args}}}, nil
	}

	parser := request.NewParser(kind)
	if probe != nil {
		parser.Probe = probe
	}

	req, err := parser.Parse(args)
	if err != nil {
		return nil, err
	}
	if req.Help {
		return &plan{help: true}, nil
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if kind == host.Unknown {
		return nil, ErrUnsupportedHost
	}

	verbose := req.Verbose != ""

	op := req.OpKey()
	tpl, found := resolve.Lookup(kind, op)
	if !found {
		if resolve.NotImplemented(kind, op) {
			return &plan{diag: true, verbose: verbose}, nil
		}
		logger.Debug("no native equivalent", "host", kind, "op", op)
		return &plan{verbose: verbose}, nil
	}

	return &plan{steps: tpl.Render(req), verbose: verbose}, nil
}

// dispatch executes the plan's steps in order, stopping at the first
// failure. The failing command's exit code propagates unchanged.
func dispatch(ctx context.Context, steps []resolve.Step, verbose bool) error {
	exe := executor.New(cfg.General.DryRun, cfg.General.Verbose || verbose)

	for _, step := range steps {
		if step.Optional && !executor.Available(step.Argv[0]) {
			logger.Debug("skipping optional step", "binary", step.Argv[0])
			continue
		}

		logger.Debug("dispatching", "argv", step.Argv, "root", step.Root)

		var err error
		if step.Root {
			err = exe.RunSudo(ctx, step.Argv[0], step.Argv[1:]...)
		} else {
			err = exe.Run(ctx, step.Argv[0], step.Argv[1:]...)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
