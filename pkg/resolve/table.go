package resolve

import "pacport/pkg/host"

// run builds a non-root single step.
func run(argv ...string) Step {
	return Step{Argv: argv}
}

// sudo builds a root-requiring step.
func sudo(argv ...string) Step {
	return Step{Argv: argv, Root: true}
}

// one wraps a single step into a template.
func one(s Step) Template {
	return Template{Steps: []Step{s}}
}

// seq chains steps into a multi-step template; the wrapper exits with the
// last executed command's code.
func seq(steps ...Step) Template {
	return Template{Steps: steps}
}

// commands is the full support matrix. Pacman hosts never reach it: all
// arguments are forwarded verbatim to the real pacman instead.
var commands = map[host.Kind]map[string]Template{
	host.Dpkg: {
		"Q":   one(run("dpkg", "-l", phPackages)),
		"Qi":  one(run("dpkg-query", "-s", phPackages)),
		"Ql":  one(run("dpkg-query", "-L", phPackages)),
		"Qo":  one(run("dpkg-query", "-S", phPackages)),
		"Qp":  one(run("dpkg-deb", "-I", phPackages)),
		"Qu":  one(run("apt-get", "-s", "upgrade")),
		"S":   one(sudo("apt-get", "install", phToolOpt, phForce, phVerbose, phPackages)),
		"Ss":  one(run("apt-cache", "search", phPackages)),
		"Su":  one(sudo("apt-get", "upgrade", phToolOpt, phForce, phVerbose)),
		"Sy":  one(sudo("apt-get", "update", phForce, phVerbose)),
		"Suy": seq(sudo("apt-get", "update", phForce, phVerbose), sudo("apt-get", "upgrade", phToolOpt, phForce, phVerbose)),
		"Sc":  one(sudo("apt-get", "autoclean")),
		"Scc": one(sudo("apt-get", "clean")),
		"R":   one(sudo("apt-get", "remove", phForce, phVerbose, phPackages)),
		"Rs":  one(sudo("apt-get", "autoremove", phForce, phVerbose, phPackages)),
	},

	host.Yum: {
		"Q":    one(run("rpm", "-qa", phPackages)),
		"Qi":   one(run("rpm", "-qi", phPackages)),
		"Ql":   one(run("rpm", "-ql", phPackages)),
		"Qo":   one(run("rpm", "-qf", phPackages)),
		"Qp":   one(run("rpm", "-qp", phPackages)),
		"Qc":   one(run("rpm", "-q", "--changelog", phPackages)),
		"Qu":   one(run("yum", "check-update")),
		"S":    one(sudo("yum", "install", phToolOpt, phForce, phVerbose, phPackages)),
		"Ss":   one(run("yum", "search", phPackages)),
		"Su":   one(sudo("yum", "update", phToolOpt, phForce, phVerbose)),
		"Sy":   one(sudo("yum", "makecache")),
		"Suy":  one(sudo("yum", "update", phToolOpt, phForce, phVerbose)),
		"Sc":   one(sudo("yum", "clean", "expire-cache")),
		"Scc":  one(sudo("yum", "clean", "packages")),
		"Sccc": one(sudo("yum", "clean", "all")),
		"R":    one(sudo("yum", "remove", phForce, phPackages)),
		"Rs":   one(sudo("yum", "remove", phForce, phPackages)),
		"U":    one(sudo("rpm", "-U", phVerbose, phPackages)),
	},

	host.Homebrew: {
		"Q":   one(run("brew", "list", phPackages)),
		"Qi":  one(run("brew", "info", phPackages)),
		"Ql":  one(run("brew", "list", phPackages)),
		"Qc":  one(run("brew", "log", phPackages)),
		"Qu":  one(run("brew", "outdated")),
		"S":   one(run("brew", "install", phVerbose, phPackages)),
		"Ss":  one(run("brew", "search", phPackages)),
		"Su":  one(run("brew", "upgrade", phVerbose)),
		"Sy":  one(run("brew", "update", phVerbose)),
		"Suy": seq(run("brew", "update", phVerbose), run("brew", "upgrade", phVerbose)),
		"Sc":  one(run("brew", "cleanup")),
		"Scc": one(run("brew", "cleanup", "-s")),
		"R":   one(run("brew", "remove", phPackages)),
		"Rs":  one(run("brew", "remove", phPackages)),
	},

	host.Portage: {
		"Qi": one(run("emerge", "--info", phPackages)),
		"Ql": one(run("equery", "files", phPackages)),
		"Qo": one(run("equery", "belongs", phPackages)),
		"Qc": one(run("equery", "changes", phPackages)),
		"Qu": one(run("emerge", "--update", "--pretend", "@world")),
		"S":  one(sudo("emerge", phToolOpt, phForce, phVerbose, phPackages)),
		"Ss": one(run("eix", phPackages)),
		"Su": one(sudo("emerge", "--update", "--deep", phToolOpt, phForce, phVerbose, "@world")),
		"Sy": seq(
			sudo("emerge", "--sync", phVerbose),
			Step{Argv: []string{"layman", "-S"}, Root: true, Optional: true},
		),
		"Suy": seq(
			sudo("emerge", "--sync", phVerbose),
			Step{Argv: []string{"layman", "-S"}, Root: true, Optional: true},
			sudo("emerge", "--update", "--deep", phToolOpt, phForce, phVerbose, "@world"),
		),
		"Sc": one(sudo("eclean", "distfiles")),
		"R":  one(sudo("emerge", "--unmerge", phForce, phVerbose, phPackages)),
		"Rs": one(sudo("emerge", "--depclean", phForce, phVerbose, phPackages)),
	},
}

// notImplemented lists combinations with no equivalent on the host; the
// wrapper prints a diagnostic for these instead of staying silent.
var notImplemented = map[host.Kind]map[string]bool{
	host.Dpkg: {
		"U": true,
	},
	host.Homebrew: {
		"Qo": true,
		"U":  true,
	},
	host.Portage: {
		"Qp": true,
	},
}
