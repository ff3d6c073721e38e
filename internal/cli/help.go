package cli

import "fmt"

// helpText mirrors pacman's operation grammar; only the listed subset is
// translated, everything else is forwarded to the native tool untouched.
const helpText = `Usage: pacport <operation> [options] [packages]

Primary operations:
  -Q    query installed packages
  -S    sync: install packages or refresh/upgrade the system
  -R    remove packages
  -U    install from a local package file

Secondary modifiers (append to a primary):
  -Qc -Qi -Ql -Qm -Qo -Qp -Qu
  -Ss -Su -Sy -Suy -Sc -Scc -Sccc
  -Rs

Options:
  -f    force / assume yes
  -v    verbose output
  -w    download only, do not install
  -h    show this help

Unrecognized flags are passed through to the native package manager.
On pacman systems all arguments are forwarded verbatim to pacman.
`

// printHelp writes the usage text with a version footer.
func printHelp() {
	fmt.Print(helpText)
	fmt.Printf("\npacport %s", Version)
	if Commit != "unknown" {
		fmt.Printf(" (%s)", Commit)
	}
	fmt.Println()
}
