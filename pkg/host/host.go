// Package host detects which native package manager family a machine runs.
package host

import "strings"

// Kind identifies the package manager family of the host system.
type Kind string

const (
	Pacman   Kind = "pacman"
	Dpkg     Kind = "dpkg"
	Yum      Kind = "yum"
	Homebrew Kind = "homebrew"
	Portage  Kind = "portage"
	Unknown  Kind = "unknown"
)

// ParseKind converts a user-supplied name into a Kind. It accepts the
// canonical names plus a few common spellings ("apt", "brew", "arch").
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pacman", "arch":
		return Pacman, true
	case "dpkg", "apt", "debian", "ubuntu":
		return Dpkg, true
	case "yum", "rpm", "centos", "fedora":
		return Yum, true
	case "homebrew", "brew":
		return Homebrew, true
	case "portage", "emerge", "gentoo":
		return Portage, true
	}
	return Unknown, false
}
