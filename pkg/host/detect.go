package host

import (
	"os"
	"strings"
)

// osReleasePath is the identification file scanned for distribution names.
const osReleasePath = "/etc/os-release"

// signatures maps distribution name fragments to host kinds, in priority
// order. The first fragment found in the identification file wins.
var signatures = []struct {
	token string
	kind  Kind
}{
	{"arch", Pacman},
	{"debian", Dpkg},
	{"ubuntu", Dpkg},
	{"centos", Yum},
	{"fedora", Yum},
}

// probes are well-known binary locations checked when the identification
// file gives no answer, in priority order.
var probes = []struct {
	path string
	kind Kind
}{
	{"/usr/bin/apt-get", Dpkg},
	{"/usr/bin/yum", Yum},
	{"/usr/local/bin/brew", Homebrew},
	{"/opt/homebrew/bin/brew", Homebrew},
	{"/usr/bin/emerge", Portage},
}

// Detect determines the host's package manager family. It scans the OS
// identification file first and falls back to probing well-known binary
// paths. Detection is read-only and never fails; an undeterminable host
// yields Unknown.
func Detect() Kind {
	if k, ok := scanReleaseFile(osReleasePath); ok {
		return k
	}
	if k, ok := probeBinaries(fileExists); ok {
		return k
	}
	return Unknown
}

// scanReleaseFile reads an os-release style file and matches it against the
// signature table.
func scanReleaseFile(path string) (Kind, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Unknown, false
	}
	return matchSignature(string(raw))
}

// matchSignature performs a case-insensitive substring scan of the
// identification text, honoring signature priority order.
func matchSignature(contents string) (Kind, bool) {
	lower := strings.ToLower(contents)
	for _, sig := range signatures {
		if strings.Contains(lower, sig.token) {
			return sig.kind, true
		}
	}
	return Unknown, false
}

// probeBinaries checks the probe table with the given existence check.
func probeBinaries(exists func(string) bool) (Kind, bool) {
	for _, p := range probes {
		if exists(p.path) {
			return p.kind, true
		}
	}
	return Unknown, false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
