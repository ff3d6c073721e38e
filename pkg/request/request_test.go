package request

import (
	"errors"
	"reflect"
	"testing"

	"pacport/pkg/host"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		flag     rune
		expected string
	}{
		{"UFromEmpty", "", 'u', "u"},
		{"YFromEmpty", "", 'y', "y"},
		{"UThenY", "u", 'y', "uy"},
		{"YThenU", "y", 'u', "uy"},
		{"YOntoUY", "uy", 'y', "uy"},
		{"FirstC", "", 'c', "c"},
		{"SecondC", "c", 'c', "cc"},
		{"ThirdC", "cc", 'c', "ccc"},
		{"FourthCStaysAtCeiling", "ccc", 'c', "ccc"},
		{"OverwriteS", "u", 's', "s"},
		{"OverwriteI", "ccc", 'i', "i"},
		{"UDiscardsS", "s", 'u', "u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.code, tt.flag); got != tt.expected {
				t.Errorf("Fold(%q, %q) = %q, want %q", tt.code, tt.flag, got, tt.expected)
			}
		})
	}
}

func TestParseConflictingPrimaries(t *testing.T) {
	p := NewParser(host.Dpkg)

	argvs := [][]string{
		{"-S", "-R"},
		{"-R", "-S"},
		{"-SR"},
		{"-Q", "foo", "-U"},
		{"-US", "foo"},
	}

	for _, argv := range argvs {
		if _, err := p.Parse(argv); !errors.Is(err, ErrConflictingPrimary) {
			t.Errorf("Parse(%v) error = %v, want ErrConflictingPrimary", argv, err)
		}
	}

	// The same primary twice is not a conflict.
	if _, err := p.Parse([]string{"-S", "-S", "foo"}); err != nil {
		t.Errorf("repeated -S should not conflict, got %v", err)
	}
}

func TestParseSecondaryFolding(t *testing.T) {
	p := NewParser(host.Dpkg)

	tests := []struct {
		name     string
		argv     []string
		expected string
	}{
		{"SuyCombined", []string{"-Suy"}, "uy"},
		{"SyuCombined", []string{"-Syu"}, "uy"},
		{"SuySplit", []string{"-S", "-u", "-y"}, "uy"},
		{"TripleC", []string{"-Sccc"}, "ccc"},
		{"QuadrupleC", []string{"-Scccc"}, "ccc"},
		{"CSplit", []string{"-Sc", "-c"}, "cc"},
		{"QueryInfo", []string{"-Qi", "foo"}, "i"},
		{"RemoveRecursive", []string{"-Rs", "foo"}, "s"},
		// Overwrite flags discard earlier folding state; preserved as-is.
		{"SsuDiscardsS", []string{"-Ssu"}, "u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := p.Parse(tt.argv)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.argv, err)
			}
			if req.Secondary != tt.expected {
				t.Errorf("secondary = %q, want %q", req.Secondary, tt.expected)
			}
		})
	}
}

func TestParsePositionalsAndExtras(t *testing.T) {
	p := NewParser(host.Dpkg)

	req, err := p.Parse([]string{"-S", "vim", "--no-install-recommends", "-x", "tmux"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if !reflect.DeepEqual(req.Packages, []string{"vim", "tmux"}) {
		t.Errorf("packages = %v, want [vim tmux]", req.Packages)
	}
	if !reflect.DeepEqual(req.Extras, []string{"--no-install-recommends", "-x"}) {
		t.Errorf("extras = %v, want [--no-install-recommends -x]", req.Extras)
	}
}

func TestParseDoubleDash(t *testing.T) {
	p := NewParser(host.Dpkg)

	req, err := p.Parse([]string{"-S", "--", "-weird-name"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !reflect.DeepEqual(req.Packages, []string{"-weird-name"}) {
		t.Errorf("packages = %v, want [-weird-name]", req.Packages)
	}
}

func TestParseDownloadOnly(t *testing.T) {
	tests := []struct {
		name     string
		kind     host.Kind
		expected string
	}{
		{"Dpkg", host.Dpkg, "-d"},
		{"Portage", host.Portage, "--fetchonly"},
		{"Homebrew", host.Homebrew, ""},
		{"Unknown", host.Unknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.kind)
			req, err := p.Parse([]string{"-Sw", "foo"})
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if req.ToolOpt != tt.expected {
				t.Errorf("tool option = %q, want %q", req.ToolOpt, tt.expected)
			}
		})
	}
}

func TestParseDownloadOnlyYumPlugin(t *testing.T) {
	p := NewParser(host.Yum)

	p.Probe = func(name string) bool { return name == "yum-downloadonly" }
	req, err := p.Parse([]string{"-Sw", "foo"})
	if err != nil {
		t.Fatalf("Parse() with plugin present error: %v", err)
	}
	if req.ToolOpt != "--downloadonly" {
		t.Errorf("tool option = %q, want --downloadonly", req.ToolOpt)
	}

	p.Probe = func(string) bool { return false }
	if _, err := p.Parse([]string{"-Sw", "foo"}); !errors.Is(err, ErrMissingDependency) {
		t.Errorf("Parse() without plugin error = %v, want ErrMissingDependency", err)
	}
}

func TestParseForce(t *testing.T) {
	tests := []struct {
		name     string
		kind     host.Kind
		argv     []string
		expected string
	}{
		{"DpkgDefault", host.Dpkg, []string{"-S", "foo"}, ""},
		{"DpkgForced", host.Dpkg, []string{"-Sf", "foo"}, "--force-yes -y"},
		{"YumForced", host.Yum, []string{"-Sf", "foo"}, "-y"},
		{"UnknownForced", host.Unknown, []string{"-Sf", "foo"}, "-y"},
		{"PortageDefault", host.Portage, []string{"-S", "foo"}, "--ask=n"},
		{"PortageForcedClears", host.Portage, []string{"-Sf", "foo"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewParser(tt.kind).Parse(tt.argv)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if req.Force != tt.expected {
				t.Errorf("force = %q, want %q", req.Force, tt.expected)
			}
		})
	}
}

func TestParseVerbose(t *testing.T) {
	req, err := NewParser(host.Dpkg).Parse([]string{"-Sv", "foo"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if req.Verbose != "-v" {
		t.Errorf("verbose = %q, want -v", req.Verbose)
	}
}

func TestParseHelpShortCircuits(t *testing.T) {
	// -h stops processing before the conflicting -R is ever seen.
	req, err := NewParser(host.Dpkg).Parse([]string{"-S", "-h", "-R"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !req.Help {
		t.Error("expected Help to be set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		req      *Request
		expected error
	}{
		{"NoOperation", &Request{}, ErrNoOperation},
		{"PositionalOnly", &Request{Packages: []string{"foo"}}, ErrNoOperation},
		{"MixedScopeSuy", &Request{Primary: "S", Secondary: "uy", Packages: []string{"foo"}}, ErrMixedScope},
		{"MixedScopeSu", &Request{Primary: "S", Secondary: "u", Packages: []string{"foo"}}, ErrMixedScope},
		{"MixedScopeSy", &Request{Primary: "S", Secondary: "y", Packages: []string{"foo"}}, ErrMixedScope},
		{"InstallNoPackage", &Request{Primary: "S"}, ErrMissingArgument},
		{"RemoveNoPackage", &Request{Primary: "R"}, ErrMissingArgument},
		{"UpgradeNoFile", &Request{Primary: "U"}, ErrMissingArgument},
		{"QueryNoPackageOK", &Request{Primary: "Q"}, nil},
		{"PlainUpgradeOK", &Request{Primary: "S", Secondary: "uy"}, nil},
		{"InstallOK", &Request{Primary: "S", Packages: []string{"foo"}}, nil},
		{"SearchNoTermOK", &Request{Primary: "S", Secondary: "s"}, nil},
		{"HelpSkipsChecks", &Request{Help: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.expected == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Validate() = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestOpKey(t *testing.T) {
	req := &Request{Primary: "S", Secondary: "uy"}
	if req.OpKey() != "Suy" {
		t.Errorf("OpKey() = %q, want Suy", req.OpKey())
	}
}
