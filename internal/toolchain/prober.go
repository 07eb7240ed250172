package toolchain

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tskforge/cli/internal/output"
	"github.com/tskforge/cli/internal/run"
)

// configureArgs turns off every optional vendor component the extension
// does not link against.
var configureArgs = []string{"--disable-java", "--without-afflib", "--without-libewf", "--without-zlib"}

// Prober determines what the native toolchain needs before sources can be
// compiled. On MSVC the answer is static; everywhere else the vendor's
// configure script decides, and its diagnostics from the "configure:"
// banner on are forwarded to Out.
type Prober struct {
	runner run.Runner
	out    io.Writer
	log    *log.Logger
}

// NewProber returns a prober that shells out through runner and forwards
// configure diagnostics to out.
func NewProber(runner run.Runner, out io.Writer) *Prober {
	return &Prober{
		runner: runner,
		out:    out,
		log:    output.StageLogger("toolchain"),
	}
}

// Probe produces the macro profile for kind. The unix path runs the
// vendor configure script inside vendorDir and fails when it exits
// non-zero; the msvc path makes no external calls.
func (p *Prober) Probe(ctx context.Context, kind Kind, vendorDir string) (Profile, error) {
	profile := Profile{
		Kind:   kind,
		Macros: []Macro{{Name: "HAVE_TSK_LIBTSK_H"}},
	}

	if kind == KindMSVC {
		profile.Macros = append(profile.Macros,
			Macro{Name: "WIN32", Value: "1"},
			Macro{Name: "UNICODE", Value: "1"},
		)
		return profile, nil
	}

	args := append([]string{"configure"}, configureArgs...)
	p.log.Debug("running configure", "dir", vendorDir)
	res, err := run.RunChecked(ctx, p.runner, vendorDir, "sh", args...)
	if err != nil {
		return Profile{}, err
	}

	for _, line := range bannerLines(string(res.Output)) {
		fmt.Fprintln(p.out, line)
	}

	profile.Configured = true
	profile.Macros = append(profile.Macros,
		Macro{Name: "HAVE_CONFIG_H", Value: "1"},
		Macro{Name: "LOCALEDIR", Value: `"/usr/share/locale"`},
	)
	return profile, nil
}

// bannerLines trims trailing whitespace from each line of configure's
// combined output and keeps everything from the "configure:" banner line
// on. The feature-check chatter before the banner is dropped.
func bannerLines(out string) []string {
	var kept []string
	printing := false
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "configure:" {
			printing = true
		}
		if printing {
			kept = append(kept, line)
		}
	}
	return kept
}
