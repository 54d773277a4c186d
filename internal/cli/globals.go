package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Globals holds global flags available to all commands
type Globals struct {
	ConfigFile string `name:"config" help:"Path to the rules file (default: ./browserselector.json, then the XDG config dir)" type:"path" predictor:"file" env:"BROWSERSELECTOR_CONFIG"`
	Output     string `help:"Output format" default:"auto" enum:"json,plain,rich,auto" short:"o" env:"BROWSERSELECTOR_OUTPUT"`
	Verbose    bool   `help:"Verbose output (debug logging)" short:"v" env:"BROWSERSELECTOR_VERBOSE"`
	LogLevel   string `help:"Log level" default:"warn" enum:"error,warn,info,debug" env:"BROWSERSELECTOR_LOG_LEVEL"`
	LogFormat  string `help:"Log format" default:"text" enum:"text,json,logfmt" env:"BROWSERSELECTOR_LOG_FORMAT"`
	DryRun     bool   `help:"Print the resolved command instead of launching it" name:"dry-run" env:"BROWSERSELECTOR_DRY_RUN"`

	ChromePath  string `help:"Chrome executable" name:"chrome-path" group:"Applications" env:"BROWSERSELECTOR_CHROME"`
	EdgePath    string `help:"Edge executable" name:"edge-path" group:"Applications" env:"BROWSERSELECTOR_EDGE"`
	FirefoxPath string `help:"Firefox executable" name:"firefox-path" group:"Applications" env:"BROWSERSELECTOR_FIREFOX"`
	OpenerPath  string `help:"Default URL opener" name:"opener-path" group:"Applications" env:"BROWSERSELECTOR_OPENER"`
}

// ResolvedOutput returns the effective output mode
// "auto" detects TTY: if stdout is TTY -> rich, else -> plain
func (g *Globals) ResolvedOutput(stdout io.Writer) string {
	if g.Output != "auto" {
		return g.Output
	}

	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "rich"
	}

	return "plain"
}
