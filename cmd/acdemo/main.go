// Command acdemo is a small example program showing github.com/dl/acmatch
// in use. It is not part of the library: it parses flags with cobra,
// builds one Automaton, and prints matches, the way gogrep's cmd/ would
// sit on top of internal/matcher — but scoped to the single in-memory
// All/Next/Starts call the library actually offers.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dl/acmatch"
	"github.com/dl/acmatch/internal/democonfig"
	"github.com/dl/acmatch/internal/display"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := &democonfig.Config{}
	var colorFlag string

	root := &cobra.Command{
		Use:   "acdemo",
		Short: "Demonstrate the acmatch leftmost-longest multi-pattern search library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch colorFlag {
			case "always":
				cfg.Color = democonfig.ColorAlways
			case "never":
				cfg.Color = democonfig.ColorNever
			default:
				cfg.Color = democonfig.ColorAuto
			}
			return runSearch(cfg)
		},
	}

	flags := root.Flags()
	flags.StringSliceVarP(&cfg.Patterns, "pattern", "p", nil, "pattern to search for (repeatable)")
	flags.StringVarP(&cfg.Text, "text", "t", "", "text to search")
	flags.IntVar(&cfg.At, "at", 0, "starting byte offset")
	flags.BoolVar(&cfg.All, "all", true, "find all non-overlapping matches instead of just the next one")
	flags.BoolVar(&cfg.JSON, "json", false, "emit JSON Lines instead of highlighted text")
	flags.StringVar(&colorFlag, "color", "auto", "when to color output: auto, always, never")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log construction and query tracing")

	if extra := loadConfigArgs(); extra != nil {
		root.SetArgs(append(extra, os.Args[1:]...))
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "acdemo:", err)
		return 2
	}
	return 0
}

func runSearch(cfg *democonfig.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.DebugLevel)
	}

	patterns := make([]acmatch.Pattern, len(cfg.Patterns))
	for i, p := range cfg.Patterns {
		patterns[i] = acmatch.Pattern{ID: i, Value: []byte(p)}
	}

	a, err := acmatch.New(acmatch.Config{
		Algorithm: acmatch.AhoCorasickLeftmost,
		Patterns:  patterns,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	text := []byte(cfg.Text)

	var locs []acmatch.Location
	if cfg.All {
		locs = a.All(text, cfg.At)
	} else if loc, ok := a.Next(text, cfg.At); ok {
		locs = []acmatch.Location{loc}
	}

	useColor := false
	switch cfg.Color {
	case democonfig.ColorAlways:
		useColor = true
	case democonfig.ColorNever:
		useColor = false
	case democonfig.ColorAuto:
		useColor = display.StdoutIsTerminal()
	}

	var segs [][]byte
	if cfg.JSON {
		segs = display.FormatJSON(locs)
	} else {
		segs = display.FormatText(text, locs, display.NewStyles(), useColor)
	}

	return display.NewWriter().Write(segs)
}

// loadConfigArgs reads acdemo's config file and returns a flat arg list
// to prepend to os.Args, so a pattern set can be kept in a file instead
// of retyped on every invocation. Config file location: ACDEMO_CONFIG_PATH
// env var, or ~/.acdemo. Format: one directive per line, # comments and
// blank lines ignored; each line is whitespace-split into its own args
// (e.g. "--text abce" becomes two args), since --pattern/-p repeats and
// --text needs its value on the same line as the flag. Returns nil if no
// config file is found.
func loadConfigArgs() []string {
	path := os.Getenv("ACDEMO_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".acdemo")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, strings.Fields(line)...)
	}
	return args
}
