package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags. The set map records
// which flags were present on the command line so that, when merging
// with a config file, explicit flags win over file values.
type cliFlags struct {
	output  string
	dpi     float64
	margin  float64
	title   string
	page    string
	config  string
	workers int
	verify  bool
	verbose bool
	quiet   bool
	version bool

	// set records which flags were present on the command line.
	set map[string]bool
}

const usageText = `Usage: img2pdf [flags] <input> [<input>...]

Convert images (JPEG, PNG, GIF, BMP, WebP) to PDF.

Each input is either an image file (one-page PDF) or a directory whose
images are merged into a single multi-page PDF in lexicographic filename
order. Files are recognized by content, not extension.

Flags:
`

// parseFlags parses args (including the program name at args[0]) and
// returns the flags and positional inputs.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fmt.Fprintln(os.Stderr, fs.FlagUsages())
	}

	fs.StringVarP(&flags.output, "output", "o", "", "output PDF file, or directory with multiple inputs")
	fs.Float64Var(&flags.dpi, "dpi", 0, "image resolution in dots per inch (default 150)")
	fs.Float64Var(&flags.margin, "margin", 0, "page margin in millimeters (default 10)")
	fs.StringVar(&flags.title, "title", "", "PDF document title metadata")
	fs.StringVar(&flags.page, "page", "", `page size: "a4" or WxH in millimeters, e.g. "210x297" (default a4)`)
	fs.StringVar(&flags.config, "config", "", "path to a YAML config file")
	fs.IntVar(&flags.workers, "workers", 0, "parallel conversions with multiple inputs (default: CPU count)")
	fs.BoolVar(&flags.verify, "verify", false, "validate each written PDF and fail on structural errors")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress the success summary")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	flags.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { flags.set[f.Name] = true })

	return flags, fs.Args(), nil
}
