package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidPage        = errors.New(`invalid page size (use "a4" or WxH in millimeters, e.g. "210x297")`)
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// dirPermissions is used when creating output directories.
const dirPermissions = 0o750

// job is one independent conversion: a single image file or a whole
// directory merged into one PDF.
type job struct {
	inputPath  string
	outputPath string
	isDir      bool
}

// run executes the CLI: merge config file and flags, build the
// converter, resolve jobs, convert (in parallel for multiple inputs),
// and print a summary. The returned error is the first conversion
// failure, so the exit code reflects it.
func run(flags *cliFlags, inputs []string, stdout, stderr io.Writer) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}

	var fileCfg *fileConfig
	if flags.config != "" {
		cfg, err := loadConfig(flags.config)
		if err != nil {
			return err
		}
		fileCfg = cfg
	}

	opts, err := buildOptions(flags, fileCfg)
	if err != nil {
		return err
	}
	conv, err := img2pdf.New(opts...)
	if err != nil {
		return err
	}

	workers, err := resolveWorkers(flags, fileCfg)
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" && fileCfg != nil {
		output = fileCfg.OutputDir
	}
	jobs, err := resolveJobs(inputs, output)
	if err != nil {
		return err
	}

	results := convertAll(conv, jobs, workers, flags.verbose, stderr)

	var firstErr error
	for _, res := range results {
		if res.err != nil {
			// With several inputs, name each failure here; the first
			// error also propagates to main for the exit code.
			if len(results) > 1 {
				fmt.Fprintf(stderr, "error: %s: %v\n", res.job.inputPath, res.err)
			}
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		if !flags.quiet {
			fmt.Fprintf(stdout, "Created %s (%d pages)\n", res.job.outputPath, res.pages)
		}
	}
	return firstErr
}

// buildOptions merges config-file values and command-line flags into
// converter options. Explicit flags win over the file; unset values fall
// through to the library defaults.
func buildOptions(flags *cliFlags, fileCfg *fileConfig) ([]img2pdf.Option, error) {
	var opts []img2pdf.Option

	switch {
	case flags.set["dpi"]:
		opts = append(opts, img2pdf.WithDPI(flags.dpi))
	case fileCfg != nil && fileCfg.DPI != nil:
		opts = append(opts, img2pdf.WithDPI(*fileCfg.DPI))
	}

	switch {
	case flags.set["margin"]:
		opts = append(opts, img2pdf.WithMarginMM(flags.margin))
	case fileCfg != nil && fileCfg.Margin != nil:
		opts = append(opts, img2pdf.WithMarginMM(*fileCfg.Margin))
	}

	title := flags.title
	if !flags.set["title"] && fileCfg != nil {
		title = fileCfg.Title
	}
	if title != "" {
		opts = append(opts, img2pdf.WithTitle(title))
	}

	pageSpec := flags.page
	if !flags.set["page"] && fileCfg != nil {
		pageSpec = fileCfg.Page
	}
	if pageSpec != "" {
		page, err := parsePageSize(pageSpec)
		if err != nil {
			return nil, err
		}
		opts = append(opts, img2pdf.WithPageSize(page))
	}

	if flags.verify || (fileCfg != nil && fileCfg.Verify) {
		opts = append(opts, img2pdf.WithVerification())
	}

	return opts, nil
}

// resolveWorkers picks the worker count: explicit flag, then config
// file, then the CPU count.
func resolveWorkers(flags *cliFlags, fileCfg *fileConfig) (int, error) {
	if flags.set["workers"] {
		if flags.workers < 1 {
			return 0, fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidWorkerCount, flags.workers)
		}
		return flags.workers, nil
	}
	if fileCfg != nil && fileCfg.Workers > 0 {
		return fileCfg.Workers, nil
	}
	return runtime.NumCPU(), nil
}

// parsePageSize parses a page spec: a named size or "WxH" in millimeters.
func parsePageSize(spec string) (img2pdf.PageSize, error) {
	switch strings.ToLower(spec) {
	case "a4":
		return img2pdf.A4(), nil
	}

	w, h, ok := strings.Cut(strings.ToLower(spec), "x")
	if !ok {
		return img2pdf.PageSize{}, fmt.Errorf("%w: %q", ErrInvalidPage, spec)
	}
	widthMM, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return img2pdf.PageSize{}, fmt.Errorf("%w: %q", ErrInvalidPage, spec)
	}
	heightMM, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return img2pdf.PageSize{}, fmt.Errorf("%w: %q", ErrInvalidPage, spec)
	}
	return img2pdf.PageSize{WidthMM: widthMM, HeightMM: heightMM}, nil
}

// resolveJobs maps positional inputs and the output flag to concrete
// conversion jobs. With one input, output may name the exact file; with
// several, it names a directory that is created if missing.
func resolveJobs(inputs []string, output string) ([]job, error) {
	jobs := make([]job, 0, len(inputs))
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", input, err)
		}
		jobs = append(jobs, job{inputPath: input, isDir: info.IsDir()})
	}

	if len(jobs) == 1 {
		jobs[0].outputPath = resolveSingleOutput(jobs[0], output)
		return jobs, nil
	}

	if output != "" {
		if err := os.MkdirAll(output, dirPermissions); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", output, err)
		}
	}
	for i := range jobs {
		if output == "" {
			jobs[i].outputPath = deriveOutputPath(jobs[i])
		} else {
			jobs[i].outputPath = filepath.Join(output, outputBase(jobs[i]))
		}
	}
	return jobs, nil
}

func resolveSingleOutput(j job, output string) string {
	if output == "" {
		return deriveOutputPath(j)
	}
	if fileutil.DirExists(output) {
		return filepath.Join(output, outputBase(j))
	}
	return output
}

// deriveOutputPath places the PDF next to its input: photo.jpg becomes
// photo.pdf, and a scans/ directory becomes scans.pdf beside it.
func deriveOutputPath(j job) string {
	clean := filepath.Clean(j.inputPath)
	return filepath.Join(filepath.Dir(clean), outputBase(j))
}

func outputBase(j job) string {
	base := filepath.Base(filepath.Clean(j.inputPath))
	if base == "." || base == string(filepath.Separator) {
		base = "output"
	} else if !j.isDir {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base + ".pdf"
}
