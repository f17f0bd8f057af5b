package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	img2pdf "github.com/alnah/go-img2pdf"
)

// jobResult holds the outcome of a single conversion job.
type jobResult struct {
	job      job
	pages    int
	err      error
	duration time.Duration
}

// convertAll runs jobs through a bounded worker pool. A single Converter
// is shared across workers: it is immutable, and every conversion call
// owns its document, so jobs need no coordination beyond the result slot
// each worker writes.
func convertAll(conv *img2pdf.Converter, jobs []job, workers int, verbose bool, stderr io.Writer) []jobResult {
	if len(jobs) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]jobResult, len(jobs))
	indexes := make(chan int, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				results[idx] = convertOne(conv, jobs[idx], verbose, stderr)
			}
		}()
	}

	for i := range jobs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}

// convertOne runs a single job and reports its outcome.
func convertOne(conv *img2pdf.Converter, j job, verbose bool, stderr io.Writer) jobResult {
	if verbose {
		fmt.Fprintf(stderr, "converting %s -> %s\n", j.inputPath, j.outputPath)
	}

	start := time.Now()
	var (
		pages int
		err   error
	)
	if j.isDir {
		pages, err = conv.ConvertFolder(j.inputPath, j.outputPath)
	} else {
		err = conv.ConvertImage(j.inputPath, j.outputPath)
		if err == nil {
			pages = 1
		}
	}
	duration := time.Since(start)

	if verbose && err == nil {
		fmt.Fprintf(stderr, "done %s: %d pages in %s\n", j.outputPath, pages, duration.Round(time.Millisecond))
	}
	return jobResult{job: j, pages: pages, err: err, duration: duration}
}
