// Command sboxlat computes the Linear Approximation Tables of the eight DES S-boxes and writes them to stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/codahale/sboxlat"
	"github.com/codahale/sboxlat/report"
	"github.com/codahale/sboxlat/sbox"
)

func main() {
	var (
		convention = flag.String("convention", "des", "the S-box index convention (des or flat)")
		format     = flag.String("format", "text", "the output format (text, json, or pretty)")
		boxes      = flag.String("box", "", "a comma-separated list of S-box numbers (1-8) to print, default all")
		parallel   = flag.Bool("parallel", false, "build the table concurrently")
		verbose    = flag.Bool("v", false, "log debug information to stderr")
	)
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	log := slog.New(slog.Default().Handler())

	c, err := sbox.ParseConvention(*convention)
	if err != nil {
		log.Error("invalid convention", "err", err)
		os.Exit(2)
	}

	f, err := report.ParseFormat(*format)
	if err != nil {
		log.Error("invalid format", "err", err)
		os.Exit(2)
	}

	numbers, err := parseBoxes(*boxes)
	if err != nil {
		log.Error("invalid box list", "err", err)
		os.Exit(2)
	}

	set := sbox.DES()
	start := time.Now()
	var lat *sboxlat.Table
	if *parallel {
		lat = sboxlat.BuildConcurrent(&set, c)
	} else {
		lat = sboxlat.Build(&set, c)
	}
	log.Debug("built table", "convention", c, "parallel", *parallel, "entries", sboxlat.Size,
		"elapsed", time.Since(start))

	if err := report.Write(os.Stdout, lat, report.Options{Format: f, Convention: c, Boxes: numbers}); err != nil {
		log.Error("error writing table", "err", err)
		os.Exit(2)
	}
}

func parseBoxes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	var numbers []int
	for field := range strings.SplitSeq(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("bad S-box number %q: %w", field, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
