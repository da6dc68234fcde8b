// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the global flags that precede the subcommand and returns
// the flag-sourced config slice together with the remaining arguments
// (subcommand name plus its own flags).
//
// Flags:
//
//	--json                      output payloads as JSON
//	--verbose                   enable debug logging
//	--timeout N                 request timeout in seconds
//	--rate-limit-per-minute N   max requests per minute
//	--rate-limit-per-second N   max requests per second
//	--min-interval DUR          min gap between requests (e.g. "500ms")
//	-c/--config PATH            JSON config file path
//
// The flag set writes usage output to errW and reports parse failures
// instead of exiting, so the CLI layer controls the process exit code.
func ParseFlags(args []string, errW io.Writer) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("ransomwatch", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.Usage = func() { printUsage(errW, fs) }

	var (
		jsonOut        bool
		verbose        bool
		timeoutSeconds int
		perMinute      int
		perSecond      int
		minInterval    time.Duration
		jsonConfigPath string
	)

	fs.BoolVar(&jsonOut, "json", false, "Output as JSON")
	fs.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	fs.IntVar(&timeoutSeconds, "timeout", 0, "Request timeout in seconds")
	fs.IntVar(&perMinute, "rate-limit-per-minute", 0, "Max requests per minute")
	fs.IntVar(&perSecond, "rate-limit-per-second", 0, "Max requests per second")
	fs.DurationVar(&minInterval, "min-interval", 0, "Min gap between requests (e.g. 500ms)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &StructuredConfig{
		API: API{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Rate: Rate{
			PerMinute:   perMinute,
			PerSecond:   perSecond,
			MinInterval: minInterval,
		},
		Output: Output{
			JSON:    jsonOut,
			Verbose: verbose,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "ransomwatch - ransomware intelligence tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: ransomwatch [global flags] <command> [command flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  groups    List active ransomware groups")
	fmt.Fprintln(w, "  recent    Show recent victims (-l N to limit)")
	fmt.Fprintln(w, "  info      Get group details (--group NAME)")
	fmt.Fprintln(w, "  stats     Show overall statistics")
	fmt.Fprintln(w, "  browse    Interactive group browser")
	fmt.Fprintln(w, "  version   Print build information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global flags:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  ransomwatch groups")
	fmt.Fprintln(w, "  ransomwatch recent -l 20")
	fmt.Fprintln(w, "  ransomwatch info --group lockbit3")
	fmt.Fprintln(w, "  ransomwatch --rate-limit-per-minute 10 groups")
}
