// Package main provides the entry point for the share price reader.
// It reads a CSV file of monthly share prices and prints, for every
// company, the highest price and the month it was reached.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"sharemax/internal/reader"
	"sharemax/internal/utils"
)

const usageMessage = "Unable to proceed : Please Specify csv file path"

// defaultConfigPath is read when -config is not given and the file exists.
var defaultConfigPath = "configs/config.yaml"

// loadConfig falls back to defaultConfigPath, then to the built-in defaults.
func loadConfig(path string, debug bool) (*utils.Config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	config := utils.DefaultConfig()
	if path != "" {
		var err error
		config, err = utils.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}
	if debug {
		config.Logging.Level = "debug"
	}
	return config, nil
}

// run executes one invocation. Every failure is reported on stdout as a
// plain message; the process exit status is not used to signal errors.
func run(args []string, stdout, stderr io.Writer) {
	startTime := time.Now()

	fs := flag.NewFlagSet("sharemax", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a YAML config file (default "+defaultConfigPath+" when present)")
	debug := fs.Bool("debug", false, "Log every skipped row and cell to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: sharemax [-config file.yaml] [-debug] <prices.csv>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return
	}

	// Only the first file is considered.
	if fs.NArg() == 0 {
		fmt.Fprintln(stdout, usageMessage)
		return
	}
	path := fs.Arg(0)

	config, err := loadConfig(*configPath, *debug)
	if err != nil {
		fmt.Fprintln(stdout, "Unable to proceed, "+err.Error())
		return
	}

	logger, err := utils.NewLogger(config.Logging, stderr)
	if err != nil {
		fmt.Fprintln(stdout, "Unable to proceed, "+err.Error())
		return
	}
	defer logger.Close()

	r := reader.New(path, logger, config)
	if err := r.Display(stdout); err != nil {
		logger.Error("Failed to display share prices: %v", err)
		fmt.Fprintln(stdout, "Unable to proceed, "+err.Error())
	}

	logger.Debug("%s", r.GetPerformanceTracker().GenerateReport())
	logger.Debug("Total execution time: %v", time.Since(startTime).Round(time.Microsecond))
}

func main() {
	run(os.Args[1:], os.Stdout, os.Stderr)
}
