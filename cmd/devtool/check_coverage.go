package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultCoverageFile      = "logs/coverage.out"
	defaultCoverageThreshold = 80.0
)

type CheckCoverageCommand struct{}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Run tests with coverage and check against threshold"
}

type coverageConfig struct {
	file      string
	threshold float64
	runTests  bool
	html      bool
	packages  []string
}

func (c *CheckCoverageCommand) Run(args []string) error {
	cfg, err := parseCoverageConfig(args)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)...", cfg.threshold))

	if err := ensureCoverage(cfg); err != nil {
		return err
	}

	out, err := getCommandOutput("go", "tool", "cover", "-func="+cfg.file)
	if err != nil {
		return fmt.Errorf("error running go tool cover: %w", err)
	}
	coverage, err := parseTotalCoverage(out)
	if err != nil {
		return err
	}
	PrintInfo("Total Coverage: %.1f%%", coverage)

	if cfg.html {
		htmlFile := strings.TrimSuffix(cfg.file, ".out") + ".html"
		if err := runCommandVerbose("go", "tool", "cover", "-html="+cfg.file, "-o", htmlFile); err != nil {
			PrintWarning("Failed to generate HTML report: %v", err)
		} else {
			PrintSuccess("HTML report generated: %s", htmlFile)
		}
	}

	if coverage < cfg.threshold {
		PrintError("Coverage is below threshold.")
		return fmt.Errorf("coverage %.1f%% below threshold %.1f%%", coverage, cfg.threshold)
	}

	PrintSuccess("Coverage meets threshold.")
	return nil
}

// parseCoverageConfig accepts [flags] [file] [threshold] [packages...]
func parseCoverageConfig(args []string) (coverageConfig, error) {
	fs := flag.NewFlagSet("check-coverage", flag.ContinueOnError)
	runTests := fs.Bool("run", false, "Run tests before checking coverage")
	html := fs.Bool("html", false, "Generate an HTML coverage report")
	pkgs := fs.String("pkgs", "", "Comma-separated list of packages to test")
	if err := fs.Parse(args); err != nil {
		return coverageConfig{}, err
	}

	cfg := coverageConfig{
		file:      defaultCoverageFile,
		threshold: defaultCoverageThreshold,
		runTests:  *runTests,
		html:      *html,
	}

	positional := fs.Args()
	if len(positional) > 0 {
		cfg.file = filepath.Clean(positional[0])
	}
	if len(positional) > 1 {
		threshold, err := strconv.ParseFloat(positional[1], 64)
		if err != nil {
			return coverageConfig{}, fmt.Errorf("invalid threshold '%s'", positional[1])
		}
		cfg.threshold = threshold
		cfg.packages = append(cfg.packages, positional[2:]...)
	}

	if strings.Contains(cfg.file, "..") || filepath.IsAbs(cfg.file) {
		return coverageConfig{}, fmt.Errorf("invalid path '%s': must be relative and within project", cfg.file)
	}

	seen := make(map[string]bool)
	for _, p := range strings.Split(*pkgs, ",") {
		if p = strings.TrimSpace(p); p != "" && !seen[p] {
			seen[p] = true
			cfg.packages = append(cfg.packages, p)
		}
	}

	return cfg, nil
}

func ensureCoverage(cfg coverageConfig) error {
	shouldRun := cfg.runTests || len(cfg.packages) > 0
	if _, err := os.Stat(cfg.file); os.IsNotExist(err) {
		PrintInfo("Coverage file '%s' not found. Running tests...", cfg.file)
		shouldRun = true
	}
	if !shouldRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.file), 0755); err != nil {
		return fmt.Errorf("failed to create coverage directory: %w", err)
	}

	testArgs := []string{"test"}
	if len(cfg.packages) > 0 {
		testArgs = append(testArgs, cfg.packages...)
	} else {
		testArgs = append(testArgs, "./...")
	}
	testArgs = append(testArgs, "-coverprofile="+cfg.file, "-covermode=atomic", "-race")

	PrintInfo("Running tests with coverage...")
	if err := runCommandVerbose("go", testArgs...); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	return nil
}

// parseTotalCoverage reads the percentage from the "total:" line of go tool cover -func
func parseTotalCoverage(out string) (float64, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, fmt.Errorf("unexpected output format")
		}
		pct := strings.TrimSuffix(fields[len(fields)-1], "%")
		coverage, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse coverage percentage '%s'", pct)
		}
		return coverage, nil
	}
	return 0, fmt.Errorf("could not determine coverage from output")
}
