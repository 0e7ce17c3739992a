// Command jsonshape compares the structure of two JSON files and prints a
// diff report when their shapes differ.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mcncl/jsonshape"
	"github.com/mcncl/jsonshape/internal/errors"
)

// CLI defines the command-line interface
var CLI struct {
	Actual                string `arg:"" optional:"" help:"Path to the actual JSON file." type:"path"`
	Expected              string `arg:"" optional:"" help:"Path to the expected JSON file." type:"path"`
	Contains              bool   `help:"Run the containment comparison: array indices collapse to the .[item] wildcard." short:"c"`
	IgnoreAdditionalProps bool   `help:"Drop additionalProp placeholder paths from both sides before comparing." short:"a"`
	Config                string `help:"Path to a config file. Defaults to the nearest .jsonshape.yml." type:"path"`
	Quiet                 bool   `help:"Suppress the diff report; the exit status carries the verdict." short:"q"`
	Version               bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonshape"),
		kong.Description("Compare the structure of two JSON documents. Exits 0 when the shapes match, 1 on a mismatch, 2 on any other error."),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// Usage was already shown by kong.UsageOnError()
		os.Exit(2)
	}

	if CLI.Version {
		fmt.Printf("jsonshape version %s\n", Version)
		return
	}

	if CLI.Actual == "" || CLI.Expected == "" {
		fmt.Fprintln(os.Stderr, "Error: two JSON files are required.")
		fmt.Fprintln(os.Stderr, "\nFor help, run: jsonshape --help")
		os.Exit(2)
	}

	matched, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonshape --help\n")
		os.Exit(2)
	}
	if !matched {
		os.Exit(1)
	}
}

// run executes the comparison and returns the verdict
func run() (bool, error) {
	cfg, err := loadConfig()
	if err != nil {
		return false, err
	}

	actual, err := jsonshape.ParseDocumentFile(CLI.Actual)
	if err != nil {
		return false, err
	}
	expected, err := jsonshape.ParseDocumentFile(CLI.Expected)
	if err != nil {
		return false, err
	}

	comparison := jsonshape.NewWithConfig(cfg)

	var result jsonshape.Result
	if CLI.Contains {
		result, err = comparison.ContainsSchemaOf(actual, expected, CLI.IgnoreAdditionalProps)
	} else {
		result, err = comparison.HaveSameSchema(actual, expected)
	}
	if err != nil {
		return false, err
	}

	if !result.Matched && !CLI.Quiet {
		fmt.Println(comparison.Report(result))
	}
	return result.Matched, nil
}

// loadConfig resolves the effective configuration: an explicit --config path,
// otherwise the nearest config file found walking up from the working
// directory, otherwise defaults.
func loadConfig() (*jsonshape.Config, error) {
	path := CLI.Config
	if path == "" {
		path = jsonshape.FindConfigFile()
	}
	if path == "" {
		return jsonshape.DefaultConfig(), nil
	}
	return jsonshape.LoadConfig(path)
}
