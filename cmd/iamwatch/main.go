package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/mdemirtas/iamwatch/internal/options"
	"github.com/mdemirtas/iamwatch/pkg/aws"
	"github.com/mdemirtas/iamwatch/pkg/printer"
	"github.com/mdemirtas/iamwatch/pkg/scanner"
)

// A fatal listing failure gets its own exit code so callers can tell a
// credential problem from an aborted scan.
const (
	exitOK          = 0
	exitConfigError = 1
	exitScanFailed  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := options.NewOptions()
	if err := opts.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfigError
	}
	if opts.NoColor {
		color.NoColor = true
	}

	ctx := context.Background()

	client, err := aws.NewClient(ctx, aws.Options{
		Profile:         opts.Profile,
		Region:          opts.Region,
		CredentialsFile: opts.CredentialsFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfigError
	}

	out := printer.New(os.Stdout)
	out.Banner()

	report, err := scanner.New(client, scanner.Config{
		Threshold:   opts.Threshold,
		Concurrency: opts.Concurrency,
	}).Scan(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error listing policies: %v\n", err)
		return exitScanFailed
	}

	if err := out.Print(report, opts.Threshold); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfigError
	}

	return exitOK
}
