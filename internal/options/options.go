package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"

	"github.com/mdemirtas/iamwatch/pkg/scanner"
)

type Options struct {
	Threshold       int
	Concurrency     int
	Profile         string
	Region          string
	CredentialsFile string
	NoColor         bool
}

func NewOptions() *Options {
	return &Options{
		Threshold:       scanner.DefaultThreshold,
		Concurrency:     scanner.DefaultConcurrency,
		CredentialsFile: defaultCredentialsFile(),
	}
}

// Check AWS_SHARED_CREDENTIALS_FILE first, then fall back to the default
// location under the home directory.
func defaultCredentialsFile() string {
	if envPath := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); envPath != "" {
		return envPath
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aws", "credentials")
}

func (o *Options) Parse(args []string) error {
	fs := pflag.NewFlagSet("iamwatch", pflag.ContinueOnError)
	fs.IntVarP(&o.Threshold, "threshold", "t", o.Threshold, "distinct-action count that flags a statement")
	fs.IntVar(&o.Concurrency, "concurrency", o.Concurrency, "parallel policy fetches")
	fs.StringVar(&o.Profile, "profile", "", "AWS shared config profile")
	fs.StringVar(&o.Region, "region", "", "AWS region")
	fs.StringVar(&o.CredentialsFile, "credentials-file", o.CredentialsFile, "AWS shared credentials file")
	fs.BoolVar(&o.NoColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if o.Threshold < 1 {
		return fmt.Errorf("threshold must be at least 1, got %d", o.Threshold)
	}
	if o.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", o.Concurrency)
	}

	return nil
}
