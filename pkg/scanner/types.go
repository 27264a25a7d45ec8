package scanner

import (
	"fmt"

	"github.com/mdemirtas/iamwatch/pkg/types"
)

const (
	// DefaultThreshold is the distinct-action count at which a statement
	// becomes a many-actions finding.
	DefaultThreshold = 20

	// DefaultConcurrency bounds parallel per-policy fetches.
	DefaultConcurrency = 8
)

type Config struct {
	Threshold   int
	Concurrency int
}

func (c Config) withDefaults() Config {
	if c.Threshold < 1 {
		c.Threshold = DefaultThreshold
	}
	if c.Concurrency < 1 {
		c.Concurrency = DefaultConcurrency
	}
	return c
}

// Finding is one offending statement. ActionCount is set for many-actions
// findings only.
type Finding struct {
	Policy      types.Policy
	Statement   types.Statement
	ActionCount int
}

// Issue records a read operation that failed on one policy.
type Issue struct {
	Operation string
	Policy    string
	Code      string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s on %s — %s", i.Operation, i.Policy, i.Code)
}

type Report struct {
	Wildcard    []Finding
	ManyActions []Finding
	Issues      []Issue
	Scanned     int
}
