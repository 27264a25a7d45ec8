package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mdemirtas/iamwatch/pkg/scanner"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

type Printer struct {
	writer io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// Banner is printed before the scan starts.
func (p *Printer) Banner() {
	fmt.Fprintf(p.writer, "🔍 Scanning customer-managed IAM policies for overly broad permissions...\n")
}

// Print writes the report sections in a fixed order: wildcard findings,
// many-actions findings, permission issues, completion marker. Empty finding
// sections get a confirmation line instead.
func (p *Printer) Print(r *scanner.Report, threshold int) error {
	if len(r.Wildcard) > 0 {
		fmt.Fprintf(p.writer, "\n%s Found %d policies with unrestricted 'Allow: *':\n\n", red("❗"), len(r.Wildcard))
		for _, f := range r.Wildcard {
			if err := p.printFinding(f, false); err != nil {
				return err
			}
		}
	} else {
		fmt.Fprintf(p.writer, "\n%s No policies with 'Action: *' found.\n", green("✅"))
	}

	if len(r.ManyActions) > 0 {
		fmt.Fprintf(p.writer, "\n%s Found %d policies with many allowed actions (>=%d):\n\n", yellow("⚠️"), len(r.ManyActions), threshold)
		for _, f := range r.ManyActions {
			if err := p.printFinding(f, true); err != nil {
				return err
			}
		}
	} else {
		fmt.Fprintf(p.writer, "\n%s No policies found with excessive numbers of actions.\n", green("✅"))
	}

	if len(r.Issues) > 0 {
		fmt.Fprintf(p.writer, "\n%s Permission issues encountered during scanning:\n", yellow("⚠️"))
		for _, issue := range r.Issues {
			fmt.Fprintf(p.writer, "- %s\n", issue)
		}
	}

	fmt.Fprintf(p.writer, "\n%s Scan complete.\n", green("✅"))
	return nil
}

func (p *Printer) printFinding(f scanner.Finding, withCount bool) error {
	if withCount {
		fmt.Fprintf(p.writer, "- Policy: %s (%d actions)\n", bold(f.Policy.Name), f.ActionCount)
	} else {
		fmt.Fprintf(p.writer, "- Policy: %s\n", bold(f.Policy.Name))
	}
	fmt.Fprintf(p.writer, "  ARN: %s\n", f.Policy.Arn)

	doc, err := json.MarshalIndent(f.Statement, "  ", "  ")
	if err != nil {
		return fmt.Errorf("failed to render statement: %w", err)
	}
	fmt.Fprintf(p.writer, "  Statement:\n  %s\n\n", doc)
	return nil
}
