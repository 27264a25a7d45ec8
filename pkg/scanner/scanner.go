package scanner

import (
	"context"
	"errors"
	"sort"
	"sync"

	awsclient "github.com/mdemirtas/iamwatch/pkg/aws"
	"github.com/mdemirtas/iamwatch/pkg/types"
)

// PolicyClient is the surface of pkg/aws the scanner needs.
type PolicyClient interface {
	ListCustomerPolicies(ctx context.Context, fn func(types.Policy)) error
	GetDefaultDocument(ctx context.Context, policyArn string) (types.PolicyDocument, error)
}

type Scanner struct {
	client PolicyClient
	cfg    Config
}

func New(client PolicyClient, cfg Config) *Scanner {
	return &Scanner{
		client: client,
		cfg:    cfg.withDefaults(),
	}
}

// Scan walks every customer-managed policy once and classifies each statement
// of its current document. A listing failure aborts the scan with no partial
// report; a per-policy fetch failure is recorded as a permission issue and
// the rest of the scan continues.
func (s *Scanner) Scan(ctx context.Context) (*Report, error) {
	var policies []types.Policy
	if err := s.client.ListCustomerPolicies(ctx, func(p types.Policy) {
		policies = append(policies, p)
	}); err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report = &Report{Scanned: len(policies)}
		seen   = make(map[Issue]struct{})
	)

	sem := make(chan struct{}, s.cfg.Concurrency)
	for _, policy := range policies {
		wg.Add(1)
		go func(p types.Policy) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			doc, err := s.client.GetDefaultDocument(ctx, p.Arn)
			if err != nil {
				issue := newIssue(p, err)
				mu.Lock()
				if _, dup := seen[issue]; !dup {
					seen[issue] = struct{}{}
					report.Issues = append(report.Issues, issue)
				}
				mu.Unlock()
				return
			}

			var wildcard, many []Finding
			for _, stmt := range doc.Statement {
				if IsActionWildcard(stmt) {
					wildcard = append(wildcard, Finding{Policy: p, Statement: stmt})
				} else if IsManyActions(stmt, s.cfg.Threshold) {
					many = append(many, Finding{
						Policy:      p,
						Statement:   stmt,
						ActionCount: len(DistinctActions(stmt)),
					})
				}
			}

			mu.Lock()
			report.Wildcard = append(report.Wildcard, wildcard...)
			report.ManyActions = append(report.ManyActions, many...)
			mu.Unlock()
		}(policy)
	}
	wg.Wait()

	// Fetches complete in arbitrary order, sort so output is deterministic
	sortFindings(report.Wildcard)
	sortFindings(report.ManyActions)
	sort.Slice(report.Issues, func(i, j int) bool {
		return report.Issues[i].String() < report.Issues[j].String()
	})

	return report, nil
}

func newIssue(p types.Policy, err error) Issue {
	op := "iam:GetPolicy"
	var opErr *awsclient.OpError
	if errors.As(err, &opErr) {
		op = opErr.Op
		err = opErr.Err
	}
	return Issue{
		Operation: op,
		Policy:    p.Name,
		Code:      awsclient.ErrorCode(err),
	}
}

func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Policy.Name != findings[j].Policy.Name {
			return findings[i].Policy.Name < findings[j].Policy.Name
		}
		return findings[i].Policy.Arn < findings[j].Policy.Arn
	})
}
