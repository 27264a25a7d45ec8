package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/mdemirtas/iamwatch/pkg/types"
)

const (
	getPolicyTimeout        = 10 * time.Second
	getPolicyVersionTimeout = 10 * time.Second
)

// ListCustomerPolicies pages through the account's customer-managed policies
// (Scope=Local) and calls fn once per policy. The first page error aborts the
// walk and is returned.
func (c *Client) ListCustomerPolicies(ctx context.Context, fn func(types.Policy)) error {
	paginator := iam.NewListPoliciesPaginator(c.iamClient, &iam.ListPoliciesInput{
		Scope: iamtypes.PolicyScopeTypeLocal,
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to list policies: %w", err)
		}

		for _, p := range page.Policies {
			fn(types.Policy{
				Name: aws.ToString(p.PolicyName),
				Arn:  aws.ToString(p.Arn),
			})
		}
	}

	return nil
}

// GetDefaultDocument fetches the policy's current default version and decodes
// its document. Failures are wrapped in an OpError naming the IAM call.
func (c *Client) GetDefaultDocument(ctx context.Context, policyArn string) (types.PolicyDocument, error) {
	getCtx, cancel := context.WithTimeout(ctx, getPolicyTimeout)
	defer cancel()

	policy, err := c.iamClient.GetPolicy(getCtx, &iam.GetPolicyInput{
		PolicyArn: aws.String(policyArn),
	})
	if err != nil {
		return types.PolicyDocument{}, &OpError{Op: "iam:GetPolicy", Err: err}
	}

	versionCtx, versionCancel := context.WithTimeout(ctx, getPolicyVersionTimeout)
	defer versionCancel()

	version, err := c.iamClient.GetPolicyVersion(versionCtx, &iam.GetPolicyVersionInput{
		PolicyArn: aws.String(policyArn),
		VersionId: policy.Policy.DefaultVersionId,
	})
	if err != nil {
		return types.PolicyDocument{}, &OpError{Op: "iam:GetPolicyVersion", Err: err}
	}

	// Policy documents come back URL-encoded
	decoded, err := url.QueryUnescape(aws.ToString(version.PolicyVersion.Document))
	if err != nil {
		return types.PolicyDocument{}, &OpError{Op: "iam:GetPolicyVersion", Err: fmt.Errorf("failed to decode policy document: %w", err)}
	}

	var doc types.PolicyDocument
	if err := json.Unmarshal([]byte(decoded), &doc); err != nil {
		return types.PolicyDocument{}, &OpError{Op: "iam:GetPolicyVersion", Err: fmt.Errorf("failed to parse policy document: %w", err)}
	}

	return doc, nil
}
