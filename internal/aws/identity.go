package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/vietdv277/vpcfinder/pkg/provider"
	pkgtypes "github.com/vietdv277/vpcfinder/pkg/types"
)

// STSAPI is the subset of the STS client used to resolve the caller
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// IdentityService resolves the identity behind a profile's credentials
type IdentityService struct {
	client STSAPI
}

// NewIdentityService creates an IdentityService from a loaded client
func NewIdentityService(c *Client) *IdentityService {
	cfg := c.Config()
	if cfg.Region == "" {
		cfg = cfg.Copy()
		cfg.Region = DefaultRegion
	}
	return &IdentityService{client: sts.NewFromConfig(cfg)}
}

// GetCallerIdentity returns the current AWS caller identity
func (s *IdentityService) GetCallerIdentity(ctx context.Context) (*pkgtypes.CallerIdentity, error) {
	output, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", err)
	}

	return &pkgtypes.CallerIdentity{
		Account: aws.ToString(output.Account),
		Arn:     aws.ToString(output.Arn),
		UserID:  aws.ToString(output.UserId),
	}, nil
}

var _ provider.IdentityProvider = (*IdentityService)(nil)
