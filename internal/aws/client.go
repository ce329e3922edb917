package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/vietdv277/vpcfinder/pkg/provider"
)

// EC2API is the subset of the EC2 client used for network inventory
type EC2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
}

// Client wraps AWS SDK clients
type Client struct {
	EC2     EC2API
	cfg     aws.Config
	profile string
	region  string

	// newEC2 builds the EC2 client for a config; swapped out in tests
	newEC2 func(aws.Config) EC2API
}

// ClientOption allows customizing the AWS Client
type ClientOption func(*Client)

// WithProfile sets the AWS profile for the client
func WithProfile(profile string) ClientOption {
	return func(c *Client) {
		c.profile = profile
	}
}

// WithRegion sets the AWS region for the client
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// WithEC2Factory overrides how EC2 clients are built from a config
func WithEC2Factory(fn func(aws.Config) EC2API) ClientOption {
	return func(c *Client) {
		c.newEC2 = fn
	}
}

func newEC2Client(cfg aws.Config) EC2API {
	return ec2.NewFromConfig(cfg)
}

// NewClient creates a new AWS Client with the given options
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{
		newEC2: newEC2Client,
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	cfg, err := loadConfig(ctx, c.profile, c.region)
	if err != nil {
		return nil, err
	}

	return c.withConfig(cfg), nil
}

// loadConfig resolves the shared config and credential chain for a profile
func loadConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	var configOpts []func(*config.LoadOptions) error

	if profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(profile))
	}

	if region != "" {
		configOpts = append(configOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	return cfg, nil
}

func (c *Client) withConfig(cfg aws.Config) *Client {
	c.cfg = cfg
	c.region = cfg.Region
	c.EC2 = c.newEC2(cfg)
	return c
}

// ForRegion returns a copy of the client whose EC2 calls target region
func (c *Client) ForRegion(region string) provider.RegionNetwork {
	return c.InRegion(region)
}

// InRegion is ForRegion with the concrete client type
func (c *Client) InRegion(region string) *Client {
	regionCfg := c.cfg.Copy()
	regionCfg.Region = region

	rc := &Client{
		profile: c.profile,
		newEC2:  c.newEC2,
	}
	return rc.withConfig(regionCfg)
}

// Profile returns the profile the client was loaded with
func (c *Client) Profile() string {
	return c.profile
}

// Region returns the region the client targets
func (c *Client) Region() string {
	return c.region
}

// Config returns the loaded AWS config
func (c *Client) Config() aws.Config {
	return c.cfg
}

var _ provider.NetworkProvider = (*Client)(nil)
