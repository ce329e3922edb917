package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// DefaultRegion is used for DescribeRegions when the profile sets no region
const DefaultRegion = "us-east-1"

// ListRegions returns the names of the regions enabled for the account,
// in the order EC2 reports them
func (c *Client) ListRegions(ctx context.Context) ([]string, error) {
	client := c
	if c.region == "" {
		client = c.InRegion(DefaultRegion)
	}

	output, err := client.EC2.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe regions: %w", err)
	}

	regions := make([]string, 0, len(output.Regions))
	for _, r := range output.Regions {
		name := strings.TrimSpace(aws.ToString(r.RegionName))
		if name == "" {
			continue
		}
		regions = append(regions, name)
	}

	return regions, nil
}
