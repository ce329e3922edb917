package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	pkgtypes "github.com/vietdv277/vpcfinder/pkg/types"
)

// ListVPCs returns all VPCs in the client's region
func (c *Client) ListVPCs(ctx context.Context) ([]pkgtypes.VPC, error) {
	output, err := c.EC2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe VPCs in %s: %w", c.region, err)
	}

	vpcs := make([]pkgtypes.VPC, 0, len(output.Vpcs))
	for _, v := range output.Vpcs {
		vpc := toVPC(v)
		vpc.Region = c.region
		vpcs = append(vpcs, vpc)
	}

	return vpcs, nil
}

// ListSubnets returns the subnets of a VPC, matched server side
// with a vpc-id filter
func (c *Client) ListSubnets(ctx context.Context, vpcID string) ([]pkgtypes.Subnet, error) {
	input := &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("vpc-id"),
				Values: []string{vpcID},
			},
		},
	}

	output, err := c.EC2.DescribeSubnets(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to describe subnets of %s: %w", vpcID, err)
	}

	subnets := make([]pkgtypes.Subnet, 0, len(output.Subnets))
	for _, s := range output.Subnets {
		subnets = append(subnets, toSubnet(s))
	}

	return subnets, nil
}

// toVPC converts an EC2 VPC to our VPC type
func toVPC(v ec2types.Vpc) pkgtypes.VPC {
	return pkgtypes.VPC{
		ID:        aws.ToString(v.VpcId),
		Name:      nameTag(v.Tags),
		CIDR:      aws.ToString(v.CidrBlock),
		State:     string(v.State),
		IsDefault: aws.ToBool(v.IsDefault),
		OwnerID:   aws.ToString(v.OwnerId),
	}
}

// toSubnet converts an EC2 Subnet to our Subnet type
func toSubnet(s ec2types.Subnet) pkgtypes.Subnet {
	return pkgtypes.Subnet{
		ID:           aws.ToString(s.SubnetId),
		Name:         nameTag(s.Tags),
		VPCID:        aws.ToString(s.VpcId),
		CIDR:         aws.ToString(s.CidrBlock),
		AZ:           aws.ToString(s.AvailabilityZone),
		AvailableIPs: int(aws.ToInt32(s.AvailableIpAddressCount)),
		State:        string(s.State),
		Public:       aws.ToBool(s.MapPublicIpOnLaunch),
	}
}

// nameTag extracts the Name tag
func nameTag(tags []ec2types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == "Name" {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}
