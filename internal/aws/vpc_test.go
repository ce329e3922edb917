package aws

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

func TestListRegions(t *testing.T) {
	t.Parallel()

	t.Run("returns names in provider order", func(t *testing.T) {
		t.Parallel()

		var calls []string
		c := newTestClient("eu-west-1", fakeEC2{
			calls: &calls,
			regions: &ec2.DescribeRegionsOutput{Regions: []ec2types.Region{
				{RegionName: aws.String("us-east-1")},
				{RegionName: aws.String("")},
				{RegionName: nil},
				{RegionName: aws.String("ap-south-1")},
			}},
		})

		regions, err := c.ListRegions(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Join(regions, ",") != "us-east-1,ap-south-1" {
			t.Errorf("unexpected regions: %v", regions)
		}
		if len(calls) != 1 || calls[0] != "eu-west-1:DescribeRegions" {
			t.Errorf("expected DescribeRegions in profile region, got %v", calls)
		}
	})

	t.Run("falls back to default region", func(t *testing.T) {
		t.Parallel()

		var calls []string
		c := newTestClient("", fakeEC2{
			calls:   &calls,
			regions: &ec2.DescribeRegionsOutput{},
		})

		if _, err := c.ListRegions(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(calls) != 1 || calls[0] != DefaultRegion+":DescribeRegions" {
			t.Errorf("expected DescribeRegions in %s, got %v", DefaultRegion, calls)
		}
	})

	t.Run("wraps provider error", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("UnauthorizedOperation")
		c := newTestClient("us-east-1", fakeEC2{err: cause})

		regions, err := c.ListRegions(context.Background())
		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped cause, got %v", err)
		}
		if regions != nil {
			t.Errorf("expected no regions, got %v", regions)
		}
	})
}

func TestListVPCs(t *testing.T) {
	t.Parallel()

	c := newTestClient("us-east-1", fakeEC2{
		vpcs: &ec2.DescribeVpcsOutput{Vpcs: []ec2types.Vpc{
			{
				VpcId:     aws.String("vpc-1"),
				CidrBlock: aws.String("10.0.0.0/16"),
				OwnerId:   aws.String("111122223333"),
				IsDefault: aws.Bool(true),
				State:     ec2types.VpcStateAvailable,
				Tags: []ec2types.Tag{
					{Key: aws.String("env"), Value: aws.String("prod")},
					{Key: aws.String("Name"), Value: aws.String("main")},
				},
			},
		}},
	})

	regional := c.InRegion("eu-central-1")
	vpcs, err := regional.ListVPCs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vpcs) != 1 {
		t.Fatalf("expected 1 VPC, got %d", len(vpcs))
	}

	v := vpcs[0]
	if v.ID != "vpc-1" || v.CIDR != "10.0.0.0/16" || v.OwnerID != "111122223333" {
		t.Errorf("unexpected VPC fields: %+v", v)
	}
	if v.Region != "eu-central-1" {
		t.Errorf("expected region eu-central-1, got %q", v.Region)
	}
	if v.Name != "main" || !v.IsDefault || v.State != "available" {
		t.Errorf("unexpected VPC metadata: %+v", v)
	}
}

func TestListSubnets(t *testing.T) {
	t.Parallel()

	t.Run("filters by vpc id", func(t *testing.T) {
		t.Parallel()

		var inputs []*ec2.DescribeSubnetsInput
		c := newTestClient("us-east-1", fakeEC2{
			subnetInputs: &inputs,
			subnets: map[string]*ec2.DescribeSubnetsOutput{
				"vpc-1": {Subnets: []ec2types.Subnet{
					{
						SubnetId:                aws.String("subnet-1"),
						VpcId:                   aws.String("vpc-1"),
						CidrBlock:               aws.String("10.0.1.0/24"),
						AvailabilityZone:        aws.String("us-east-1a"),
						AvailableIpAddressCount: aws.Int32(25),
						MapPublicIpOnLaunch:     aws.Bool(true),
					},
				}},
			},
		})

		subnets, err := c.ListSubnets(context.Background(), "vpc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(inputs) != 1 || len(inputs[0].Filters) != 1 {
			t.Fatalf("expected a single filter, got %+v", inputs)
		}
		f := inputs[0].Filters[0]
		if aws.ToString(f.Name) != "vpc-id" || len(f.Values) != 1 || f.Values[0] != "vpc-1" {
			t.Errorf("unexpected filter: %s=%v", aws.ToString(f.Name), f.Values)
		}

		if len(subnets) != 1 {
			t.Fatalf("expected 1 subnet, got %d", len(subnets))
		}
		s := subnets[0]
		if s.ID != "subnet-1" || s.CIDR != "10.0.1.0/24" || s.AZ != "us-east-1a" || s.AvailableIPs != 25 {
			t.Errorf("unexpected subnet: %+v", s)
		}
		if !s.Public || !s.LowCapacity() {
			t.Errorf("unexpected subnet flags: %+v", s)
		}
	})

	t.Run("missing count reads as zero", func(t *testing.T) {
		t.Parallel()

		s := toSubnet(ec2types.Subnet{SubnetId: aws.String("subnet-2")})
		if s.AvailableIPs != 0 {
			t.Errorf("expected 0 available IPs, got %d", s.AvailableIPs)
		}
	})

	t.Run("wraps provider error", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("RequestLimitExceeded")
		c := newTestClient("us-east-1", fakeEC2{err: cause})
		if _, err := c.ListSubnets(context.Background(), "vpc-1"); !errors.Is(err, cause) {
			t.Errorf("expected wrapped cause, got %v", err)
		}
	})
}
