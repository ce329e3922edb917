package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// fakeEC2 records the regions and inputs it was called with
type fakeEC2 struct {
	region string

	regions *ec2.DescribeRegionsOutput
	vpcs    *ec2.DescribeVpcsOutput
	subnets map[string]*ec2.DescribeSubnetsOutput
	err     error

	calls        *[]string
	subnetInputs *[]*ec2.DescribeSubnetsInput
}

func (f *fakeEC2) record(call string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, f.region+":"+call)
	}
}

func (f *fakeEC2) DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error) {
	f.record("DescribeRegions")
	if f.err != nil {
		return nil, f.err
	}
	return f.regions, nil
}

func (f *fakeEC2) DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	f.record("DescribeVpcs")
	if f.err != nil {
		return nil, f.err
	}
	return f.vpcs, nil
}

func (f *fakeEC2) DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	f.record("DescribeSubnets")
	if f.subnetInputs != nil {
		*f.subnetInputs = append(*f.subnetInputs, params)
	}
	if f.err != nil {
		return nil, f.err
	}
	var vpcID string
	for _, filter := range params.Filters {
		if aws.ToString(filter.Name) == "vpc-id" && len(filter.Values) > 0 {
			vpcID = filter.Values[0]
		}
	}
	if out, ok := f.subnets[vpcID]; ok {
		return out, nil
	}
	return &ec2.DescribeSubnetsOutput{}, nil
}

// newTestClient builds a Client around a factory that stamps each fake
// with the region of the config it was built from
func newTestClient(region string, template fakeEC2) *Client {
	c := &Client{
		profile: "test",
		newEC2: func(cfg aws.Config) EC2API {
			f := template
			f.region = cfg.Region
			return &f
		},
	}
	return c.withConfig(aws.Config{Region: region})
}
