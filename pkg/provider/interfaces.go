package provider

import (
	"context"

	"github.com/vietdv277/vpcfinder/pkg/types"
)

// NetworkProvider enumerates regions and hands out region scoped listers
type NetworkProvider interface {
	// ListRegions returns the region names enabled for the account
	ListRegions(ctx context.Context) ([]string, error)

	// ForRegion returns a lister bound to a single region
	ForRegion(region string) RegionNetwork
}

// RegionNetwork lists network resources within one region
type RegionNetwork interface {
	// Region returns the region the lister is bound to
	Region() string

	// ListVPCs returns all VPCs in the region
	ListVPCs(ctx context.Context) ([]types.VPC, error)

	// ListSubnets returns the subnets matching a vpc-id filter
	ListSubnets(ctx context.Context, vpcID string) ([]types.Subnet, error)
}

// IdentityProvider resolves the caller behind a set of credentials
type IdentityProvider interface {
	GetCallerIdentity(ctx context.Context) (*types.CallerIdentity, error)
}
